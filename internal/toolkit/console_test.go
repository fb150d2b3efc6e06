package toolkit

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stepwaitlog "github.com/nao1215/stepwait/internal/log"
	"github.com/nao1215/stepwait/internal/report"
)

func init() {
	color.NoColor = true
}

func TestInputEnvName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"milliseconds", "INPUT_MILLISECONDS"},
		{"two words", "INPUT_TWO_WORDS"},
		{"Mixed-Case", "INPUT_MIXED-CASE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InputEnvName(tt.name))
		})
	}
}

func TestConsoleGetInput(t *testing.T) {
	t.Parallel()

	lookup := func(env map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}
	}
	defaults := map[string]string{"milliseconds": "1000"}

	tests := []struct {
		name     string
		env      map[string]string
		defaults map[string]string
		want     string
	}{
		{name: "reads the environment", env: map[string]string{"INPUT_MILLISECONDS": " 250 "}, want: "250"},
		{name: "unset without default", env: map[string]string{}, want: ""},
		{name: "unset falls back to default", env: map[string]string{}, defaults: defaults, want: "1000"},
		{name: "environment wins over default", env: map[string]string{"INPUT_MILLISECONDS": "250"}, defaults: defaults, want: "250"},
		{name: "empty value is kept", env: map[string]string{"INPUT_MILLISECONDS": ""}, defaults: defaults, want: ""},
		{name: "blank value is kept", env: map[string]string{"INPUT_MILLISECONDS": "   "}, defaults: defaults, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConsole(
				WithConsoleLookupEnv(lookup(tt.env)),
				WithInputDefaults(tt.defaults),
			)
			assert.Equal(t, tt.want, c.GetInput("milliseconds"))
		})
	}
}

func TestConsoleDebug(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	c := NewConsole(WithConsoleLogger(stepwaitlog.NewSecureLogger(&logBuf, true)))
	c.Debug("Waiting 10 milliseconds ...")

	assert.Contains(t, logBuf.String(), "Waiting 10 milliseconds ...")
}

func TestConsoleOutputAndFail(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := NewConsole(WithConsoleOutput(&out, &errOut))

	c.SetOutput("time", "01:02:03 GMT+0000 (UTC)")
	assert.Contains(t, out.String(), "time=01:02:03 GMT+0000 (UTC)")

	assert.False(t, c.Failed())
	c.Fail("milliseconds not a number")
	assert.True(t, c.Failed())
	assert.Contains(t, errOut.String(), "Error: milliseconds not a number")
}

func TestConsoleFlush(t *testing.T) {
	t.Parallel()

	t.Run("prints to output by default", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		c := NewConsole(WithConsoleOutput(&out, &bytes.Buffer{}))
		require.NoError(t, report.NewSummary(c).AddHeading("Local", report.H2).Write(context.Background()))
		assert.Contains(t, out.String(), "## Local")
	})

	t.Run("uses the configured sink", func(t *testing.T) {
		t.Parallel()

		var out, summary bytes.Buffer
		c := NewConsole(
			WithConsoleOutput(&out, &bytes.Buffer{}),
			WithSummarySink(report.NewWriterSink(&summary)),
		)
		require.NoError(t, report.NewSummary(c).AddHeading("Local", report.H2).Write(context.Background()))
		assert.Contains(t, summary.String(), "## Local")
		assert.Empty(t, out.String())
	})
}
