package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/stepwait/internal/clock"
	"github.com/nao1215/stepwait/internal/model"
	"github.com/nao1215/stepwait/internal/report"
	"github.com/nao1215/stepwait/internal/toolkit/toolkittest"
)

var testStart = time.Date(2024, time.May, 1, 8, 30, 0, 0, time.UTC)

func TestReadInputStep(t *testing.T) {
	t.Parallel()

	t.Run("announces the raw input", func(t *testing.T) {
		t.Parallel()

		rec := toolkittest.NewRecorder(map[string]string{InputMilliseconds: "500abc"})
		run := model.NewRun()

		require.NoError(t, NewReadInputStep(rec).Do(context.Background(), run))
		assert.Equal(t, "500abc", run.Input)
		assert.Equal(t, []string{"Waiting 500abc milliseconds ..."}, rec.Debugs())
	})

	t.Run("absent input is empty", func(t *testing.T) {
		t.Parallel()

		rec := toolkittest.NewRecorder(nil)
		run := model.NewRun()

		require.NoError(t, NewReadInputStep(rec).Do(context.Background(), run))
		assert.Equal(t, "", run.Input)
		assert.Equal(t, []string{"Waiting  milliseconds ..."}, rec.Debugs())
	})
}

func TestValidateStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr error
		wantMs  int64
	}{
		{input: "500", wantMs: 500},
		{input: "-1", wantMs: -1},
		{input: "", wantErr: ErrNotANumber},
		{input: "this is not a number", wantErr: ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			run := model.NewRun()
			run.Input = tt.input
			err := NewValidateStep().Do(context.Background(), run)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "milliseconds not a number", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMs, run.Delay.Milliseconds)
		})
	}
}

func TestLogTimeSteps(t *testing.T) {
	t.Parallel()

	rec := toolkittest.NewRecorder(nil)
	fake := clock.NewFake(testStart)
	run := model.NewRun()

	start := NewLogStartStep(rec, fake)
	finish := NewLogFinishStep(rec, fake)
	assert.Equal(t, "log_start", start.Name())
	assert.Equal(t, "log_finish", finish.Name())
	assert.Equal(t, model.StatePreLogged, start.Reaches())
	assert.Equal(t, model.StatePostLogged, finish.Reaches())

	require.NoError(t, start.Do(context.Background(), run))
	fake.Advance(2 * time.Second)
	require.NoError(t, finish.Do(context.Background(), run))

	assert.Equal(t, model.Timestamp("08:30:00 GMT+0000 (UTC)"), run.StartedAt)
	assert.Equal(t, model.Timestamp("08:30:02 GMT+0000 (UTC)"), run.FinishedAt)
	assert.Equal(t, []string{"08:30:00 GMT+0000 (UTC)", "08:30:02 GMT+0000 (UTC)"}, rec.Debugs())
}

func TestSuspendStep(t *testing.T) {
	t.Parallel()

	t.Run("sleeps for the delay", func(t *testing.T) {
		t.Parallel()

		fake := clock.NewFake(testStart)
		run := model.NewRun()
		run.Delay = model.ParseDelay("1500")

		require.NoError(t, NewSuspendStep(fake).Do(context.Background(), run))
		assert.Equal(t, []time.Duration{1500 * time.Millisecond}, fake.Sleeps())
		assert.Equal(t, testStart.Add(1500*time.Millisecond), fake.Now())
	})

	t.Run("negative delay passes through", func(t *testing.T) {
		t.Parallel()

		fake := clock.NewFake(testStart)
		run := model.NewRun()
		run.Delay = model.ParseDelay("-30")

		require.NoError(t, NewSuspendStep(fake).Do(context.Background(), run))
		assert.Equal(t, []time.Duration{0}, fake.Sleeps())
	})

	t.Run("cancellation is reported", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		run := model.NewRun()
		run.Delay = model.ParseDelay("10")

		err := NewSuspendStep(clock.NewFake(testStart)).Do(ctx, run)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSetOutputStep(t *testing.T) {
	t.Parallel()

	rec := toolkittest.NewRecorder(nil)
	run := model.NewRun()

	require.NoError(t, NewSetOutputStep(rec, clock.NewFake(testStart)).Do(context.Background(), run))
	assert.Equal(t, []toolkittest.Output{{Name: OutputTime, Value: "08:30:00 GMT+0000 (UTC)"}}, rec.Outputs())
	assert.Equal(t, model.Timestamp("08:30:00 GMT+0000 (UTC)"), run.Output)
}

func TestWriteSummaryStep(t *testing.T) {
	t.Parallel()

	t.Run("builds and flushes once", func(t *testing.T) {
		t.Parallel()

		rec := toolkittest.NewRecorder(nil)
		step := NewWriteSummaryStep(rec, func(s *report.Summary) *report.Summary {
			return s.AddHeading("hello", report.H3)
		})

		require.NoError(t, step.Do(context.Background(), model.NewRun()))
		summaries := rec.Summaries()
		require.Len(t, summaries, 1)
		require.Len(t, summaries[0], 1)
		assert.Equal(t, "hello", summaries[0][0].Text)
	})

	t.Run("flush error is wrapped", func(t *testing.T) {
		t.Parallel()

		errFlush := errors.New("no space left")
		rec := toolkittest.NewRecorder(nil)
		rec.FlushErr = errFlush

		err := NewWriteSummaryStep(rec, nil).Do(context.Background(), model.NewRun())
		assert.ErrorIs(t, err, errFlush)
		assert.Contains(t, err.Error(), "failed to write job summary")
	})
}
