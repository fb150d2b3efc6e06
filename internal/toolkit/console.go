package toolkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/nao1215/stepwait/internal/report"
)

// Console is a Provider for runs outside GitHub Actions.
//
// Inputs are read from INPUT_<NAME> environment variables, the same names
// the Actions runner uses, and fall back to defaults declared in the action
// metadata. Debug messages go to the logger, outputs are printed as
// name=value lines, and the failure message is printed in red.
type Console struct {
	lookupEnv func(string) (string, bool)
	defaults  map[string]string
	logger    *slog.Logger
	out       io.Writer
	errOut    io.Writer
	summary   report.Sink
	failed    bool
}

// ConsoleOption configures a Console provider.
type ConsoleOption func(*Console)

// WithConsoleLookupEnv sets the environment lookup used for inputs.
func WithConsoleLookupEnv(lookupEnv func(string) (string, bool)) ConsoleOption {
	return func(c *Console) {
		c.lookupEnv = lookupEnv
	}
}

// WithInputDefaults sets values used for inputs whose variable is not set.
// An input set to the empty string keeps its empty value.
func WithInputDefaults(defaults map[string]string) ConsoleOption {
	return func(c *Console) {
		c.defaults = defaults
	}
}

// WithConsoleLogger sets the logger that receives debug messages.
func WithConsoleLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithConsoleOutput sets the writers for outputs and failures.
func WithConsoleOutput(out, errOut io.Writer) ConsoleOption {
	return func(c *Console) {
		c.out = out
		c.errOut = errOut
	}
}

// WithSummarySink sets where the job summary goes. By default it is
// printed to the output writer.
func WithSummarySink(sink report.Sink) ConsoleOption {
	return func(c *Console) {
		c.summary = sink
	}
}

// NewConsole creates a Console provider.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		lookupEnv: os.LookupEnv,
		logger:    slog.Default(),
		out:       os.Stdout,
		errOut:    os.Stderr,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.summary == nil {
		c.summary = report.NewWriterSink(c.out)
	}
	return c
}

// InputEnvName returns the environment variable that carries the named
// input: spaces become underscores and the name is upper-cased.
func InputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// GetInput returns the named input with surrounding whitespace removed.
func (c *Console) GetInput(name string) string {
	v, ok := c.lookupEnv(InputEnvName(name))
	if !ok {
		v = c.defaults[name]
	}
	return strings.TrimSpace(v)
}

// Debug logs msg at debug level.
func (c *Console) Debug(msg string) {
	c.logger.Debug(msg)
}

// SetOutput prints the output as name=value.
func (c *Console) SetOutput(name, value string) {
	fmt.Fprintf(c.out, "%s=%s\n", color.CyanString(name), value)
}

// Fail records the failure and prints msg when it is not empty.
func (c *Console) Fail(msg string) {
	c.failed = true
	if msg == "" {
		return
	}
	red := color.New(color.FgRed)
	_, _ = red.Fprintf(c.errOut, "Error: %s\n", msg)
}

// Failed reports whether Fail was called.
func (c *Console) Failed() bool {
	return c.failed
}

// Flush publishes the summary through the configured sink.
func (c *Console) Flush(ctx context.Context, s *report.Summary) error {
	return c.summary.Flush(ctx, s)
}

var _ SummaryProvider = (*Console)(nil)
