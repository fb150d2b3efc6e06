package toolkit

import (
	"context"
	"errors"

	"github.com/nao1215/stepwait/internal/report"
)

// ErrNoSummaryFile is returned by the Actions summary sink when the runner
// did not provide a step summary file.
var ErrNoSummaryFile = errors.New("GITHUB_STEP_SUMMARY is not set")

// Provider delivers inputs and accepts logs, outputs and the failure signal.
type Provider interface {
	// GetInput returns the named input, or "" when it is absent.
	GetInput(name string) string

	// Debug emits a debug-level message.
	Debug(msg string)

	// SetOutput sets the named output.
	SetOutput(name, value string)

	// Fail marks the run as failed with msg.
	Fail(msg string)
}

// SummaryProvider is a Provider that also owns the destination of the
// job summary.
type SummaryProvider interface {
	Provider
	report.Sink
}

// flushMarkdown is shared by providers whose sink renders markdown and hands
// it to a publish function.
func flushMarkdown(_ context.Context, s *report.Summary, publish func(string) error) error {
	text, err := s.Markdown()
	if err != nil {
		return err
	}
	return publish(text)
}
