package toolkit

import (
	"context"
	"io"

	"github.com/sethvargo/go-githubactions"

	"github.com/nao1215/stepwait/internal/report"
)

// File command variables set by the runner.
const (
	outputFileEnv  = "GITHUB_OUTPUT"
	summaryFileEnv = "GITHUB_STEP_SUMMARY"
)

// Actions is a Provider backed by the GitHub Actions runner.
// Inputs are read from INPUT_<NAME> variables, debug messages and failures
// are written as workflow commands, and outputs and the job summary are
// appended to the files named by GITHUB_OUTPUT and GITHUB_STEP_SUMMARY.
// Without GITHUB_OUTPUT, outputs are written as set-output commands.
type Actions struct {
	action *githubactions.Action
	failed bool
}

// ActionsOption configures an Actions provider.
type ActionsOption func(*actionsOptions)

type actionsOptions struct {
	writer io.Writer
	getenv githubactions.GetenvFunc
}

// WithActionsWriter sets where workflow commands are written.
// The runner reads them from stdout, which is the default.
func WithActionsWriter(w io.Writer) ActionsOption {
	return func(o *actionsOptions) {
		o.writer = w
	}
}

// WithActionsGetenv sets the environment lookup used for inputs and
// file command paths.
func WithActionsGetenv(getenv func(string) string) ActionsOption {
	return func(o *actionsOptions) {
		o.getenv = getenv
	}
}

// NewActions creates an Actions provider.
func NewActions(opts ...ActionsOption) *Actions {
	o := &actionsOptions{}
	for _, opt := range opts {
		opt(o)
	}

	ghOpts := make([]githubactions.Option, 0, 2)
	if o.writer != nil {
		ghOpts = append(ghOpts, githubactions.WithWriter(o.writer))
	}
	if o.getenv != nil {
		ghOpts = append(ghOpts, githubactions.WithGetenv(o.getenv))
	}

	return &Actions{action: githubactions.New(ghOpts...)}
}

// GetInput returns the named input with surrounding whitespace removed.
func (a *Actions) GetInput(name string) string {
	return a.action.GetInput(name)
}

// Debug writes a ::debug:: command. The runner only shows it when step
// debug logging is enabled.
func (a *Actions) Debug(msg string) {
	a.action.Debugf("%s", msg)
}

// SetOutput writes the output as a delimited block to the GITHUB_OUTPUT
// file. Runners that do not provide the file get a set-output command.
func (a *Actions) SetOutput(name, value string) {
	if a.action.Getenv(outputFileEnv) == "" {
		a.action.IssueCommand(&githubactions.Command{
			Name:       "set-output",
			Message:    value,
			Properties: githubactions.CommandProperties{"name": name},
		})
		return
	}
	a.action.SetOutput(name, value)
}

// Fail writes an ::error:: command and records the failure.
// The process exit code is decided by the caller through Failed.
func (a *Actions) Fail(msg string) {
	a.failed = true
	if msg != "" {
		a.action.Errorf("%s", msg)
	}
}

// Failed reports whether Fail was called.
func (a *Actions) Failed() bool {
	return a.failed
}

// Flush renders the summary and appends it to the GITHUB_STEP_SUMMARY file.
func (a *Actions) Flush(ctx context.Context, s *report.Summary) error {
	if a.action.Getenv(summaryFileEnv) == "" {
		return ErrNoSummaryFile
	}
	return flushMarkdown(ctx, s, func(text string) error {
		a.action.AddStepSummary(text)
		return nil
	})
}

var _ SummaryProvider = (*Actions)(nil)
