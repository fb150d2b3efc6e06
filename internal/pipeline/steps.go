package pipeline

import (
	"context"
	"fmt"

	"github.com/nao1215/stepwait/internal/clock"
	"github.com/nao1215/stepwait/internal/model"
	"github.com/nao1215/stepwait/internal/report"
	"github.com/nao1215/stepwait/internal/toolkit"
)

const (
	// InputMilliseconds is the name of the delay input.
	InputMilliseconds = "milliseconds"

	// OutputTime is the name of the output set after the wait.
	OutputTime = "time"
)

// ReadInputStep reads the delay input and announces the wait.
// The announcement carries the raw input, not the parsed value.
type ReadInputStep struct {
	provider toolkit.Provider
}

// NewReadInputStep creates a ReadInputStep.
func NewReadInputStep(provider toolkit.Provider) *ReadInputStep {
	return &ReadInputStep{provider: provider}
}

// Name returns the step name.
func (s *ReadInputStep) Name() string { return "read_input" }

// Reaches returns StateInputRead.
func (s *ReadInputStep) Reaches() model.State { return model.StateInputRead }

// Do executes the step.
func (s *ReadInputStep) Do(_ context.Context, run *model.Run) error {
	run.Input = s.provider.GetInput(InputMilliseconds)
	s.provider.Debug(fmt.Sprintf("Waiting %s milliseconds ...", run.Input))
	return nil
}

// ValidateStep parses the input into a delay.
type ValidateStep struct{}

// NewValidateStep creates a ValidateStep.
func NewValidateStep() *ValidateStep {
	return &ValidateStep{}
}

// Name returns the step name.
func (s *ValidateStep) Name() string { return "validate" }

// Reaches returns StateValidated.
func (s *ValidateStep) Reaches() model.State { return model.StateValidated }

// Do parses run.Input and returns ErrNotANumber when it is not an integer.
func (s *ValidateStep) Do(_ context.Context, run *model.Run) error {
	run.Delay = model.ParseDelay(run.Input)
	if !run.Delay.Valid {
		return ErrNotANumber
	}
	return nil
}

// LogTimeStep logs the current time as a debug message. It runs once
// before and once after the suspension.
type LogTimeStep struct {
	provider toolkit.Provider
	clock    clock.Clock
	after    bool
}

// NewLogStartStep creates the LogTimeStep that runs before the suspension.
func NewLogStartStep(provider toolkit.Provider, c clock.Clock) *LogTimeStep {
	return &LogTimeStep{provider: provider, clock: c}
}

// NewLogFinishStep creates the LogTimeStep that runs after the suspension.
func NewLogFinishStep(provider toolkit.Provider, c clock.Clock) *LogTimeStep {
	return &LogTimeStep{provider: provider, clock: c, after: true}
}

// Name returns the step name.
func (s *LogTimeStep) Name() string {
	if s.after {
		return "log_finish"
	}
	return "log_start"
}

// Reaches returns StatePostLogged after the suspension and StatePreLogged before it.
func (s *LogTimeStep) Reaches() model.State {
	if s.after {
		return model.StatePostLogged
	}
	return model.StatePreLogged
}

// Do logs the timestamp and records it on the run.
func (s *LogTimeStep) Do(_ context.Context, run *model.Run) error {
	ts := model.NewTimestamp(s.clock.Now())
	s.provider.Debug(ts.String())
	if s.after {
		run.FinishedAt = ts
	} else {
		run.StartedAt = ts
	}
	return nil
}

// SuspendStep waits for the parsed delay. Zero and negative delays pass
// straight through.
type SuspendStep struct {
	clock clock.Clock
}

// NewSuspendStep creates a SuspendStep.
func NewSuspendStep(c clock.Clock) *SuspendStep {
	return &SuspendStep{clock: c}
}

// Name returns the step name.
func (s *SuspendStep) Name() string { return "suspend" }

// Reaches returns StateSuspended.
func (s *SuspendStep) Reaches() model.State { return model.StateSuspended }

// Do sleeps for run.Delay.
func (s *SuspendStep) Do(ctx context.Context, run *model.Run) error {
	if err := s.clock.Sleep(ctx, run.Delay.Duration()); err != nil {
		return fmt.Errorf("wait interrupted: %w", err)
	}
	return nil
}

// SetOutputStep sets the "time" output to the current timestamp.
type SetOutputStep struct {
	provider toolkit.Provider
	clock    clock.Clock
}

// NewSetOutputStep creates a SetOutputStep.
func NewSetOutputStep(provider toolkit.Provider, c clock.Clock) *SetOutputStep {
	return &SetOutputStep{provider: provider, clock: c}
}

// Name returns the step name.
func (s *SetOutputStep) Name() string { return "set_output" }

// Reaches returns StateOutputSet.
func (s *SetOutputStep) Reaches() model.State { return model.StateOutputSet }

// Do sets the output.
func (s *SetOutputStep) Do(_ context.Context, run *model.Run) error {
	ts := model.NewTimestamp(s.clock.Now())
	s.provider.SetOutput(OutputTime, ts.String())
	run.Output = ts
	return nil
}

// SummaryBuilder adds entries to a summary.
type SummaryBuilder func(s *report.Summary) *report.Summary

// WriteSummaryStep builds the job summary and flushes it once.
type WriteSummaryStep struct {
	sink  report.Sink
	build SummaryBuilder
}

// NewWriteSummaryStep creates a WriteSummaryStep.
func NewWriteSummaryStep(sink report.Sink, build SummaryBuilder) *WriteSummaryStep {
	return &WriteSummaryStep{sink: sink, build: build}
}

// Name returns the step name.
func (s *WriteSummaryStep) Name() string { return "write_summary" }

// Reaches returns StateReportFlushed.
func (s *WriteSummaryStep) Reaches() model.State { return model.StateReportFlushed }

// Do builds and writes the summary.
func (s *WriteSummaryStep) Do(ctx context.Context, _ *model.Run) error {
	summary := report.NewSummary(s.sink)
	if s.build != nil {
		summary = s.build(summary)
	}
	if err := summary.Write(ctx); err != nil {
		return fmt.Errorf("failed to write job summary: %w", err)
	}
	return nil
}
