package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/stepwait/internal/model"
)

// Step defines the interface that all pipeline steps implement.
type Step interface {
	// Do executes the step against run. A returned error stops the pipeline.
	Do(ctx context.Context, run *model.Run) error

	// Name returns the step's name for logging.
	Name() string

	// Reaches returns the state the run enters when Do succeeds.
	Reaches() model.State
}

// Pipeline orchestrates the execution of steps in order.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger for step progress lines.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every step in order and moves run to StateDone.
// On the first error, or when ctx is cancelled between steps, the run is
// moved to StateFailed and the error is returned. Execute does nothing to a
// run that is already in a terminal state.
func (p *Pipeline) Execute(ctx context.Context, run *model.Run) error {
	if run.State.IsTerminal() {
		return nil
	}

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"run", run.ID,
				"step", step.Name(),
				"reason", err,
			)
			run.Fail(err)
			return err
		}

		p.logger.Debug("executing step", "run", run.ID, "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Debug("step failed",
				"run", run.ID,
				"step", step.Name(),
				"state", run.State.String(),
				"error", err,
			)
			run.Fail(err)
			return err
		}

		run.Advance(step.Reaches())
		run.CompletedSteps = append(run.CompletedSteps, step.Name())
		p.logger.Debug("step completed",
			"run", run.ID,
			"step", step.Name(),
			"state", run.State.String(),
		)
	}

	run.Advance(model.StateDone)
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
