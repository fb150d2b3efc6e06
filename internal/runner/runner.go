package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/stepwait/internal/clock"
	"github.com/nao1215/stepwait/internal/model"
	"github.com/nao1215/stepwait/internal/pipeline"
	"github.com/nao1215/stepwait/internal/report"
	"github.com/nao1215/stepwait/internal/toolkit"
)

// Runner sequences the steps of one run.
type Runner struct {
	provider toolkit.Provider
	sink     report.Sink
	clock    clock.Clock
	logger   *slog.Logger
	summary  pipeline.SummaryBuilder
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock used for timestamps and the suspension.
func WithClock(c clock.Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithLogger sets the logger for internal progress lines. These never
// reach the Provider.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithSink overrides where the job summary is flushed.
func WithSink(sink report.Sink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}

// WithSummary replaces the job summary content.
func WithSummary(build pipeline.SummaryBuilder) Option {
	return func(r *Runner) {
		r.summary = build
	}
}

// New creates a Runner. The provider also receives the job summary unless
// WithSink is given.
func New(provider toolkit.SummaryProvider, opts ...Option) *Runner {
	r := &Runner{
		provider: provider,
		sink:     provider,
		clock:    clock.System,
		summary:  BuildJobSummary,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Pipeline returns the steps of a run in execution order.
func (r *Runner) Pipeline() *pipeline.Pipeline {
	p := pipeline.New(pipeline.WithLogger(r.logger))
	p.AddSteps(
		pipeline.NewReadInputStep(r.provider),
		pipeline.NewValidateStep(),
		pipeline.NewLogStartStep(r.provider, r.clock),
		pipeline.NewSuspendStep(r.clock),
		pipeline.NewLogFinishStep(r.provider, r.clock),
		pipeline.NewSetOutputStep(r.provider, r.clock),
		pipeline.NewWriteSummaryStep(r.sink, r.summary),
	)
	return p
}

// Run executes one run and returns its record. The run ends in
// model.StateDone or model.StateFailed; on failure the Provider has been
// told through Fail, unless the failure carried no message.
func (r *Runner) Run(ctx context.Context) (run *model.Run) {
	run = model.NewRun()
	began := r.clock.Now()
	logger := r.logger.With("run", run.ID)

	defer func() {
		if v := recover(); v != nil {
			msg := panicMessage(v)
			logger.Error("run panicked", "panic", fmt.Sprint(v))
			if msg == "" {
				run.Fail(ErrPanicked)
			} else {
				run.Fail(fmt.Errorf("%w: %s", ErrPanicked, msg))
				r.provider.Fail(msg)
			}
		}
		run.Elapsed = r.clock.Now().Sub(began)
		logger.Info("run finished",
			"state", run.State.String(),
			"elapsed", run.Elapsed,
		)
	}()

	if err := r.Pipeline().Execute(ctx, run); err != nil {
		if msg := err.Error(); msg != "" {
			r.provider.Fail(msg)
		}
	}
	return run
}

// panicMessage extracts a message from a recovered panic value, or returns
// "" when the value carries none.
func panicMessage(v any) string {
	switch x := v.(type) {
	case error:
		return x.Error()
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return ""
	}
}
