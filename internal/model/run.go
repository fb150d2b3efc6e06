package model

import (
	"time"

	"github.com/google/uuid"
)

// Run records one execution of the step.
// A Run is owned by a single goroutine and is never shared between runs.
type Run struct {
	// ID identifies the run in log output.
	ID string

	// State is the current lifecycle position.
	State State

	// Input is the raw "milliseconds" input.
	Input string

	// Delay is the parsed input. It is zero until the validate step runs.
	Delay Delay

	// StartedAt and FinishedAt are the pre- and post-suspension readings.
	StartedAt  Timestamp
	FinishedAt Timestamp

	// Output is the value set for the "time" output. Empty unless the run
	// reached StateOutputSet.
	Output Timestamp

	// Err is the error that moved the run to StateFailed.
	Err error

	// CompletedSteps lists the names of the steps that finished, in order.
	CompletedSteps []string

	// Elapsed is the wall time between the start and the end of the run.
	Elapsed time.Duration
}

// NewRun creates a Run in StateStart with a fresh random ID.
func NewRun() *Run {
	return &Run{
		ID:             uuid.NewString(),
		State:          StateStart,
		CompletedSteps: make([]string, 0),
	}
}

// Advance moves the run to s unless the run already reached a terminal state.
func (r *Run) Advance(s State) {
	if r.State.IsTerminal() {
		return
	}
	r.State = s
}

// Fail moves the run to StateFailed and records err.
// A run that already finished keeps its first terminal state.
func (r *Run) Fail(err error) {
	if r.State.IsTerminal() {
		return
	}
	r.State = StateFailed
	r.Err = err
}

// Succeeded reports whether the run reached StateDone.
func (r *Run) Succeeded() bool {
	return r.State == StateDone
}
