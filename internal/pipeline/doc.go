// Package pipeline executes the steps of a run in sequence.
//
// Each Step receives the run record, does one thing, and names the state
// the run reaches when it succeeds. The pipeline stops at the first failing
// step, so a later step never observes a failed run: a run that fails
// validation sets no output and writes no summary.
//
// The steps that make up the wait job live in steps.go; the runner package
// assembles them.
package pipeline
