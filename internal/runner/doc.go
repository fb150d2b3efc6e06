// Package runner executes one wait step from input read to completion.
//
// A run reads the "milliseconds" input, announces the wait, validates the
// input, logs a timestamp, suspends, logs a second timestamp, sets the
// "time" output and publishes the job summary. The Runner is the failure
// boundary: any error a step returns, and any panic raised while the steps
// run, ends the run in the failed state and is reported through the
// Provider's Fail method. Nothing is retried.
package runner
