// Package model defines the data structures shared by the step runner.
//
// This package contains the following main types:
//   - Delay: the parsed "milliseconds" input
//   - Timestamp: a wall-clock reading rendered as a time-of-day string
//   - State: the position of a run in its lifecycle
//   - Run: the record of one execution, from input read to Done or Failed
//
// Models live in their own package so that the pipeline, runner and report
// packages can share them without import cycles.
package model
