package report

import "errors"

var (
	// ErrAlreadyWritten is returned when Write is called on a summary
	// that was already flushed.
	ErrAlreadyWritten = errors.New("summary already written")

	// ErrNoSink is returned when a summary has nowhere to be flushed.
	ErrNoSink = errors.New("summary has no sink")
)
