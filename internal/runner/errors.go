package runner

import "errors"

var (
	// ErrPanicked is recorded on a run that panicked. When the panic value
	// carried no message the run fails without a failure message.
	ErrPanicked = errors.New("run panicked")

	// ErrRunFailed is returned by callers that turn a failed run into a
	// non-zero exit status.
	ErrRunFailed = errors.New("run failed")
)
