package model

// State is the position of a run in its lifecycle.
//
// A successful run moves through every state from StateStart to StateDone
// in declaration order. A run that fails at any point ends in StateFailed.
type State int

const (
	// StateStart is the state of a run that has not read its input yet.
	StateStart State = iota

	// StateInputRead means the "milliseconds" input has been read.
	StateInputRead

	// StateValidated means the input parsed as a number.
	StateValidated

	// StatePreLogged means the pre-suspension timestamp was logged.
	StatePreLogged

	// StateSuspended means the timed suspension has completed.
	StateSuspended

	// StatePostLogged means the post-suspension timestamp was logged.
	StatePostLogged

	// StateOutputSet means the "time" output was set.
	StateOutputSet

	// StateReportFlushed means the job summary was written.
	StateReportFlushed

	// StateDone is the terminal success state.
	StateDone

	// StateFailed is the terminal failure state.
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInputRead:
		return "input_read"
	case StateValidated:
		return "validated"
	case StatePreLogged:
		return "pre_logged"
	case StateSuspended:
		return "suspended"
	case StatePostLogged:
		return "post_logged"
	case StateOutputSet:
		return "output_set"
	case StateReportFlushed:
		return "report_flushed"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}
