package pipeline

import "errors"

// ErrNotANumber is returned by the validate step when the input does not
// start with an integer. Its message is the failure signal shown to users.
var ErrNotANumber = errors.New("milliseconds not a number")
