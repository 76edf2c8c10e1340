package loadstate

import "errors"

// ErrUnknown stands in for a failure reported without an error value.
var ErrUnknown = errors.New("load failed")
