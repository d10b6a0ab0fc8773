package lua

import "errors"

// ErrStateClosed is returned when using a closed state.
var ErrStateClosed = errors.New("lua state is closed")
