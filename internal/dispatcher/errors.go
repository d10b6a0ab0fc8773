package dispatcher

import "errors"

var (
	// ErrNoHandler is returned when no handler exists for an action.
	ErrNoHandler = errors.New("no handler for action")

	// ErrInvalidAction is returned when an action has no name.
	ErrInvalidAction = errors.New("invalid action: empty name")
)
