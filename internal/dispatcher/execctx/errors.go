package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEngine indicates the engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")

	// ErrMissingCursors indicates cursors are required but not set.
	ErrMissingCursors = errors.New("execution context: cursors are required")

	// ErrMissingClipboard indicates the clipboard is required but not set.
	ErrMissingClipboard = errors.New("execution context: clipboard is required")

	// ErrMissingHistory indicates history is required but not set.
	ErrMissingHistory = errors.New("execution context: history is required")

	// ErrReadOnly indicates the buffer is read-only.
	ErrReadOnly = errors.New("execution context: buffer is read-only")
)
