package engine

import (
	"errors"

	"github.com/lineclip/lineclip/internal/engine/buffer"
	"github.com/lineclip/lineclip/internal/engine/history"
)

// Errors returned by engine operations. The buffer and history errors are
// re-exported so callers can match with errors.Is without importing the
// subpackages.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrReadOnly indicates a write was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)
