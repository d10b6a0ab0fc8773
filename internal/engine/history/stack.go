package history

import (
	"errors"
	"sync"

	"github.com/lineclip/lineclip/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
	ErrTransactionOpen = errors.New("transaction in progress")
)

// History manages the undo/redo stacks for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []*Transaction
	redoStack []*Transaction

	// Open transaction collecting edits; nil outside an action
	open *Transaction

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000 // Default
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Begin opens a transaction capturing the given selections. Edits recorded
// until Commit become one undo step. A Begin inside an open transaction is
// ignored; the nested edits join the outer transaction.
func (h *History) Begin(name string, before []Selection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.open != nil {
		return
	}
	h.open = NewTransaction(name, before)
}

// Record journals an operation in the open transaction. An operation
// recorded outside a transaction becomes its own single-edit undo step.
func (h *History) Record(op *Operation) {
	if op == nil || op.IsNoop() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.open != nil {
		h.open.Record(op)
		return
	}

	t := NewTransaction("", nil)
	t.Record(op)
	h.pushLocked(t)
}

// Commit closes the open transaction and pushes it onto the undo stack.
// A transaction with no edits is discarded.
func (h *History) Commit(after []Selection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	t := h.open
	h.open = nil
	if t == nil || t.IsEmpty() {
		return
	}

	if len(after) > 0 {
		t.After = make([]Selection, len(after))
		copy(t.After, after)
	}
	h.pushLocked(t)
}

// Rollback reverts the open transaction's edits and discards it, leaving
// the buffer as it was at Begin.
func (h *History) Rollback(buf *buffer.Buffer) error {
	h.mu.Lock()
	t := h.open
	h.open = nil
	h.mu.Unlock()

	if t == nil || t.IsEmpty() {
		return nil
	}
	return t.Revert(buf)
}

// InTransaction returns true if a transaction is open.
func (h *History) InTransaction() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.open != nil
}

// pushLocked pushes a transaction, clears the redo stack and enforces the
// entry cap. Caller holds the lock.
func (h *History) pushLocked(t *Transaction) {
	h.undoStack = append(h.undoStack, t)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent transaction and returns the selections that
// were in effect before it. The lock is released during buffer edits.
func (h *History) Undo(buf *buffer.Buffer) ([]Selection, error) {
	h.mu.Lock()
	if h.open != nil {
		h.mu.Unlock()
		return nil, ErrTransactionOpen
	}
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return nil, ErrNothingToUndo
	}

	t := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	if err := t.Revert(buf); err != nil {
		// Restore entry on failure
		h.mu.Lock()
		h.undoStack = append(h.undoStack, t)
		h.mu.Unlock()
		return nil, err
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, t)
	h.mu.Unlock()
	return t.Before, nil
}

// Redo replays the most recently undone transaction and returns the
// selections that were in effect after it.
func (h *History) Redo(buf *buffer.Buffer) ([]Selection, error) {
	h.mu.Lock()
	if h.open != nil {
		h.mu.Unlock()
		return nil, ErrTransactionOpen
	}
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return nil, ErrNothingToRedo
	}

	t := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.mu.Unlock()

	if err := t.Apply(buf); err != nil {
		h.mu.Lock()
		h.redoStack = append(h.redoStack, t)
		h.mu.Unlock()
		return nil, err
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, t)
	h.mu.Unlock()
	return t.After, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history and any open transaction.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.open = nil
}

// TransactionInfo provides read-only info about a history entry.
type TransactionInfo struct {
	Description string
	Edits       int
	BytesDelta  int
}

// PeekUndo returns info about the next undo step without removing it.
func (h *History) PeekUndo() (TransactionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return TransactionInfo{}, false
	}
	return infoFor(h.undoStack[len(h.undoStack)-1]), true
}

// PeekRedo returns info about the next redo step without removing it.
func (h *History) PeekRedo() (TransactionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return TransactionInfo{}, false
	}
	return infoFor(h.redoStack[len(h.redoStack)-1]), true
}

func infoFor(t *Transaction) TransactionInfo {
	return TransactionInfo{
		Description: t.Description(),
		Edits:       len(t.Ops),
		BytesDelta:  t.BytesDelta(),
	}
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = 1000
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
