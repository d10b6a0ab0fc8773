package engine

import (
	"fmt"

	"github.com/lineclip/lineclip/internal/engine/buffer"
)

// Tx is the view of an engine inside a transaction. Its edit methods
// journal into the transaction's undo step and deliberately do not shift
// selections; the action decides where its carets end up and installs
// them with SetSelections.
type Tx struct {
	e *Engine
}

// Transaction runs fn with exclusive access to the engine. Every edit made
// through the Tx becomes part of a single undo step named name. If fn
// returns an error the journaled edits are rolled back and the selections
// restored, leaving the engine as it was.
//
// Transactions must not be nested, and the engine's own write methods must
// not be called from inside fn.
func (e *Engine) Transaction(name string, fn func(tx *Tx) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	before := e.cursors.All()
	e.history.Begin(name, before)

	if err := fn(&Tx{e: e}); err != nil {
		if rbErr := e.history.Rollback(e.buf); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		e.cursors.SetAll(before)
		e.cursors.Clamp(e.buf.Len())
		return err
	}

	e.history.Commit(e.cursors.All())
	return nil
}

// ============================================================================
// Reads
// ============================================================================

// Text returns the full buffer content.
func (tx *Tx) Text() string {
	return tx.e.buf.Text()
}

// TextRange returns text in the given byte range.
func (tx *Tx) TextRange(start, end ByteOffset) string {
	return tx.e.buf.TextRange(start, end)
}

// Len returns the total byte length of the buffer.
func (tx *Tx) Len() ByteOffset {
	return tx.e.buf.Len()
}

// IsEmpty returns true if the buffer is empty.
func (tx *Tx) IsEmpty() bool {
	return tx.e.buf.IsEmpty()
}

// LineCount returns the number of lines.
func (tx *Tx) LineCount() uint32 {
	return tx.e.buf.LineCount()
}

// LineText returns the text of a specific line (without newline).
func (tx *Tx) LineText(line uint32) string {
	return tx.e.buf.LineText(line)
}

// LineLen returns the length of a specific line in bytes (without newline).
func (tx *Tx) LineLen(line uint32) int {
	return tx.e.buf.LineLen(line)
}

// LineStart returns the byte offset of the start of a line.
func (tx *Tx) LineStart(line uint32) ByteOffset {
	return tx.e.buf.LineStart(line)
}

// LineEnd returns the byte offset of the end of a line (before the newline).
func (tx *Tx) LineEnd(line uint32) ByteOffset {
	return tx.e.buf.LineEnd(line)
}

// LineSpan returns the full span of a line including its terminator.
func (tx *Tx) LineSpan(line uint32) Range {
	return tx.e.buf.LineSpan(line)
}

// LineAt returns the line containing the given offset.
func (tx *Tx) LineAt(offset ByteOffset) uint32 {
	return tx.e.buf.LineAt(offset)
}

// OffsetToPoint converts a byte offset to line/column.
func (tx *Tx) OffsetToPoint(offset ByteOffset) Point {
	return tx.e.buf.OffsetToPoint(offset)
}

// PointToOffset converts line/column to byte offset, clamping both the
// line and the column to valid values.
func (tx *Tx) PointToOffset(point Point) ByteOffset {
	return tx.e.buf.PointToOffset(point)
}

// Snapshot returns a read-only snapshot of the buffer mid-transaction.
func (tx *Tx) Snapshot() *buffer.Snapshot {
	return tx.e.buf.Snapshot()
}

// ============================================================================
// Edits
// ============================================================================

// Insert inserts text at the given offset and journals the edit.
// Returns the end position of the inserted text.
func (tx *Tx) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	return tx.e.insertLocked(offset, text)
}

// Delete removes text in the given range and journals the edit.
// Returns the removed text.
func (tx *Tx) Delete(start, end ByteOffset) (string, error) {
	return tx.e.deleteLocked(start, end)
}

// Replace replaces text in the given range and journals the edit.
// Returns the end position of the replacement text.
func (tx *Tx) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	return tx.e.replaceLocked(start, end, text)
}

// ============================================================================
// Selections
// ============================================================================

// Selections returns a copy of all selections in buffer order.
func (tx *Tx) Selections() []Selection {
	return tx.e.cursors.All()
}

// SetSelections replaces all selections, clamping them to the buffer.
func (tx *Tx) SetSelections(sels []Selection) {
	tx.e.cursors.SetAll(sels)
	tx.e.cursors.Clamp(tx.e.buf.Len())
}
