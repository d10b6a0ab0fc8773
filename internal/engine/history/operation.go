package history

import (
	"time"

	"github.com/lineclip/lineclip/internal/engine/buffer"
	"github.com/lineclip/lineclip/internal/engine/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is an alias for cursor.Selection for convenience.
type Selection = cursor.Selection

// Operation records a single primitive edit. Its coordinates are valid in
// the buffer state the edit was applied to, so a journal of operations can
// be replayed forward or inverted in reverse.
type Operation struct {
	Range   Range  // Range that was modified
	OldText string // Text that was replaced (for undo)
	NewText string // Text that was inserted (for redo)

	Timestamp time.Time // When the operation occurred
}

// NewOperation creates a new operation.
func NewOperation(r Range, oldText, newText string) *Operation {
	return &Operation{
		Range:     r,
		OldText:   oldText,
		NewText:   newText,
		Timestamp: time.Now(),
	}
}

// NewInsertOperation creates an operation for an insertion.
func NewInsertOperation(offset ByteOffset, text string) *Operation {
	return &Operation{
		Range:     Range{Start: offset, End: offset},
		OldText:   "",
		NewText:   text,
		Timestamp: time.Now(),
	}
}

// NewDeleteOperation creates an operation for a deletion.
func NewDeleteOperation(r Range, deletedText string) *Operation {
	return &Operation{
		Range:     r,
		OldText:   deletedText,
		NewText:   "",
		Timestamp: time.Now(),
	}
}

// IsInsert returns true if this operation is a pure insertion.
func (op *Operation) IsInsert() bool {
	return op.Range.IsEmpty() && len(op.NewText) > 0
}

// IsDelete returns true if this operation is a pure deletion.
func (op *Operation) IsDelete() bool {
	return !op.Range.IsEmpty() && len(op.NewText) == 0
}

// IsReplace returns true if this operation replaces text.
func (op *Operation) IsReplace() bool {
	return !op.Range.IsEmpty() && len(op.NewText) > 0
}

// IsNoop returns true if this operation makes no changes.
func (op *Operation) IsNoop() bool {
	return op.Range.IsEmpty() && len(op.NewText) == 0
}

// BytesDelta returns the change in document length.
func (op *Operation) BytesDelta() int {
	return len(op.NewText) - int(op.Range.End-op.Range.Start)
}

// NewRange returns the range of the text after the operation.
func (op *Operation) NewRange() Range {
	return Range{
		Start: op.Range.Start,
		End:   op.Range.Start + ByteOffset(len(op.NewText)),
	}
}

// Invert returns an operation that undoes this one. Its coordinates are
// valid in the buffer state this operation produced.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Range:     op.NewRange(),
		OldText:   op.NewText,
		NewText:   op.OldText,
		Timestamp: time.Now(),
	}
}

// OperationList is a journal of operations in the order they were applied.
type OperationList []*Operation

// TotalBytesDelta returns the total change in document length.
func (ops OperationList) TotalBytesDelta() int {
	total := 0
	for _, op := range ops {
		total += op.BytesDelta()
	}
	return total
}
