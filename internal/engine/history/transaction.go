package history

import (
	"fmt"
	"time"

	"github.com/lineclip/lineclip/internal/engine/buffer"
)

// Transaction groups the primitive edits of a single editor action into one
// undo step, together with the selections in effect before and after it.
// A line-wise cut that removes three blocks journals three delete
// operations but undoes as a unit.
type Transaction struct {
	Name   string        // Action name, e.g. "Cut Lines"
	Ops    OperationList // Journal in apply order
	Before []Selection   // Selections before the action
	After  []Selection   // Selections after the action

	Timestamp time.Time // When the transaction began
}

// NewTransaction creates an open transaction capturing the current selections.
func NewTransaction(name string, before []Selection) *Transaction {
	t := &Transaction{
		Name:      name,
		Timestamp: time.Now(),
	}
	if len(before) > 0 {
		t.Before = make([]Selection, len(before))
		copy(t.Before, before)
	}
	return t
}

// Record appends an operation to the journal. No-op operations are dropped.
func (t *Transaction) Record(op *Operation) {
	if op == nil || op.IsNoop() {
		return
	}
	t.Ops = append(t.Ops, op)
}

// IsEmpty returns true if the transaction journaled no edits.
func (t *Transaction) IsEmpty() bool {
	return len(t.Ops) == 0
}

// BytesDelta returns the transaction's total change in document length.
func (t *Transaction) BytesDelta() int {
	return t.Ops.TotalBytesDelta()
}

// Apply replays the journal in recorded order. Used for redo.
func (t *Transaction) Apply(buf *buffer.Buffer) error {
	for _, op := range t.Ops {
		if _, err := buf.Replace(op.Range.Start, op.Range.End, op.NewText); err != nil {
			return fmt.Errorf("redo %q: %w", t.Name, err)
		}
	}
	return nil
}

// Revert applies the inverse of each operation in reverse order. Used for
// undo; each inverse is valid in the state the previous one produced.
func (t *Transaction) Revert(buf *buffer.Buffer) error {
	for i := len(t.Ops) - 1; i >= 0; i-- {
		inv := t.Ops[i].Invert()
		if _, err := buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText); err != nil {
			return fmt.Errorf("undo %q: %w", t.Name, err)
		}
	}
	return nil
}

// Description returns a human-readable description of the transaction.
func (t *Transaction) Description() string {
	if t.Name != "" {
		return t.Name
	}
	if len(t.Ops) == 1 {
		op := t.Ops[0]
		switch {
		case op.IsInsert():
			return fmt.Sprintf("Insert %d bytes", len(op.NewText))
		case op.IsDelete():
			return fmt.Sprintf("Delete %d bytes", len(op.OldText))
		default:
			return fmt.Sprintf("Replace %d with %d bytes", len(op.OldText), len(op.NewText))
		}
	}
	return fmt.Sprintf("%d edits", len(t.Ops))
}
