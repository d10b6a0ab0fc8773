package history

import (
	"errors"
	"testing"

	"github.com/lineclip/lineclip/internal/engine/buffer"
	"github.com/lineclip/lineclip/internal/engine/cursor"
)

// Operation tests

func TestNewOperation(t *testing.T) {
	op := NewOperation(Range{Start: 5, End: 10}, "hello", "world")
	if op.Range.Start != 5 || op.Range.End != 10 {
		t.Error("wrong range")
	}
	if op.OldText != "hello" || op.NewText != "world" {
		t.Error("wrong text")
	}
	if op.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestOperationKinds(t *testing.T) {
	insert := NewInsertOperation(5, "hello")
	if !insert.IsInsert() || insert.IsDelete() || insert.IsReplace() {
		t.Error("insert misclassified")
	}

	del := NewDeleteOperation(Range{Start: 5, End: 10}, "hello")
	if !del.IsDelete() || del.IsInsert() || del.IsReplace() {
		t.Error("delete misclassified")
	}

	replace := NewOperation(Range{Start: 5, End: 10}, "hello", "world")
	if !replace.IsReplace() || replace.IsInsert() || replace.IsDelete() {
		t.Error("replace misclassified")
	}

	noop := NewOperation(Range{Start: 5, End: 5}, "", "")
	if !noop.IsNoop() {
		t.Error("noop misclassified")
	}
}

func TestOperationBytesDelta(t *testing.T) {
	tests := []struct {
		name     string
		op       *Operation
		expected int
	}{
		{"insert", NewInsertOperation(0, "hello"), 5},
		{"delete", NewDeleteOperation(Range{Start: 0, End: 5}, "hello"), -5},
		{"replace longer", NewOperation(Range{Start: 0, End: 3}, "abc", "hello"), 2},
		{"replace shorter", NewOperation(Range{Start: 0, End: 5}, "hello", "hi"), -3},
		{"replace same", NewOperation(Range{Start: 0, End: 5}, "hello", "world"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.BytesDelta(); got != tt.expected {
				t.Errorf("BytesDelta() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestOperationNewRange(t *testing.T) {
	op := NewOperation(Range{Start: 5, End: 10}, "hello", "hi")
	nr := op.NewRange()
	if nr.Start != 5 || nr.End != 7 {
		t.Errorf("expected new range [5:7), got %v", nr)
	}
}

func TestOperationInvert(t *testing.T) {
	op := NewOperation(Range{Start: 5, End: 10}, "hello", "hi")
	inv := op.Invert()

	if inv.Range.Start != 5 || inv.Range.End != 7 {
		t.Errorf("inverted range should be [5:7), got %v", inv.Range)
	}
	if inv.OldText != "hi" || inv.NewText != "hello" {
		t.Error("inverted text wrong")
	}
}

// Transaction tests

func TestTransactionRecordDropsNoop(t *testing.T) {
	txn := NewTransaction("Test", nil)
	txn.Record(NewOperation(Range{Start: 3, End: 3}, "", ""))

	if !txn.IsEmpty() {
		t.Error("no-op operations should not be journaled")
	}
}

func TestTransactionApplyRevert(t *testing.T) {
	// Shape of a line-wise cut of the first and last lines: two deletes
	// journaled in apply order (last block first).
	buf := buffer.NewBufferFromString("line 1\nline 2\nline 3\n")

	txn := NewTransaction("Cut Lines", []Selection{cursor.NewCursorSelection(0)})

	txn.Record(NewDeleteOperation(Range{Start: 14, End: 21}, "line 3\n"))
	if err := buf.Delete(14, 21); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	txn.Record(NewDeleteOperation(Range{Start: 0, End: 7}, "line 1\n"))
	if err := buf.Delete(0, 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if buf.Text() != "line 2\n" {
		t.Fatalf("expected 'line 2\\n', got %q", buf.Text())
	}

	if err := txn.Revert(buf); err != nil {
		t.Fatalf("revert failed: %v", err)
	}
	if buf.Text() != "line 1\nline 2\nline 3\n" {
		t.Errorf("revert should restore original text, got %q", buf.Text())
	}

	if err := txn.Apply(buf); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if buf.Text() != "line 2\n" {
		t.Errorf("apply should redo the cut, got %q", buf.Text())
	}
}

func TestTransactionDescription(t *testing.T) {
	named := NewTransaction("Paste Lines", nil)
	if named.Description() != "Paste Lines" {
		t.Errorf("expected name, got %q", named.Description())
	}

	anon := NewTransaction("", nil)
	anon.Record(NewInsertOperation(0, "hello"))
	if anon.Description() != "Insert 5 bytes" {
		t.Errorf("unexpected description %q", anon.Description())
	}
}

// History tests

func TestHistoryUndoRedo(t *testing.T) {
	buf := buffer.NewBufferFromString("hello world")
	h := NewHistory(100)

	h.Begin("Replace Word", []Selection{cursor.NewCursorSelection(0)})
	h.Record(NewOperation(Range{Start: 0, End: 5}, "hello", "goodbye"))
	if _, err := buf.Replace(0, 5, "goodbye"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	h.Commit([]Selection{cursor.NewCursorSelection(7)})

	if !h.CanUndo() {
		t.Fatal("should be able to undo")
	}

	sels, err := h.Undo(buf)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if buf.Text() != "hello world" {
		t.Errorf("undo should restore text, got %q", buf.Text())
	}
	if len(sels) != 1 || sels[0].Head != 0 {
		t.Errorf("undo should return prior selections, got %v", sels)
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}

	sels, err = h.Redo(buf)
	if err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if buf.Text() != "goodbye world" {
		t.Errorf("redo should reapply edit, got %q", buf.Text())
	}
	if len(sels) != 1 || sels[0].Head != 7 {
		t.Errorf("redo should return after selections, got %v", sels)
	}
}

func TestHistoryUndoEmpty(t *testing.T) {
	buf := buffer.NewBufferFromString("text")
	h := NewHistory(100)

	if _, err := h.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if _, err := h.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestHistoryUndoDuringTransaction(t *testing.T) {
	buf := buffer.NewBufferFromString("text")
	h := NewHistory(100)

	h.Begin("Open", nil)
	if _, err := h.Undo(buf); !errors.Is(err, ErrTransactionOpen) {
		t.Errorf("expected ErrTransactionOpen, got %v", err)
	}
	h.Commit(nil)
}

func TestHistoryEmptyTransactionDiscarded(t *testing.T) {
	h := NewHistory(100)

	h.Begin("Nothing", nil)
	h.Commit(nil)

	if h.CanUndo() {
		t.Error("empty transaction should not create an undo step")
	}
}

func TestHistoryRecordOutsideTransaction(t *testing.T) {
	buf := buffer.NewBufferFromString("ab")
	h := NewHistory(100)

	h.Record(NewInsertOperation(2, "c"))
	if _, err := buf.Insert(2, "c"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if h.UndoCount() != 1 {
		t.Fatalf("expected 1 undo step, got %d", h.UndoCount())
	}

	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if buf.Text() != "ab" {
		t.Errorf("expected 'ab', got %q", buf.Text())
	}
}

func TestHistoryNestedBeginJoins(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	h := NewHistory(100)

	h.Begin("Outer", nil)
	h.Record(NewInsertOperation(0, "a"))
	if _, err := buf.Insert(0, "a"); err != nil {
		t.Fatal(err)
	}

	h.Begin("Inner", nil) // Ignored; edits join the outer transaction
	h.Record(NewInsertOperation(1, "b"))
	if _, err := buf.Insert(1, "b"); err != nil {
		t.Fatal(err)
	}
	h.Commit(nil)

	if h.UndoCount() != 1 {
		t.Fatalf("nested begin should join outer transaction, got %d steps", h.UndoCount())
	}

	if _, err := h.Undo(buf); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if buf.Text() != "" {
		t.Errorf("undo should remove both inserts, got %q", buf.Text())
	}
}

func TestHistoryRollback(t *testing.T) {
	buf := buffer.NewBufferFromString("keep")
	h := NewHistory(100)

	h.Begin("Doomed", nil)
	h.Record(NewInsertOperation(4, "!!!"))
	if _, err := buf.Insert(4, "!!!"); err != nil {
		t.Fatal(err)
	}

	if err := h.Rollback(buf); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}
	if buf.Text() != "keep" {
		t.Errorf("rollback should restore buffer, got %q", buf.Text())
	}
	if h.CanUndo() {
		t.Error("rolled-back transaction should not be undoable")
	}
	if h.InTransaction() {
		t.Error("rollback should close the transaction")
	}
}

func TestHistoryCommitClearsRedo(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	h := NewHistory(100)

	h.Begin("First", nil)
	h.Record(NewInsertOperation(0, "a"))
	if _, err := buf.Insert(0, "a"); err != nil {
		t.Fatal(err)
	}
	h.Commit(nil)

	if _, err := h.Undo(buf); err != nil {
		t.Fatal(err)
	}
	if !h.CanRedo() {
		t.Fatal("should have redo after undo")
	}

	h.Begin("Second", nil)
	h.Record(NewInsertOperation(0, "b"))
	if _, err := buf.Insert(0, "b"); err != nil {
		t.Fatal(err)
	}
	h.Commit(nil)

	if h.CanRedo() {
		t.Error("new commit should clear the redo stack")
	}
}

func TestHistoryMaxEntries(t *testing.T) {
	h := NewHistory(2)

	for i := 0; i < 5; i++ {
		h.Record(NewInsertOperation(ByteOffset(i), "x"))
	}

	if h.UndoCount() != 2 {
		t.Errorf("expected 2 entries after cap, got %d", h.UndoCount())
	}
}

func TestHistoryPeek(t *testing.T) {
	h := NewHistory(100)

	if _, ok := h.PeekUndo(); ok {
		t.Error("empty history should have nothing to peek")
	}

	h.Begin("Duplicate Lines", nil)
	h.Record(NewInsertOperation(0, "line 1\n"))
	h.Commit(nil)

	info, ok := h.PeekUndo()
	if !ok {
		t.Fatal("expected peek to succeed")
	}
	if info.Description != "Duplicate Lines" {
		t.Errorf("unexpected description %q", info.Description)
	}
	if info.Edits != 1 || info.BytesDelta != 7 {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(100)
	h.Record(NewInsertOperation(0, "x"))

	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}
