package engine

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/lineclip/lineclip/internal/engine/cursor"
)

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	e := New()
	if e.Len() != 0 {
		t.Errorf("expected empty engine, got len %d", e.Len())
	}
	if e.Text() != "" {
		t.Errorf("expected empty text, got %q", e.Text())
	}
	if e.PrimaryCursor() != 0 {
		t.Errorf("expected caret at 0, got %d", e.PrimaryCursor())
	}
}

func TestNewWithContent(t *testing.T) {
	content := "line 1\nline 2\n"
	e := New(WithContent(content))

	if e.Text() != content {
		t.Errorf("expected %q, got %q", content, e.Text())
	}
	if e.Len() != ByteOffset(len(content)) {
		t.Errorf("expected len %d, got %d", len(content), e.Len())
	}
	if e.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", e.LineCount())
	}
}

func TestNewFromReader(t *testing.T) {
	content := "Hello, World!"
	r := strings.NewReader(content)

	e, err := NewFromReader(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Text() != content {
		t.Errorf("expected %q, got %q", content, e.Text())
	}
}

func TestNewFromReaderDetectsCRLF(t *testing.T) {
	r := strings.NewReader("line 1\r\nline 2\r\n")

	e, err := NewFromReader(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Text() != "line 1\nline 2\n" {
		t.Errorf("content should be normalized to LF, got %q", e.Text())
	}
	if e.LineEnding() != LineEndingCRLF {
		t.Errorf("expected CRLF detected, got %v", e.LineEnding())
	}
	if e.Encoded() != "line 1\r\nline 2\r\n" {
		t.Errorf("Encoded should restore CRLF, got %q", e.Encoded())
	}
}

func TestWithContentDetectsCRLF(t *testing.T) {
	e := New(WithContent("a\r\nb\r\n"), WithTabWidth(8))

	if e.LineEnding() != LineEndingCRLF {
		t.Errorf("expected CRLF detected, got %v", e.LineEnding())
	}
	if e.Text() != "a\nb\n" {
		t.Errorf("content should be normalized to LF, got %q", e.Text())
	}
}

func TestWithLineEndingSuppressesDetection(t *testing.T) {
	e := New(WithContent("a\r\nb\r\n"), WithLineEnding(LineEndingLF))

	if e.LineEnding() != LineEndingLF {
		t.Errorf("expected explicit LF kept, got %v", e.LineEnding())
	}
}

func TestInsert(t *testing.T) {
	e := New()

	end, err := e.Insert(0, "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != 5 {
		t.Errorf("expected end position 5, got %d", end)
	}
	if e.Text() != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", e.Text())
	}
}

func TestInsertOutOfRange(t *testing.T) {
	e := New(WithContent("Hello"))

	if _, err := e.Insert(100, "text"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestInsertShiftsCursor(t *testing.T) {
	e := New(WithContent("world"))
	e.SetPrimaryCursor(5)

	if _, err := e.Insert(0, "hello "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.PrimaryCursor() != 11 {
		t.Errorf("caret should shift with insert, got %d", e.PrimaryCursor())
	}
}

func TestDelete(t *testing.T) {
	e := New(WithContent("Hello, World!"))

	if err := e.Delete(5, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "HelloWorld!" {
		t.Errorf("expected %q, got %q", "HelloWorld!", e.Text())
	}
}

func TestReplace(t *testing.T) {
	e := New(WithContent("Hello, World!"))

	end, err := e.Replace(7, 12, "Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != 9 {
		t.Errorf("expected end position 9, got %d", end)
	}
	if e.Text() != "Hello, Go!" {
		t.Errorf("expected %q, got %q", "Hello, Go!", e.Text())
	}
}

func TestApplyEdit(t *testing.T) {
	e := New(WithContent("abc"))

	result, err := e.ApplyEdit(Edit{Range: Range{Start: 1, End: 2}, NewText: "XY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OldText != "b" {
		t.Errorf("expected old text 'b', got %q", result.OldText)
	}
	if e.Text() != "aXYc" {
		t.Errorf("expected 'aXYc', got %q", e.Text())
	}
}

// ============================================================================
// Line Queries
// ============================================================================

func TestLineQueries(t *testing.T) {
	e := New(WithContent("line 1\nline 22\nline 3"))

	if e.LineText(1) != "line 22" {
		t.Errorf("expected 'line 22', got %q", e.LineText(1))
	}
	if e.LineLen(1) != 7 {
		t.Errorf("expected line len 7, got %d", e.LineLen(1))
	}
	if e.LineStart(1) != 7 {
		t.Errorf("expected line start 7, got %d", e.LineStart(1))
	}
	if e.LineEnd(1) != 14 {
		t.Errorf("expected line end 14, got %d", e.LineEnd(1))
	}

	span := e.LineSpan(1)
	if span.Start != 7 || span.End != 15 {
		t.Errorf("expected span [7:15), got %v", span)
	}

	// Final line has no terminator
	span = e.LineSpan(2)
	if span.Start != 15 || span.End != 21 {
		t.Errorf("expected span [15:21), got %v", span)
	}

	if e.LineAt(8) != 1 {
		t.Errorf("expected line 1 at offset 8, got %d", e.LineAt(8))
	}
}

func TestPositionConversion(t *testing.T) {
	e := New(WithContent("line 1\nline 2"))

	p := e.OffsetToPoint(9)
	if p.Line != 1 || p.Column != 2 {
		t.Errorf("expected (1,2), got %v", p)
	}

	off := e.PointToOffset(Point{Line: 1, Column: 2})
	if off != 9 {
		t.Errorf("expected offset 9, got %d", off)
	}

	// Column past end of line clamps to line end
	off = e.PointToOffset(Point{Line: 0, Column: 99})
	if off != 6 {
		t.Errorf("expected clamped offset 6, got %d", off)
	}
}

// ============================================================================
// Undo/Redo
// ============================================================================

func TestUndoRedo(t *testing.T) {
	e := New()

	if _, err := e.Insert(0, "Hello"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Insert(5, " World"); err != nil {
		t.Fatal(err)
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if e.Text() != "Hello" {
		t.Errorf("expected 'Hello', got %q", e.Text())
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if e.Text() != "" {
		t.Errorf("expected empty, got %q", e.Text())
	}

	if err := e.Redo(); err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if e.Text() != "Hello" {
		t.Errorf("expected 'Hello', got %q", e.Text())
	}
}

func TestUndoEmpty(t *testing.T) {
	e := New()

	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

// ============================================================================
// Transactions
// ============================================================================

func TestTransactionSingleUndoStep(t *testing.T) {
	e := New(WithContent("line 1\nline 2\nline 3\n"))

	err := e.Transaction("Cut Lines", func(tx *Tx) error {
		if _, err := tx.Delete(14, 21); err != nil {
			return err
		}
		if _, err := tx.Delete(0, 7); err != nil {
			return err
		}
		tx.SetSelections([]Selection{cursor.NewCursorSelection(0)})
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	if e.Text() != "line 2\n" {
		t.Errorf("expected 'line 2\\n', got %q", e.Text())
	}
	if e.UndoCount() != 1 {
		t.Fatalf("transaction should be one undo step, got %d", e.UndoCount())
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if e.Text() != "line 1\nline 2\nline 3\n" {
		t.Errorf("undo should restore both lines, got %q", e.Text())
	}
}

func TestTransactionRestoresSelections(t *testing.T) {
	e := New(WithContent("hello"))
	e.SetPrimaryCursor(3)

	err := e.Transaction("Edit", func(tx *Tx) error {
		if _, err := tx.Insert(5, "!"); err != nil {
			return err
		}
		tx.SetSelections([]Selection{cursor.NewCursorSelection(6)})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.PrimaryCursor() != 6 {
		t.Errorf("expected caret at 6, got %d", e.PrimaryCursor())
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if e.PrimaryCursor() != 3 {
		t.Errorf("undo should restore caret to 3, got %d", e.PrimaryCursor())
	}

	if err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	if e.PrimaryCursor() != 6 {
		t.Errorf("redo should restore caret to 6, got %d", e.PrimaryCursor())
	}
}

func TestTransactionRollback(t *testing.T) {
	e := New(WithContent("keep"))
	e.SetPrimaryCursor(2)

	wantErr := errors.New("boom")
	err := e.Transaction("Doomed", func(tx *Tx) error {
		if _, err := tx.Insert(4, "!!!"); err != nil {
			return err
		}
		tx.SetSelections([]Selection{cursor.NewCursorSelection(7)})
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}

	if e.Text() != "keep" {
		t.Errorf("rollback should restore text, got %q", e.Text())
	}
	if e.PrimaryCursor() != 2 {
		t.Errorf("rollback should restore caret, got %d", e.PrimaryCursor())
	}
	if e.CanUndo() {
		t.Error("failed transaction should leave no undo step")
	}
}

func TestTransactionEmptyDiscarded(t *testing.T) {
	e := New(WithContent("text"))

	err := e.Transaction("Nothing", func(tx *Tx) error {
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.CanUndo() {
		t.Error("empty transaction should not create an undo step")
	}
}

// ============================================================================
// Cursors
// ============================================================================

func TestSelections(t *testing.T) {
	e := New(WithContent("line 1\nline 2"))

	e.SetSelections([]Selection{
		cursor.NewCursorSelection(1),
		cursor.NewCursorSelection(8),
	})

	sels := e.Selections()
	if len(sels) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(sels))
	}
	if sels[0].Head != 1 || sels[1].Head != 8 {
		t.Errorf("unexpected selections %v", sels)
	}
	if !e.HasMultipleCursors() {
		t.Error("expected multiple cursors")
	}
}

func TestSetSelectionsClamps(t *testing.T) {
	e := New(WithContent("short"))

	e.SetSelections([]Selection{cursor.NewCursorSelection(100)})
	if e.PrimaryCursor() != 5 {
		t.Errorf("selection should clamp to buffer end, got %d", e.PrimaryCursor())
	}
}

func TestAddCursor(t *testing.T) {
	e := New(WithContent("line 1\nline 2"))
	e.SetPrimaryCursor(1)
	e.AddCursor(8)

	if e.CursorCount() != 2 {
		t.Errorf("expected 2 cursors, got %d", e.CursorCount())
	}

	e.ClearSecondary()
	if e.CursorCount() != 1 {
		t.Errorf("expected 1 cursor after clear, got %d", e.CursorCount())
	}
}

func TestHasSelection(t *testing.T) {
	e := New(WithContent("hello"))
	if e.HasSelection() {
		t.Error("caret should not report a selection")
	}

	e.SetPrimarySelection(cursor.NewSelection(0, 3))
	if !e.HasSelection() {
		t.Error("expected a selection")
	}

	e.CollapseSelections()
	if e.HasSelection() {
		t.Error("collapsed selection should be a caret")
	}
}

// ============================================================================
// Read-Only and Reset
// ============================================================================

func TestReadOnly(t *testing.T) {
	e := New(WithContent("locked"), WithReadOnly())

	if !e.IsReadOnly() {
		t.Error("expected IsReadOnly true")
	}
	if New().IsReadOnly() {
		t.Error("expected IsReadOnly false by default")
	}
	if _, err := e.Insert(0, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if err := e.Delete(0, 1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if err := e.Transaction("Edit", func(tx *Tx) error { return nil }); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestSetContent(t *testing.T) {
	e := New(WithContent("old"))
	if _, err := e.Insert(3, "!"); err != nil {
		t.Fatal(err)
	}

	if err := e.SetContent("new content"); err != nil {
		t.Fatal(err)
	}

	if e.Text() != "new content" {
		t.Errorf("expected 'new content', got %q", e.Text())
	}
	if e.CanUndo() {
		t.Error("SetContent should reset history")
	}
	if e.PrimaryCursor() != 0 {
		t.Error("SetContent should reset cursors")
	}
}

func TestClear(t *testing.T) {
	e := New(WithContent("content"))

	if err := e.Clear(); err != nil {
		t.Fatal(err)
	}
	if e.Len() != 0 {
		t.Errorf("expected empty buffer, got len %d", e.Len())
	}
}

// ============================================================================
// Concurrency
// ============================================================================

func TestConcurrentReads(t *testing.T) {
	e := New(WithContent(strings.Repeat("line\n", 100)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = e.Text()
				_ = e.LineCount()
				_ = e.Selections()
				_ = e.IsReadOnly()
			}
		}()
	}
	wg.Wait()
}

func TestConcurrentReadWrite(t *testing.T) {
	e := New()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _ = e.Insert(0, "x")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = e.Len()
		}
	}()
	wg.Wait()

	if e.Len() != 50 {
		t.Errorf("expected 50 bytes, got %d", e.Len())
	}
}
