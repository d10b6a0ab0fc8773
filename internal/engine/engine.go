package engine

import (
	"io"
	"sync"

	"github.com/lineclip/lineclip/internal/engine/buffer"
	"github.com/lineclip/lineclip/internal/engine/cursor"
	"github.com/lineclip/lineclip/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Point represents a line/column position.
	Point = buffer.Point

	// Range represents a byte range in the buffer.
	Range = buffer.Range

	// Edit represents an edit operation.
	Edit = buffer.Edit

	// EditResult contains information about a completed edit.
	EditResult = buffer.EditResult

	// Selection represents a cursor selection.
	Selection = cursor.Selection

	// LineEnding specifies the line ending style.
	LineEnding = buffer.LineEnding

	// RevisionID uniquely identifies a buffer revision.
	RevisionID = buffer.RevisionID

	// ActionInfo describes an entry in the undo or redo stack.
	ActionInfo = history.TransactionInfo
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
	LineEndingCR   = buffer.LineEndingCR
)

// DetectLineEnding infers the on-disk line ending style of text.
func DetectLineEnding(text string) LineEnding {
	return buffer.DetectLineEnding(text)
}

// Engine is the main facade for the text editor engine.
// It combines buffer management, cursor handling and undo/redo into a
// unified, thread-safe API.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	// Core components
	buf     *buffer.Buffer
	cursors *cursor.CursorSet
	history *history.History

	// Configuration
	tabWidth       int
	lineEnding     buffer.LineEnding
	lineEndingSet  bool
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		tabWidth:       DefaultTabWidth,
		lineEnding:     buffer.LineEndingLF,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	bufOpts := []buffer.Option{buffer.WithTabWidth(e.tabWidth)}
	if e.lineEndingSet {
		bufOpts = append(bufOpts, buffer.WithLineEnding(e.lineEnding))
	}
	if e.initContent != "" {
		e.buf = buffer.NewBufferFromString(e.initContent, bufOpts...)
	} else {
		e.buf = buffer.NewBuffer(bufOpts...)
	}

	e.cursors = cursor.NewCursorSetAt(0)
	e.history = history.NewHistory(e.maxUndoEntries)

	return e
}

// NewFromReader creates an Engine from an io.Reader. The line ending style
// is detected from the content unless set explicitly with an option.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := &Engine{
		tabWidth:       DefaultTabWidth,
		lineEnding:     buffer.LineEndingLF,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	bufOpts := []buffer.Option{buffer.WithTabWidth(e.tabWidth)}
	if e.lineEndingSet {
		bufOpts = append(bufOpts, buffer.WithLineEnding(e.lineEnding))
	}
	var err error
	e.buf, err = buffer.NewBufferFromReader(r, bufOpts...)
	if err != nil {
		return nil, err
	}

	e.cursors = cursor.NewCursorSetAt(0)
	e.history = history.NewHistory(e.maxUndoEntries)

	return e, nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full buffer content with normalized (LF) line endings.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Text()
}

// Encoded returns the buffer content with the configured line ending style
// applied, suitable for writing to disk.
func (e *Engine) Encoded() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Encoded()
}

// TextRange returns text in the given byte range.
func (e *Engine) TextRange(start, end ByteOffset) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.TextRange(start, end)
}

// Len returns the total byte length of the buffer.
func (e *Engine) Len() ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Len()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineCount()
}

// LineText returns the text of a specific line (without newline).
func (e *Engine) LineText(line uint32) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineText(line)
}

// LineLen returns the length of a specific line in bytes (without newline).
func (e *Engine) LineLen(line uint32) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineLen(line)
}

// LineStart returns the byte offset of the start of a line.
func (e *Engine) LineStart(line uint32) ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineStart(line)
}

// LineEnd returns the byte offset of the end of a line (before the newline).
func (e *Engine) LineEnd(line uint32) ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineEnd(line)
}

// LineSpan returns the full span of a line including its terminator.
func (e *Engine) LineSpan(line uint32) Range {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineSpan(line)
}

// LineAt returns the line containing the given offset.
func (e *Engine) LineAt(offset ByteOffset) uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineAt(offset)
}

// IsEmpty returns true if the buffer is empty.
func (e *Engine) IsEmpty() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.IsEmpty()
}

// ============================================================================
// Position Conversion
// ============================================================================

// OffsetToPoint converts a byte offset to line/column.
func (e *Engine) OffsetToPoint(offset ByteOffset) Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.OffsetToPoint(offset)
}

// PointToOffset converts line/column to byte offset, clamping both the
// line and the column to valid values.
func (e *Engine) PointToOffset(point Point) ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.PointToOffset(point)
}

// ============================================================================
// Write Operations
// ============================================================================

// Insert inserts text at the given offset as its own undo step and shifts
// selections behind it. Returns the end position of the inserted text.
// Must not be called from inside a Transaction; use Tx.Insert there.
func (e *Engine) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return 0, ErrReadOnly
	}

	endPos, err := e.insertLocked(offset, text)
	if err != nil {
		return 0, err
	}

	cursor.TransformCursorSet(e.cursors, Edit{Range: Range{Start: offset, End: offset}, NewText: text})
	return endPos, nil
}

func (e *Engine) insertLocked(offset ByteOffset, text string) (ByteOffset, error) {
	endPos, err := e.buf.Insert(offset, text)
	if err != nil {
		return 0, err
	}
	e.history.Record(history.NewInsertOperation(offset, text))
	return endPos, nil
}

// Delete removes text in the given range as its own undo step and shifts
// selections behind it.
// Must not be called from inside a Transaction; use Tx.Delete there.
func (e *Engine) Delete(start, end ByteOffset) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	if _, err := e.deleteLocked(start, end); err != nil {
		return err
	}

	cursor.TransformCursorSet(e.cursors, Edit{Range: Range{Start: start, End: end}})
	return nil
}

func (e *Engine) deleteLocked(start, end ByteOffset) (string, error) {
	oldText := e.buf.TextRange(start, end)
	if err := e.buf.Delete(start, end); err != nil {
		return "", err
	}
	e.history.Record(history.NewDeleteOperation(Range{Start: start, End: end}, oldText))
	return oldText, nil
}

// Replace replaces text in the given range as its own undo step and shifts
// selections behind it. Returns the end position of the replacement text.
// Must not be called from inside a Transaction; use Tx.Replace there.
func (e *Engine) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return 0, ErrReadOnly
	}

	endPos, err := e.replaceLocked(start, end, text)
	if err != nil {
		return 0, err
	}

	cursor.TransformCursorSet(e.cursors, Edit{Range: Range{Start: start, End: end}, NewText: text})
	return endPos, nil
}

func (e *Engine) replaceLocked(start, end ByteOffset, text string) (ByteOffset, error) {
	oldText := e.buf.TextRange(start, end)
	endPos, err := e.buf.Replace(start, end, text)
	if err != nil {
		return 0, err
	}
	e.history.Record(history.NewOperation(Range{Start: start, End: end}, oldText, text))
	return endPos, nil
}

// ApplyEdit applies a single edit operation as its own undo step.
func (e *Engine) ApplyEdit(edit Edit) (EditResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return EditResult{}, ErrReadOnly
	}

	result, err := e.buf.ApplyEdit(edit)
	if err != nil {
		return EditResult{}, err
	}
	e.history.Record(history.NewOperation(edit.Range, result.OldText, edit.NewText))

	cursor.TransformCursorSet(e.cursors, edit)
	return result, nil
}

// ============================================================================
// Undo/Redo Operations
// ============================================================================

// Undo reverts the most recent action and restores the selections that
// were in effect before it.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	sels, err := e.history.Undo(e.buf)
	if err != nil {
		return err
	}
	if len(sels) > 0 {
		e.cursors.SetAll(sels)
	}
	e.cursors.Clamp(e.buf.Len())
	return nil
}

// Redo replays the most recently undone action and restores the selections
// that were in effect after it.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	sels, err := e.history.Redo(e.buf)
	if err != nil {
		return err
	}
	if len(sels) > 0 {
		e.cursors.SetAll(sels)
	}
	e.cursors.Clamp(e.buf.Len())
	return nil
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoCount returns the number of available undo steps.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}

// RedoCount returns the number of available redo steps.
func (e *Engine) RedoCount() int {
	return e.history.RedoCount()
}

// LastAction returns info about the action undo would revert.
func (e *Engine) LastAction() (ActionInfo, bool) {
	return e.history.PeekUndo()
}

// ClearHistory removes all undo/redo history.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// ============================================================================
// Cursor Operations
// ============================================================================

// Cursors returns a copy of the cursor set.
func (e *Engine) Cursors() *cursor.CursorSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Clone()
}

// SetCursors replaces the cursor set.
func (e *Engine) SetCursors(cs *cursor.CursorSet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors = cs.Clone()
	e.cursors.Clamp(e.buf.Len())
}

// Selections returns a copy of all selections in buffer order.
func (e *Engine) Selections() []Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.All()
}

// SetSelections replaces all selections, clamping them to the buffer.
func (e *Engine) SetSelections(sels []Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.SetAll(sels)
	e.cursors.Clamp(e.buf.Len())
}

// PrimaryCursor returns the primary caret offset.
func (e *Engine) PrimaryCursor() ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.PrimaryCursor()
}

// PrimarySelection returns the primary selection.
func (e *Engine) PrimarySelection() Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Primary()
}

// SetPrimaryCursor replaces all selections with a caret at the offset.
func (e *Engine) SetPrimaryCursor(offset ByteOffset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Set(cursor.NewCursorSelection(offset).Clamp(e.buf.Len()))
}

// SetPrimarySelection replaces all selections with the given one.
func (e *Engine) SetPrimarySelection(sel Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Set(sel.Clamp(e.buf.Len()))
}

// CursorCount returns the number of selections.
func (e *Engine) CursorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Count()
}

// HasMultipleCursors returns true if there are multiple selections.
func (e *Engine) HasMultipleCursors() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.IsMulti()
}

// HasSelection returns true if any selection has extent.
func (e *Engine) HasSelection() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.HasSelection()
}

// AddCursor adds a caret at the given offset.
func (e *Engine) AddCursor(offset ByteOffset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Add(cursor.NewCursorSelection(offset).Clamp(e.buf.Len()))
}

// AddSelection adds a selection.
func (e *Engine) AddSelection(sel Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Add(sel.Clamp(e.buf.Len()))
}

// ClearSecondary removes all selections except the primary.
func (e *Engine) ClearSecondary() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Clear()
}

// CollapseSelections collapses every selection to a caret at its head.
func (e *Engine) CollapseSelections() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.CollapseAll()
}

// ClampCursors ensures all selections are within the valid buffer range.
func (e *Engine) ClampCursors() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Clamp(e.buf.Len())
}

// ============================================================================
// Configuration
// ============================================================================

// TabWidth returns the tab width.
func (e *Engine) TabWidth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.TabWidth()
}

// SetTabWidth sets the tab width.
func (e *Engine) SetTabWidth(width int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.SetTabWidth(width)
}

// LineEnding returns the line ending style used when encoding for disk.
func (e *Engine) LineEnding() LineEnding {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineEnding()
}

// SetLineEnding sets the line ending style used when encoding for disk.
func (e *Engine) SetLineEnding(ending LineEnding) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.SetLineEnding(ending)
}

// IsReadOnly returns true if the engine is read-only.
func (e *Engine) IsReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// RevisionID returns the current buffer revision.
func (e *Engine) RevisionID() RevisionID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.RevisionID()
}

// Snapshot returns a read-only snapshot of the current buffer state.
func (e *Engine) Snapshot() *buffer.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Snapshot()
}

// ============================================================================
// Clear and Reset
// ============================================================================

// Clear removes all content from the buffer and resets history.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	if e.buf.Len() > 0 {
		if err := e.buf.Delete(0, e.buf.Len()); err != nil {
			return err
		}
	}

	e.cursors = cursor.NewCursorSetAt(0)
	e.history.Clear()
	return nil
}

// SetContent replaces all content and resets history and selections.
func (e *Engine) SetContent(content string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	if _, err := e.buf.Replace(0, e.buf.Len(), content); err != nil {
		return err
	}

	e.cursors = cursor.NewCursorSetAt(0)
	e.history.Clear()
	return nil
}
