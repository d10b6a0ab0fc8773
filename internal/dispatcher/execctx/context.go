// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/lineclip/lineclip/internal/engine"
)

// EngineInterface abstracts the text engine for handlers.
type EngineInterface interface {
	// Read operations
	Text() string
	TextRange(start, end engine.ByteOffset) string
	Len() engine.ByteOffset
	IsEmpty() bool
	LineCount() uint32
	LineText(line uint32) string
	LineLen(line uint32) int

	// Line operations
	LineStart(line uint32) engine.ByteOffset
	LineEnd(line uint32) engine.ByteOffset
	LineSpan(line uint32) engine.Range
	LineAt(offset engine.ByteOffset) uint32

	// Position conversion
	OffsetToPoint(offset engine.ByteOffset) engine.Point
	PointToOffset(point engine.Point) engine.ByteOffset

	// Direct edits; each forms its own undo step
	Insert(offset engine.ByteOffset, text string) (engine.ByteOffset, error)
	Delete(start, end engine.ByteOffset) error
	Replace(start, end engine.ByteOffset, text string) (engine.ByteOffset, error)

	// Transaction runs fn as a single undo step.
	Transaction(name string, fn func(tx *engine.Tx) error) error

	// Versioning
	RevisionID() engine.RevisionID
}

// CursorsInterface abstracts cursor and selection state for handlers.
type CursorsInterface interface {
	// Bulk access
	Selections() []engine.Selection
	SetSelections(sels []engine.Selection)

	// Primary cursor
	PrimarySelection() engine.Selection
	SetPrimarySelection(sel engine.Selection)
	PrimaryCursor() engine.ByteOffset
	SetPrimaryCursor(offset engine.ByteOffset)

	// Multi-cursor
	AddSelection(sel engine.Selection)
	AddCursor(offset engine.ByteOffset)
	CursorCount() int
	HasMultipleCursors() bool
	ClearSecondary()

	// Selection state
	HasSelection() bool
	CollapseSelections()
}

// HistoryInterface abstracts undo/redo for handlers.
type HistoryInterface interface {
	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
	UndoCount() int
	RedoCount() int
}

// ClipboardInterface abstracts clipboard access for handlers.
type ClipboardInterface interface {
	Get() (string, error)
	Set(text string) error
}

// ExecutionContext provides context for action execution.
// It carries the editor capabilities handlers are allowed to touch;
// handlers never reach for globals.
type ExecutionContext struct {
	// Engine provides access to the text buffer.
	Engine EngineInterface

	// Cursors provides access to cursor/selection state.
	Cursors CursorsInterface

	// History provides undo/redo.
	History HistoryInterface

	// Clipboard provides clipboard access.
	Clipboard ClipboardInterface

	// Buffer metadata
	FilePath string
	ReadOnly bool

	// Count is the repeat count (1 if not specified).
	Count int

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Count: 1,
		Data:  make(map[string]interface{}),
	}
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursors returns the context with cursors set.
func (ctx *ExecutionContext) WithCursors(cursors CursorsInterface) *ExecutionContext {
	ctx.Cursors = cursors
	return ctx
}

// WithHistory returns the context with history set.
func (ctx *ExecutionContext) WithHistory(history HistoryInterface) *ExecutionContext {
	ctx.History = history
	return ctx
}

// WithClipboard returns the context with the clipboard set.
func (ctx *ExecutionContext) WithClipboard(clip ClipboardInterface) *ExecutionContext {
	ctx.Clipboard = clip
	return ctx
}

// WithFilePath returns the context with the file path set.
func (ctx *ExecutionContext) WithFilePath(path string) *ExecutionContext {
	ctx.FilePath = path
	return ctx
}

// WithReadOnly returns the context with the read-only flag set.
func (ctx *ExecutionContext) WithReadOnly(readOnly bool) *ExecutionContext {
	ctx.ReadOnly = readOnly
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// HasSelection returns true if there is an active selection.
func (ctx *ExecutionContext) HasSelection() bool {
	if ctx.Cursors != nil {
		return ctx.Cursors.HasSelection()
	}
	return false
}

// IsReadOnly returns true if the buffer is read-only.
func (ctx *ExecutionContext) IsReadOnly() bool {
	return ctx.ReadOnly
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// GetDataString retrieves a string value from context data.
func (ctx *ExecutionContext) GetDataString(key string) string {
	if v, ok := ctx.GetData(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

// ValidateForEdit checks that the context is valid for editing operations.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	if ctx.ReadOnly {
		return ErrReadOnly
	}
	return nil
}

// ValidateForClipboard checks that the context can run clipboard operations.
// Read-only state is not checked here; copy works on read-only buffers.
func (ctx *ExecutionContext) ValidateForClipboard() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	if ctx.Clipboard == nil {
		return ErrMissingClipboard
	}
	return nil
}
