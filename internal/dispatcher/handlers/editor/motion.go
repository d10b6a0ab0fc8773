package editor

import (
	"unicode/utf8"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
)

// Action names for cursor movement and selection.
const (
	ActionMoveLeft        = "editor.moveLeft"
	ActionMoveRight       = "editor.moveRight"
	ActionMoveUp          = "editor.moveUp"
	ActionMoveDown        = "editor.moveDown"
	ActionMoveLineStart   = "editor.moveLineStart"
	ActionMoveLineEnd     = "editor.moveLineEnd"
	ActionMoveBufferStart = "editor.moveBufferStart"
	ActionMoveBufferEnd   = "editor.moveBufferEnd"
	ActionSelectLeft      = "editor.selectLeft"
	ActionSelectRight     = "editor.selectRight"
	ActionSelectUp        = "editor.selectUp"
	ActionSelectDown      = "editor.selectDown"
	ActionSelectLineStart = "editor.selectLineStart"
	ActionSelectLineEnd   = "editor.selectLineEnd"
	ActionSelectAll       = "editor.selectAll"
	ActionAddCursorBelow  = "editor.addCursorBelow"
)

// motionKind identifies a movement direction or target.
type motionKind int

const (
	motionLeft motionKind = iota
	motionRight
	motionUp
	motionDown
	motionLineStart
	motionLineEnd
	motionBufferStart
	motionBufferEnd
)

// MotionHandler handles cursor movement and selection extension. Motion
// works on read-only buffers; it never touches text.
type MotionHandler struct{}

// NewMotionHandler creates a new motion handler.
func NewMotionHandler() *MotionHandler {
	return &MotionHandler{}
}

// Namespace returns the editor namespace.
func (h *MotionHandler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *MotionHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown,
		ActionMoveLineStart, ActionMoveLineEnd, ActionMoveBufferStart, ActionMoveBufferEnd,
		ActionSelectLeft, ActionSelectRight, ActionSelectUp, ActionSelectDown,
		ActionSelectLineStart, ActionSelectLineEnd, ActionSelectAll, ActionAddCursorBelow:
		return true
	}
	return false
}

// HandleAction processes a motion action.
func (h *MotionHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if ctx.Cursors == nil {
		return handler.Error(execctx.ErrMissingCursors)
	}

	switch action.Name {
	case ActionMoveLeft:
		return h.move(ctx, motionLeft)
	case ActionMoveRight:
		return h.move(ctx, motionRight)
	case ActionMoveUp:
		return h.move(ctx, motionUp)
	case ActionMoveDown:
		return h.move(ctx, motionDown)
	case ActionMoveLineStart:
		return h.move(ctx, motionLineStart)
	case ActionMoveLineEnd:
		return h.move(ctx, motionLineEnd)
	case ActionMoveBufferStart:
		return h.move(ctx, motionBufferStart)
	case ActionMoveBufferEnd:
		return h.move(ctx, motionBufferEnd)
	case ActionSelectLeft:
		return h.extend(ctx, motionLeft)
	case ActionSelectRight:
		return h.extend(ctx, motionRight)
	case ActionSelectUp:
		return h.extend(ctx, motionUp)
	case ActionSelectDown:
		return h.extend(ctx, motionDown)
	case ActionSelectLineStart:
		return h.extend(ctx, motionLineStart)
	case ActionSelectLineEnd:
		return h.extend(ctx, motionLineEnd)
	case ActionSelectAll:
		return h.selectAll(ctx)
	case ActionAddCursorBelow:
		return h.addCursorBelow(ctx)
	}
	return handler.Errorf("unknown motion action: %s", action.Name)
}

// move collapses selections and moves every caret. A selection collapses
// to its edge for horizontal moves instead of moving past it.
func (h *MotionHandler) move(ctx *execctx.ExecutionContext, kind motionKind) handler.Result {
	sels := ctx.Cursors.Selections()
	count := ctx.GetCount()
	for c := 0; c < count; c++ {
		out := make([]engine.Selection, len(sels))
		for i, sel := range sels {
			out[i] = caretAt(moveTargetOffset(ctx.Engine, sel, kind))
		}
		sels = out
	}
	ctx.Cursors.SetSelections(sels)
	return handler.Success()
}

// extend moves every selection head, keeping the anchor in place.
func (h *MotionHandler) extend(ctx *execctx.ExecutionContext, kind motionKind) handler.Result {
	sels := ctx.Cursors.Selections()
	count := ctx.GetCount()
	for c := 0; c < count; c++ {
		out := make([]engine.Selection, len(sels))
		for i, sel := range sels {
			head := motionFromOffset(ctx.Engine, sel.Head, kind)
			out[i] = sel.Extend(head)
		}
		sels = out
	}
	ctx.Cursors.SetSelections(sels)
	return handler.Success()
}

// selectAll replaces all selections with one covering the buffer.
func (h *MotionHandler) selectAll(ctx *execctx.ExecutionContext) handler.Result {
	ctx.Cursors.SetSelections([]engine.Selection{
		{Anchor: 0, Head: ctx.Engine.Len()},
	})
	return handler.Success()
}

// addCursorBelow adds a caret one line below the last selection, same
// column.
func (h *MotionHandler) addCursorBelow(ctx *execctx.ExecutionContext) handler.Result {
	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no cursor")
	}
	last := sels[len(sels)-1]
	pt := ctx.Engine.OffsetToPoint(last.Head)
	if pt.Line+1 >= ctx.Engine.LineCount() {
		return handler.NoOpWithMessage("no line below")
	}
	offset := ctx.Engine.PointToOffset(engine.Point{Line: pt.Line + 1, Column: pt.Column})
	ctx.Cursors.AddCursor(offset)
	return handler.Success()
}

// moveTargetOffset picks where a collapsing move puts the caret. Left
// and right land on the selection edge when text is selected.
func moveTargetOffset(eng execctx.EngineInterface, sel engine.Selection, kind motionKind) engine.ByteOffset {
	if !sel.IsEmpty() {
		switch kind {
		case motionLeft:
			return sel.Start()
		case motionRight:
			return sel.End()
		}
	}
	return motionFromOffset(eng, sel.Head, kind)
}

// motionFromOffset computes a single movement step from an offset.
func motionFromOffset(eng execctx.EngineInterface, offset engine.ByteOffset, kind motionKind) engine.ByteOffset {
	switch kind {
	case motionLeft:
		return prevRuneStart(eng, offset)
	case motionRight:
		return nextRuneEnd(eng, offset)
	case motionUp:
		return verticalMove(eng, offset, -1)
	case motionDown:
		return verticalMove(eng, offset, 1)
	case motionLineStart:
		return eng.LineStart(eng.LineAt(offset))
	case motionLineEnd:
		return eng.LineEnd(eng.LineAt(offset))
	case motionBufferStart:
		return 0
	case motionBufferEnd:
		return eng.Len()
	}
	return offset
}

// prevRuneStart returns the offset of the rune before the given offset.
func prevRuneStart(eng execctx.EngineInterface, offset engine.ByteOffset) engine.ByteOffset {
	if offset <= 0 {
		return 0
	}
	start := offset - utf8.UTFMax
	if start < 0 {
		start = 0
	}
	_, size := utf8.DecodeLastRuneInString(eng.TextRange(start, offset))
	if size == 0 {
		return offset - 1
	}
	return offset - engine.ByteOffset(size)
}

// nextRuneEnd returns the offset just past the rune at the given offset.
func nextRuneEnd(eng execctx.EngineInterface, offset engine.ByteOffset) engine.ByteOffset {
	max := eng.Len()
	if offset >= max {
		return max
	}
	end := offset + utf8.UTFMax
	if end > max {
		end = max
	}
	_, size := utf8.DecodeRuneInString(eng.TextRange(offset, end))
	if size == 0 {
		return offset + 1
	}
	return offset + engine.ByteOffset(size)
}

// verticalMove shifts an offset one line up or down, keeping the column
// where the target line allows it. Moving past the first or last line
// pins the caret to the buffer edge.
func verticalMove(eng execctx.EngineInterface, offset engine.ByteOffset, delta int) engine.ByteOffset {
	pt := eng.OffsetToPoint(offset)
	line := int64(pt.Line) + int64(delta)
	if line < 0 {
		return 0
	}
	if line >= int64(eng.LineCount()) {
		return eng.Len()
	}
	return eng.PointToOffset(engine.Point{Line: uint32(line), Column: pt.Column})
}
