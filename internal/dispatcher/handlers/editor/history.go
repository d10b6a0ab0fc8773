package editor

import (
	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/input"
)

// Action names for history operations.
const (
	ActionUndo = "editor.undo"
	ActionRedo = "editor.redo"
)

// HistoryHandler handles undo and redo.
type HistoryHandler struct{}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{}
}

// Namespace returns the editor namespace.
func (h *HistoryHandler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *HistoryHandler) CanHandle(actionName string) bool {
	return actionName == ActionUndo || actionName == ActionRedo
}

// HandleAction processes a history action.
func (h *HistoryHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if ctx.History == nil {
		return handler.Error(execctx.ErrMissingHistory)
	}
	if ctx.IsReadOnly() {
		return handler.Error(execctx.ErrReadOnly)
	}

	switch action.Name {
	case ActionUndo:
		return h.undo(ctx)
	case ActionRedo:
		return h.redo(ctx)
	}
	return handler.Errorf("unknown history action: %s", action.Name)
}

func (h *HistoryHandler) undo(ctx *execctx.ExecutionContext) handler.Result {
	count := ctx.GetCount()
	done := 0
	for i := 0; i < count && ctx.History.CanUndo(); i++ {
		if err := ctx.History.Undo(); err != nil {
			return handler.Error(err)
		}
		done++
	}
	if done == 0 {
		return handler.NoOpWithMessage("nothing to undo")
	}
	return handler.Success().WithRedraw()
}

func (h *HistoryHandler) redo(ctx *execctx.ExecutionContext) handler.Result {
	count := ctx.GetCount()
	done := 0
	for i := 0; i < count && ctx.History.CanRedo(); i++ {
		if err := ctx.History.Redo(); err != nil {
			return handler.Error(err)
		}
		done++
	}
	if done == 0 {
		return handler.NoOpWithMessage("nothing to redo")
	}
	return handler.Success().WithRedraw()
}
