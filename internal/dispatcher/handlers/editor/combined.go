package editor

import (
	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/input"
)

// CombinedHandler bundles all editor handlers into one. Registering it
// covers the full editor namespace in a single call.
type CombinedHandler struct {
	handlers []handler.NamespaceHandler
}

// NewCombinedHandler creates a combined handler with builtin native
// clipboard operations.
func NewCombinedHandler() *CombinedHandler {
	return NewCombinedHandlerWithNative(nil)
}

// NewCombinedHandlerWithNative creates a combined handler that delegates
// native clipboard operations to the given implementation. A nil native
// falls back to the builtin one.
func NewCombinedHandlerWithNative(native Native) *CombinedHandler {
	return &CombinedHandler{
		handlers: []handler.NamespaceHandler{
			NewClipboardHandlerWithNative(native),
			NewInsertHandler(),
			NewMotionHandler(),
			NewHistoryHandler(),
		},
	}
}

// Namespace returns the editor namespace.
func (h *CombinedHandler) Namespace() string {
	return "editor"
}

// CanHandle returns true if any sub-handler can process the action.
func (h *CombinedHandler) CanHandle(actionName string) bool {
	for _, sub := range h.handlers {
		if sub.CanHandle(actionName) {
			return true
		}
	}
	return false
}

// HandleAction routes the action to the first sub-handler that accepts
// it.
func (h *CombinedHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	for _, sub := range h.handlers {
		if sub.CanHandle(action.Name) {
			return sub.HandleAction(action, ctx)
		}
	}
	return handler.Errorf("unknown editor action: %s", action.Name)
}
