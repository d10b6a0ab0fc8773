package handler_test

import (
	"testing"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/input"
)

func TestHandlerFunc(t *testing.T) {
	called := false
	fn := handler.NewHandlerFunc(func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})

	result := fn.Handle(input.Action{Name: "test"}, execctx.New())

	if !called {
		t.Error("expected handler func to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
}

func TestHandlerFuncNil(t *testing.T) {
	fn := &handler.HandlerFunc{}
	result := fn.Handle(input.Action{Name: "test"}, execctx.New())

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for nil func, got %v", result.Status)
	}
}

func TestHandlerFuncPriority(t *testing.T) {
	fn := handler.NewHandlerFuncWithPriority(func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	}, 10)

	if fn.Priority() != 10 {
		t.Errorf("expected priority 10, got %d", fn.Priority())
	}
	if !fn.CanHandle("anything") {
		t.Error("HandlerFunc should handle any action name")
	}
}

func TestBaseNamespaceHandler(t *testing.T) {
	h := handler.NewBaseNamespaceHandler("editor")
	h.Register("editor.copy", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.SuccessWithMessage("copied")
	})

	if h.Namespace() != "editor" {
		t.Errorf("expected namespace 'editor', got %q", h.Namespace())
	}
	if !h.CanHandle("editor.copy") {
		t.Error("expected CanHandle for registered action")
	}
	if h.CanHandle("editor.paste") {
		t.Error("expected no CanHandle for unregistered action")
	}

	result := h.HandleAction(input.Action{Name: "editor.copy"}, execctx.New())
	if result.Message != "copied" {
		t.Errorf("expected message 'copied', got %q", result.Message)
	}

	result = h.HandleAction(input.Action{Name: "editor.unknown"}, execctx.New())
	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for unknown action, got %v", result.Status)
	}
}

func TestNamespaceAdapter(t *testing.T) {
	h := handler.NewBaseNamespaceHandler("file")
	h.Register("file.save", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})

	adapted := handler.NewNamespaceAdapter(h)

	if !adapted.CanHandle("file.save") {
		t.Error("adapter should forward CanHandle")
	}

	result := adapted.Handle(input.Action{Name: "file.save"}, execctx.New())
	if !result.IsOK() {
		t.Errorf("expected OK, got %v", result.Status)
	}
}

func TestBaseNamespaceHandlerActions(t *testing.T) {
	h := handler.NewBaseNamespaceHandler("editor")
	h.Register("editor.copy", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})
	h.Register("editor.cut", func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})

	if len(h.Actions()) != 2 {
		t.Errorf("expected 2 registered actions, got %d", len(h.Actions()))
	}
}
