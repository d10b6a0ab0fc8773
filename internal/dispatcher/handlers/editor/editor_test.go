package editor_test

import (
	"errors"
	"testing"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	editorhandler "github.com/lineclip/lineclip/internal/dispatcher/handlers/editor"
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
)

func TestInsertText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sels     []engine.Selection
		text     string
		count    int
		wantText string
		wantSels []engine.Selection
	}{
		{
			name:     "at caret",
			content:  "ab",
			sels:     []engine.Selection{caret(1)},
			text:     "XY",
			wantText: "aXYb",
			wantSels: []engine.Selection{caret(3)},
		},
		{
			name:     "replaces selection",
			content:  "hello world",
			sels:     []engine.Selection{sel(0, 5)},
			text:     "bye",
			wantText: "bye world",
			wantSels: []engine.Selection{caret(3)},
		},
		{
			name:     "at every caret",
			content:  "ab\ncd",
			sels:     []engine.Selection{caret(1), caret(4)},
			text:     "-",
			wantText: "a-b\nc-d",
			wantSels: []engine.Selection{caret(2), caret(6)},
		},
		{
			name:     "repeats with count",
			content:  "",
			sels:     []engine.Selection{caret(0)},
			text:     "ab",
			count:    3,
			wantText: "ababab",
			wantSels: []engine.Selection{caret(6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newClipCtx(t, tt.content)
			ctx.Cursors.SetSelections(tt.sels)
			if tt.count > 0 {
				ctx = ctx.WithCount(tt.count)
			}

			h := editorhandler.NewInsertHandler()
			action := input.NewAction(editorhandler.ActionInsertText).WithText(tt.text)
			res := h.HandleAction(action, ctx)
			if res.IsError() {
				t.Fatalf("insert failed: %v", res.Error)
			}

			if got := ctx.Engine.Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			assertSelections(t, ctx, tt.wantSels...)
		})
	}
}

func TestInsertNewlineAndTab(t *testing.T) {
	ctx, _ := newClipCtx(t, "ab")
	ctx.Cursors.SetSelections([]engine.Selection{caret(1)})
	h := editorhandler.NewInsertHandler()

	h.HandleAction(input.NewAction(editorhandler.ActionInsertNewline), ctx)
	if got := ctx.Engine.Text(); got != "a\nb" {
		t.Errorf("text = %q, want %q", got, "a\nb")
	}
	assertSelections(t, ctx, caret(2))

	h.HandleAction(input.NewAction(editorhandler.ActionInsertTab), ctx)
	if got := ctx.Engine.Text(); got != "a\n\tb" {
		t.Errorf("text = %q, want %q", got, "a\n\tb")
	}
}

func TestInsertIsSingleUndoStep(t *testing.T) {
	ctx, e := newClipCtx(t, "ab\ncd")
	ctx.Cursors.SetSelections([]engine.Selection{caret(1), caret(4)})

	h := editorhandler.NewInsertHandler()
	h.HandleAction(input.NewAction(editorhandler.ActionInsertText).WithText("-"), ctx)

	if got := e.UndoCount(); got != 1 {
		t.Fatalf("UndoCount = %d, want 1", got)
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := e.Text(); got != "ab\ncd" {
		t.Errorf("text after undo = %q", got)
	}
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sels     []engine.Selection
		wantText string
		wantSels []engine.Selection
		wantNoOp bool
	}{
		{
			name:     "deletes previous rune",
			content:  "ab",
			sels:     []engine.Selection{caret(1)},
			wantText: "b",
			wantSels: []engine.Selection{caret(0)},
		},
		{
			name:     "deletes multibyte rune whole",
			content:  "héllo",
			sels:     []engine.Selection{caret(3)},
			wantText: "hllo",
			wantSels: []engine.Selection{caret(1)},
		},
		{
			name:     "removes selection",
			content:  "hello",
			sels:     []engine.Selection{sel(1, 4)},
			wantText: "ho",
			wantSels: []engine.Selection{caret(1)},
		},
		{
			name:     "at buffer start",
			content:  "ab",
			sels:     []engine.Selection{caret(0)},
			wantText: "ab",
			wantSels: []engine.Selection{caret(0)},
			wantNoOp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newClipCtx(t, tt.content)
			ctx.Cursors.SetSelections(tt.sels)

			h := editorhandler.NewInsertHandler()
			res := h.HandleAction(input.NewAction(editorhandler.ActionBackspace), ctx)
			if res.IsError() {
				t.Fatalf("backspace failed: %v", res.Error)
			}
			if tt.wantNoOp && !res.IsNoOp() {
				t.Errorf("status = %v, want NoOp", res.Status)
			}

			if got := ctx.Engine.Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			assertSelections(t, ctx, tt.wantSels...)
		})
	}
}

func TestDeleteForward(t *testing.T) {
	ctx, _ := newClipCtx(t, "ab")
	ctx.Cursors.SetSelections([]engine.Selection{caret(0)})
	h := editorhandler.NewInsertHandler()

	res := h.HandleAction(input.NewAction(editorhandler.ActionDeleteForward), ctx)
	if res.IsError() {
		t.Fatal(res.Error)
	}
	if got := ctx.Engine.Text(); got != "b" {
		t.Errorf("text = %q, want %q", got, "b")
	}
	assertSelections(t, ctx, caret(0))

	ctx.Cursors.SetSelections([]engine.Selection{caret(1)})
	res = h.HandleAction(input.NewAction(editorhandler.ActionDeleteForward), ctx)
	if !res.IsNoOp() {
		t.Errorf("delete at buffer end: status = %v, want NoOp", res.Status)
	}
}

func TestMoveHorizontal(t *testing.T) {
	ctx, _ := newClipCtx(t, "héllo")
	ctx.Cursors.SetSelections([]engine.Selection{caret(1)})
	h := editorhandler.NewMotionHandler()

	h.HandleAction(input.NewAction(editorhandler.ActionMoveRight), ctx)
	assertSelections(t, ctx, caret(3)) // past the two-byte rune

	h.HandleAction(input.NewAction(editorhandler.ActionMoveLeft), ctx)
	assertSelections(t, ctx, caret(1))

	ctx.Cursors.SetSelections([]engine.Selection{caret(0)})
	h.HandleAction(input.NewAction(editorhandler.ActionMoveLeft), ctx)
	assertSelections(t, ctx, caret(0))
}

func TestMoveCollapsesSelection(t *testing.T) {
	ctx, _ := newClipCtx(t, "hello world")
	h := editorhandler.NewMotionHandler()

	ctx.Cursors.SetSelections([]engine.Selection{sel(2, 5)})
	h.HandleAction(input.NewAction(editorhandler.ActionMoveLeft), ctx)
	assertSelections(t, ctx, caret(2))

	ctx.Cursors.SetSelections([]engine.Selection{sel(2, 5)})
	h.HandleAction(input.NewAction(editorhandler.ActionMoveRight), ctx)
	assertSelections(t, ctx, caret(5))
}

func TestMoveVertical(t *testing.T) {
	ctx, _ := newClipCtx(t, "long line 1\nab\nline 3")
	h := editorhandler.NewMotionHandler()

	// Column clamps to the shorter line below.
	ctx.Cursors.SetSelections([]engine.Selection{caret(10)})
	h.HandleAction(input.NewAction(editorhandler.ActionMoveDown), ctx)
	assertSelections(t, ctx, caret(14))

	h.HandleAction(input.NewAction(editorhandler.ActionMoveUp), ctx)
	assertSelections(t, ctx, caret(2))

	// Up from the first line pins to the buffer start.
	h.HandleAction(input.NewAction(editorhandler.ActionMoveUp), ctx)
	assertSelections(t, ctx, caret(0))

	// Down from the last line pins to the buffer end.
	ctx.Cursors.SetSelections([]engine.Selection{caret(16)})
	h.HandleAction(input.NewAction(editorhandler.ActionMoveDown), ctx)
	assertSelections(t, ctx, caret(21))
}

func TestMoveLineAndBufferEdges(t *testing.T) {
	ctx, _ := newClipCtx(t, "line 1\nline 2")
	h := editorhandler.NewMotionHandler()

	ctx.Cursors.SetSelections([]engine.Selection{caret(9)})
	h.HandleAction(input.NewAction(editorhandler.ActionMoveLineStart), ctx)
	assertSelections(t, ctx, caret(7))

	h.HandleAction(input.NewAction(editorhandler.ActionMoveLineEnd), ctx)
	assertSelections(t, ctx, caret(13))

	h.HandleAction(input.NewAction(editorhandler.ActionMoveBufferStart), ctx)
	assertSelections(t, ctx, caret(0))

	h.HandleAction(input.NewAction(editorhandler.ActionMoveBufferEnd), ctx)
	assertSelections(t, ctx, caret(13))
}

func TestMoveWithCount(t *testing.T) {
	ctx, _ := newClipCtx(t, "hello")
	ctx.Cursors.SetSelections([]engine.Selection{caret(0)})
	ctx = ctx.WithCount(3)

	h := editorhandler.NewMotionHandler()
	h.HandleAction(input.NewAction(editorhandler.ActionMoveRight), ctx)
	assertSelections(t, ctx, caret(3))
}

func TestSelectExtends(t *testing.T) {
	ctx, _ := newClipCtx(t, "line 1\nline 2")
	h := editorhandler.NewMotionHandler()

	ctx.Cursors.SetSelections([]engine.Selection{caret(1)})
	h.HandleAction(input.NewAction(editorhandler.ActionSelectRight), ctx)
	assertSelections(t, ctx, sel(1, 2))

	h.HandleAction(input.NewAction(editorhandler.ActionSelectDown), ctx)
	assertSelections(t, ctx, sel(1, 9))

	h.HandleAction(input.NewAction(editorhandler.ActionSelectLineEnd), ctx)
	assertSelections(t, ctx, sel(1, 13))
}

func TestSelectAll(t *testing.T) {
	ctx, _ := newClipCtx(t, "line 1\nline 2")
	ctx.Cursors.SetSelections([]engine.Selection{caret(3)})

	h := editorhandler.NewMotionHandler()
	h.HandleAction(input.NewAction(editorhandler.ActionSelectAll), ctx)
	assertSelections(t, ctx, sel(0, 13))
}

func TestAddCursorBelow(t *testing.T) {
	ctx, _ := newClipCtx(t, "line 1\nline 2")
	h := editorhandler.NewMotionHandler()

	ctx.Cursors.SetSelections([]engine.Selection{caret(2)})
	res := h.HandleAction(input.NewAction(editorhandler.ActionAddCursorBelow), ctx)
	if res.IsError() {
		t.Fatal(res.Error)
	}
	assertSelections(t, ctx, caret(2), caret(9))

	// No line below the last one.
	ctx.Cursors.SetSelections([]engine.Selection{caret(9)})
	res = h.HandleAction(input.NewAction(editorhandler.ActionAddCursorBelow), ctx)
	if !res.IsNoOp() {
		t.Errorf("status = %v, want NoOp", res.Status)
	}
}

func TestMotionOnReadOnlyBuffer(t *testing.T) {
	e := engine.New(engine.WithContent("line 1"), engine.WithReadOnly())
	ctx := execctx.New().WithEngine(e).WithCursors(e).WithReadOnly(true)
	ctx.Cursors.SetSelections([]engine.Selection{caret(0)})

	h := editorhandler.NewMotionHandler()
	res := h.HandleAction(input.NewAction(editorhandler.ActionMoveRight), ctx)
	if res.IsError() {
		t.Fatalf("motion on read-only buffer failed: %v", res.Error)
	}
	assertSelections(t, ctx, caret(1))
}

func TestUndoRedoActions(t *testing.T) {
	ctx, _ := newClipCtx(t, "ab")
	ctx.Cursors.SetSelections([]engine.Selection{caret(1)})

	insert := editorhandler.NewInsertHandler()
	insert.HandleAction(input.NewAction(editorhandler.ActionInsertText).WithText("X"), ctx)
	if got := ctx.Engine.Text(); got != "aXb" {
		t.Fatalf("text = %q", got)
	}

	history := editorhandler.NewHistoryHandler()
	res := history.HandleAction(input.NewAction(editorhandler.ActionUndo), ctx)
	if res.IsError() {
		t.Fatal(res.Error)
	}
	if got := ctx.Engine.Text(); got != "ab" {
		t.Errorf("text after undo = %q, want %q", got, "ab")
	}

	res = history.HandleAction(input.NewAction(editorhandler.ActionRedo), ctx)
	if res.IsError() {
		t.Fatal(res.Error)
	}
	if got := ctx.Engine.Text(); got != "aXb" {
		t.Errorf("text after redo = %q, want %q", got, "aXb")
	}
}

func TestUndoNothingToUndo(t *testing.T) {
	ctx, _ := newClipCtx(t, "ab")
	h := editorhandler.NewHistoryHandler()

	res := h.HandleAction(input.NewAction(editorhandler.ActionUndo), ctx)
	if !res.IsNoOp() {
		t.Errorf("status = %v, want NoOp", res.Status)
	}
}

func TestUndoReadOnlyBuffer(t *testing.T) {
	e := engine.New(engine.WithContent("ab"), engine.WithReadOnly())
	ctx := execctx.New().WithEngine(e).WithCursors(e).WithHistory(e).WithReadOnly(true)

	h := editorhandler.NewHistoryHandler()
	res := h.HandleAction(input.NewAction(editorhandler.ActionUndo), ctx)
	if !res.IsError() || !errors.Is(res.Error, execctx.ErrReadOnly) {
		t.Errorf("error = %v, want ErrReadOnly", res.Error)
	}
}

func TestCombinedHandlerRoutes(t *testing.T) {
	ctx, _ := newClipCtx(t, "line 1\nline 2")
	ctx.Cursors.SetSelections([]engine.Selection{caret(1)})

	h := editorhandler.NewCombinedHandler()
	for _, action := range []string{
		editorhandler.ActionCopy,
		editorhandler.ActionInsertText,
		editorhandler.ActionMoveRight,
		editorhandler.ActionUndo,
	} {
		if !h.CanHandle(action) {
			t.Errorf("CanHandle(%s) = false", action)
		}
	}
	if h.CanHandle("editor.bogus") {
		t.Error("CanHandle(editor.bogus) = true")
	}

	res := h.HandleAction(input.NewAction(editorhandler.ActionCopy), ctx)
	if res.IsError() {
		t.Fatalf("copy through combined handler failed: %v", res.Error)
	}
	if got := clipboardText(t, ctx); got != "line 1\n" {
		t.Errorf("clipboard = %q, want %q", got, "line 1\n")
	}

	res = h.HandleAction(input.NewAction("editor.bogus"), ctx)
	if !res.IsError() {
		t.Error("unknown action did not error")
	}
}

func TestCombinedHandlerNamespace(t *testing.T) {
	h := editorhandler.NewCombinedHandler()
	if got := h.Namespace(); got != "editor" {
		t.Errorf("Namespace() = %q, want %q", got, "editor")
	}
}
