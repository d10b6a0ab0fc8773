package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
)

// Action names for insert and delete operations.
const (
	ActionInsertText    = "editor.insertText"
	ActionInsertNewline = "editor.insertNewline"
	ActionInsertTab     = "editor.insertTab"
	ActionBackspace     = "editor.backspace"
	ActionDeleteForward = "editor.deleteForward"
)

// InsertHandler handles typing: text insertion and single-character
// deletion at every caret. Non-empty selections are replaced by typed
// text and removed by backspace or delete.
type InsertHandler struct{}

// NewInsertHandler creates a new insert handler.
func NewInsertHandler() *InsertHandler {
	return &InsertHandler{}
}

// Namespace returns the editor namespace.
func (h *InsertHandler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *InsertHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionInsertText, ActionInsertNewline, ActionInsertTab,
		ActionBackspace, ActionDeleteForward:
		return true
	}
	return false
}

// HandleAction processes an insert action.
func (h *InsertHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}

	switch action.Name {
	case ActionInsertText:
		return h.insert(ctx, action.Args.Text, "Insert Text")
	case ActionInsertNewline:
		return h.insert(ctx, "\n", "Insert Newline")
	case ActionInsertTab:
		return h.insert(ctx, "\t", "Insert Tab")
	case ActionBackspace:
		return h.deleteAtCarets(ctx, true)
	case ActionDeleteForward:
		return h.deleteAtCarets(ctx, false)
	}
	return handler.Errorf("unknown insert action: %s", action.Name)
}

// insert replaces every selection with the text and leaves a caret after
// each inserted copy.
func (h *InsertHandler) insert(ctx *execctx.ExecutionContext, text, name string) handler.Result {
	if text == "" {
		return handler.NoOp()
	}
	if count := ctx.GetCount(); count > 1 {
		text = strings.Repeat(text, count)
	}

	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no cursor")
	}
	err := ctx.Engine.Transaction(name, func(tx *engine.Tx) error {
		carets := make([]engine.Selection, 0, len(sels))
		for i := len(sels) - 1; i >= 0; i-- {
			rng := sels[i].Range()
			if _, err := tx.Replace(rng.Start, rng.End, text); err != nil {
				return err
			}
			edit := engine.Edit{Range: rng, NewText: text}
			carets = transformSelections(carets, edit)
			carets = append(carets, caretAt(rng.Start+engine.ByteOffset(len(text))))
		}
		tx.SetSelections(carets)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// deleteAtCarets removes selections, or one rune per caret: the rune
// before the caret for backspace, the rune under it otherwise. Repeats
// with the action count.
func (h *InsertHandler) deleteAtCarets(ctx *execctx.ExecutionContext, backward bool) handler.Result {
	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no cursor")
	}

	name := "Delete Forward"
	if backward {
		name = "Delete Backward"
	}
	changed := 0
	err := ctx.Engine.Transaction(name, func(tx *engine.Tx) error {
		work := append([]engine.Selection(nil), sels...)
		count := ctx.GetCount()
		for c := 0; c < count; c++ {
			for i := len(work) - 1; i >= 0; i-- {
				del, ok := deleteTarget(tx, work[i], backward)
				if !ok {
					continue
				}
				if _, err := tx.Delete(del.Start, del.End); err != nil {
					return err
				}
				work = transformSelections(work, engine.Edit{Range: del})
				changed++
			}
		}
		tx.SetSelections(work)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	if changed == 0 {
		return handler.NoOp()
	}
	return handler.Success().WithRedraw()
}

// deleteTarget picks the range a backspace or forward delete removes for
// one selection. The second return is false at the buffer edge.
func deleteTarget(tx *engine.Tx, sel engine.Selection, backward bool) (engine.Range, bool) {
	rng := sel.Range()
	if !rng.IsEmpty() {
		return rng, true
	}
	head := rng.Start
	if backward {
		if head == 0 {
			return engine.Range{}, false
		}
		start := head - utf8.UTFMax
		if start < 0 {
			start = 0
		}
		_, size := utf8.DecodeLastRuneInString(tx.TextRange(start, head))
		return engine.Range{Start: head - engine.ByteOffset(size), End: head}, true
	}
	if head >= tx.Len() {
		return engine.Range{}, false
	}
	end := head + utf8.UTFMax
	if end > tx.Len() {
		end = tx.Len()
	}
	_, size := utf8.DecodeRuneInString(tx.TextRange(head, end))
	return engine.Range{Start: head, End: head + engine.ByteOffset(size)}, true
}
