package editor

import (
	"strings"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
)

// Action names for clipboard operations.
const (
	ActionCopy      = "editor.copy"      // copy, whole lines unless the selection stays inside one line
	ActionCut       = "editor.cut"       // cut with the same line scoping
	ActionPaste     = "editor.paste"     // paste, line-wise when the clipboard ends with a newline
	ActionDuplicate = "editor.duplicate" // duplicate lines or the selected text

	ActionCopyExact      = "editor.copyExact"      // native copy, no line expansion
	ActionCutExact       = "editor.cutExact"       // native cut
	ActionPasteExact     = "editor.pasteExact"     // native in-place paste
	ActionDuplicateExact = "editor.duplicateExact" // native duplicate
)

// ClipboardHandler handles copy, cut, paste and duplicate.
//
// The default operations scope themselves to whole lines: a caret or a
// selection spanning multiple lines acts on the full lines it touches,
// while a non-empty selection confined to a single line keeps the native
// character-wise behavior. The Exact variants always use native
// behavior.
type ClipboardHandler struct {
	native Native
}

// NewClipboardHandler creates a clipboard handler backed by the builtin
// native operations.
func NewClipboardHandler() *ClipboardHandler {
	return &ClipboardHandler{native: NewBuiltinNative()}
}

// NewClipboardHandlerWithNative creates a clipboard handler that
// delegates native operations to the given implementation.
func NewClipboardHandlerWithNative(native Native) *ClipboardHandler {
	if native == nil {
		native = NewBuiltinNative()
	}
	return &ClipboardHandler{native: native}
}

// Namespace returns the editor namespace.
func (h *ClipboardHandler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *ClipboardHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionCopy, ActionCut, ActionPaste, ActionDuplicate,
		ActionCopyExact, ActionCutExact, ActionPasteExact, ActionDuplicateExact:
		return true
	}
	return false
}

// HandleAction processes a clipboard action.
func (h *ClipboardHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	switch action.Name {
	case ActionCopy:
		return h.copyLines(ctx)
	case ActionCut:
		return h.cutLines(ctx)
	case ActionPaste:
		return h.pasteLines(ctx)
	case ActionDuplicate:
		return h.duplicateLines(ctx)
	case ActionCopyExact:
		if err := ctx.ValidateForClipboard(); err != nil {
			return handler.Error(err)
		}
		return h.native.Copy(ctx)
	case ActionCutExact:
		if err := h.validateMutation(ctx); err != nil {
			return handler.Error(err)
		}
		return h.native.Cut(ctx)
	case ActionPasteExact:
		if err := h.validateMutation(ctx); err != nil {
			return handler.Error(err)
		}
		return h.native.Paste(ctx)
	case ActionDuplicateExact:
		if err := ctx.ValidateForEdit(); err != nil {
			return handler.Error(err)
		}
		return h.native.Duplicate(ctx)
	}
	return handler.Errorf("unknown clipboard action: %s", action.Name)
}

// copyLines copies the full lines touched by the selections. An
// intra-line selection copies exactly the selected text instead. The
// clipboard always receives newline-terminated text on the line path,
// even for the last line of the buffer.
func (h *ClipboardHandler) copyLines(ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForClipboard(); err != nil {
		return handler.Error(err)
	}
	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no selection")
	}
	if isIntraLine(ctx.Engine, sels) {
		return h.native.Copy(ctx)
	}

	blocks := expandSelections(ctx.Engine, sels)
	text := collectBlockText(ctx.Engine, blocks)
	if err := ctx.Clipboard.Set(text); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

// cutLines copies like copyLines, then removes the covered lines. Each
// caret lands on the line that takes the removed line's place, keeping
// its column; cutting the last line moves the caret up instead.
func (h *ClipboardHandler) cutLines(ctx *execctx.ExecutionContext) handler.Result {
	if err := h.validateMutation(ctx); err != nil {
		return handler.Error(err)
	}
	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no selection")
	}
	if isIntraLine(ctx.Engine, sels) {
		return h.native.Cut(ctx)
	}

	var clip string
	err := ctx.Engine.Transaction("Cut Lines", func(tx *engine.Tx) error {
		sels, err := appendTerminator(tx, sels)
		if err != nil {
			return err
		}
		blocks := expandSelections(tx, sels)
		clip = collectBlockText(tx, blocks)

		carets := make([]engine.Selection, 0, len(sels))
		for i := len(blocks) - 1; i >= 0; i-- {
			b := blocks[i]
			targetRow := cutTargetRow(tx, b)
			for _, sel := range b.sels {
				col := tx.OffsetToPoint(sel.Head).Column
				pt := tx.PointToOffset(engine.Point{Line: targetRow, Column: col})
				carets = append(carets, caretAt(pt))
			}
			if _, err := tx.Delete(b.span.Start, b.span.End); err != nil {
				return err
			}
			carets = transformSelections(carets, engine.Edit{Range: b.span})
		}

		carets, err = trimTerminator(tx, carets)
		if err != nil {
			return err
		}
		tx.SetSelections(carets)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	if err := ctx.Clipboard.Set(clip); err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// pasteLines inserts line clipboard content above the caret's line, or
// overwrites the lines covered by non-empty selections. Clipboard text
// without a trailing newline, and intra-line selections, use native
// paste instead.
func (h *ClipboardHandler) pasteLines(ctx *execctx.ExecutionContext) handler.Result {
	if err := h.validateMutation(ctx); err != nil {
		return handler.Error(err)
	}
	clip, err := ctx.Clipboard.Get()
	if err != nil {
		return handler.Error(err)
	}
	if !strings.HasSuffix(clip, "\n") {
		return h.native.Paste(ctx)
	}
	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no selection")
	}
	if isIntraLine(ctx.Engine, sels) {
		return h.native.Paste(ctx)
	}

	err = ctx.Engine.Transaction("Paste Lines", func(tx *engine.Tx) error {
		carets, err := appendTerminator(tx, sels)
		if err != nil {
			return err
		}
		blocks := expandSelections(tx, carets)

		for i := len(blocks) - 1; i >= 0; i-- {
			b := blocks[i]
			if b.hasNonEmpty() {
				// Replace the covered lines. New carets take the
				// pre-replacement columns on the first line.
				carets = dropCovered(carets, b.span)
				targetRow := tx.LineAt(b.span.Start)
				added := make([]engine.Selection, 0, len(b.sels))
				for _, sel := range b.sels {
					col := tx.OffsetToPoint(sel.Head).Column
					added = append(added, caretAt(tx.PointToOffset(engine.Point{Line: targetRow, Column: col})))
				}
				if _, err := tx.Replace(b.span.Start, b.span.End, clip); err != nil {
					return err
				}
				carets = transformSelections(carets, engine.Edit{Range: b.span, NewText: clip})
				carets = append(carets, added...)
			} else {
				// Insert above the block. The carets ride down with
				// their own lines.
				if _, err := tx.Insert(b.span.Start, clip); err != nil {
					return err
				}
				insert := engine.Edit{Range: engine.Range{Start: b.span.Start, End: b.span.Start}, NewText: clip}
				carets = transformSelections(carets, insert)
			}
		}

		carets, err = trimTerminator(tx, carets)
		if err != nil {
			return err
		}
		tx.SetSelections(carets)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// duplicateLines copies each block of covered lines in place, right
// after the block. Intra-line selections duplicate just the selected
// text. Carets and selections stay on their original text.
func (h *ClipboardHandler) duplicateLines(ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}
	if ctx.Engine.IsEmpty() {
		return handler.NoOpWithMessage("buffer is empty")
	}
	sels := ctx.Cursors.Selections()
	if len(sels) == 0 {
		return handler.NoOpWithMessage("no selection")
	}
	if isIntraLine(ctx.Engine, sels) {
		return h.native.Duplicate(ctx)
	}

	err := ctx.Engine.Transaction("Duplicate Lines", func(tx *engine.Tx) error {
		carets, err := appendTerminator(tx, sels)
		if err != nil {
			return err
		}
		blocks := expandSelections(tx, carets)

		for i := len(blocks) - 1; i >= 0; i-- {
			b := blocks[i]
			text := tx.TextRange(b.span.Start, b.span.End)
			if _, err := tx.Insert(b.span.End, text); err != nil {
				return err
			}
			insert := engine.Edit{Range: engine.Range{Start: b.span.End, End: b.span.End}, NewText: text}
			carets = transformSelections(carets, insert)
		}

		carets, err = trimTerminator(tx, carets)
		if err != nil {
			return err
		}
		tx.SetSelections(carets)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// validateMutation checks the context for operations that need both the
// clipboard and an editable buffer.
func (h *ClipboardHandler) validateMutation(ctx *execctx.ExecutionContext) error {
	if err := ctx.ValidateForClipboard(); err != nil {
		return err
	}
	return ctx.ValidateForEdit()
}

// cutTargetRow picks the line whose coordinates the carets keep after a
// block is removed: the line after the block, or the one above when the
// block reaches the buffer end.
func cutTargetRow(tx *engine.Tx, b lineBlock) uint32 {
	if b.span.End == tx.Len() {
		row := tx.LineAt(b.span.Start)
		if row == 0 {
			return 0
		}
		return row - 1
	}
	return tx.LineAt(b.span.End)
}
