package editor

import (
	"strings"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/engine"
)

// Native performs the host's unmodified clipboard operations. The
// line-scope handlers delegate to it whenever a selection stays inside a
// single line, and the exact action variants route here unconditionally.
// Tests substitute a recorder to verify delegation.
type Native interface {
	Copy(ctx *execctx.ExecutionContext) handler.Result
	Cut(ctx *execctx.ExecutionContext) handler.Result
	Paste(ctx *execctx.ExecutionContext) handler.Result
	Duplicate(ctx *execctx.ExecutionContext) handler.Result
}

// BuiltinNative is the engine-backed Native implementation.
//
// Its semantics are the usual character-wise ones: copy joins region
// texts with newlines, cut deletes regions and leaves carets at their
// starts, paste replaces every region with the clipboard text, and
// duplicate re-inserts each region's text ahead of it. Zero-length
// regions contribute nothing to copy, cut and duplicate.
type BuiltinNative struct{}

// NewBuiltinNative creates the engine-backed native implementation.
func NewBuiltinNative() *BuiltinNative {
	return &BuiltinNative{}
}

// Copy places the selected text on the clipboard. Multiple regions are
// joined with newlines. Nothing is selected, nothing happens.
func (n *BuiltinNative) Copy(ctx *execctx.ExecutionContext) handler.Result {
	text, ok := n.selectedText(ctx)
	if !ok {
		return handler.NoOpWithMessage("nothing to copy")
	}
	if err := ctx.Clipboard.Set(text); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

// Cut copies the selected text, then deletes every region. Carets
// collapse to the region starts.
func (n *BuiltinNative) Cut(ctx *execctx.ExecutionContext) handler.Result {
	text, ok := n.selectedText(ctx)
	if !ok {
		return handler.NoOpWithMessage("nothing to cut")
	}

	sels := ctx.Cursors.Selections()
	err := ctx.Engine.Transaction("Cut", func(tx *engine.Tx) error {
		work := append([]engine.Selection(nil), sels...)
		for i := len(work) - 1; i >= 0; i-- {
			rng := work[i].Range()
			if rng.IsEmpty() {
				continue
			}
			if _, err := tx.Delete(rng.Start, rng.End); err != nil {
				return err
			}
			edit := engine.Edit{Range: rng}
			work = transformSelections(work, edit)
		}
		tx.SetSelections(work)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	if err := ctx.Clipboard.Set(text); err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// Paste replaces every region with the clipboard text and leaves a caret
// after each inserted copy.
func (n *BuiltinNative) Paste(ctx *execctx.ExecutionContext) handler.Result {
	clip, err := ctx.Clipboard.Get()
	if err != nil {
		return handler.Error(err)
	}
	if clip == "" {
		return handler.NoOpWithMessage("clipboard is empty")
	}

	sels := ctx.Cursors.Selections()
	err = ctx.Engine.Transaction("Paste", func(tx *engine.Tx) error {
		carets := make([]engine.Selection, 0, len(sels))
		for i := len(sels) - 1; i >= 0; i-- {
			rng := sels[i].Range()
			if _, err := tx.Replace(rng.Start, rng.End, clip); err != nil {
				return err
			}
			edit := engine.Edit{Range: rng, NewText: clip}
			carets = transformSelections(carets, edit)
			carets = append(carets, caretAt(rng.Start+engine.ByteOffset(len(clip))))
		}
		tx.SetSelections(carets)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// Duplicate re-inserts each region's text immediately before it. The
// selections ride forward and still cover their original text.
func (n *BuiltinNative) Duplicate(ctx *execctx.ExecutionContext) handler.Result {
	sels := ctx.Cursors.Selections()
	any := false
	for _, sel := range sels {
		if !sel.IsEmpty() {
			any = true
			break
		}
	}
	if !any {
		return handler.NoOpWithMessage("nothing to duplicate")
	}

	err := ctx.Engine.Transaction("Duplicate", func(tx *engine.Tx) error {
		work := append([]engine.Selection(nil), sels...)
		for i := len(work) - 1; i >= 0; i-- {
			rng := work[i].Range()
			if rng.IsEmpty() {
				continue
			}
			text := tx.TextRange(rng.Start, rng.End)
			if _, err := tx.Insert(rng.Start, text); err != nil {
				return err
			}
			edit := engine.Edit{Range: engine.Range{Start: rng.Start, End: rng.Start}, NewText: text}
			work = transformSelections(work, edit)
		}
		tx.SetSelections(work)
		return nil
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithRedraw()
}

// selectedText joins the texts of all non-empty regions. The second
// return is false when no region spans text.
func (n *BuiltinNative) selectedText(ctx *execctx.ExecutionContext) (string, bool) {
	var parts []string
	for _, sel := range ctx.Cursors.Selections() {
		rng := sel.Range()
		if rng.IsEmpty() {
			continue
		}
		parts = append(parts, ctx.Engine.TextRange(rng.Start, rng.End))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}
