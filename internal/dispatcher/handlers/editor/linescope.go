package editor

import (
	"strings"

	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/engine/cursor"
)

// bufferReader is the read surface the line-scope helpers need. Both
// execctx.EngineInterface and *engine.Tx satisfy it, so the same block
// math runs against the live engine and inside transactions.
type bufferReader interface {
	Len() engine.ByteOffset
	LineCount() uint32
	LineAt(offset engine.ByteOffset) uint32
	LineSpan(line uint32) engine.Range
	TextRange(start, end engine.ByteOffset) string
	OffsetToPoint(offset engine.ByteOffset) engine.Point
	PointToOffset(point engine.Point) engine.ByteOffset
}

// lineBlock is a maximal run of whole lines covering one or more
// selections. The span always starts at a line start and ends at a line
// start (or the buffer end), terminators included.
type lineBlock struct {
	span engine.Range
	sels []engine.Selection // selections expanded into this block, in buffer order
}

// hasNonEmpty reports whether any selection in the block spans text.
func (b lineBlock) hasNonEmpty() bool {
	for _, sel := range b.sels {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// isIntraLine reports whether every selection spans text and the whole
// set fits inside one line span. Such selections keep native clipboard
// semantics; anything else is scoped to whole lines.
func isIntraLine(r bufferReader, sels []engine.Selection) bool {
	if len(sels) == 0 {
		return false
	}
	cover := sels[0].Range()
	for _, sel := range sels {
		if sel.IsEmpty() {
			return false
		}
		cover = cover.Union(sel.Range())
	}
	span := r.LineSpan(r.LineAt(cover.Start))
	return span.ContainsRange(cover)
}

// lineSpanOf returns the full-line span covering the selection, from the
// start of its first line through the end of its last line. A range
// ending exactly on a line start takes in that line too.
func lineSpanOf(r bufferReader, sel engine.Selection) engine.Range {
	rng := sel.Range()
	first := r.LineAt(rng.Start)
	last := r.LineAt(rng.End)
	return engine.Range{
		Start: r.LineSpan(first).Start,
		End:   r.LineSpan(last).End,
	}
}

// expandSelections maps each selection to its full-line span and merges
// spans that overlap into shared blocks. Selections must be sorted by
// position. Blocks that merely touch stay separate so each keeps its own
// caret placement.
func expandSelections(r bufferReader, sels []engine.Selection) []lineBlock {
	blocks := make([]lineBlock, 0, len(sels))
	for _, sel := range sels {
		span := lineSpanOf(r, sel)
		if n := len(blocks); n > 0 && span.Start < blocks[n-1].span.End {
			prev := &blocks[n-1]
			if span.End > prev.span.End {
				prev.span.End = span.End
			}
			prev.sels = append(prev.sels, sel)
			continue
		}
		blocks = append(blocks, lineBlock{span: span, sels: []engine.Selection{sel}})
	}
	return blocks
}

// collectBlockText concatenates the text of all blocks and guarantees a
// trailing newline, so the clipboard always holds whole lines.
func collectBlockText(r bufferReader, blocks []lineBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(r.TextRange(b.span.Start, b.span.End))
	}
	text := sb.String()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// appendTerminator inserts a newline at the buffer end so every line,
// including the last, carries a terminator during block processing.
// Carets already sitting at the buffer end stay anchored.
func appendTerminator(tx *engine.Tx, sels []engine.Selection) ([]engine.Selection, error) {
	end := tx.Len()
	if _, err := tx.Insert(end, "\n"); err != nil {
		return nil, err
	}
	edit := engine.Edit{Range: engine.Range{Start: end, End: end}, NewText: "\n"}
	out := make([]engine.Selection, len(sels))
	for i, sel := range sels {
		out[i] = cursor.TransformSelectionSticky(sel, edit, true)
	}
	return out, nil
}

// trimTerminator removes the final character, undoing appendTerminator.
// Deleting everything between the two is fine; an empty buffer needs no
// trim.
func trimTerminator(tx *engine.Tx, carets []engine.Selection) ([]engine.Selection, error) {
	end := tx.Len()
	if end == 0 {
		return carets, nil
	}
	if _, err := tx.Delete(end-1, end); err != nil {
		return nil, err
	}
	edit := engine.Edit{Range: engine.Range{Start: end - 1, End: end}}
	return transformSelections(carets, edit), nil
}

// transformSelections maps every selection through an edit.
func transformSelections(sels []engine.Selection, edit engine.Edit) []engine.Selection {
	out := make([]engine.Selection, len(sels))
	for i, sel := range sels {
		out[i] = cursor.TransformSelection(sel, edit)
	}
	return out
}

// dropCovered removes selections fully contained in the span. Used when a
// block is overwritten and its original selections are replaced by fresh
// carets.
func dropCovered(sels []engine.Selection, span engine.Range) []engine.Selection {
	out := sels[:0]
	for _, sel := range sels {
		if span.ContainsRange(sel.Range()) {
			continue
		}
		out = append(out, sel)
	}
	return out
}

// caretAt builds an empty selection at the offset.
func caretAt(offset engine.ByteOffset) engine.Selection {
	return cursor.NewCursorSelection(offset)
}
