package cursor

import "github.com/lineclip/lineclip/internal/engine/buffer"

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - Edit entirely before the offset: shift by the edit's delta.
//     An insertion exactly at the offset counts as before it, so the
//     offset rides the inserted text forward.
//   - Edit entirely after the offset: unchanged.
//   - Edit spans the offset: move to the end of the new text.
func TransformOffset(offset ByteOffset, edit Edit) ByteOffset {
	if edit.Range.End <= offset {
		return offset + edit.Delta()
	}
	if edit.Range.Start >= offset {
		return offset
	}
	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformOffsetSticky is like TransformOffset but controls what happens
// to an offset sitting exactly at an insertion point. If sticky is true the
// offset stays put (the text lands after it); otherwise it moves to the end
// of the inserted text. Appending a duplicated line at the end of the
// buffer uses the sticky form so carets already at the end do not jump
// onto the copy.
func TransformOffsetSticky(offset ByteOffset, edit Edit, sticky bool) ByteOffset {
	if sticky && edit.IsInsert() && edit.Range.Start == offset {
		return offset
	}
	return TransformOffset(offset, edit)
}

// TransformSelection updates a selection after an edit.
// Anchor and head are transformed independently, preserving direction.
func TransformSelection(sel Selection, edit Edit) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, edit),
		Head:   TransformOffset(sel.Head, edit),
	}
}

// TransformSelectionSticky updates a selection after an edit with the given
// stickiness applied to both anchor and head.
func TransformSelectionSticky(sel Selection, edit Edit, sticky bool) Selection {
	return Selection{
		Anchor: TransformOffsetSticky(sel.Anchor, edit, sticky),
		Head:   TransformOffsetSticky(sel.Head, edit, sticky),
	}
}

// TransformCursorSet updates all selections in a cursor set after an edit.
func TransformCursorSet(cs *CursorSet, edit Edit) {
	for i := range cs.selections {
		cs.selections[i] = TransformSelection(cs.selections[i], edit)
	}
	cs.normalize()
}

// TransformCursorSetMulti updates selections after a batch of edits.
// Edits must be ordered front to back with ranges in the coordinates of
// the buffer before any of them applied, the way a batch is built before
// applying it from the end of the buffer backward. Replaying back to
// front keeps every comparison in pre-shift coordinates.
func TransformCursorSetMulti(cs *CursorSet, edits []Edit) {
	for i := len(edits) - 1; i >= 0; i-- {
		TransformCursorSet(cs, edits[i])
	}
}

// AdjustForDeletion transforms an offset after text is deleted.
// Offsets within the deleted range collapse to its start.
func AdjustForDeletion(offset ByteOffset, deleteRange Range) ByteOffset {
	if offset <= deleteRange.Start {
		return offset
	}
	if offset < deleteRange.End {
		return deleteRange.Start
	}
	return offset - deleteRange.Len()
}

// AdjustForInsertion transforms an offset after text is inserted.
// Offsets at the insertion point move past the inserted text.
func AdjustForInsertion(offset ByteOffset, insertOffset ByteOffset, insertLen ByteOffset) ByteOffset {
	if offset < insertOffset {
		return offset
	}
	return offset + insertLen
}
