package cursor

import "sort"

// CursorSet manages the selections of a single editing surface.
// Selections are kept sorted by position and non-overlapping; selections
// that overlap or touch are merged, which is also how duplicate carets
// produced by line-wise commands collapse into one. The first selection
// is the primary one. A set is never empty.
type CursorSet struct {
	selections []Selection
}

// NewCursorSet creates a cursor set with a single selection.
func NewCursorSet(initial Selection) *CursorSet {
	return &CursorSet{
		selections: []Selection{initial},
	}
}

// NewCursorSetAt creates a cursor set with a single caret at the given offset.
func NewCursorSetAt(offset ByteOffset) *CursorSet {
	return &CursorSet{
		selections: []Selection{NewCursorSelection(offset)},
	}
}

// NewCursorSetFromSlice creates a cursor set from a slice of selections.
// The selections will be normalized (sorted and merged).
func NewCursorSetFromSlice(selections []Selection) *CursorSet {
	if len(selections) == 0 {
		return &CursorSet{
			selections: []Selection{NewCursorSelection(0)},
		}
	}
	cs := &CursorSet{
		selections: make([]Selection, len(selections)),
	}
	copy(cs.selections, selections)
	cs.normalize()
	return cs
}

// Primary returns the primary (first) selection.
func (cs *CursorSet) Primary() Selection {
	if len(cs.selections) == 0 {
		return Selection{}
	}
	return cs.selections[0]
}

// PrimaryCursor returns the head offset of the primary selection.
func (cs *CursorSet) PrimaryCursor() ByteOffset {
	if len(cs.selections) == 0 {
		return 0
	}
	return cs.selections[0].Head
}

// Last returns the last (bottom-most) selection.
func (cs *CursorSet) Last() Selection {
	if len(cs.selections) == 0 {
		return Selection{}
	}
	return cs.selections[len(cs.selections)-1]
}

// All returns a copy of all selections in buffer order.
// The returned slice is safe to modify without affecting the CursorSet.
func (cs *CursorSet) All() []Selection {
	result := make([]Selection, len(cs.selections))
	copy(result, cs.selections)
	return result
}

// Count returns the number of selections.
func (cs *CursorSet) Count() int {
	return len(cs.selections)
}

// IsMulti returns true if there are multiple selections.
func (cs *CursorSet) IsMulti() bool {
	return len(cs.selections) > 1
}

// Add adds a new selection, merging with overlapping or touching ones.
func (cs *CursorSet) Add(sel Selection) {
	cs.selections = append(cs.selections, sel)
	cs.normalize()
}

// Set replaces all selections with a single selection.
func (cs *CursorSet) Set(sel Selection) {
	cs.selections = []Selection{sel}
}

// SetAll replaces all selections. An empty slice resets to a caret at 0.
func (cs *CursorSet) SetAll(sels []Selection) {
	if len(sels) == 0 {
		cs.selections = []Selection{NewCursorSelection(0)}
		return
	}
	cs.selections = make([]Selection, len(sels))
	copy(cs.selections, sels)
	cs.normalize()
}

// Clear removes all selections except the primary one.
func (cs *CursorSet) Clear() {
	if len(cs.selections) > 1 {
		cs.selections = cs.selections[:1]
	}
}

// HasSelection returns true if any selection is non-empty (has extent).
func (cs *CursorSet) HasSelection() bool {
	for _, sel := range cs.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// CollapseAll collapses all selections to carets at their heads.
func (cs *CursorSet) CollapseAll() {
	for i, sel := range cs.selections {
		cs.selections[i] = sel.Collapse()
	}
	cs.normalize()
}

// Clamp clamps all selections to the valid range [0, maxOffset].
func (cs *CursorSet) Clamp(maxOffset ByteOffset) {
	for i, sel := range cs.selections {
		cs.selections[i] = sel.Clamp(maxOffset)
	}
	cs.normalize()
}

// Clone returns a deep copy of the cursor set.
func (cs *CursorSet) Clone() *CursorSet {
	clone := &CursorSet{
		selections: make([]Selection, len(cs.selections)),
	}
	copy(clone.selections, cs.selections)
	return clone
}

// Ranges returns the normalized range of every selection in buffer order.
func (cs *CursorSet) Ranges() []Range {
	ranges := make([]Range, len(cs.selections))
	for i, sel := range cs.selections {
		ranges[i] = sel.Range()
	}
	return ranges
}

// normalize sorts selections by position and merges any that touch.
// Selections left alone keep their direction; merged ones become forward.
func (cs *CursorSet) normalize() {
	if len(cs.selections) <= 1 {
		return
	}

	sort.Slice(cs.selections, func(i, j int) bool {
		si, sj := cs.selections[i].Start(), cs.selections[j].Start()
		if si != sj {
			return si < sj
		}
		// Same start: larger extents first
		return cs.selections[i].End() > cs.selections[j].End()
	})

	merged := cs.selections[:1]
	for _, sel := range cs.selections[1:] {
		last := &merged[len(merged)-1]
		if last.Touches(sel) {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	cs.selections = merged
}

// Equals returns true if two cursor sets have the same selections.
func (cs *CursorSet) Equals(other *CursorSet) bool {
	if other == nil {
		return false
	}
	if cs.Count() != other.Count() {
		return false
	}
	for i, sel := range cs.selections {
		if !sel.Equals(other.selections[i]) {
			return false
		}
	}
	return true
}
