// Package cursor provides selection and multi-caret management for text
// editing.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: the position where the selection started
//   - Head: the current caret position (where typing would occur)
//
// When Anchor == Head the selection is a bare caret. A selection can extend
// forward (head > anchor) or backward (head < anchor); Range, Start and End
// normalize to Start <= End without losing the stored direction.
//
// Multi-Caret Support:
//
// CursorSet manages multiple selections that are:
//   - Kept sorted by position
//   - Merged when they overlap or touch (duplicate carets collapse to one)
//   - Transformed together after edits
//
// Transforms:
//
// The Transform functions rehome offsets and selections after a buffer
// edit: positions before the edit stay put, positions after it shift by
// the edit's delta, and positions inside a replaced range move to the end
// of the new text. The Sticky variants decide whether a position exactly
// at an insertion point stays in place or rides the inserted text forward;
// line-wise duplication appends text at the end of the buffer with the
// sticky form so carets there hold still.
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use.
// CursorSet is not thread-safe and should be protected by external
// synchronization if accessed concurrently.
package cursor
