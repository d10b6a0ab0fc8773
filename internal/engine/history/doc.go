// Package history provides undo/redo for the text editor engine.
//
// The history system journals primitive edits rather than replaying
// semantic commands. Key concepts:
//
// # Operations
//
// An Operation records one primitive edit: the range that was modified,
// the old text and the new text. Its coordinates are valid in the buffer
// state it was applied to, so a journal can be replayed forward (redo) or
// inverted in reverse (undo).
//
// # Transactions
//
// A Transaction groups the operations of one editor action into a single
// undo step and captures the selections before and after the action. A
// line-wise cut across three selection blocks journals three deletes but
// undoes with one keystroke, restoring the original selections.
//
// # History Stack
//
// The History type manages the undo/redo stacks and the open transaction:
//
//	h := history.NewHistory(1000) // Max 1000 undo entries
//
//	h.Begin("Cut Lines", cursors.All())
//	// ... journal edits with h.Record as they are applied ...
//	h.Commit(cursors.All())
//
//	// Later
//	sels, err := h.Undo(buf) // Reverts the cut, returns prior selections
//	sels, err = h.Redo(buf)
//
// An operation recorded outside a transaction becomes its own single-edit
// undo step. Committing a transaction clears the redo stack.
package history
