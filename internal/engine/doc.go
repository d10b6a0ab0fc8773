// Package engine provides the core text editing engine.
//
// The engine package serves as the main facade, combining buffer
// management, cursor handling and undo/redo into a unified, thread-safe
// API for building line-oriented editing commands.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: text storage with a line index and position conversion
//   - cursor: multi-caret selection management and edit transforms
//   - history: transaction-journal undo/redo
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine uses a read-write
// mutex to allow concurrent reads while serializing writes.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("line 1\nline 2\n"))
//
//	e.Insert(0, "// ")
//	text := e.Text() // "// line 1\nline 2\n"
//
//	e.Undo()         // back to "line 1\nline 2\n"
//
// # Transactions
//
// Editing commands that make several buffer edits wrap them in a
// transaction so they undo as one step, with the selections captured on
// both sides:
//
//	err := e.Transaction("Cut Lines", func(tx *engine.Tx) error {
//	    for i := len(blocks) - 1; i >= 0; i-- {
//	        if _, err := tx.Delete(blocks[i].Start, blocks[i].End); err != nil {
//	            return err
//	        }
//	    }
//	    tx.SetSelections(carets)
//	    return nil
//	})
//
// If the function returns an error the journaled edits are rolled back.
// Tx edit methods do not shift selections; the action installs its final
// carets explicitly.
//
// # Line Endings
//
// Buffer content is always stored with LF line endings. The original
// on-disk style is detected at load time and reapplied by Encoded() when
// saving, so line-wise editing never has to reason about CRLF.
package engine
