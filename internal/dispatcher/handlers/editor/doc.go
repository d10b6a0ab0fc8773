// Package editor provides handlers for text editing operations.
//
// The centerpiece is the ClipboardHandler, which gives copy, cut, paste
// and duplicate line-scope semantics: operations act on whole lines
// unless a non-empty selection stays inside a single line, in which case
// the native character-wise behavior applies. Text cut or copied on the
// line path always carries a trailing newline, and pasting such text
// inserts it above the caret's line rather than splitting the line at
// the caret.
//
// # Clipboard Operations
//
// The ClipboardHandler type:
//   - editor.copy: copy whole lines, or the exact selection when it
//     stays inside one line
//   - editor.cut: cut with the same scoping; carets keep their column
//   - editor.paste: paste line clipboard content above the caret's
//     line, or over the lines covered by a selection
//   - editor.duplicate: duplicate the covered lines below themselves,
//     or the selected text in place
//   - editor.copyExact, editor.cutExact, editor.pasteExact,
//     editor.duplicateExact: the unmodified native operations
//
// Native behavior is pluggable through the Native interface; the
// builtin implementation drives the engine directly.
//
// # Insert Operations
//
// The InsertHandler type:
//   - editor.insertText: insert the action's text at every caret
//   - editor.insertNewline, editor.insertTab
//   - editor.backspace, editor.deleteForward
//
// # Motion Operations
//
// The MotionHandler type:
//   - editor.moveLeft, editor.moveRight, editor.moveUp, editor.moveDown
//   - editor.moveLineStart, editor.moveLineEnd
//   - editor.moveBufferStart, editor.moveBufferEnd
//   - editor.selectLeft, editor.selectRight, editor.selectUp,
//     editor.selectDown, editor.selectLineStart, editor.selectLineEnd
//   - editor.selectAll, editor.addCursorBelow
//
// # History Operations
//
// The HistoryHandler type:
//   - editor.undo, editor.redo
//
// # Multi-cursor Support
//
// All operations support multiple selections. Edits run in reverse
// buffer order inside a single transaction, so one keystroke is one
// undo step and untouched offsets stay stable.
//
// # Usage
//
// Register the combined handler with the dispatcher:
//
//	dispatcher.RegisterNamespace("editor", editor.NewCombinedHandler())
//
// Or register individual handlers:
//
//	dispatcher.RegisterNamespace("editor", editor.NewClipboardHandler())
//	dispatcher.RegisterNamespace("editor", editor.NewInsertHandler())
//
// Dispatch editor actions:
//
//	result := dispatcher.Dispatch(input.Action{Name: editor.ActionCopy})
package editor
