package keymap

// Default returns the built-in keymap. User keymap files merge over
// these bindings.
func Default() *Keymap {
	m := New()

	// Clipboard. The plain chords act on whole lines when nothing is
	// selected or the selection spans lines; the shifted variants use
	// the selection exactly as it is.
	m.mustSet("C-c", "editor.copy", "Copy lines or selection")
	m.mustSet("C-x", "editor.cut", "Cut lines or selection")
	m.mustSet("C-v", "editor.paste", "Paste, line-wise for full lines")
	m.mustSet("C-d", "editor.duplicate", "Duplicate lines or selection")
	m.mustSet("C-S-c", "editor.copyExact", "Copy the selection exactly")
	m.mustSet("C-S-x", "editor.cutExact", "Cut the selection exactly")
	m.mustSet("C-S-v", "editor.pasteExact", "Paste at the caret")
	m.mustSet("C-S-d", "editor.duplicateExact", "Duplicate the selection exactly")

	// Movement.
	m.mustSet("Left", "editor.moveLeft", "Move left")
	m.mustSet("Right", "editor.moveRight", "Move right")
	m.mustSet("Up", "editor.moveUp", "Move up")
	m.mustSet("Down", "editor.moveDown", "Move down")
	m.mustSet("Home", "editor.moveLineStart", "Move to line start")
	m.mustSet("End", "editor.moveLineEnd", "Move to line end")
	m.mustSet("C-Home", "editor.moveBufferStart", "Move to buffer start")
	m.mustSet("C-End", "editor.moveBufferEnd", "Move to buffer end")

	// Selection.
	m.mustSet("S-Left", "editor.selectLeft", "Extend selection left")
	m.mustSet("S-Right", "editor.selectRight", "Extend selection right")
	m.mustSet("S-Up", "editor.selectUp", "Extend selection up")
	m.mustSet("S-Down", "editor.selectDown", "Extend selection down")
	m.mustSet("S-Home", "editor.selectLineStart", "Select to line start")
	m.mustSet("S-End", "editor.selectLineEnd", "Select to line end")
	m.mustSet("C-a", "editor.selectAll", "Select the whole buffer")
	m.mustSet("C-A-Down", "editor.addCursorBelow", "Add a cursor below")

	// Editing.
	m.mustSet("Enter", "editor.insertNewline", "Insert a newline")
	m.mustSet("Tab", "editor.insertTab", "Insert a tab")
	m.mustSet("Backspace", "editor.backspace", "Delete backward")
	m.mustSet("Delete", "editor.deleteForward", "Delete forward")

	// History.
	m.mustSet("C-z", "editor.undo", "Undo")
	m.mustSet("C-y", "editor.redo", "Redo")
	m.mustSet("C-S-z", "editor.redo", "Redo")

	// File.
	m.mustSet("C-s", "file.save", "Save the buffer")
	m.mustSet("F5", "file.reload", "Reread the file, discarding edits")
	m.mustSet("C-q", "file.quit", "Quit, refused while modified")
	m.mustSet("C-S-q", "file.forceQuit", "Quit, discarding changes")

	return m
}
