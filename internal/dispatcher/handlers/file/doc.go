// Package file provides handlers for file operations.
//
// This package implements file management for the single buffer the
// editor edits:
//   - Open a file into the buffer (file.open)
//   - Save the buffer (file.save, file.saveAs)
//   - Reload from disk, discarding edits (file.reload)
//   - Quit requests (file.quit, file.forceQuit)
//
// Quit does not terminate the process; it returns a result carrying a
// "quit" data flag that the application loop acts on. A plain quit is
// refused while the buffer has unsaved changes.
//
// Line endings are detected when a file is opened, the buffer is
// normalized to LF internally, and the detected ending is restored
// when the buffer is written back to disk.
package file
