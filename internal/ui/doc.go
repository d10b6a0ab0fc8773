// Package ui hosts the editor on a tcell terminal screen.
//
// The UI owns the draw loop and the event translation: tcell key
// events become the key package's canonical events, and Render paints
// the visible window of the buffer with selection highlighting, the
// hardware cursor on the primary caret, and a status line. Display
// widths are grapheme-aware, so combining characters and wide runes
// line up with the terminal.
//
// The application polls events and renders; the UI keeps only the
// viewport scroll state.
package ui
