// Package keymap maps key chords to editor actions.
//
// A Keymap is a flat table keyed by the canonical chord form produced
// by the key package ("C-c", "C-S-v", "S-Down"). Default returns the
// built-in table; user keymap files are JSON objects merged over it
// with Load or LoadFile. Translate converts incoming key events into
// actions, falling back to text insertion for unbound printable
// characters.
package keymap
