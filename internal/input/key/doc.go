// Package key defines keyboard events and their canonical string form.
//
// An Event is a single key press: a character (KeyRune plus the rune)
// or a special key, with a modifier bitmask. Events have one canonical
// spelling used throughout keymap files and logs: modifier letters in
// C-A-M-S order, then the key, joined with hyphens.
//
//	a        letter a
//	A        shift+a (shift folds into the character)
//	C-c      ctrl+c
//	C-S-c    ctrl+shift+c
//	S-Down   shift+down
//	Space    the space bar
//
// Parse accepts the canonical form, the long "Ctrl+Shift+C" form, and
// bare key names; MustParse panics on bad specs and serves the
// built-in tables. Normalize resolves the shift/case ambiguity of
// character events so that lookups agree between terminals that
// report shifted letters as uppercase runes and those that set the
// shift modifier.
package key
