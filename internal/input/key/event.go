package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character with no
// modifiers beyond Shift. Such events insert text when unbound.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// IsEscape returns true if this is the Escape key with no modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true if this is the Enter key with no modifiers.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// Normalize folds Shift into the rune where the character carries it.
// A plain shifted letter becomes the uppercase rune with Shift
// cleared; in chords with Ctrl/Alt/Meta the letter is lowercased and
// Shift kept, so Ctrl+Shift+C and Ctrl+Shift+c share the canonical
// form "C-S-c". Special keys are returned unchanged.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	chorded := e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	if chorded {
		if unicode.IsUpper(e.Rune) {
			e.Rune = unicode.ToLower(e.Rune)
			e.Modifiers = e.Modifiers.With(ModShift)
		}
		return e
	}
	if e.Modifiers.HasShift() {
		if unicode.IsLower(e.Rune) {
			e.Rune = unicode.ToUpper(e.Rune)
		}
		e.Modifiers = e.Modifiers.Without(ModShift)
	}
	return e
}

// String returns the canonical form of the event: modifier letters in
// C-A-M-S order, then the key name, joined with hyphens. Examples:
// "a", "A", "C-c", "C-S-v", "S-Down", "Enter", "Space".
func (e Event) String() string {
	e = e.Normalize()

	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	if prefix := e.Modifiers.String(); prefix != "" {
		return prefix + "-" + name
	}
	return name
}

// Equals returns true if two events normalize to the same key press.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %q}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
