package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Canonical hyphen form: "C-c", "C-S-v", "S-Down", "A-Enter"
//   - Long form: "Ctrl+C", "Ctrl+Shift+V", "Shift+Down"
//   - Bare keys: "a", "A", "-", "Enter", "Space", "F5"
//
// The result is normalized, so Parse(spec).String() is the canonical
// spelling of spec.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// Strip canonical modifier prefixes: "C-", "S-", "A-", "M-".
	var mods Modifier
	rest := spec
	for len(rest) >= 2 && rest[1] == '-' {
		mod := modifierForLetter(rest[0])
		if mod == ModNone {
			break
		}
		mods = mods.With(mod)
		rest = rest[2:]
	}
	if rest == "" {
		return Event{}, fmt.Errorf("%w: %q has no key", ErrInvalidSpec, spec)
	}

	// Long form: all parts before the last "+" are modifier names.
	if len(rest) > 1 && strings.Contains(rest[:len(rest)-1], "+") {
		parts := strings.Split(rest, "+")
		keyPart := parts[len(parts)-1]
		if keyPart == "" {
			// Trailing "+" means the key itself is "+".
			keyPart = "+"
			parts = parts[:len(parts)-1]
		}
		for _, p := range parts[:len(parts)-1] {
			mod := ModifierFromName(p)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
			}
			mods = mods.With(mod)
		}
		return parseKeyPart(keyPart, mods, spec)
	}

	return parseKeyPart(rest, mods, spec)
}

// parseKeyPart resolves the key name or character after modifiers.
func parseKeyPart(part string, mods Modifier, spec string) (Event, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return Event{}, fmt.Errorf("%w: %q has no key", ErrInvalidSpec, spec)
	}

	if k := KeyFromName(part); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if strings.EqualFold(part, "space") {
		return NewRuneEvent(' ', mods), nil
	}

	runes := []rune(part)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidSpec, part, spec)
	}
	r := runes[0]

	// In chords, letter case folds into Shift.
	if !mods.IsEmpty() && unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods).Normalize(), nil
}

// MustParse parses a key specification and panics on error. Use only
// for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its
// canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
