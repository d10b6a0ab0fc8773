package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lineclip/lineclip/internal/input"
	"github.com/lineclip/lineclip/internal/input/key"
)

// insertTextAction receives printable characters with no binding.
const insertTextAction = "editor.insertText"

// Keymap maps canonical key chords to actions. All methods are safe
// for concurrent use.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[string]Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[string]Binding)}
}

// Bind maps a key spec to an action name. The spec is canonicalized,
// so "ctrl+shift+v" and "C-S-v" address the same binding.
func (m *Keymap) Bind(spec, action string) error {
	return m.Set(Binding{Spec: spec, Action: action})
}

// Set installs a binding, replacing any existing binding for the same
// chord.
func (m *Keymap) Set(b Binding) error {
	if b.Action == "" {
		return fmt.Errorf("keymap: empty action for %q", b.Spec)
	}
	ev, err := key.Parse(b.Spec)
	if err != nil {
		return fmt.Errorf("keymap: bind %q: %w", b.Spec, err)
	}
	b.Spec = ev.String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings[b.Spec] = b
	return nil
}

// mustSet installs a built-in binding, where a bad spec is a
// programming error.
func (m *Keymap) mustSet(spec, action, description string) {
	if err := m.Set(Binding{Spec: spec, Action: action, Description: description}); err != nil {
		panic(err)
	}
}

// Unbind removes the binding for a key spec. Unbinding a chord that
// is not bound is not an error.
func (m *Keymap) Unbind(spec string) error {
	canonical, err := key.NormalizeSpec(spec)
	if err != nil {
		return fmt.Errorf("keymap: unbind %q: %w", spec, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bindings, canonical)
	return nil
}

// Lookup returns the binding for a key event.
func (m *Keymap) Lookup(ev key.Event) (Binding, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bindings[ev.String()]
	return b, ok
}

// LookupSpec returns the binding for a key spec.
func (m *Keymap) LookupSpec(spec string) (Binding, bool) {
	canonical, err := key.NormalizeSpec(spec)
	if err != nil {
		return Binding{}, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bindings[canonical]
	return b, ok
}

// Translate converts a key event into the action to dispatch. Bound
// chords produce their action; unbound printable characters produce
// an insert of the character. The second return is false when the
// event maps to nothing.
func (m *Keymap) Translate(ev key.Event) (input.Action, bool) {
	if b, ok := m.Lookup(ev); ok {
		return input.NewAction(b.Action), true
	}
	if ev.IsChar() {
		ev = ev.Normalize()
		return input.NewAction(insertTextAction).WithText(string(ev.Rune)), true
	}
	return input.Action{}, false
}

// Bindings returns all bindings sorted by chord.
func (m *Keymap) Bindings() []Binding {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Binding, 0, len(m.bindings))
	for _, b := range m.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spec < out[j].Spec })
	return out
}

// Len returns the number of bindings.
func (m *Keymap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bindings)
}

// Merge copies every binding from other into this keymap, overwriting
// chords bound in both.
func (m *Keymap) Merge(other *Keymap) {
	if other == nil {
		return
	}
	bindings := other.Bindings()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range bindings {
		m.bindings[b.Spec] = b
	}
}

// Clone returns an independent copy of the keymap.
func (m *Keymap) Clone() *Keymap {
	clone := New()
	clone.Merge(m)
	return clone
}
