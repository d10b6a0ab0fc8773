package keymap

// Binding maps a key chord to a dispatched action.
type Binding struct {
	// Spec is the canonical chord form, e.g. "C-S-v".
	Spec string

	// Action is the action name dispatched when the chord is
	// pressed, e.g. "editor.pasteExact".
	Action string

	// Description is a short label for help output.
	Description string
}
