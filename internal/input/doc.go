// Package input defines the action type produced by user input.
//
// Raw terminal events are parsed by the key subpackage into
// normalized key events, which the keymap subpackage translates into
// Actions. An Action names a dispatched command ("editor.copy",
// "file.save") and carries its arguments; the dispatcher executes it
// against the engine.
//
// # Usage
//
//	km := keymap.Default()
//
//	for ev := range keyEvents {
//	    if action, ok := km.Translate(ev); ok {
//	        dispatcher.Dispatch(action)
//	    }
//	}
package input
