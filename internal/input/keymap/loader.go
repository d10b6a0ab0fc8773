package keymap

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Load merges bindings from a JSON document into the keymap. The
// document is a flat object mapping key specs to action names:
//
//	{
//	  "C-S-v": "editor.pasteExact",
//	  "F9": {"action": "file.reload", "description": "Reread the file"},
//	  "C-d": ""
//	}
//
// A string value binds the chord, an object value may carry a
// description, and an empty or null value removes the binding.
func (m *Keymap) Load(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("keymap: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("keymap: top level must be an object")
	}

	var loadErr error
	root.ForEach(func(k, v gjson.Result) bool {
		spec := k.String()
		switch {
		case v.Type == gjson.Null || (v.Type == gjson.String && v.String() == ""):
			loadErr = m.Unbind(spec)
		case v.Type == gjson.String:
			loadErr = m.Bind(spec, v.String())
		case v.IsObject():
			action := v.Get("action").String()
			if action == "" {
				loadErr = m.Unbind(spec)
				break
			}
			loadErr = m.Set(Binding{
				Spec:        spec,
				Action:      action,
				Description: v.Get("description").String(),
			})
		default:
			loadErr = fmt.Errorf("keymap: %q: value must be a string or object", spec)
		}
		return loadErr == nil
	})
	return loadErr
}

// LoadFile merges bindings from a JSON keymap file.
func (m *Keymap) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("keymap: read %s: %w", path, err)
	}
	if err := m.Load(data); err != nil {
		return fmt.Errorf("keymap: %s: %w", path, err)
	}
	return nil
}
