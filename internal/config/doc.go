// Package config reads and writes the editor settings file.
//
// Settings live in one JSON document (~/.config/lineclip/config.json)
// addressed by dot path. Reads consult the user document first and
// fall back to built-in defaults, so a settings file only needs the
// values it changes. Writes go through Set into the user document and
// reach disk on Save.
//
//	cfg, err := config.Load(path)
//	width := cfg.Editor().TabWidth
//	cfg.Set("clipboard.mode", "memory")
package config
