package config

// Section accessor methods return snapshot structs. Mutating the
// returned struct does not modify the underlying configuration; use
// Config.Set to update values.

// EditorConfig provides typed access to editor settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab character.
	TabWidth int
}

// Editor returns the editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		TabWidth: c.GetInt("editor.tabWidth"),
	}
}

// ClipboardConfig provides typed access to clipboard settings.
type ClipboardConfig struct {
	// Mode selects the clipboard backend ("system" or "memory").
	Mode string
}

// Clipboard returns the clipboard settings.
func (c *Config) Clipboard() ClipboardConfig {
	return ClipboardConfig{
		Mode: c.GetString("clipboard.mode"),
	}
}

// KeymapConfig provides typed access to keymap settings.
type KeymapConfig struct {
	// Path is the user keymap file, empty for defaults only.
	Path string
}

// Keymap returns the keymap settings.
func (c *Config) Keymap() KeymapConfig {
	return KeymapConfig{
		Path: c.GetString("keymap.path"),
	}
}

// LogConfig provides typed access to logging settings.
type LogConfig struct {
	// File is the log destination, empty to disable logging.
	File string

	// Level is the minimum level ("trace" through "error").
	Level string
}

// Log returns the logging settings.
func (c *Config) Log() LogConfig {
	return LogConfig{
		File:  c.GetString("log.file"),
		Level: c.GetString("log.level"),
	}
}

// ThemeConfig provides typed access to theme colors, as hex strings.
type ThemeConfig struct {
	Background       string
	Foreground       string
	Selection        string
	StatusBackground string
	StatusForeground string
}

// Theme returns the theme colors.
func (c *Config) Theme() ThemeConfig {
	return ThemeConfig{
		Background:       c.GetString("theme.background"),
		Foreground:       c.GetString("theme.foreground"),
		Selection:        c.GetString("theme.selection"),
		StatusBackground: c.GetString("theme.statusBackground"),
		StatusForeground: c.GetString("theme.statusForeground"),
	}
}
