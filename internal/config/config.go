package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// defaultDocument holds the built-in settings. User files override
// individual paths; anything absent falls back to these values.
const defaultDocument = `{
	"editor": {
		"tabWidth": 4
	},
	"clipboard": {
		"mode": "system"
	},
	"keymap": {
		"path": ""
	},
	"log": {
		"file": "",
		"level": "info"
	},
	"theme": {
		"background": "#1e1e2e",
		"foreground": "#cdd6f4",
		"selection": "#45475a",
		"statusBackground": "#313244",
		"statusForeground": "#cdd6f4"
	}
}`

// Config provides dot-path access to the merged settings document.
// Reads consult the user document first and fall back to the built-in
// defaults; writes land in the user document only.
type Config struct {
	mu       sync.RWMutex
	path     string
	user     []byte
	defaults []byte
}

// DefaultPath returns the standard location of the user settings file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "lineclip", "config.json"), nil
}

// New creates a Config carrying only the built-in defaults.
func New() *Config {
	return &Config{
		user:     []byte("{}"),
		defaults: []byte(defaultDocument),
	}
}

// Load reads the settings file at path. A missing file is not an
// error; the defaults serve until settings are written.
func Load(path string) (*Config, error) {
	c := New()
	c.path = path
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rereads the backing file, replacing the user document.
func (c *Config) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		c.user = []byte("{}")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config %s: %w", c.path, ErrInvalidDocument)
	}
	c.user = data
	return nil
}

// Save writes the user document back to the backing file, creating
// parent directories as needed.
func (c *Config) Save() error {
	c.mu.RLock()
	path := c.path
	data := pretty.Pretty(c.user)
	c.mu.RUnlock()

	if path == "" {
		return ErrNoPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Path returns the backing file path, empty for in-memory configs.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// get resolves a dot path against the user document, then defaults.
func (c *Config) get(path string) gjson.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if r := gjson.GetBytes(c.user, path); r.Exists() {
		return r
	}
	return gjson.GetBytes(c.defaults, path)
}

// Has reports whether a setting exists in either document.
func (c *Config) Has(path string) bool {
	return c.get(path).Exists()
}

// GetString returns the string at a dot path, "" when unset.
func (c *Config) GetString(path string) string {
	return c.get(path).String()
}

// GetInt returns the integer at a dot path, 0 when unset.
func (c *Config) GetInt(path string) int {
	return int(c.get(path).Int())
}

// GetBool returns the boolean at a dot path, false when unset.
func (c *Config) GetBool(path string) bool {
	return c.get(path).Bool()
}

// GetFloat returns the number at a dot path, 0 when unset.
func (c *Config) GetFloat(path string) float64 {
	return c.get(path).Float()
}

// Set writes a value at a dot path in the user document. The change
// is in memory until Save is called.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := sjson.SetBytes(c.user, path, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	c.user = updated
	return nil
}

// Delete removes a user override, restoring the default for the path.
func (c *Config) Delete(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := sjson.DeleteBytes(c.user, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	c.user = updated
	return nil
}

// Validate checks settings that the rest of the editor depends on.
func (c *Config) Validate() error {
	if mode := c.GetString("clipboard.mode"); mode != "system" && mode != "memory" {
		return fmt.Errorf("%w: clipboard.mode %q (want system or memory)", ErrInvalidValue, mode)
	}
	if w := c.GetInt("editor.tabWidth"); w < 1 || w > 16 {
		return fmt.Errorf("%w: editor.tabWidth %d (want 1-16)", ErrInvalidValue, w)
	}
	return nil
}
