package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System reads and writes the operating system clipboard.
type System struct{}

// NewSystem constructs a system clipboard provider.
func NewSystem() *System {
	return &System{}
}

// Available reports whether the platform has a usable system clipboard.
// Headless Linux without xclip/xsel/wl-clipboard reports false.
func Available() bool {
	return !clipboard.Unsupported
}

// Get returns the system clipboard content normalized to LF.
func (s *System) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return normalize(text), nil
}

// Set replaces the system clipboard content.
func (s *System) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

var _ Provider = (*System)(nil)
