// Package clipboard provides access to the system clipboard with an
// in-memory implementation for tests and headless environments.
package clipboard

import "strings"

// Provider reads and writes textual clipboard data.
type Provider interface {
	// Get returns the clipboard content with line endings normalized to LF.
	Get() (string, error)
	// Set replaces the clipboard content.
	Set(text string) error
}

// normalize converts CRLF and lone CR to LF. External applications hand
// over platform line endings; everything downstream expects LF.
func normalize(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
