package clipboard

import "sync"

// Memory is a process-local Provider. It backs tests and serves as the
// fallback when the system clipboard is unavailable.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory constructs an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored content normalized to LF.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return normalize(m.text), nil
}

// Set replaces the stored content.
func (m *Memory) Set(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

var _ Provider = (*Memory)(nil)
