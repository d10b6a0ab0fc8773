package dispatcher

import (
	"sort"
	"sync"

	"github.com/lineclip/lineclip/internal/dispatcher/handler"
)

// Registry maps exact action names to handlers. Multiple handlers may
// claim the same action; the highest priority one wins.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]handler.Handler
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string][]handler.Handler),
	}
}

// Register adds a handler for an action name. Handlers for the same
// action are kept sorted by priority, highest first; equal priorities
// keep registration order.
func (r *Registry) Register(actionName string, h handler.Handler) {
	if actionName == "" || h == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[actionName] = append(r.handlers[actionName], h)
	sort.SliceStable(r.handlers[actionName], func(i, j int) bool {
		return r.handlers[actionName][i].Priority() > r.handlers[actionName][j].Priority()
	})
}

// Unregister removes all handlers for an action name.
func (r *Registry) Unregister(actionName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, actionName)
}

// UnregisterHandler removes a specific handler for an action name.
func (r *Registry) UnregisterHandler(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handlers := r.handlers[actionName]
	for i, existing := range handlers {
		if existing == h {
			r.handlers[actionName] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
	if len(r.handlers[actionName]) == 0 {
		delete(r.handlers, actionName)
	}
}

// Get returns the highest priority handler for an action name, or nil.
func (r *Registry) Get(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := r.handlers[actionName]
	if len(handlers) == 0 {
		return nil
	}
	return handlers[0]
}

// GetAll returns all handlers for an action name in priority order.
func (r *Registry) GetAll(actionName string) []handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := r.handlers[actionName]
	if len(handlers) == 0 {
		return nil
	}
	result := make([]handler.Handler, len(handlers))
	copy(result, handlers)
	return result
}

// Has returns true if at least one handler is registered for the action.
func (r *Registry) Has(actionName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[actionName]) > 0
}

// List returns all registered action names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered action names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Clear removes all registered handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string][]handler.Handler)
}
