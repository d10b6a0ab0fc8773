package dispatcher

import (
	"strings"
	"sync"

	"github.com/lineclip/lineclip/internal/dispatcher/handler"
)

// Router routes actions to namespace handlers. Action names use the
// form "namespace.action", e.g. "editor.copy" or "file.save".
type Router struct {
	mu         sync.RWMutex
	namespaces map[string]handler.NamespaceHandler
	fallback   handler.Handler
}

// NewRouter creates a new empty router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for a namespace. An empty
// namespace uses the handler's own Namespace().
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	if h == nil {
		return
	}
	if namespace == "" {
		namespace = h.Namespace()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes the handler for a namespace.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// SetFallback sets a handler used when no namespace matches.
func (r *Router) SetFallback(h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Route returns a handler for the action name, or nil. The namespace
// handler is consulted first; an action it declines falls through to
// the fallback.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	namespace := extractNamespace(actionName)
	if namespace != "" {
		if h, ok := r.namespaces[namespace]; ok && h.CanHandle(actionName) {
			return handler.NewNamespaceAdapter(h)
		}
	}
	return r.fallback
}

// CanRoute returns true if Route would return a handler for the action.
func (r *Router) CanRoute(actionName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	namespace := extractNamespace(actionName)
	if namespace != "" {
		if h, ok := r.namespaces[namespace]; ok && h.CanHandle(actionName) {
			return true
		}
	}
	return r.fallback != nil
}

// GetNamespaceHandler returns the handler registered for a namespace.
func (r *Router) GetNamespaceHandler(namespace string) handler.NamespaceHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namespaces[namespace]
}

// HasNamespace returns true if a handler is registered for the namespace.
func (r *Router) HasNamespace(namespace string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.namespaces[namespace]
	return ok
}

// Namespaces returns all registered namespace names.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	return names
}

// extractNamespace returns the namespace part of an action name, or ""
// when the name has no namespace separator.
func extractNamespace(actionName string) string {
	idx := strings.Index(actionName, ".")
	if idx <= 0 {
		return ""
	}
	return actionName[:idx]
}

// ExtractActionName returns the action part of a namespaced name.
// "editor.copy" yields "copy"; a name without a namespace is returned
// unchanged.
func ExtractActionName(fullName string) string {
	idx := strings.Index(fullName, ".")
	if idx < 0 || idx == len(fullName)-1 {
		return fullName
	}
	return fullName[idx+1:]
}

// BuildActionName joins a namespace and action into a full action name.
func BuildActionName(namespace, action string) string {
	if namespace == "" {
		return action
	}
	return namespace + "." + action
}
