// Package dispatcher routes actions to handlers and coordinates execution.
package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/input"
)

// RedrawFunc receives view update requests from dispatched actions.
// full means the whole view; otherwise lines lists the dirty lines.
type RedrawFunc func(full bool, lines []uint32)

// Dispatcher routes actions to handlers and coordinates execution.
// Dispatch is synchronous: the editor's event loop feeds one action at
// a time and acts on the result.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	router   *Router

	// Editor subsystems injected into every execution context
	engine    execctx.EngineInterface
	cursors   execctx.CursorsInterface
	history   execctx.HistoryInterface
	clipboard execctx.ClipboardInterface
	filePath  string
	readOnly  bool

	config  Config
	metrics *Metrics

	onRedraw RedrawFunc

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetEngine sets the text engine.
func (d *Dispatcher) SetEngine(engine execctx.EngineInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
}

// SetCursors sets the cursor manager.
func (d *Dispatcher) SetCursors(cursors execctx.CursorsInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursors = cursors
}

// SetHistory sets the undo/redo manager.
func (d *Dispatcher) SetHistory(history execctx.HistoryInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = history
}

// SetClipboard sets the clipboard provider.
func (d *Dispatcher) SetClipboard(clipboard execctx.ClipboardInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clipboard = clipboard
}

// SetFilePath sets the path of the file being edited.
func (d *Dispatcher) SetFilePath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filePath = path
}

// SetReadOnly marks the buffer as read-only for editing operations.
func (d *Dispatcher) SetReadOnly(readOnly bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly = readOnly
}

// SetOnRedraw sets the callback invoked when a dispatched action
// requests a view update.
func (d *Dispatcher) SetOnRedraw(fn RedrawFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onRedraw = fn
}

// Engine returns the text engine.
func (d *Dispatcher) Engine() execctx.EngineInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine
}

// Clipboard returns the clipboard provider.
func (d *Dispatcher) Clipboard() execctx.ClipboardInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.clipboard
}

// FilePath returns the path of the file being edited.
func (d *Dispatcher) FilePath() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.filePath
}

// Dispatch executes an action and returns its result.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	start := time.Now()

	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}

	ctx := d.buildContext(action)

	if !d.runPreHooks(&action, ctx) {
		return handler.CancelledWithMessage("cancelled by hook")
	}

	h := d.router.Route(action.Name)
	if h == nil {
		h = d.registry.Get(action.Name)
	}
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	var result handler.Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action, ctx)
	} else {
		result = h.Handle(action, ctx)
	}

	d.processResult(result)
	d.runPostHooks(&action, ctx, &result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(start), result.Status)
	}
	return result
}

// CanDispatch returns true if a handler exists for the action.
func (d *Dispatcher) CanDispatch(actionName string) bool {
	return d.router.CanRoute(actionName) || d.registry.Has(actionName)
}

// executeWithRecovery executes a handler, converting a panic into an
// error result.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = handler.Errorf("handler panic for %s: %v\n%s", action.Name, r, stack[:n])
			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()
	return h.Handle(action, ctx)
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext(action input.Action) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New().
		WithEngine(d.engine).
		WithCursors(d.cursors).
		WithHistory(d.history).
		WithClipboard(d.clipboard).
		WithFilePath(d.filePath).
		WithReadOnly(d.readOnly)

	count := action.Count
	if max := d.config.MaxRepeatCount; max > 0 && count > max {
		count = max
	}
	return ctx.WithCount(count)
}

// processResult forwards view update requests to the redraw callback.
func (d *Dispatcher) processResult(result handler.Result) {
	d.mu.RLock()
	fn := d.onRedraw
	d.mu.RUnlock()
	if fn == nil {
		return
	}
	if result.ViewUpdate.Redraw {
		fn(true, nil)
	} else if len(result.ViewUpdate.RedrawLines) > 0 {
		fn(false, result.ViewUpdate.RedrawLines)
	}
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn func(input.Action, *execctx.ExecutionContext) handler.Result) {
	d.registry.Register(actionName, handler.NewHandlerFunc(fn))
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (d *Dispatcher) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	d.router.RegisterNamespace(namespace, h)
}

// UnregisterHandler removes all handlers for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks runs all pre-dispatch hooks in registration order.
// Returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(action *input.Action, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks in registration order.
func (d *Dispatcher) runPostHooks(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector, nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
