// Package dispatcher routes input actions to handlers and coordinates execution.
//
// The dispatcher is the central hub that connects user input to editor
// functionality. It receives actions from the input system and routes them to
// handlers based on action names and namespace prefixes.
//
// # Architecture
//
// The dispatcher uses a two-tier routing system:
//
//  1. Namespace Router: Routes actions by namespace prefix (e.g. "editor.copy"
//     is routed to the "editor" namespace handler). This provides O(1) lookup
//     for namespaced actions.
//
//  2. Handler Registry: Maps exact action names to handlers. Multiple handlers
//     can be registered for the same action, sorted by priority.
//
// # Handler Execution
//
// When an action is dispatched:
//
//  1. An ExecutionContext is built with references to editor subsystems
//  2. Pre-dispatch hooks are called (can modify or cancel the action)
//  3. The router finds the appropriate handler
//  4. The handler is executed (with optional panic recovery)
//  5. View updates in the result are forwarded to the redraw callback
//  6. Post-dispatch hooks are called
//  7. Metrics are recorded (if enabled)
//
// # Handlers
//
// Handlers implement the Handler interface:
//
//	type Handler interface {
//	    Handle(action input.Action, ctx *execctx.ExecutionContext) Result
//	    CanHandle(actionName string) bool
//	    Priority() int
//	}
//
// For namespace-based handlers, implement NamespaceHandler and register with
// RegisterNamespace:
//
//	d := dispatcher.NewWithDefaults()
//	d.SetEngine(eng)
//	d.SetCursors(eng)
//	d.SetHistory(eng)
//	d.SetClipboard(clip)
//	d.RegisterNamespace("editor", editor.NewCombinedHandler())
//
//	result := d.Dispatch(input.NewAction("editor.copy"))
//
// # Hooks
//
// Pre-dispatch hooks run before routing and may cancel or rewrite the action.
// Post-dispatch hooks observe the result, e.g. for logging:
//
//	d.RegisterPostHook(dispatcher.PostDispatchFunc(
//	    func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
//	        log.Debug().Str("action", action.Name).Msg("dispatched")
//	    }))
package dispatcher
