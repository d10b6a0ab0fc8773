package dispatcher

import (
	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/dispatcher/handlers/editor"
	"github.com/lineclip/lineclip/internal/dispatcher/handlers/file"
	"github.com/lineclip/lineclip/internal/input"
)

// System bundles the dispatcher with the standard handler set. It is
// the entry point applications embed: create it, inject the editor
// subsystems, dispatch actions.
type System struct {
	dispatcher  *Dispatcher
	fileHandler *file.Handler
}

// SystemConfig holds configuration for the dispatcher system.
type SystemConfig struct {
	// Dispatcher is the underlying dispatcher configuration.
	Dispatcher Config

	// Native overrides the built-in native clipboard operations.
	// Nil uses the engine-backed implementation.
	Native editor.Native

	// Store overrides disk access for file operations. Nil uses the
	// local disk.
	Store file.Store
}

// DefaultSystemConfig returns a configuration with sensible defaults.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		Dispatcher: DefaultConfig(),
	}
}

// NewSystem creates a dispatcher system with the standard handlers
// registered: the editor namespace (clipboard, insert, motion,
// history) and the file namespace (open, save, quit).
func NewSystem(config SystemConfig) *System {
	s := &System{
		dispatcher:  New(config.Dispatcher),
		fileHandler: file.NewHandlerWithStore(config.Store),
	}

	s.dispatcher.RegisterNamespace("editor", editor.NewCombinedHandlerWithNative(config.Native))
	s.dispatcher.RegisterNamespace("file", s.fileHandler)
	return s
}

// NewSystemWithDefaults creates a system with default configuration.
func NewSystemWithDefaults() *System {
	return NewSystem(DefaultSystemConfig())
}

// SetEngine sets the text engine.
func (s *System) SetEngine(engine execctx.EngineInterface) {
	s.dispatcher.SetEngine(engine)
}

// SetCursors sets the cursor manager.
func (s *System) SetCursors(cursors execctx.CursorsInterface) {
	s.dispatcher.SetCursors(cursors)
}

// SetHistory sets the undo/redo manager.
func (s *System) SetHistory(history execctx.HistoryInterface) {
	s.dispatcher.SetHistory(history)
}

// SetClipboard sets the clipboard provider.
func (s *System) SetClipboard(clipboard execctx.ClipboardInterface) {
	s.dispatcher.SetClipboard(clipboard)
}

// SetFilePath sets the path of the file being edited.
func (s *System) SetFilePath(path string) {
	s.dispatcher.SetFilePath(path)
}

// FilePath returns the current file path, empty for an unnamed buffer.
func (s *System) FilePath() string {
	return s.dispatcher.FilePath()
}

// SetReadOnly marks the buffer read-only.
func (s *System) SetReadOnly(readOnly bool) {
	s.dispatcher.SetReadOnly(readOnly)
}

// SetOnRedraw sets the redraw callback.
func (s *System) SetOnRedraw(fn RedrawFunc) {
	s.dispatcher.SetOnRedraw(fn)
}

// Dispatch executes an action and returns its result. Results carrying
// a "path" data entry update the dispatcher's file path, so saveAs and
// open keep later saves pointed at the right file.
func (s *System) Dispatch(action input.Action) handler.Result {
	result := s.dispatcher.Dispatch(action)
	if path := result.GetDataString("path"); path != "" && result.IsOK() {
		s.dispatcher.SetFilePath(path)
	}
	return result
}

// DispatchBatch executes actions in sequence. Stops on first error
// when stopOnError is set.
func (s *System) DispatchBatch(actions []input.Action, stopOnError bool) []handler.Result {
	results := make([]handler.Result, 0, len(actions))
	for _, action := range actions {
		result := s.Dispatch(action)
		results = append(results, result)
		if stopOnError && result.IsError() {
			break
		}
	}
	return results
}

// CanDispatch returns true if a handler exists for the action.
func (s *System) CanDispatch(actionName string) bool {
	return s.dispatcher.CanDispatch(actionName)
}

// FileHandler returns the file handler, for saved-revision bookkeeping.
func (s *System) FileHandler() *file.Handler {
	return s.fileHandler
}

// Dispatcher returns the underlying dispatcher.
func (s *System) Dispatcher() *Dispatcher {
	return s.dispatcher
}
