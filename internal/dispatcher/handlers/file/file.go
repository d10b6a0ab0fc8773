// Package file provides handlers for file operations.
package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
)

// Action names for file operations.
const (
	ActionOpen      = "file.open"      // load a file into the buffer
	ActionSave      = "file.save"      // write the buffer to its path
	ActionSaveAs    = "file.saveAs"    // write the buffer to a new path
	ActionReload    = "file.reload"    // reread the file, discarding edits
	ActionQuit      = "file.quit"      // request exit, refused while modified
	ActionForceQuit = "file.forceQuit" // request exit, discarding changes
)

// Store abstracts disk access for file operations.
type Store interface {
	// ReadFile returns the content of a file.
	ReadFile(path string) (string, error)
	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path string, content string) error
}

// diskStore accesses files through the os package.
type diskStore struct{}

func (diskStore) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (diskStore) WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// contentLoader replaces buffer content wholesale. The engine facade
// satisfies it; handlers fall back to returning content via result
// data when the capability is absent.
type contentLoader interface {
	SetContent(content string) error
}

// diskEncoder restores the detected on-disk line ending. The engine
// facade satisfies it.
type diskEncoder interface {
	Encoded() string
}

// lineEndingSetter records the on-disk line ending for later encoding.
type lineEndingSetter interface {
	SetLineEnding(ending engine.LineEnding)
}

// Handler implements namespace-based file handling for the single
// buffer the editor edits.
type Handler struct {
	mu            sync.Mutex
	store         Store
	savedRevision engine.RevisionID
}

// NewHandler creates a file handler backed by the local disk.
func NewHandler() *Handler {
	return &Handler{store: diskStore{}}
}

// NewHandlerWithStore creates a file handler with a custom store.
func NewHandlerWithStore(store Store) *Handler {
	if store == nil {
		store = diskStore{}
	}
	return &Handler{store: store}
}

// Namespace returns the file namespace.
func (h *Handler) Namespace() string {
	return "file"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionOpen, ActionSave, ActionSaveAs, ActionReload, ActionQuit, ActionForceQuit:
		return true
	}
	return false
}

// HandleAction processes a file action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	switch action.Name {
	case ActionOpen:
		return h.open(action, ctx)
	case ActionSave:
		return h.save(ctx)
	case ActionSaveAs:
		return h.saveAs(action, ctx)
	case ActionReload:
		return h.reload(ctx)
	case ActionQuit:
		return h.quit(ctx)
	case ActionForceQuit:
		return h.forceQuit()
	default:
		return handler.Errorf("unknown file action: %s", action.Name)
	}
}

// MarkSaved records the revision that matches the on-disk content.
// The app calls this after loading a file at startup.
func (h *Handler) MarkSaved(rev engine.RevisionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.savedRevision = rev
}

// Modified returns true when the buffer has changed since the last
// save or load.
func (h *Handler) Modified(ctx *execctx.ExecutionContext) bool {
	if ctx.Engine == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return ctx.Engine.RevisionID() != h.savedRevision
}

// open loads a file into the buffer.
func (h *Handler) open(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	path := action.Args.Path
	if path == "" {
		return handler.Errorf("file.open: path required")
	}
	path = absPath(path)

	raw, err := h.store.ReadFile(path)
	if err != nil {
		return handler.Error(err)
	}

	loader, ok := ctx.Engine.(contentLoader)
	if !ok {
		// No load capability; hand the content to the caller.
		return handler.Success().
			WithData("content", raw).
			WithData("path", path).
			WithMessage("Opened: " + filepath.Base(path))
	}

	ending := engine.DetectLineEnding(raw)
	if err := loader.SetContent(normalizeNewlines(raw)); err != nil {
		return handler.Error(err)
	}
	if setter, ok := ctx.Engine.(lineEndingSetter); ok {
		setter.SetLineEnding(ending)
	}

	ctx.FilePath = path
	h.MarkSaved(ctx.Engine.RevisionID())

	return handler.Success().
		WithData("path", path).
		WithMessage("Opened: " + filepath.Base(path)).
		WithRedraw()
}

// save writes the buffer to its current path.
func (h *Handler) save(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}
	path := ctx.FilePath
	if path == "" {
		return handler.Errorf("file.save: no file path set")
	}

	if err := h.store.WriteFile(path, encodedText(ctx.Engine)); err != nil {
		return handler.Error(err)
	}
	h.MarkSaved(ctx.Engine.RevisionID())

	return handler.Success().WithMessage("Saved: " + filepath.Base(path))
}

// saveAs writes the buffer to a new path and adopts it.
func (h *Handler) saveAs(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}
	path := action.Args.Path
	if path == "" {
		return handler.Errorf("file.saveAs: path required")
	}
	path = absPath(path)

	if err := h.store.WriteFile(path, encodedText(ctx.Engine)); err != nil {
		return handler.Error(err)
	}

	ctx.FilePath = path
	h.MarkSaved(ctx.Engine.RevisionID())

	return handler.Success().
		WithData("path", path).
		WithMessage("Saved: " + filepath.Base(path))
}

// reload rereads the current file, discarding buffer edits.
func (h *Handler) reload(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}
	path := ctx.FilePath
	if path == "" {
		return handler.Errorf("file.reload: no file path set")
	}

	raw, err := h.store.ReadFile(path)
	if err != nil {
		return handler.Error(err)
	}

	loader, ok := ctx.Engine.(contentLoader)
	if !ok {
		return handler.Success().
			WithData("content", raw).
			WithData("reload", true).
			WithMessage("Reloaded: " + filepath.Base(path))
	}

	ending := engine.DetectLineEnding(raw)
	if err := loader.SetContent(normalizeNewlines(raw)); err != nil {
		return handler.Error(err)
	}
	if setter, ok := ctx.Engine.(lineEndingSetter); ok {
		setter.SetLineEnding(ending)
	}
	h.MarkSaved(ctx.Engine.RevisionID())

	return handler.Success().
		WithMessage("Reloaded: " + filepath.Base(path)).
		WithRedraw()
}

// quit requests application exit. Refused while the buffer has
// unsaved changes.
func (h *Handler) quit(ctx *execctx.ExecutionContext) handler.Result {
	if h.Modified(ctx) {
		return handler.Errorf("file.quit: unsaved changes (save first or use file.forceQuit)")
	}
	return handler.Success().WithData("quit", true)
}

// forceQuit requests application exit, discarding unsaved changes.
func (h *Handler) forceQuit() handler.Result {
	return handler.Success().WithData("quit", true)
}

// encodedText returns buffer content with the on-disk line ending
// restored when the engine supports it.
func encodedText(eng execctx.EngineInterface) string {
	if enc, ok := eng.(diskEncoder); ok {
		return enc.Encoded()
	}
	return eng.Text()
}

// absPath resolves a relative path against the working directory.
func absPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	return filepath.Join(cwd, path)
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
