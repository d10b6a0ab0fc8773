// Package app wires the editor together and runs its event loop:
// configuration, logging, text engine, clipboard, command dispatch,
// key bindings, Lua scripting, and the terminal UI.
package app

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lineclip/lineclip/internal/clipboard"
	"github.com/lineclip/lineclip/internal/config"
	"github.com/lineclip/lineclip/internal/dispatcher"
	"github.com/lineclip/lineclip/internal/dispatcher/execctx"
	"github.com/lineclip/lineclip/internal/dispatcher/handler"
	"github.com/lineclip/lineclip/internal/dispatcher/handlers/file"
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
	"github.com/lineclip/lineclip/internal/input/key"
	"github.com/lineclip/lineclip/internal/input/keymap"
	"github.com/lineclip/lineclip/internal/plugin/lua"
	"github.com/lineclip/lineclip/internal/ui"
)

// Options configures the application.
type Options struct {
	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// File is the file to open on startup. A missing file starts an
	// empty buffer saved under that name later.
	File string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogFile overrides the configured log file. Logging stays off
	// when neither names a file.
	LogFile string

	// InitScript overrides the default Lua init script location.
	InitScript string

	// ReadOnly opens the buffer read-only.
	ReadOnly bool

	// MemoryClipboard forces the session-local clipboard regardless
	// of configuration.
	MemoryClipboard bool
}

// Application is the central coordinator for the editor components.
type Application struct {
	opts Options

	config   *config.Config
	logger   zerolog.Logger
	closeLog func()

	engine  *engine.Engine
	clip    clipboard.Provider
	system  *dispatcher.System
	keys    *keymap.Keymap
	scripts *lua.State

	theme ui.Theme
	ui    *ui.UI

	message string
	running atomic.Bool
}

// New creates an application from options. The terminal is not touched
// yet; Run opens it.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	path := app.opts.ConfigPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logging
	level := app.opts.LogLevel
	if level == "" {
		level = cfg.Log().Level
	}
	logFile := app.opts.LogFile
	if logFile == "" {
		logFile = cfg.Log().File
	}
	logger, closeLog, err := NewLogger(level, logFile)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger = logger.With().Str("component", "app").Logger()
	app.closeLog = closeLog

	// 3. Engine, loading the startup file when one was given
	filePath, err := app.buildEngine()
	if err != nil {
		return err
	}

	// 4. Clipboard provider
	app.clip = app.selectClipboard()

	// 5. Dispatcher with the standard handlers
	app.system = dispatcher.NewSystem(dispatcher.DefaultSystemConfig())
	app.system.SetEngine(app.engine)
	app.system.SetCursors(app.engine)
	app.system.SetHistory(app.engine)
	app.system.SetClipboard(app.clip)
	app.system.SetReadOnly(app.opts.ReadOnly)
	app.system.Dispatcher().RegisterPostHook(&logHook{
		logger: logger.With().Str("component", "dispatcher").Logger(),
	})
	if filePath != "" {
		app.system.SetFilePath(filePath)
	}
	app.system.FileHandler().MarkSaved(app.engine.RevisionID())

	// 6. Key bindings: defaults, user file merged on top
	app.keys = keymap.Default()
	if path := cfg.Keymap().Path; path != "" {
		if err := app.keys.LoadFile(path); err != nil {
			app.logger.Warn().Err(err).Str("path", path).Msg("keymap file not loaded")
			app.message = "Keymap not loaded: " + err.Error()
		}
	}

	// 7. Scripting
	if err := app.startScripting(); err != nil {
		app.logger.Warn().Err(err).Msg("scripting unavailable")
	}

	// 8. Theme
	theme, err := ui.ThemeFromConfig(cfg.Theme())
	if err != nil {
		app.logger.Warn().Err(err).Msg("invalid theme, using defaults")
		theme = ui.DefaultTheme()
	}
	app.theme = theme

	return nil
}

// buildEngine creates the text engine, loading the startup file when
// one was given. Returns the absolute file path, empty for an unnamed
// buffer.
func (app *Application) buildEngine() (string, error) {
	opts := []engine.Option{engine.WithTabWidth(app.config.Editor().TabWidth)}
	if app.opts.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}

	if app.opts.File == "" {
		app.engine = engine.New(opts...)
		return "", nil
	}

	path, err := filepath.Abs(app.opts.File)
	if err != nil {
		return "", &InitError{Component: "file", Err: err}
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		app.engine = engine.New(opts...)
		app.message = "New file: " + filepath.Base(path)
		return path, nil
	}
	if err != nil {
		return "", &InitError{Component: "file", Err: err}
	}

	opts = append(opts, engine.WithContent(string(raw)))
	app.engine = engine.New(opts...)
	return path, nil
}

// selectClipboard picks the configured provider, falling back to the
// in-memory one when the system clipboard is unreachable.
func (app *Application) selectClipboard() clipboard.Provider {
	mode := app.config.Clipboard().Mode
	if app.opts.MemoryClipboard {
		mode = "memory"
	}
	if mode == "memory" {
		return clipboard.NewMemory()
	}
	if !clipboard.Available() {
		app.logger.Warn().Msg("system clipboard unavailable, using memory clipboard")
		app.message = "System clipboard unavailable, clipboard is session-local"
		return clipboard.NewMemory()
	}
	return clipboard.NewSystem()
}

// startScripting opens the Lua state and runs the init script if one
// exists. Script problems never stop the editor.
func (app *Application) startScripting() error {
	state, err := lua.NewState()
	if err != nil {
		return err
	}
	if err := lua.RegisterHost(state, &scriptHost{app: app}); err != nil {
		_ = state.Close()
		return err
	}
	app.scripts = state

	path := app.opts.InitScript
	if path == "" {
		p, err := lua.InitPath()
		if err != nil {
			return nil
		}
		path = p
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := app.scripts.DoFile(path); err != nil {
		app.logger.Warn().Err(err).Str("path", path).Msg("init script failed")
		app.message = "Init script error: " + err.Error()
	}
	return nil
}

// SetUI injects the screen host, replacing the process terminal the
// application would otherwise open. Must be called before Run.
func (app *Application) SetUI(u *ui.UI) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.ui = u
	return nil
}

// Run opens the terminal and drives the event loop until quit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.ui == nil {
		u, err := ui.NewTerminal(app.theme)
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.ui = u
	}
	if err := app.ui.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.ui.Fini()

	app.logger.Info().Str("file", app.system.FilePath()).Msg("editor started")
	app.render()
	return app.eventLoop()
}

// eventLoop feeds UI events through the keymap and dispatcher, one
// command at a time.
func (app *Application) eventLoop() error {
	for {
		if app.handleEvent(app.ui.PollEvent()) {
			app.logger.Info().Msg("editor stopped")
			return nil
		}
	}
}

// handleEvent processes one UI event. Returns true when the loop
// should exit.
func (app *Application) handleEvent(ev ui.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return true
	case ui.InterruptEvent:
		return true
	case ui.ResizeEvent:
		app.render()
	case ui.KeyEvent:
		return app.handleKey(ev.Key)
	}
	return false
}

// handleKey translates and dispatches one key press. Returns true when
// the editor should exit.
func (app *Application) handleKey(ev key.Event) bool {
	action, ok := app.keys.Translate(ev)
	if !ok {
		return false
	}

	app.message = ""
	if action.Name == file.ActionQuit && app.modified() {
		return app.promptSaveQuit()
	}

	result := app.system.Dispatch(action)
	if result.Message != "" {
		app.message = result.Message
	} else if result.IsError() {
		app.message = errorText(result)
	}
	if _, quit := result.GetData("quit"); quit && result.IsOK() {
		return true
	}
	app.render()
	return false
}

// promptSaveQuit asks what to do with unsaved changes before quitting.
// Returns true when the editor should exit.
func (app *Application) promptSaveQuit() bool {
	app.message = "Save changes? y = save and quit, n = discard, Esc = cancel"
	app.render()

	for {
		switch ev := app.ui.PollEvent().(type) {
		case nil:
			return true
		case ui.InterruptEvent:
			return true
		case ui.ResizeEvent:
			app.render()
		case ui.KeyEvent:
			switch {
			case ev.Key.IsEscape():
				app.message = ""
				app.render()
				return false
			case ev.Key.Rune == 'n' || ev.Key.Rune == 'N':
				return true
			case ev.Key.Rune == 'y' || ev.Key.Rune == 'Y' || ev.Key.IsEnter():
				result := app.system.Dispatch(input.NewAction(file.ActionSave))
				if result.IsError() {
					app.message = "Save failed: " + errorText(result)
					app.render()
					return false
				}
				return true
			}
		}
	}
}

// render repaints the screen from current editor state.
func (app *Application) render() {
	if app.ui == nil {
		return
	}
	app.ui.Render(app.engine, app.status())
}

// status assembles the status line model.
func (app *Application) status() ui.Status {
	return ui.Status{
		FileName: app.fileName(),
		Modified: app.modified(),
		ReadOnly: app.opts.ReadOnly,
		Message:  app.message,
	}
}

// fileName returns the display name for the status line.
func (app *Application) fileName() string {
	path := app.system.FilePath()
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// modified reports whether the buffer diverges from the last save.
func (app *Application) modified() bool {
	return app.system.FileHandler().Modified(execctx.New().WithEngine(app.engine))
}

// Shutdown wakes the event loop and makes Run return. Safe to call
// from any goroutine.
func (app *Application) Shutdown() {
	if app.ui != nil {
		app.ui.PostInterrupt()
	}
}

// Close releases resources once Run has returned.
func (app *Application) Close() {
	if app.scripts != nil {
		_ = app.scripts.Close()
	}
	if app.closeLog != nil {
		app.closeLog()
	}
}

// IsRunning returns true while the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the text engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// System returns the dispatcher system.
func (app *Application) System() *dispatcher.System {
	return app.system
}

// Keymap returns the active key bindings.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keys
}

// errorText renders a result error for the status line.
func errorText(result handler.Result) string {
	if result.Error != nil {
		return result.Error.Error()
	}
	return result.Message
}

// logHook records every dispatched action.
type logHook struct {
	logger zerolog.Logger
}

func (h *logHook) PostDispatch(action *input.Action, _ *execctx.ExecutionContext, result *handler.Result) {
	evt := h.logger.Debug()
	if result.IsError() {
		evt = h.logger.Warn().Err(result.Error)
	}
	evt.Str("action", action.Name).Str("status", result.Status.String()).Msg("dispatch")
}
