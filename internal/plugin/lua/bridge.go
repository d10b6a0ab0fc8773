package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the module scripts require to reach the editor.
const ModuleName = "editor"

// Host is the editor surface exposed to Lua scripts. Offsets are byte
// offsets as the engine counts them; line numbers on the Lua side are
// one-based and translated here.
type Host interface {
	// Text returns the whole buffer.
	Text() string

	// Line returns the text of a zero-based line without its
	// terminator; false when the line does not exist.
	Line(row int) (string, bool)

	// LineCount returns the number of lines in the buffer.
	LineCount() int

	// Selection returns the primary selection.
	Selection() (anchor, head int64)

	// SetSelection replaces the primary selection.
	SetSelection(anchor, head int64) error

	// ClipboardGet returns the clipboard text.
	ClipboardGet() (string, error)

	// ClipboardSet replaces the clipboard text.
	ClipboardSet(text string) error

	// Run dispatches a named action, e.g. "editor.cut".
	Run(action string) error

	// Message shows a transient status line message.
	Message(text string)
}

// RegisterHost installs the editor module, both preloaded for require
// and as a global, and points print at the host's status line.
func RegisterHost(s *State, host Host) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	s.L.PreloadModule(ModuleName, func(L *lua.LState) int {
		L.Push(L.SetFuncs(L.NewTable(), hostFuncs(host)))
		return 1
	})
	s.sandbox.Allow(ModuleName)

	s.L.SetGlobal(ModuleName, s.L.SetFuncs(s.L.NewTable(), hostFuncs(host)))

	// Scripts have no stdout; print lands on the status line.
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		host.Message(strings.Join(parts, "\t"))
		return 0
	}))
	return nil
}

// hostFuncs builds the editor module functions over a host.
func hostFuncs(host Host) map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"text": func(L *lua.LState) int {
			L.Push(lua.LString(host.Text()))
			return 1
		},
		"line": func(L *lua.LState) int {
			text, ok := host.Line(L.CheckInt(1) - 1)
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(text))
			return 1
		},
		"line_count": func(L *lua.LState) int {
			L.Push(lua.LNumber(host.LineCount()))
			return 1
		},
		"selection": func(L *lua.LState) int {
			anchor, head := host.Selection()
			L.Push(lua.LNumber(anchor))
			L.Push(lua.LNumber(head))
			return 2
		},
		"set_selection": func(L *lua.LState) int {
			anchor, head := L.CheckInt64(1), L.CheckInt64(2)
			if err := host.SetSelection(anchor, head); err != nil {
				L.RaiseError("set_selection: %s", err.Error())
				return 0
			}
			return 0
		},
		"clipboard": func(L *lua.LState) int {
			text, err := host.ClipboardGet()
			if err != nil {
				L.Push(lua.LNil)
				L.Push(lua.LString(err.Error()))
				return 2
			}
			L.Push(lua.LString(text))
			return 1
		},
		"set_clipboard": func(L *lua.LState) int {
			if err := host.ClipboardSet(L.CheckString(1)); err != nil {
				L.Push(lua.LNil)
				L.Push(lua.LString(err.Error()))
				return 2
			}
			L.Push(lua.LTrue)
			return 1
		},
		"run": func(L *lua.LState) int {
			if err := host.Run(L.CheckString(1)); err != nil {
				L.Push(lua.LNil)
				L.Push(lua.LString(err.Error()))
				return 2
			}
			L.Push(lua.LTrue)
			return 1
		},
		"message": func(L *lua.LState) int {
			host.Message(L.CheckString(1))
			return 0
		},
	}
}
