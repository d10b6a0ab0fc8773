package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts a Lua state to safe operations.
type Sandbox struct {
	L *lua.LState

	// allowed names the modules require may load.
	allowed map[string]bool
}

// NewSandbox creates a sandbox for the state.
func NewSandbox(L *lua.LState) *Sandbox {
	return &Sandbox{
		L: L,
		allowed: map[string]bool{
			"string": true,
			"table":  true,
			"math":   true,
		},
	}
}

// Allow whitelists a module name for require. The editor module is
// allowed this way after it is preloaded.
func (s *Sandbox) Allow(name string) {
	s.allowed[name] = true
}

// Allowed reports whether require may load the module.
func (s *Sandbox) Allowed(name string) bool {
	return s.allowed[name]
}

// Install applies the restrictions: loading code from disk or strings
// is removed, package search paths are cleared, and require only
// resolves whitelisted modules.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	// The original require still resolves package.preload and the
	// already-loaded safe libraries; the wrapper only gates names.
	originalRequire := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !s.allowed[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(originalRequire)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}
