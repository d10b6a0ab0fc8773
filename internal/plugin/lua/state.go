package lua

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds a single script or function call.
const DefaultExecutionTimeout = 5 * time.Second

// State wraps a sandboxed gopher-lua interpreter.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes
// callers; script execution itself stays single-threaded. A call that
// hits the execution timeout leaves the interpreter in an undefined
// state, so the app treats a timed-out init script as the end of
// scripting for the session.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	timeout time.Duration
	sandbox *Sandbox
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout bounds each DoFile, DoString, and Call. Zero
// disables the bound.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.timeout = d
	}
}

// NewState creates a sandboxed Lua state with the safe subset of the
// standard library.
func NewState(opts ...StateOption) (*State, error) {
	s := &State{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	if err := openSafeLibraries(L); err != nil {
		L.Close()
		return nil, err
	}

	s.L = L
	s.sandbox = NewSandbox(L)
	s.sandbox.Install()
	return s, nil
}

// openSafeLibraries opens base, table, string, and math. The package
// library loads first so preloaded modules resolve; io, os, and debug
// never load.
func openSafeLibraries(L *lua.LState) error {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return fmt.Errorf("opening lua lib %s: %w", lib.name, err)
		}
	}
	return nil
}

// InitPath returns the standard location of the user init script.
func InitPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "lineclip", "init.lua"), nil
}

// DoFile executes a Lua file, typically the user init script.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.bounded(func() error { return s.L.DoFile(path) })
}

// DoString executes Lua source.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.bounded(func() error { return s.L.DoString(code) })
}

// Call invokes a global Lua function. It returns an empty slice, not
// nil, when the function returns no values.
func (s *State) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStateClosed
	}

	fnVal := s.L.GetGlobal(fn)
	if fnVal == lua.LNil {
		return nil, fmt.Errorf("lua function %q not found", fn)
	}
	if fnVal.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
	}

	stackTop := s.L.GetTop()
	var results []lua.LValue
	err := s.bounded(func() error {
		s.L.Push(fnVal)
		for _, arg := range args {
			s.L.Push(arg)
		}
		if err := s.L.PCall(len(args), lua.MultRet, nil); err != nil {
			return err
		}

		nret := s.L.GetTop() - stackTop
		results = make([]lua.LValue, 0, nret)
		for i := 0; i < nret; i++ {
			results = append(results, s.L.Get(stackTop+i+1))
		}
		s.L.Pop(nret)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// bounded runs fn under the execution timeout with panic recovery.
func (s *State) bounded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}
	return fn()
}

// IsClosed reports whether Close has been called.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the interpreter. Later calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
