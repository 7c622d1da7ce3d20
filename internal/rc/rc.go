// Package rc runs the shell's optional Lua startup script.
//
// The rc file can register aliases and define a prompt hook:
//
//	alias("ll", "ls -la")
//	alias("quit", "exit")
//
//	function prompt(cwd, status)
//	    return cwd .. " $ "
//	end
//
// The prompt function, when defined, is consulted before each prompt is
// drawn and receives the current working directory and the success of
// the previous command. Errors inside it fall back to the static prompt.
//
// IMPORTANT: gopher-lua's LState is not goroutine-safe. A Runtime must
// only be used from the shell's single read-dispatch loop.
package rc

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// promptGlobal is the Lua global consulted for the prompt hook.
const promptGlobal = "prompt"

// Alias is one alias registration made by the rc file.
type Alias struct {
	Name      string
	Expansion string
}

// Runtime hosts the Lua state for the rc script.
type Runtime struct {
	L       *lua.LState
	aliases []Alias
}

// NewRuntime creates a sandboxed Lua runtime. The os, io and debug
// libraries are withheld; the rc file configures the shell, it does not
// script it.
func NewRuntime() *Runtime {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage}, // must be first
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			panic(err)
		}
	}

	// Loading code from disk or strings stays disabled even with the
	// base library open.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	r := &Runtime{L: L}
	L.SetGlobal("alias", L.NewFunction(r.luaAlias))
	return r
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	r.L.Close()
}

// RunFile executes the rc script at path. A missing file is not an
// error; the shell simply starts unconfigured.
func (r *Runtime) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading rc file %s: %w", path, err)
	}

	if err := r.L.DoString(string(data)); err != nil {
		return fmt.Errorf("rc file %s: %w", path, err)
	}
	return nil
}

// Aliases returns the alias registrations made so far, in order.
func (r *Runtime) Aliases() []Alias {
	return r.aliases
}

// HasPromptHook reports whether the rc file defined a prompt function.
func (r *Runtime) HasPromptHook() bool {
	return r.L.GetGlobal(promptGlobal).Type() == lua.LTFunction
}

// Prompt calls the rc file's prompt hook with the working directory and
// the success of the previous command. It returns ok=false when no hook
// is defined, the hook fails, or it returns a non-string.
func (r *Runtime) Prompt(cwd string, lastOK bool) (string, bool) {
	fn := r.L.GetGlobal(promptGlobal)
	if fn.Type() != lua.LTFunction {
		return "", false
	}

	err := r.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(cwd), lua.LBool(lastOK))
	if err != nil {
		return "", false
	}

	ret := r.L.Get(-1)
	r.L.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return "", false
	}
	return string(s), true
}

// luaAlias implements the alias(name, expansion) builtin.
func (r *Runtime) luaAlias(L *lua.LState) int {
	name := L.CheckString(1)
	expansion := L.CheckString(2)
	if name != "" && expansion != "" {
		r.aliases = append(r.aliases, Alias{Name: name, Expansion: expansion})
	}
	return 0
}
