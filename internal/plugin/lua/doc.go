// Package lua embeds a sandboxed Lua interpreter for user scripting.
//
// A State carries one gopher-lua interpreter restricted to pure
// computation: the base, package, table, string, and math libraries
// load, code loading from disk is removed, and require only resolves
// whitelisted modules. RegisterHost installs the "editor" module,
// giving scripts buffer text and line access, the primary selection,
// the clipboard, and command dispatch:
//
//	local editor = require("editor")
//	editor.set_clipboard("alpha\n")
//	editor.run("editor.paste")
//
// The app executes the user's init.lua once at startup; every
// execution is bounded by a wall-clock timeout.
package lua
