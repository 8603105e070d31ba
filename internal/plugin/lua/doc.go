// Package lua executes combo definition scripts in a sandboxed Lua
// interpreter. Scripts call the exposed combo module to declare a
// title and a sequence of tap and hold steps, which the loader turns
// into a combo.File.
//
// The interpreter runs with a reduced standard library. Scripts have
// no access to the filesystem, the OS, or module loading; only the
// base, table, string, and math libraries are available.
package lua
