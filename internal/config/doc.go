// Package config handles application settings and session state.
//
// Settings live in a TOML file (config/General.toml next to the
// executable by default): language, key bindings, overlay geometry,
// discrimination timing and the watched game process. Missing files are
// not an error; LoadOrDefault writes the defaults back on first run.
//
// Volatile session state (last combo file, overlay visibility, step
// position) is kept separately in a small JSON document with
// path-addressed access, so settings edits never clobber runtime state
// and vice versa.
package config
