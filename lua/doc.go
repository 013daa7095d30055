// Package lua runs Lua analysis scripts against a decoded replay buffer.
//
// Scripts see two globals:
//   - ARGV, the arguments passed to Eval (1-indexed)
//   - replay, a read-only view of the buffer:
//     replay.session, replay.version, replay.count,
//     replay.rewindables() returning {name, type, x, y, z, fields} tables,
//     replay.samples(i, field [, element]) returning {t, v} tables
//
// Vectors and quaternions are tables with x, y, z (and w) keys. Only the
// base, table, string and math libraries are loaded.
//
// Example:
//
//	engine := lua.NewEngine(buf)
//	n, err := engine.Eval(`return #replay.samples(2, "Position")`, nil)
package lua
