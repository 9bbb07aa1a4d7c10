// Package guard implements the pure cross-parameter validators of the
// traversal engine (spec §4.1, component C1). Every check here fails
// synchronously, before any backend call, with a core.ParameterError or
// core.SchemaMismatchError naming the offending field.
package guard
