// Package schema declares the schema collaborator the engine consumes
// (spec §6): resolving a human-readable label or property name to its
// opaque id, and back. Implementations typically cache these lookups
// against a real schema service; Resolver itself is read-only.
//
// MemoryResolver is a small in-process implementation used by this
// module's own tests and examples, grounded the same way
// backend.MemoryBackend stands in for a real storage backend.
package schema
