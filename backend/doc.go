// Package backend declares the storage collaborator the engine consumes
// (spec §6): constructing an edge query, streaming its results, and
// running a COUNT aggregate. The real vertex/edge store, its
// transactions, and its index selection all live outside this module —
// backend only names the shape a store must expose.
//
// MemoryBackend is a small in-memory reference implementation used by
// this module's own tests and examples. It is grounded on lvlath's
// core.Graph (an adjacency map guarded by a single sync.RWMutex)
// repurposed to implement Backend instead of owning a mutable graph
// API of its own; it is not meant for production use.
package backend
