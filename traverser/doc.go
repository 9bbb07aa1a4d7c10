// Package traverser wires every component package (core, guard,
// backend, schema, edgequery, edgestream, frontier, kbfs, simstruct,
// pathtree, travpath) behind one Traverser type, the way lvlath/graph
// sits as a thin top-level package over core. Most callers only ever
// import this package; the leaves remain independently usable.
//
// Traverser also carries the one piece of logging this module has: an
// optional *log.Logger, consulted when a façade call fails with
// CapacityExceeded, BackendError, or SchemaMismatch, and by
// KOutByLabelSortKey to record its resolved step; never inside the leaf
// packages.
package traverser
