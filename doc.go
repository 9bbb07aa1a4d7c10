// Package traverser (voxelgraph) is a bounded, read-only graph traversal
// engine for Go: point it at any backend that can answer "give me vertex
// v's edges" and it answers k-out/k-neighbor frontier queries, neighbor
// similarity, and bidirectional path search — all under explicit depth,
// degree, capacity, and result-count budgets.
//
// voxelgraph never owns or mutates a graph. Storage, transactions, and
// index selection belong to whatever implements backend.Backend; this
// module only asks bounded questions of it and returns bounded answers.
// Invalid budgets are rejected with core.ErrParameter and an exhausted
// capacity fails with core.ErrCapacityExceeded; degree and limit budgets
// truncate the result instead of failing.
//
// Subpackages, in dependency order:
//
//	core/       — shared vocabulary: Direction, EdgeStep, Budgets, sentinel errors
//	guard/      — cross-parameter invariant checks, run before any traversal starts
//	schema/     — label/property name resolution (the Resolver collaborator)
//	backend/    — the Backend/EdgeQuery contract a caller's storage must satisfy
//	edgequery/  — translates an EdgeStep into a backend.EdgeQuery
//	edgestream/ — per-vertex bounded edge iteration: degree truncation, super-node rules
//	frontier/   — order-preserving vertex sets and one-hop bounded expansion
//	kbfs/       — K-Out, K-Neighbor, and bidirectional Paths/ShortestPath
//	simstruct/  — SameNeighbors, JaccardSimilarity, MultiNeighbors
//	pathtree/   — immutable parent-chain nodes used to reconstruct paths
//	travpath/   — Path/PathSet value types returned to callers
//	traverser/  — the façade wiring the above behind one type
//
// Construct a Traverser with traverser.New, backed by any
// backend.Backend implementation, and call its methods directly; the
// subpackages' exported functions (kbfs.KOut, simstruct.SameNeighbors,
// ...) can also be called on their own.
package traverser
