// Package pathtree implements the back-linked path tree (spec §4.7,
// component C7): an immutable forest of Node values, each holding a
// vertex id and an optional parent reference, that bidirectional
// searches use to record and join partial paths without quadratic
// storage.
//
// Nodes are value-equal when id AND the full parent chain match, but
// hash by id alone — an intentional under-hash (spec §9) that trades
// hash-bucket precision for O(1) hashing instead of O(depth). Structural
// equality resolves any resulting collisions; see Node.Equal.
package pathtree
