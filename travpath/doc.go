// Package travpath defines Path and PathSet, the value types for
// completed traversal paths (spec §4.8, component C8).
//
// Path equality and hashing are defined over the vertex sequence only;
// an optional Crosspoint (the vertex where a bidirectional search's
// forward and backward frontiers met) never affects equality, so
// PathSet deduplicates by sequence regardless of how the path was
// found.
package travpath
