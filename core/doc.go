// Package core defines the shared value types of the traversal engine:
// directions, opaque label identifiers, the EdgeStep filter bundle,
// numeric budgets, tunable defaults, and the error taxonomy every other
// package wraps.
//
// core holds no backend connection and no graph storage of its own —
// unlike lvlath's core.Graph, the actual vertices and edges live in
// whatever backend.Backend a caller supplies (see package backend).
// core only describes the vocabulary traversal calls are expressed in.
package core
