// Package frontier implements the order-preserving vertex set used to
// track BFS layers, and the one-hop bounded expansion built on top of
// edgestream (spec §4.4, component C4).
package frontier
