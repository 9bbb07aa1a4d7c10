// Package kbfs implements bounded breadth-first search (spec §4.5,
// component C5): KOut and KNeighbor, the depth-layered frontier
// expansions with capacity/limit bookkeeping that sit on top of
// package frontier.
//
// It also carries the bidirectional Paths and ShortestPath primitives
// (spec §11, supplemented from HugeGraph's traverser family) that
// exercise pathtree.Node.Join and travpath.PathSet, which KOut/KNeighbor
// alone never reach.
package kbfs
