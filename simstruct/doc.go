// Package simstruct implements local structure comparisons over two (or
// more) vertices: SameNeighbors and JaccardSimilarity (spec §4.6,
// component C6), plus the supplemental N-ary MultiNeighbors (spec §11).
// All three build on edgestream.Open per vertex rather than on frontier
// expansion, since they never need an exclusion set or multi-layer
// bookkeeping — a single bounded neighbor list per vertex is enough.
package simstruct
