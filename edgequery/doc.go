// Package edgequery translates an core.EdgeStep filter bundle into a
// backend.EdgeQuery (spec §4.2, component C2). It supports property
// mode (any predicate, backend picks the index) and sort-key mode
// (predicates must exactly cover the edge label's primary sort key, for
// predicate pushdown), plus the COUNT aggregate variant used by
// degree/skipDegree accounting.
package edgequery
