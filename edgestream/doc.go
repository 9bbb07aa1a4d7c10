// Package edgestream wraps a backend edge iterator and enforces
// per-vertex degree truncation and super-node suppression (spec §4.3,
// component C3).
//
// Super-node suppression is all-or-nothing: once the underlying stream
// reaches its skipDegree-th element, the Stream yields nothing at all,
// never a prefix (spec §9, "Super-node 'all or nothing'"). Detecting
// that requires looking ahead to skipDegree regardless of how many
// edges the caller ultimately wants, so Open prescans up to
// max(degree, skipDegree) elements once, then exposes the already
// degree/skipDegree resolved result as a single-pass cursor. This keeps
// the "lazy, no full-neighborhood materialization" property the spec
// asks for whenever skipDegree is disabled or the true degree is below
// it, while still enforcing the all-or-nothing invariant exactly when
// skipDegree is in effect.
package edgestream
