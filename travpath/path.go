package travpath

import (
	"fmt"
	"strings"

	"github.com/voxelgraph/traverser/frontier"
)

// Path is an ordered sequence of vertex ids plus an optional crosspoint
// used by bidirectional searches (spec §3/§4.8). Equality and hashing
// are defined over Vertices only; Crosspoint never participates.
type Path[ID comparable] struct {
	Vertices   []ID
	Crosspoint *ID
}

// New builds a Path from vertices with no crosspoint.
func New[ID comparable](vertices ...ID) Path[ID] {
	return Path[ID]{Vertices: append([]ID(nil), vertices...)}
}

// WithCrosspoint returns a copy of p with Crosspoint set to cp.
func (p Path[ID]) WithCrosspoint(cp ID) Path[ID] {
	p.Crosspoint = &cp
	return p
}

// Reverse returns a copy of p with its vertex sequence reversed. p's own
// Vertices is left untouched: WithCrosspoint only copies the struct, not
// the backing array, so two Paths can share one — mutating in place
// would silently corrupt whichever other Path still holds it.
func (p Path[ID]) Reverse() Path[ID] {
	out := make([]ID, len(p.Vertices))
	for i, v := range p.Vertices {
		out[len(out)-1-i] = v
	}
	p.Vertices = out
	return p
}

// OwnedBy reports whether source equals the smallest vertex along p
// under less, the ownership rule used to deduplicate paths discovered
// from multiple roots (spec §3).
func (p Path[ID]) OwnedBy(source ID, less func(a, b ID) bool) bool {
	if len(p.Vertices) == 0 {
		return false
	}
	min := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if less(v, min) {
			min = v
		}
	}
	return min == source
}

// Key returns a string uniquely determined by p's vertex sequence,
// suitable for deduplicating paths in a map. It assumes fmt's %v
// rendering of ID is injective enough to distinguish distinct ids,
// which holds for every ID type this module exercises (strings, ints,
// small structs).
func (p Path[ID]) Key() string {
	var b strings.Builder
	for i, v := range p.Vertices {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	return b.String()
}

// Equal reports whether p and other have the same vertex sequence.
// Crosspoint is ignored.
func (p Path[ID]) Equal(other Path[ID]) bool {
	if len(p.Vertices) != len(other.Vertices) {
		return false
	}
	for i := range p.Vertices {
		if p.Vertices[i] != other.Vertices[i] {
			return false
		}
	}
	return true
}

// ToMap renders p in the engine's serialization shape:
// {"objects": [id, ...]}, or {"crosspoint": id, "objects": [id, ...]}
// when withCrossPoint is true and p.Crosspoint is set.
func (p Path[ID]) ToMap(withCrossPoint bool) map[string]any {
	m := map[string]any{"objects": append([]ID(nil), p.Vertices...)}
	if withCrossPoint && p.Crosspoint != nil {
		m["crosspoint"] = *p.Crosspoint
	}
	return m
}

// PathSet is a set of Path, unique by vertex sequence (spec §4.8).
type PathSet[ID comparable] struct {
	paths []Path[ID]
	seen  map[string]struct{}
}

// NewPathSet returns an empty PathSet.
func NewPathSet[ID comparable]() *PathSet[ID] {
	return &PathSet[ID]{seen: make(map[string]struct{})}
}

// Add inserts p if no member already has the same vertex sequence, and
// reports whether it was newly added. Crosspoint is not considered:
// Path(c1, v) and Path(c2, v) are the same member for any c1, c2.
func (s *PathSet[ID]) Add(p Path[ID]) bool {
	key := p.Key()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.paths = append(s.paths, p)
	return true
}

// Paths returns the member paths in insertion order. The returned slice
// is owned by the caller.
func (s *PathSet[ID]) Paths() []Path[ID] {
	out := make([]Path[ID], len(s.paths))
	copy(out, s.paths)
	return out
}

// Len reports the number of member paths.
func (s *PathSet[ID]) Len() int { return len(s.paths) }

// Vertices returns the union of vertices appearing in any member path,
// in first-appearance order, regardless of insertion order of the
// paths themselves.
func (s *PathSet[ID]) Vertices() frontier.Frontier[ID] {
	out := frontier.New[ID]()
	for _, p := range s.paths {
		for _, v := range p.Vertices {
			out.Add(v)
		}
	}
	return out
}
