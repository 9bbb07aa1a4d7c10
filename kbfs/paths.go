package kbfs

import (
	"context"
	"fmt"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/guard"
	"github.com/voxelgraph/traverser/pathtree"
	"github.com/voxelgraph/traverser/travpath"
)

// side tracks one direction of a bidirectional search: frontier holds
// the newest layer's path-tree nodes, visited holds every node ever
// reached on this side (first-found wins, so each vertex gets exactly
// one parent chain).
type side[ID comparable] struct {
	frontier map[ID]*pathtree.Node[ID]
	visited  map[ID]*pathtree.Node[ID]
}

func newSide[ID comparable](roots frontier.Frontier[ID]) *side[ID] {
	s := &side[ID]{frontier: map[ID]*pathtree.Node[ID]{}, visited: map[ID]*pathtree.Node[ID]{}}
	for _, id := range roots.Slice() {
		n := pathtree.New(id)
		s.frontier[id] = n
		s.visited[id] = n
	}
	return s
}

func (s *side[ID]) visitedIDs() frontier.Frontier[ID] {
	f := frontier.New[ID]()
	for id := range s.visited {
		f.Add(id)
	}
	return f
}

// expandOneHop takes s's current frontier one hop further. Like KOut, it
// never forwards its own visited-count budget as frontier.Expand's
// query-building capacity — see kout.go for why that parameter must
// stay decoupled from a caller's overall budget.
func (s *side[ID]) expandOneHop(ctx context.Context, b backend.Backend[ID], step core.EdgeStep) error {
	excluded := s.visitedIDs()
	next := map[ID]*pathtree.Node[ID]{}
	for id, node := range s.frontier {
		if err := ctx.Err(); err != nil {
			return err
		}
		reached, err := frontier.Expand[ID](ctx, b, frontier.New(id), step, &excluded, core.NoLimit, core.NoLimit)
		if err != nil {
			return err
		}
		for _, nid := range reached.Slice() {
			if _, already := s.visited[nid]; already {
				continue
			}
			child := node.Child(nid)
			next[nid] = child
			s.visited[nid] = child
			excluded.Add(nid)
		}
	}
	s.frontier = next
	return nil
}

// collectCrosspoints checks newSide's newest layer against the other
// side's full visited set, adding any resulting path to result (spec
// §4.7's join primitive: the concrete consumer of pathtree.Node.Join).
//
// Both sides' chains include the meeting vertex itself, so joining a
// node with the other side's node for the same id would duplicate that
// vertex and trip Join's loop guard (both chains trivially "share" it).
// Instead each join uses the other side's *parent* of the meeting
// vertex, so the shared vertex appears exactly once in the result.
// newFrontierIsForward says which side just expanded, so the joined
// sequence is always canonicalized forward-root-to-backward-root.
//
// less, when non-nil, enforces the path-ownership rule (spec §3): a
// multi-root search on both sides can discover the same undirected path
// twice, once per orientation (forward root A to backward root B, and
// forward root B to backward root A), since the two orientations are
// different vertex sequences and PathSet.Add dedups only by sequence.
// Keeping only the orientation whose first vertex is the path's own
// minimum under less collapses each pair to the single canonical
// representative spec §8 tests ("for all Paths p, p.ownedBy(min(p.vertices))
// is true"). Single-root callers (ShortestPath) pass nil: with exactly
// one root per side no such duplicate can arise, so there is nothing to
// filter.
func collectCrosspoints[ID comparable](newSide, otherSide *side[ID], newFrontierIsForward bool, less func(a, b ID) bool, result *travpath.PathSet[ID], limit int) {
	for id, node := range newSide.frontier {
		other, ok := otherSide.visited[id]
		if !ok {
			continue
		}
		var joined []ID
		if newFrontierIsForward {
			joined = node.Join(other.Parent())
		} else {
			joined = other.Join(node.Parent())
		}
		if len(joined) == 0 {
			continue
		}
		p := travpath.New(joined...).WithCrosspoint(id)
		if less != nil && !p.OwnedBy(p.Vertices[0], less) {
			continue
		}
		result.Add(p)
		if limit != core.NoLimit && result.Len() >= limit {
			return
		}
	}
}

// Paths runs a bidirectional bounded search between sources and
// targets, alternating one-hop expansions on each side and recording a
// Path every time a forward node and a backward node meet at the same
// vertex (spec §11, supplemental: the textbook consumer of C7's join
// and C8's PathSet, generalizing the triangle-graph scenarios in
// spec §8 beyond single-source k-out/k-neighbor).
//
// maxDepth bounds hops on *each* side (so a path of up to 2*maxDepth
// edges can be found). pathsLimit stops the search once that many
// distinct paths have been recorded; core.NoLimit means unbounded.
// capacity bounds the combined number of vertices visited across both
// sides, the same role it plays in KOut; exceeding it before maxDepth
// fails with core.ErrCapacityExceeded.
//
// less orders ID and, when non-nil, enables the path-ownership dedup
// rule (spec §3) across collectCrosspoints' multi-root candidates — see
// its doc comment. Pass nil when sources and targets are each a single
// root (e.g. from ShortestPath), where no ownership duplicate can arise.
//
// Before any expansion, CheckCapacityAgainstAccess (spec §4.1's
// checkCapacity validator) rejects outright a capacity already smaller
// than the combined initial root count — the one place in this package
// where that validator has genuine bite, since sources/targets can each
// carry more than one root (KOut's equivalent check would always pass
// trivially, as it starts from exactly one vertex).
func Paths[ID comparable](ctx context.Context, b backend.Backend[ID], sources, targets frontier.Frontier[ID], step core.EdgeStep, maxDepth, pathsLimit, capacity int, less func(a, b ID) bool) (*travpath.PathSet[ID], error) {
	if err := guard.CheckDepth(maxDepth); err != nil {
		return nil, err
	}
	if err := guard.CheckLimit(pathsLimit); err != nil {
		return nil, err
	}
	if err := guard.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	if err := guard.CheckCapacityAgainstAccess(capacity, sources.Len()+targets.Len(), "sources+targets"); err != nil {
		return nil, err
	}
	if err := guard.ValidateEdgeStep(step, core.NoLimit, false); err != nil {
		return nil, err
	}

	forward := newSide[ID](sources)
	backward := newSide[ID](targets)
	result := travpath.NewPathSet[ID]()

	visited := func() int { return len(forward.visited) + len(backward.visited) }
	checkCapacity := func(layer int) error {
		if capacity != core.NoLimit && visited() > capacity {
			return fmt.Errorf("%w: exhausted after layer %d of %d", core.ErrCapacityExceeded, layer, maxDepth)
		}
		return nil
	}

	collectCrosspoints(forward, backward, true, less, result, pathsLimit)
	if pathsLimit != core.NoLimit && result.Len() >= pathsLimit {
		return result, nil
	}

	for layer := 0; layer < maxDepth; layer++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := forward.expandOneHop(ctx, b, step); err != nil {
			return result, err
		}
		if err := checkCapacity(layer + 1); err != nil {
			return nil, err
		}
		collectCrosspoints(forward, backward, true, less, result, pathsLimit)
		if pathsLimit != core.NoLimit && result.Len() >= pathsLimit {
			return result, nil
		}

		if err := backward.expandOneHop(ctx, b, step); err != nil {
			return result, err
		}
		if err := checkCapacity(layer + 1); err != nil {
			return nil, err
		}
		collectCrosspoints(backward, forward, false, less, result, pathsLimit)
		if pathsLimit != core.NoLimit && result.Len() >= pathsLimit {
			return result, nil
		}
	}
	return result, nil
}

// ShortestPath returns the first path Paths finds between source and
// target (by definition the one requiring the fewest alternating
// forward/backward hops), or nil if none exists within maxDepth hops on
// each side.
func ShortestPath[ID comparable](ctx context.Context, b backend.Backend[ID], source, target ID, step core.EdgeStep, maxDepth, capacity int) (*travpath.Path[ID], error) {
	set, err := Paths[ID](ctx, b, frontier.New(source), frontier.New(target), step, maxDepth, 1, capacity, nil)
	if err != nil {
		return nil, err
	}
	paths := set.Paths()
	if len(paths) == 0 {
		return nil, nil
	}
	return &paths[0], nil
}
