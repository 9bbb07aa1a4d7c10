package traverser

import (
	"context"

	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/edgequery"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/kbfs"
	"github.com/voxelgraph/traverser/simstruct"
	"github.com/voxelgraph/traverser/travpath"
)

// KOut computes the depth-th layer of a bounded BFS from source (spec
// §4.5). See kbfs.KOut for the nearest flag's two semantics.
func (t *Traverser[ID]) KOut(ctx context.Context, source ID, step core.EdgeStep, budgets core.Budgets, nearest bool) (frontier.Frontier[ID], error) {
	result, err := kbfs.KOut[ID](ctx, t.backend, source, step, budgets, nearest)
	t.logFailure("KOut", err)
	return result, err
}

// KNeighbor computes the union of every layer 0..depth reachable from
// source (spec §4.5).
func (t *Traverser[ID]) KNeighbor(ctx context.Context, source ID, step core.EdgeStep, depth, limit int) (frontier.Frontier[ID], error) {
	result, err := kbfs.KNeighbor[ID](ctx, t.backend, source, step, depth, limit)
	t.logFailure("KNeighbor", err)
	return result, err
}

// SameNeighbors intersects N(u) and N(v), order-stable on N(u), capped
// to limit (spec §4.6).
func (t *Traverser[ID]) SameNeighbors(ctx context.Context, u, v ID, step core.EdgeStep, limit int) (frontier.Frontier[ID], error) {
	result, err := simstruct.SameNeighbors[ID](ctx, t.backend, u, v, step, limit)
	t.logFailure("SameNeighbors", err)
	return result, err
}

// JaccardSimilarity computes |N(u) ∩ N(v)| / |N(u) ∪ N(v)| (spec §4.6).
func (t *Traverser[ID]) JaccardSimilarity(ctx context.Context, u, v ID, step core.EdgeStep) (float64, error) {
	ratio, err := simstruct.JaccardSimilarity[ID](ctx, t.backend, u, v, step)
	t.logFailure("JaccardSimilarity", err)
	return ratio, err
}

// MultiNeighbors intersects the neighborhoods of every vertex in
// vertices (spec §11, supplemental).
func (t *Traverser[ID]) MultiNeighbors(ctx context.Context, vertices []ID, step core.EdgeStep, limit int) (frontier.Frontier[ID], error) {
	result, err := simstruct.MultiNeighbors[ID](ctx, t.backend, vertices, step, limit)
	t.logFailure("MultiNeighbors", err)
	return result, err
}

// Paths runs a bidirectional bounded search between sources and targets
// (spec §11, supplemental). less orders ID and, when non-nil, applies
// the path-ownership dedup rule (spec §3) to multi-root results — see
// kbfs.Paths. Pass nil for single-root searches, where no ownership
// duplicate can arise.
func (t *Traverser[ID]) Paths(ctx context.Context, sources, targets frontier.Frontier[ID], step core.EdgeStep, maxDepth, pathsLimit, capacity int, less func(a, b ID) bool) (*travpath.PathSet[ID], error) {
	result, err := kbfs.Paths[ID](ctx, t.backend, sources, targets, step, maxDepth, pathsLimit, capacity, less)
	t.logFailure("Paths", err)
	return result, err
}

// ShortestPath returns the first path Paths would find between source
// and target, or nil if none exists within maxDepth hops on each side
// (spec §11, supplemental).
func (t *Traverser[ID]) ShortestPath(ctx context.Context, source, target ID, step core.EdgeStep, maxDepth, capacity int) (*travpath.Path[ID], error) {
	result, err := kbfs.ShortestPath[ID](ctx, t.backend, source, target, step, maxDepth, capacity)
	t.logFailure("ShortestPath", err)
	return result, err
}

// ExpandPerLabel is a one-hop expansion from source that enforces
// step.Limit independently per label instead of once across every label
// combined (spec §9's "limit across multiple labels" open question: the
// per-label default this module resolves it to, see edgequery.BuildPerLabel).
// excluded, when non-nil, is skipped from the result the same way it is
// in KOut/KNeighbor's own per-layer expansion.
func (t *Traverser[ID]) ExpandPerLabel(ctx context.Context, source ID, step core.EdgeStep, excluded *frontier.Frontier[ID]) (frontier.Frontier[ID], error) {
	result, err := frontier.ExpandPerLabel[ID](ctx, t.backend, frontier.New(source), step, excluded, core.NoLimit)
	t.logFailure("ExpandPerLabel", err)
	return result, err
}

// Degree returns vertex's effective fan-out under step: the backend's
// raw edge count, post-processed against step's degree/skipDegree (spec
// §11, supplemental — the one public entry point for §4.2's COUNT
// aggregate formula).
func (t *Traverser[ID]) Degree(ctx context.Context, vertex ID, step core.EdgeStep) (int, error) {
	n, err := edgequery.Count[ID](ctx, t.backend, vertex, step, core.NoLimit)
	t.logFailure("Degree", err)
	return n, err
}

// EdgesCount is an alias for Degree under the name HugeGraph's traverser
// family uses for the same operation (spec §11, supplemental).
func (t *Traverser[ID]) EdgesCount(ctx context.Context, vertex ID, step core.EdgeStep) (int, error) {
	return t.Degree(ctx, vertex, step)
}
