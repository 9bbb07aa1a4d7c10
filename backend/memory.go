package backend

import (
	"context"
	"sort"
	"sync"

	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/schema"
)

// storedEdge is MemoryBackend's internal representation; it carries the
// directedness flag Edge[ID] itself does not need once a query has
// already resolved direction matching.
type storedEdge[ID comparable] struct {
	from, to ID
	label    core.EdgeLabelID
	directed bool
	props    map[core.PropertyID]any
}

func (e storedEdge[ID]) matches(source ID, dir core.Direction) (Edge[ID], bool) {
	touchesFrom := e.from == source
	touchesTo := e.to == source
	if !touchesFrom && !touchesTo {
		return Edge[ID]{}, false
	}
	if e.directed {
		switch dir {
		case core.OUT:
			if !touchesFrom {
				return Edge[ID]{}, false
			}
		case core.IN:
			if !touchesTo {
				return Edge[ID]{}, false
			}
		case core.BOTH:
			// either endpoint is fine
		}
	}
	return Edge[ID]{From: e.from, To: e.to, Label: e.label, Properties: e.props}, true
}

// MemoryBackend is a reference Backend[ID] implementation: an adjacency
// map guarded by one sync.RWMutex, the same locking shape as lvlath's
// core.Graph. It exists for this module's own tests and examples, not
// production use — a real deployment supplies its own Backend backed by
// an actual graph store.
type MemoryBackend[ID comparable] struct {
	mu       sync.RWMutex
	byVertex map[ID][]storedEdge[ID]
	resolver schema.Resolver
}

// NewMemoryBackend returns an empty MemoryBackend. resolver may be nil;
// if non-nil, it is consulted by MatchesFullEdgeSortKeys.
func NewMemoryBackend[ID comparable](resolver schema.Resolver) *MemoryBackend[ID] {
	return &MemoryBackend[ID]{
		byVertex: make(map[ID][]storedEdge[ID]),
		resolver: resolver,
	}
}

// AddEdge inserts an edge between from and to. directed=false (the
// default for an undirected property graph) makes the edge visible from
// both endpoints regardless of query direction.
func (b *MemoryBackend[ID]) AddEdge(from, to ID, label core.EdgeLabelID, directed bool, props map[core.PropertyID]any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := storedEdge[ID]{from: from, to: to, label: label, directed: directed, props: props}
	b.byVertex[from] = append(b.byVertex[from], e)
	if from != to {
		b.byVertex[to] = append(b.byVertex[to], e)
	}
}

// memoryQuery is MemoryBackend's concrete EdgeQuery. It is only ever
// constructed by ConstructEdgesQuery and only ever consumed by the same
// MemoryBackend, so Edges/QueryNumber/MatchesFullEdgeSortKeys type-assert
// it back freely.
type memoryQuery[ID comparable] struct {
	source    ID
	direction core.Direction
	labels    map[core.EdgeLabelID]struct{} // empty means "any label"
	limit     int
	aggregate AggregateKind

	propertyPreds map[core.PropertyID]any
	sortKeyPreds  map[core.PropertyID]any
}

func (q *memoryQuery[ID]) Limit(n int) EdgeQuery {
	q.limit = n
	return q
}

func (q *memoryQuery[ID]) Capacity(int) EdgeQuery {
	// The engine always sets this to unbounded (spec §4.2); MemoryBackend
	// never enforces a backend-side capacity of its own.
	return q
}

func (q *memoryQuery[ID]) Aggregate(kind AggregateKind) EdgeQuery {
	q.aggregate = kind
	return q
}

func (q *memoryQuery[ID]) AddPropertyPredicate(id core.PropertyID, value any) EdgeQuery {
	q.propertyPreds[id] = value
	return q
}

func (q *memoryQuery[ID]) AddSortKeyPredicate(id core.PropertyID, value any) EdgeQuery {
	q.sortKeyPreds[id] = value
	return q
}

// ConstructEdgesQuery implements Backend.
func (b *MemoryBackend[ID]) ConstructEdgesQuery(source ID, direction core.Direction, labels []core.EdgeLabelID) EdgeQuery {
	labelSet := make(map[core.EdgeLabelID]struct{}, len(labels))
	for _, l := range labels {
		labelSet[l] = struct{}{}
	}
	return &memoryQuery[ID]{
		source:        source,
		direction:     direction,
		labels:        labelSet,
		limit:         core.NoLimit,
		propertyPreds: make(map[core.PropertyID]any),
		sortKeyPreds:  make(map[core.PropertyID]any),
	}
}

func (b *MemoryBackend[ID]) scan(q *memoryQuery[ID]) []Edge[ID] {
	b.mu.RLock()
	candidates := append([]storedEdge[ID](nil), b.byVertex[q.source]...)
	b.mu.RUnlock()

	// Deterministic order: by label id; edges with the same label keep
	// their insertion order (the sort is stable), mirroring lvlath's
	// Edges()-sorted-by-ID contract.
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].label < candidates[j].label })

	out := make([]Edge[ID], 0, len(candidates))
	for _, se := range candidates {
		if len(q.labels) > 0 {
			if _, ok := q.labels[se.label]; !ok {
				continue
			}
		}
		e, ok := se.matches(q.source, q.direction)
		if !ok {
			continue
		}
		if !matchesPredicates(e, q.propertyPreds) || !matchesPredicates(e, q.sortKeyPreds) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesPredicates[ID comparable](e Edge[ID], preds map[core.PropertyID]any) bool {
	for id, want := range preds {
		got, ok := e.Properties[id]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Edges implements Backend.
func (b *MemoryBackend[ID]) Edges(ctx context.Context, query EdgeQuery) (EdgeIterator[ID], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := query.(*memoryQuery[ID])
	results := b.scan(q)
	if q.limit != core.NoLimit && len(results) > q.limit {
		results = results[:q.limit]
	}
	return &sliceIterator[ID]{items: results, idx: -1}, nil
}

// QueryNumber implements Backend.
func (b *MemoryBackend[ID]) QueryNumber(ctx context.Context, query EdgeQuery) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	q := query.(*memoryQuery[ID])
	return int64(len(b.scan(q))), nil
}

// MatchesFullEdgeSortKeys implements Backend.
func (b *MemoryBackend[ID]) MatchesFullEdgeSortKeys(query EdgeQuery) bool {
	q := query.(*memoryQuery[ID])
	if b.resolver == nil || len(q.labels) != 1 {
		return false
	}
	var label core.EdgeLabelID
	for l := range q.labels {
		label = l
	}
	keys, err := b.resolver.SortKeyProperties(label)
	if err != nil || len(keys) == 0 || len(keys) != len(q.sortKeyPreds) {
		return false
	}
	for _, k := range keys {
		if _, ok := q.sortKeyPreds[k]; !ok {
			return false
		}
	}
	return true
}

// sliceIterator implements EdgeIterator over a pre-scanned, already
// filtered slice. It is single-pass: Next/Edge/Close follow the
// iterator's position monotonically.
type sliceIterator[ID comparable] struct {
	items []Edge[ID]
	idx   int
	err   error
}

func (it *sliceIterator[ID]) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		it.err = err
		return false
	}
	it.idx++
	return it.idx < len(it.items)
}

func (it *sliceIterator[ID]) Edge() Edge[ID] { return it.items[it.idx] }

func (it *sliceIterator[ID]) Err() error { return it.err }

func (it *sliceIterator[ID]) Close() error { return nil }
