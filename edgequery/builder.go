package edgequery

import (
	"context"
	"fmt"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/guard"
)

// Build constructs a property-mode backend.EdgeQuery for source under
// step, capped against capacity. Property mode lets step carry any
// property predicate; the backend is free to pick whatever index serves
// it (spec §4.2).
//
// Build sets the backend query's own capacity to unbounded — the engine
// manages capacity itself, one layer up — and applies step.Limit only
// when it is finite.
//
// Build dispatches on step.SortKeyMode: this is the one place the two
// filter modes spec §4.2 names actually fork, so every caller downstream
// (edgestream.Open, frontier.Expand, kbfs, simstruct) reaches sort-key
// mode automatically once a caller sets the flag on its EdgeStep,
// without either needing a second entry point of its own.
func Build[ID comparable](b backend.Backend[ID], source ID, step core.EdgeStep, capacity int) (backend.EdgeQuery, error) {
	if step.SortKeyMode {
		return BuildSortKey(b, source, step, capacity)
	}
	if err := guard.ValidateEdgeStep(step, capacity, false); err != nil {
		return nil, err
	}
	q := b.ConstructEdgesQuery(source, step.Direction, labelIDs(step)).Capacity(core.NoLimit)
	if step.Limit != core.NoLimit {
		q = q.Limit(step.Limit)
	}
	for id, val := range step.Properties {
		q = q.AddPropertyPredicate(id, val)
	}
	return q, nil
}

// BuildSortKey constructs a sort-key-mode backend.EdgeQuery: step's
// property predicates must exactly cover the single permitted edge
// label's primary sort key, letting the backend push the predicate into
// its primary edge index. If step names zero or more than one label, or
// the backend reports the predicates do not cover the sort key,
// BuildSortKey returns a core.SchemaMismatchError (spec §4.2).
func BuildSortKey[ID comparable](b backend.Backend[ID], source ID, step core.EdgeStep, capacity int) (backend.EdgeQuery, error) {
	if err := guard.ValidateEdgeStep(step, capacity, true); err != nil {
		return nil, err
	}
	q := b.ConstructEdgesQuery(source, step.Direction, labelIDs(step)).Capacity(core.NoLimit)
	if step.Limit != core.NoLimit {
		q = q.Limit(step.Limit)
	}
	for id, val := range step.Properties {
		q = q.AddSortKeyPredicate(id, val)
	}
	if !b.MatchesFullEdgeSortKeys(q) {
		return nil, core.NewSchemaMismatchError("property predicates do not cover the edge label's primary sort key")
	}
	return q, nil
}

// Count runs step's query as a COUNT aggregate and post-processes the
// raw backend count against degree/skipDegree, per spec §4.2:
//
//	if degree == NoLimit or count < degree → count
//	elif skipDegree > 0 and count >= skipDegree → 0 (super-node: no edges)
//	else → degree
func Count[ID comparable](ctx context.Context, b backend.Backend[ID], source ID, step core.EdgeStep, capacity int) (int, error) {
	q, err := Build(b, source, step, capacity)
	if err != nil {
		return 0, err
	}
	q = q.Aggregate(backend.AggregateCount)
	raw, err := b.QueryNumber(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("%w: query_number: %v", core.ErrBackend, err)
	}
	count := int(raw)

	switch {
	case step.Degree == core.NoLimit || count < step.Degree:
		return count, nil
	case step.SkipDegree > 0 && count >= step.SkipDegree:
		return 0, nil
	default:
		return step.Degree, nil
	}
}

// BuildPerLabel builds one backend.EdgeQuery per label named in step
// (spec §9: "limit across multiple labels" — limit is applied per
// label, not globally, an explicit open question in the source this
// module documents rather than silently resolves). If step names no
// labels, BuildPerLabel returns a single query for "any label".
func BuildPerLabel[ID comparable](b backend.Backend[ID], source ID, step core.EdgeStep, capacity int) ([]backend.EdgeQuery, error) {
	if len(step.Labels) == 0 {
		q, err := Build(b, source, step, capacity)
		if err != nil {
			return nil, err
		}
		return []backend.EdgeQuery{q}, nil
	}
	queries := make([]backend.EdgeQuery, 0, len(step.Labels))
	for id, name := range step.Labels {
		single := step
		single.Labels = map[core.EdgeLabelID]string{id: name}
		q, err := Build(b, source, single, capacity)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func labelIDs(step core.EdgeStep) []core.EdgeLabelID {
	ids := make([]core.EdgeLabelID, 0, len(step.Labels))
	for id := range step.Labels {
		ids = append(ids, id)
	}
	return ids
}
