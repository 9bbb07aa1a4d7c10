package backend

import (
	"context"

	"github.com/voxelgraph/traverser/core"
)

// AggregateKind enumerates the aggregate operations an EdgeQuery can be
// asked to compute. The engine only ever needs COUNT (spec §4.2).
type AggregateKind int

const (
	// AggregateNone means the query is a plain edge scan.
	AggregateNone AggregateKind = iota
	// AggregateCount means query_number should return the edge count.
	AggregateCount
)

// Edge is a single streamed result. Properties is optional; backends
// that never resolve property-mode predicates locally may leave it nil.
type Edge[ID comparable] struct {
	From       ID
	To         ID
	Label      core.EdgeLabelID
	Properties map[core.PropertyID]any
}

// Other returns the endpoint that is not source. It panics if neither
// endpoint equals source, which would indicate a backend bug (an edge
// returned for a query it does not match).
func (e Edge[ID]) Other(source ID) ID {
	if e.From == source {
		return e.To
	}
	if e.To == source {
		return e.From
	}
	panic("backend: edge does not touch its query source")
}

// EdgeQuery is the opaque backend query object the engine builds via
// Backend.ConstructEdgesQuery and refines via its setters (spec §6).
// Every setter returns the query itself so callers can chain; the
// engine never inspects a query's internals.
type EdgeQuery interface {
	// Limit caps the number of edges the query returns. n == core.NoLimit
	// means unbounded.
	Limit(n int) EdgeQuery

	// Capacity sets the backend-side result cap the query itself
	// enforces; the engine always sets this to unbounded and manages
	// capacity itself (spec §4.2).
	Capacity(n int) EdgeQuery

	// Aggregate switches the query to an aggregate mode; only
	// AggregateCount is used by this engine.
	Aggregate(kind AggregateKind) EdgeQuery

	// AddPropertyPredicate adds a property-mode predicate: the backend
	// is free to pick whatever index serves it.
	AddPropertyPredicate(id core.PropertyID, value any) EdgeQuery

	// AddSortKeyPredicate adds a sort-key-mode predicate: the backend
	// must be able to push this into the edge label's primary sort key.
	AddSortKeyPredicate(id core.PropertyID, value any) EdgeQuery
}

// EdgeIterator streams Edge values one at a time. It is single-pass and
// not restartable (spec §5); callers must Close it on every exit path.
type EdgeIterator[ID comparable] interface {
	// Next advances the iterator. It returns false at end of stream or
	// on error; callers must check Err afterward to distinguish the two.
	Next(ctx context.Context) bool

	// Edge returns the current element. Valid only after a Next call
	// that returned true.
	Edge() Edge[ID]

	// Err returns the first error encountered, or nil.
	Err() error

	// Close releases any resources the iterator holds. Close is
	// idempotent.
	Close() error
}

// Backend is the storage collaborator consumed by this engine (spec §6).
type Backend[ID comparable] interface {
	// ConstructEdgesQuery builds a fresh EdgeQuery scoped to source,
	// direction, and labels (empty labels means "any label").
	ConstructEdgesQuery(source ID, direction core.Direction, labels []core.EdgeLabelID) EdgeQuery

	// Edges executes query and returns a streaming iterator over its
	// results.
	Edges(ctx context.Context, query EdgeQuery) (EdgeIterator[ID], error)

	// QueryNumber executes an AggregateCount query and returns the
	// resulting count.
	QueryNumber(ctx context.Context, query EdgeQuery) (int64, error)

	// MatchesFullEdgeSortKeys reports whether query's predicates cover
	// the full primary sort key of its edge label, used by sort-key
	// mode to validate pushdown eligibility (spec §4.2).
	MatchesFullEdgeSortKeys(query EdgeQuery) bool
}
