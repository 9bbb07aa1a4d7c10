package traverser

import (
	"errors"
	"log"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/schema"
)

// ErrBackendNil is returned by New when backend is nil; a Traverser with
// no collaborator has nothing to wire.
var ErrBackendNil = errors.New("traverser: backend is nil")

// ErrNoResolver is returned by the façade's schema-aware methods
// (ResolveEdgeStep, KOutByLabelSortKey, DescribeEdgeStep) when no
// schema.Resolver was attached via WithResolver.
var ErrNoResolver = errors.New("traverser: no resolver configured")

// Option configures a Traverser via functional arguments, the same
// shape as bfs.Option/dfs.Option in the teacher library.
type Option[ID comparable] func(*Traverser[ID])

// WithResolver attaches a schema.Resolver. Resolver may be nil (the
// default), in which case the schema-aware methods (ResolveEdgeStep,
// DescribeEdgeStep, KOutByLabelSortKey) return ErrNoResolver. Sort-key
// coverage of a query is checked by the backend, not by this resolver.
func WithResolver[ID comparable](r schema.Resolver) Option[ID] {
	return func(t *Traverser[ID]) {
		t.resolver = r
	}
}

// WithLogger attaches a *log.Logger. Traverser logs one line per façade
// call that fails with CapacityExceeded, BackendError, or SchemaMismatch,
// plus one line describing the resolved step on every KOutByLabelSortKey
// call; the leaf packages never log.
func WithLogger[ID comparable](logger *log.Logger) Option[ID] {
	return func(t *Traverser[ID]) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Traverser is the façade most callers construct: one backend, an
// optional schema resolver, an optional logger.
type Traverser[ID comparable] struct {
	backend  backend.Backend[ID]
	resolver schema.Resolver
	logger   *log.Logger
}

// New builds a Traverser over b. Passing a nil backend is a programmer
// error and returns ErrBackendNil immediately, before any traversal call
// ever reaches it.
func New[ID comparable](b backend.Backend[ID], opts ...Option[ID]) (*Traverser[ID], error) {
	if b == nil {
		return nil, ErrBackendNil
	}
	t := &Traverser[ID]{backend: b}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *Traverser[ID]) logFailure(op string, err error) {
	if t.logger == nil || err == nil {
		return
	}
	switch {
	case errors.Is(err, core.ErrCapacityExceeded):
		t.logger.Printf("traverser: %s: capacity exceeded: %v", op, err)
	case errors.Is(err, core.ErrBackend):
		t.logger.Printf("traverser: %s: backend error: %v", op, err)
	case errors.Is(err, core.ErrSchemaMismatch):
		t.logger.Printf("traverser: %s: schema mismatch: %v", op, err)
	}
}
