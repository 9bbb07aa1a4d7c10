package edgestream

import (
	"context"
	"fmt"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/edgequery"
)

// Stream is a single-pass, not-restartable cursor over one vertex's
// filtered, degree/skipDegree-resolved edges.
type Stream[ID comparable] struct {
	buf    []backend.Edge[ID]
	idx    int
	source ID
	closed bool
}

// Open builds step's query via edgequery.Build, runs the backend
// iterator, and resolves degree truncation / super-node suppression
// before returning. The underlying backend iterator is always closed by
// the time Open returns, on every exit path including error — Open owns
// its full lifetime.
func Open[ID comparable](ctx context.Context, b backend.Backend[ID], source ID, step core.EdgeStep, capacity int) (*Stream[ID], error) {
	query, err := edgequery.Build(b, source, step, capacity)
	if err != nil {
		return nil, err
	}
	return OpenQuery[ID](ctx, b, source, query, step.Degree, step.SkipDegree)
}

// OpenQuery runs an already-built query through the same degree
// truncation / super-node suppression Open applies, for callers that
// build their own query rather than going through edgequery.Build — the
// per-label fan-out in edgequery.BuildPerLabel being the one example,
// since each of its queries needs this same resolution independently.
func OpenQuery[ID comparable](ctx context.Context, b backend.Backend[ID], source ID, query backend.EdgeQuery, degree, skip int) (*Stream[ID], error) {
	it, err := b.Edges(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: edges: %v", core.ErrBackend, err)
	}
	defer it.Close()

	var buf []backend.Edge[ID]
	seen := 0
	suppressed := false
	for it.Next(ctx) {
		seen++
		if skip > 0 && seen >= skip {
			suppressed = true
			break
		}
		if degree == core.NoLimit || len(buf) < degree {
			buf = append(buf, it.Edge())
			continue
		}
		if skip == 0 {
			// Degree reached and no super-node suppression in effect:
			// passthrough-with-truncation needs no more elements.
			break
		}
		// skip > 0: degree already satisfied, but we must keep scanning
		// (without buffering) until skip or end of stream to resolve the
		// all-or-nothing invariant.
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrBackend, err)
	}
	if suppressed {
		buf = nil
	}
	return &Stream[ID]{buf: buf, idx: -1, source: source}, nil
}

// Next advances the stream. It returns false once exhausted; Stream
// never errors after a successful Open, since all backend I/O already
// happened there.
func (s *Stream[ID]) Next() bool {
	if s.closed {
		return false
	}
	s.idx++
	return s.idx < len(s.buf)
}

// Edge returns the current element. Valid only after a Next call that
// returned true.
func (s *Stream[ID]) Edge() backend.Edge[ID] { return s.buf[s.idx] }

// Other returns the neighbor endpoint of the current edge, relative to
// the vertex the stream was opened for.
func (s *Stream[ID]) Other() ID { return s.Edge().Other(s.source) }

// Close releases the stream's buffer. Close is idempotent.
func (s *Stream[ID]) Close() error {
	s.closed = true
	s.buf = nil
	return nil
}

// Len reports how many edges the stream will yield in total. It is safe
// to call before exhausting Next.
func (s *Stream[ID]) Len() int { return len(s.buf) }
