package schema

import (
	"fmt"
	"sync"

	"github.com/voxelgraph/traverser/core"
)

// Kind distinguishes the two label namespaces a schema tracks.
type Kind int

const (
	// VertexLabel names a vertex type.
	VertexLabel Kind = iota
	// EdgeLabel names an edge type.
	EdgeLabel
)

// Resolver is the schema collaborator (spec §6):
//
//	label_id(type ∈ {VERTEX, EDGE}, name) → id
//	edge_label(id).name
//	property_name(id)
//
// An unknown name or id must be reported as a core.SchemaMismatchError.
type Resolver interface {
	// LabelID resolves a human-readable label name of the given Kind to
	// its opaque id. A nil/empty name means "any label" and is never
	// passed here; callers resolve names before reaching the builder.
	LabelID(kind Kind, name string) (int64, error)

	// EdgeLabelName returns the human-readable name for an edge label id
	// previously returned by LabelID(EdgeLabel, ...).
	EdgeLabelName(id core.EdgeLabelID) (string, error)

	// PropertyName returns the human-readable name for a property id.
	PropertyName(id core.PropertyID) (string, error)

	// SortKeyProperties returns the ordered property ids that make up
	// the primary sort key of the given edge label, used by sort-key
	// mode to check full coverage (spec §4.2).
	SortKeyProperties(label core.EdgeLabelID) ([]core.PropertyID, error)
}

// MemoryResolver is a trivial in-process Resolver backed by maps,
// guarded by a single RWMutex the way core.Graph guards its own maps in
// the teacher library. It is meant for tests and examples, not
// production use.
type MemoryResolver struct {
	mu sync.RWMutex

	vertexLabels map[string]int64
	edgeLabels   map[string]int64
	edgeNames    map[core.EdgeLabelID]string
	propNames    map[core.PropertyID]string
	sortKeys     map[core.EdgeLabelID][]core.PropertyID

	nextVertexLabel int64
	nextEdgeLabel   int64
}

// NewMemoryResolver returns an empty MemoryResolver.
func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{
		vertexLabels: make(map[string]int64),
		edgeLabels:   make(map[string]int64),
		edgeNames:    make(map[core.EdgeLabelID]string),
		propNames:    make(map[core.PropertyID]string),
		sortKeys:     make(map[core.EdgeLabelID][]core.PropertyID),
	}
}

// DefineVertexLabel registers name and returns its id, creating one if
// it does not yet exist.
func (r *MemoryResolver) DefineVertexLabel(name string) core.VertexLabelID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.vertexLabels[name]; ok {
		return core.VertexLabelID(id)
	}
	r.nextVertexLabel++
	r.vertexLabels[name] = r.nextVertexLabel
	return core.VertexLabelID(r.nextVertexLabel)
}

// DefineEdgeLabel registers name (with an optional sort key, property
// ids in sort-key order) and returns its id.
func (r *MemoryResolver) DefineEdgeLabel(name string, sortKey ...core.PropertyID) core.EdgeLabelID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.edgeLabels[name]; ok {
		return core.EdgeLabelID(id)
	}
	r.nextEdgeLabel++
	id := r.nextEdgeLabel
	r.edgeLabels[name] = id
	r.edgeNames[core.EdgeLabelID(id)] = name
	if len(sortKey) > 0 {
		r.sortKeys[core.EdgeLabelID(id)] = append([]core.PropertyID(nil), sortKey...)
	}
	return core.EdgeLabelID(id)
}

// DefineProperty registers a property name/id pair, used so
// PropertyName can answer for it later.
func (r *MemoryResolver) DefineProperty(id core.PropertyID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.propNames[id] = name
}

// LabelID implements Resolver.
func (r *MemoryResolver) LabelID(kind Kind, name string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var table map[string]int64
	switch kind {
	case VertexLabel:
		table = r.vertexLabels
	case EdgeLabel:
		table = r.edgeLabels
	default:
		return 0, core.NewSchemaMismatchError(fmt.Sprintf("unknown label kind %d", kind))
	}
	id, ok := table[name]
	if !ok {
		return 0, core.NewSchemaMismatchError(fmt.Sprintf("unknown label %q", name))
	}
	return id, nil
}

// EdgeLabelName implements Resolver.
func (r *MemoryResolver) EdgeLabelName(id core.EdgeLabelID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.edgeNames[id]
	if !ok {
		return "", core.NewSchemaMismatchError(fmt.Sprintf("unknown edge label id %d", id))
	}
	return name, nil
}

// PropertyName implements Resolver.
func (r *MemoryResolver) PropertyName(id core.PropertyID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.propNames[id]
	if !ok {
		return "", core.NewSchemaMismatchError(fmt.Sprintf("unknown property id %d", id))
	}
	return name, nil
}

// SortKeyProperties implements Resolver.
func (r *MemoryResolver) SortKeyProperties(label core.EdgeLabelID) ([]core.PropertyID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, known := r.edgeNames[label]; !known {
		return nil, core.NewSchemaMismatchError(fmt.Sprintf("unknown edge label id %d", label))
	}
	keys, ok := r.sortKeys[label]
	if !ok {
		return nil, nil
	}
	return append([]core.PropertyID(nil), keys...), nil
}
