package traverser

import (
	"context"
	"fmt"
	"strings"

	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/schema"
)

// ResolveEdgeStep builds an EdgeStep scoped to direction/degree, with
// each name in labelNames resolved to its opaque id via the configured
// schema.Resolver (spec §6: "EdgeLabelId ... resolved once from a human
// name via the schema collaborator"). It returns ErrNoResolver if no
// resolver was attached with WithResolver.
func (t *Traverser[ID]) ResolveEdgeStep(direction core.Direction, degree int, labelNames ...string) (core.EdgeStep, error) {
	if t.resolver == nil {
		return core.EdgeStep{}, ErrNoResolver
	}
	step := core.NewEdgeStep(direction, degree)
	for _, name := range labelNames {
		id, err := t.resolver.LabelID(schema.EdgeLabel, name)
		if err != nil {
			return core.EdgeStep{}, err
		}
		step = step.WithLabel(core.EdgeLabelID(id), name)
	}
	return step, nil
}

// DescribeEdgeStep renders step's labels and properties by their human
// names, via the configured resolver's EdgeLabelName/PropertyName (spec
// §6). KOutByLabelSortKey uses it to enrich its log line; it returns
// ErrNoResolver if no resolver was attached.
func (t *Traverser[ID]) DescribeEdgeStep(step core.EdgeStep) (string, error) {
	if t.resolver == nil {
		return "", ErrNoResolver
	}
	var b strings.Builder
	b.WriteString(step.Direction.String())
	for id := range step.Labels {
		name, err := t.resolver.EdgeLabelName(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " label=%s", name)
	}
	for id := range step.Properties {
		name, err := t.resolver.PropertyName(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " prop=%s", name)
	}
	return b.String(), nil
}

// KOutByLabelSortKey resolves labelName via the configured resolver,
// builds a sort-key-mode EdgeStep scoped to that one label and
// propertyValues, and runs KOut with it (spec §4.2's predicate-pushdown
// path, wired end to end: a human label name in, a resolved EdgeStep
// through edgequery/edgestream/frontier/kbfs, a resolved description out
// on the logged line, written on every call when a logger is attached).
// It returns ErrNoResolver if no resolver was attached.
func (t *Traverser[ID]) KOutByLabelSortKey(ctx context.Context, source ID, direction core.Direction, degree int, labelName string, propertyValues map[core.PropertyID]any, budgets core.Budgets, nearest bool) (frontier.Frontier[ID], error) {
	if t.resolver == nil {
		return frontier.Frontier[ID]{}, ErrNoResolver
	}
	labelID, err := t.resolver.LabelID(schema.EdgeLabel, labelName)
	if err != nil {
		t.logFailure("KOutByLabelSortKey", err)
		return frontier.Frontier[ID]{}, err
	}
	step := core.NewEdgeStep(direction, degree).WithLabel(core.EdgeLabelID(labelID), labelName).WithSortKeyMode(true)
	for id, val := range propertyValues {
		step = step.WithProperty(id, val)
	}

	result, err := t.KOut(ctx, source, step, budgets, nearest)
	if t.logger != nil {
		if desc, derr := t.DescribeEdgeStep(step); derr == nil {
			t.logger.Printf("traverser: KOutByLabelSortKey: step=%s", desc)
		}
	}
	return result, err
}
