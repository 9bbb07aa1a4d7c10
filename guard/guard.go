package guard

import (
	"github.com/voxelgraph/traverser/core"
)

// CheckDepth validates a BFS depth budget: depth must be >= 1.
func CheckDepth(depth int) error {
	if depth < 1 {
		return core.NewParameterError("depth", depth, "must be >= 1")
	}
	return nil
}

// CheckDegree validates a per-vertex fan-out cap: degree must be
// positive or core.NoLimit.
func CheckDegree(degree int) error {
	if degree != core.NoLimit && degree <= 0 {
		return core.NewParameterError("degree", degree, "must be > 0 or NoLimit")
	}
	return nil
}

// CheckCapacity validates a global visited-vertex cap: capacity must be
// positive or core.NoLimit.
func CheckCapacity(capacity int) error {
	if capacity != core.NoLimit && capacity <= 0 {
		return core.NewParameterError("capacity", capacity, "must be > 0 or NoLimit")
	}
	return nil
}

// CheckLimit validates a result cap: limit must be positive or
// core.NoLimit.
func CheckLimit(limit int) error {
	if limit != core.NoLimit && limit <= 0 {
		return core.NewParameterError("limit", limit, "must be > 0 or NoLimit")
	}
	return nil
}

// CheckSkipDegree validates the super-node threshold: skipDegree must be
// >= 0. 0 disables super-node suppression.
func CheckSkipDegree(skipDegree int) error {
	if skipDegree < 0 {
		return core.NewParameterError("skipDegree", skipDegree, "must be >= 0 (0 disables suppression)")
	}
	return nil
}

// CheckCapacityAgainstAccess fails if capacity is finite and access
// would exceed it (spec §4.1, checkCapacity).
func CheckCapacityAgainstAccess(capacity, access int, label string) error {
	if capacity != core.NoLimit && access > capacity {
		return core.NewParameterError(label, access, "exceeds capacity")
	}
	return nil
}

// CheckSkipDegreeInvariants enforces the EdgeStep cross-field invariants
// from spec §3:
//
//	if skipDegree > 0 then degree != NoLimit and skipDegree >= degree
//	if a capacity is in effect, degree < capacity and skipDegree < capacity
func CheckSkipDegreeInvariants(skipDegree, degree, capacity int) error {
	if skipDegree > 0 {
		if degree == core.NoLimit {
			return core.NewParameterError("skipDegree", skipDegree, "requires a finite degree")
		}
		if skipDegree < degree {
			return core.NewParameterError("skipDegree", skipDegree, "must be >= degree")
		}
	}
	if capacity != core.NoLimit {
		if degree != core.NoLimit && degree >= capacity {
			return core.NewParameterError("degree", degree, "must be < capacity")
		}
		if skipDegree > 0 && skipDegree >= capacity {
			return core.NewParameterError("skipDegree", skipDegree, "must be < capacity")
		}
	}
	return nil
}

// ValidateEdgeStep runs every per-field check on step plus the
// cross-field skipDegree/degree/capacity invariants. When requireSortKey
// is true (the step will be used in sort-key mode, spec §4.2) and the
// step carries any property predicate, the step must name exactly one
// label; otherwise ValidateEdgeStep returns a SchemaMismatchError.
func ValidateEdgeStep(step core.EdgeStep, capacity int, requireSortKey bool) error {
	if err := CheckDegree(step.Degree); err != nil {
		return err
	}
	if err := CheckSkipDegree(step.SkipDegree); err != nil {
		return err
	}
	if err := CheckLimit(step.Limit); err != nil {
		return err
	}
	if err := CheckSkipDegreeInvariants(step.SkipDegree, step.Degree, capacity); err != nil {
		return err
	}
	if requireSortKey && len(step.Properties) > 0 {
		if _, ok := step.SingleLabel(); !ok {
			return core.NewSchemaMismatchError("sort-key mode requires exactly one edge label when property predicates are present")
		}
	}
	return nil
}

// ValidateBudgets runs every per-field check on b plus the global
// invariant that a finite capacity must be >= limit (spec §3): the
// source vertex itself counts toward capacity.
func ValidateBudgets(b core.Budgets) error {
	if err := CheckDepth(b.Depth); err != nil {
		return err
	}
	if err := CheckDegree(b.Degree); err != nil {
		return err
	}
	if err := CheckCapacity(b.Capacity); err != nil {
		return err
	}
	if err := CheckLimit(b.Limit); err != nil {
		return err
	}
	if err := CheckSkipDegree(b.SkipDegree); err != nil {
		return err
	}
	if b.Capacity != core.NoLimit && b.Limit != core.NoLimit && b.Capacity < b.Limit {
		return core.NewParameterError("capacity", b.Capacity, "must be >= limit (source vertex counts toward capacity)")
	}
	return nil
}
