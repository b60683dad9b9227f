package validation

import (
	"context"
	"fmt"

	"github.com/dshills/cargostow/pkg/cargo"
)

// Validator checks a CargoSystem snapshot's structural invariants.
type Validator interface {
	Check(ctx context.Context, sys *cargo.CargoSystem) (*Report, error)
}

// DefaultValidator runs the snapshot-checkable invariants: usage bounds,
// placement co-presence, AABB containment, pairwise non-overlap, and log
// ordering. Invariants that depend on a specific engine call (retrieval
// path shape, knapsack feasibility) are exposed as standalone Check*
// functions for callers to invoke alongside that call.
type DefaultValidator struct{}

// NewValidator returns the default snapshot validator.
func NewValidator() Validator {
	return &DefaultValidator{}
}

func (v *DefaultValidator) Check(ctx context.Context, sys *cargo.CargoSystem) (*Report, error) {
	if sys == nil {
		return nil, fmt.Errorf("cargo system cannot be nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := &Report{Passed: true}
	report.record(CheckUsageBounds(sys))
	report.record(CheckPlacementCoPresence(sys))
	report.record(CheckAABBContainment(sys))
	report.record(CheckPairwiseNonOverlap(sys))
	report.record(CheckLogOrdering(sys))

	return report, nil
}
