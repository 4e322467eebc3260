package operator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tomolath/geometry"
)

// dotTestStream decorrelates the range sample from the domain sample.
const dotTestStream int64 = 0x5bd1e995

// PowerMethod estimates the largest singular value of op.
//
// Algorithm:
//  1. x ← random domain vector (seeded), normalised.
//  2. repeat iterations times: w ← AᵀA x; λ ← ‖w‖; x ← w / λ.
//  3. return √λ.
//
// λ converges to the largest eigenvalue of AᵀA from below. If AᵀA x becomes
// exactly zero the operator annihilates the start vector and 0 is returned.
//
// Complexity: O(iterations · cost(A)) time, three buffers of memory.
func PowerMethod(op LinearOperator, iterations int, seed int64) (float64, error) {
	if iterations <= 0 {
		return 0, fmt.Errorf("PowerMethod(%d): %w", iterations, ErrBadIterations)
	}
	x := op.DomainGeometry().Allocate(geometry.Uniform(seed))
	w := op.DomainGeometry().Allocate(geometry.Zero)
	y := op.RangeGeometry().Allocate(geometry.Zero)

	if nrm := x.Norm(); nrm > 0 {
		x.Scale(1 / nrm)
	}

	var lambda float64
	for it := 0; it < iterations; it++ {
		if err := op.DirectTo(x, y); err != nil {
			return 0, fmt.Errorf("PowerMethod: iteration %d: %w", it, err)
		}
		if err := op.AdjointTo(y, w); err != nil {
			return 0, fmt.Errorf("PowerMethod: iteration %d: %w", it, err)
		}
		lambda = w.Norm()
		if lambda == 0 {
			return 0, nil
		}
		w.Scale(1 / lambda)
		x, w = w, x
	}
	return math.Sqrt(lambda), nil
}

// DotTestResult reports the two sides of the adjoint identity.
type DotTestResult struct {
	DirectSide  float64 // ⟨A u, v⟩
	AdjointSide float64 // ⟨u, Aᵀ v⟩
	Relative    float64 // |DirectSide − AdjointSide| / max(|DirectSide|, |AdjointSide|)
}

// Passed reports whether the relative mismatch is within tol.
func (r DotTestResult) Passed(tol float64) bool { return r.Relative <= tol }

// DotTest checks ⟨A u, v⟩ = ⟨u, Aᵀ v⟩ on random u (domain) and v (range)
// drawn from two streams derived from seed.
func DotTest(op LinearOperator, seed int64) (DotTestResult, error) {
	u := op.DomainGeometry().Allocate(geometry.Uniform(seed))
	v := op.RangeGeometry().Allocate(geometry.Uniform(seed ^ dotTestStream))

	au, err := op.Direct(u)
	if err != nil {
		return DotTestResult{}, fmt.Errorf("DotTest: %w", err)
	}
	atv, err := op.Adjoint(v)
	if err != nil {
		return DotTestResult{}, fmt.Errorf("DotTest: %w", err)
	}
	lhs, err := au.Dot(v)
	if err != nil {
		return DotTestResult{}, fmt.Errorf("DotTest: %w", err)
	}
	rhs, err := u.Dot(atv)
	if err != nil {
		return DotTestResult{}, fmt.Errorf("DotTest: %w", err)
	}

	res := DotTestResult{DirectSide: lhs, AdjointSide: rhs}
	if scale := math.Max(math.Abs(lhs), math.Abs(rhs)); scale > 0 {
		res.Relative = math.Abs(lhs-rhs) / scale
	}
	return res, nil
}
