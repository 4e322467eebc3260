// SPDX-License-Identifier: MIT
// Package: geometry
//
// Purpose:
//   - Element-wise algebra on Containers needed by iterative solvers:
//     inner products, norms, scaling and the axpby update.
//   - Delegate the flat loops to gonum's floats kernels.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1; no allocations beyond explicit results.

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// checkPair validates that both containers are non-nil and geometry-compatible.
func checkPair(op string, a, b *Container) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilContainer)
	}
	if !a.geom.Equal(b.geom) {
		return fmt.Errorf("%s: %v vs %v: %w", op, a.geom, b.geom, ErrGeometryMismatch)
	}
	return nil
}

// Dot returns the Euclidean inner product ⟨c, other⟩.
// Complexity: O(n).
func (c *Container) Dot(other *Container) (float64, error) {
	if err := checkPair("Dot", c, other); err != nil {
		return 0, err
	}
	return floats.Dot(c.data, other.data), nil
}

// Norm returns the Euclidean (L2) norm of the buffer.
func (c *Container) Norm() float64 {
	return floats.Norm(c.data, 2)
}

// SquaredNorm returns ⟨c, c⟩.
func (c *Container) SquaredNorm() float64 {
	return floats.Dot(c.data, c.data)
}

// Scale multiplies every element by a in place.
func (c *Container) Scale(a float64) {
	floats.Scale(a, c.data)
}

// Axpby stores a·x + b·y into c. x, y and c must share a geometry; c may
// alias x and/or y.
//
// Complexity: O(n).
func (c *Container) Axpby(a float64, x *Container, b float64, y *Container) error {
	if err := checkPair("Axpby", c, x); err != nil {
		return err
	}
	if err := checkPair("Axpby", c, y); err != nil {
		return err
	}
	switch {
	case c.SharesBuffer(x) && c.SharesBuffer(y):
		floats.Scale(a+b, c.data)
	case c.SharesBuffer(y):
		floats.Scale(b, c.data)
		floats.AddScaled(c.data, a, x.data)
	default:
		floats.ScaleTo(c.data, a, x.data)
		floats.AddScaled(c.data, b, y.data)
	}
	return nil
}

// Sub returns a new container holding c − other.
func (c *Container) Sub(other *Container) (*Container, error) {
	if err := checkPair("Sub", c, other); err != nil {
		return nil, err
	}
	out := c.geom.Allocate(Zero)
	floats.SubTo(out.data, c.data, other.data)
	return out, nil
}

// MaxAbsDiff returns max_i |c[i] − other[i]| (the L∞ distance).
func (c *Container) MaxAbsDiff(other *Container) (float64, error) {
	if err := checkPair("MaxAbsDiff", c, other); err != nil {
		return 0, err
	}
	return floats.Distance(c.data, other.data, math.Inf(1)), nil
}
