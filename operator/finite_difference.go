// SPDX-License-Identifier: MIT

// Package operator - FiniteDifference: directional differences with exact adjoint.
//
// Purpose:
//   - Discrete derivative of an N-d array along one axis, scaled to physical
//     units by the voxel size of that axis.
//   - Adjoint is the exact matrix transpose of Direct for every
//     (method, boundary) pair, so ⟨Du, v⟩ = ⟨u, Dᵀv⟩ to rounding.
//
// Boundary asymmetry:
//   - Under Neumann, forward differences leave the LAST sample of each line
//     at 0 and backward differences leave the FIRST sample at 0. The adjoint
//     stencils depend on exactly this layout; do not "complete" the stencil.
//
// Complexity quicksheet:
//   - NewFiniteDifference: O(rank); Direct/Adjoint: O(n) time, O(1) extra
//     space for the *To variants; Norm: O(iterations · n), computed once.
package operator

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tomolath/geometry"
	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxNew     = "NewFiniteDifference"
	ctxDirect  = "FiniteDifference.Direct"
	ctxAdjoint = "FiniteDifference.Adjoint"
)

// ---------- stencil limits ----------

const (
	minRank      = 2    // lowest array rank the kernels accept
	maxRank      = 4    // highest array rank the kernels accept
	minCentered  = 3    // samples needed on the axis for centered differences
	minOneSided  = 2    // samples needed on the axis for forward/backward
	unitVoxel    = 1.0  // no rescaling needed
	adjointScale = -1.0 // adjoint stencils are written pre-negation
)

// FiniteDifference is a LinearOperator computing differences along one axis.
// Geometries are borrowed, never mutated. The zero value is not usable; build
// instances with NewFiniteDifference.
type FiniteDifference struct {
	domain    *geometry.Geometry
	rng       *geometry.Geometry
	direction int
	method    Method
	boundary  Boundary
	voxelSize float64

	normIterations int
	seed           int64
	normOnce       sync.Once
	norm           float64
	normErr        error
}

var _ LinearOperator = (*FiniteDifference)(nil)

// NewFiniteDifference builds a finite difference operator on domain.
// Implementation:
//   - Stage 1: resolve options over the documented defaults.
//   - Stage 2: validate direction, method, boundary and range shape.
//   - Stage 3: read the voxel size of the direction axis; it must be > 0.
//   - Stage 4: check the axis is long enough for the stencil.
//
// Errors (all wrapped, match with errors.Is):
//   - ErrNilGeometry, ErrInvalidDirection, ErrUnknownMethod,
//     ErrUnknownBoundary, ErrGeometryMismatch, ErrNonPositiveVoxelSize,
//     ErrAxisTooShort.
//
// Complexity: O(rank).
func NewFiniteDifference(domain *geometry.Geometry, opts ...Option) (*FiniteDifference, error) {
	if domain == nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, ErrNilGeometry)
	}
	o := gatherOptions(opts...)

	if o.direction < 0 || o.direction >= domain.Rank() {
		return nil, fmt.Errorf("%s: direction %d for rank %d: %w", ctxNew, o.direction, domain.Rank(), ErrInvalidDirection)
	}
	if !o.method.valid() {
		return nil, fmt.Errorf("%s: %v: %w", ctxNew, o.method, ErrUnknownMethod)
	}
	if !o.boundary.valid() {
		return nil, fmt.Errorf("%s: %v: %w", ctxNew, o.boundary, ErrUnknownBoundary)
	}

	rng := o.rangeGeom
	if rng == nil {
		rng = domain
	}
	if !rng.SameShape(domain) {
		return nil, fmt.Errorf("%s: range %v vs domain %v: %w", ctxNew, rng, domain, ErrGeometryMismatch)
	}

	// direction is already validated, errors are impossible here.
	h, _ := domain.VoxelSize(o.direction)
	if h <= 0 {
		return nil, fmt.Errorf("%s: voxel size %g on axis %d: %w", ctxNew, h, o.direction, ErrNonPositiveVoxelSize)
	}

	n, _ := domain.Extent(o.direction)
	need := minOneSided
	if o.method == Centered {
		need = minCentered
	}
	if n < need {
		return nil, fmt.Errorf("%s: %s needs %d samples on axis %d, got %d: %w", ctxNew, o.method, need, o.direction, n, ErrAxisTooShort)
	}

	return &FiniteDifference{
		domain:         domain,
		rng:            rng,
		direction:      o.direction,
		method:         o.method,
		boundary:       o.boundary,
		voxelSize:      h,
		normIterations: o.normIterations,
		seed:           o.seed,
	}, nil
}

// DomainGeometry returns the geometry of the input space.
func (fd *FiniteDifference) DomainGeometry() *geometry.Geometry { return fd.domain }

// RangeGeometry returns the geometry of the output space.
func (fd *FiniteDifference) RangeGeometry() *geometry.Geometry { return fd.rng }

// Direction returns the differencing axis.
func (fd *FiniteDifference) Direction() int { return fd.direction }

// Method returns the differencing scheme.
func (fd *FiniteDifference) Method() Method { return fd.method }

// Boundary returns the boundary condition.
func (fd *FiniteDifference) Boundary() Boundary { return fd.boundary }

// VoxelSize returns the spacing of the domain along the direction axis.
func (fd *FiniteDifference) VoxelSize() float64 { return fd.voxelSize }

// String implements fmt.Stringer.
func (fd *FiniteDifference) String() string {
	return fmt.Sprintf("FiniteDifference(direction=%d, method=%s, boundary=%s, voxel=%g)",
		fd.direction, fd.method, fd.boundary, fd.voxelSize)
}

// Direct returns the difference of x along the direction axis, allocated on
// the range geometry.
func (fd *FiniteDifference) Direct(x *geometry.Container) (*geometry.Container, error) {
	out := fd.rng.Allocate(geometry.Zero)
	if err := fd.DirectTo(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DirectTo stores the difference of x into out.
// Implementation:
//   - Stage 1: validate rank, geometries and aliasing.
//   - Stage 2: zero out, then run the direct stencil over every line.
//   - Stage 3: divide by the voxel size when it is not 1.
func (fd *FiniteDifference) DirectTo(x, out *geometry.Container) error {
	if err := fd.check(ctxDirect, x, fd.domain, out, fd.rng); err != nil {
		return err
	}
	dst := out.AsArray()
	clear(dst)
	fd.apply(directKernels[kernelKey{fd.method, fd.boundary}], x.AsArray(), dst)
	if fd.voxelSize != unitVoxel {
		floats.Scale(1/fd.voxelSize, dst)
	}
	return nil
}

// Adjoint returns the transpose difference of y, allocated on the domain geometry.
func (fd *FiniteDifference) Adjoint(y *geometry.Container) (*geometry.Container, error) {
	out := fd.domain.Allocate(geometry.Zero)
	if err := fd.AdjointTo(y, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdjointTo stores the transpose difference of y into out.
// Implementation:
//   - Stage 1: validate rank, geometries and aliasing.
//   - Stage 2: zero out, then run the adjoint stencil over every line.
//   - Stage 3: negate and divide by the voxel size in a single pass.
func (fd *FiniteDifference) AdjointTo(y, out *geometry.Container) error {
	if err := fd.check(ctxAdjoint, y, fd.rng, out, fd.domain); err != nil {
		return err
	}
	dst := out.AsArray()
	clear(dst)
	fd.apply(adjointKernels[kernelKey{fd.method, fd.boundary}], y.AsArray(), dst)
	floats.Scale(adjointScale/fd.voxelSize, dst)
	return nil
}

// Norm returns an estimate of the largest singular value, computed by
// PowerMethod on first call and cached (including a failure) afterwards.
// Safe for concurrent callers.
func (fd *FiniteDifference) Norm() (float64, error) {
	fd.normOnce.Do(func() {
		fd.norm, fd.normErr = PowerMethod(fd, fd.normIterations, fd.seed)
	})
	return fd.norm, fd.normErr
}

// check validates one call: supported rank, input/output geometries and
// buffer aliasing. It mutates nothing.
func (fd *FiniteDifference) check(ctx string, in *geometry.Container, inGeom *geometry.Geometry,
	out *geometry.Container, outGeom *geometry.Geometry) error {
	if r := fd.domain.Rank(); r < minRank || r > maxRank {
		return fmt.Errorf("%s: rank %d: %w", ctx, r, ErrNotImplemented)
	}
	if in == nil || out == nil {
		return fmt.Errorf("%s: %w", ctx, ErrNilContainer)
	}
	if !in.Geometry().Equal(inGeom) {
		return fmt.Errorf("%s: input %v, want %v: %w", ctx, in.Geometry(), inGeom, ErrGeometryMismatch)
	}
	if !out.Geometry().Equal(outGeom) {
		return fmt.Errorf("%s: output %v, want %v: %w", ctx, out.Geometry(), outGeom, ErrGeometryMismatch)
	}
	if in.SharesBuffer(out) {
		return fmt.Errorf("%s: %w", ctx, ErrAliasedBuffer)
	}
	return nil
}

// apply runs kernel over every line along the direction axis.
func (fd *FiniteDifference) apply(kernel lineKernel, src, dst []float64) {
	n, _ := fd.domain.Extent(fd.direction)
	applyLines(kernel, src, dst, fd.domain.Size(), n, fd.domain.Stride(fd.direction))
}
