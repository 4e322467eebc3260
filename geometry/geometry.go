// SPDX-License-Identifier: MIT

// Package geometry - Geometry: shape, spacing and labels of an N-d volume.
//
// Purpose:
//   - Single source of truth for array shape and physical sampling.
//   - Immutable after New: accessors hand out copies, never the backing slices.
//   - Factory for Containers (Allocate) so buffers always agree with their shape.
//
// Complexity quicksheet:
//   - New: O(rank); Equal: O(rank); Allocate: O(Size()).
package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Geometry is the immutable description of an N-dimensional sampled volume.
//   - shape holds the per-axis extents (all > 0), row-major order.
//   - spacing holds the per-axis voxel size, same length as shape.
//   - labels optionally names each axis.
type Geometry struct {
	shape   []int
	spacing []float64
	labels  []string
	size    int // product of shape, cached
}

// New validates shape and options and returns an immutable Geometry.
// Implementation:
//   - Stage 1: reject an empty shape or any extent ≤ 0 (ErrBadShape).
//   - Stage 2: resolve spacing (default 1.0 per axis); length must match the
//     rank (ErrDimensionMismatch) and values must be finite (ErrNaNInf).
//   - Stage 3: resolve labels; length must match the rank when present.
//
// Complexity: O(rank).
func New(shape []int, opts ...Option) (*Geometry, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("New: empty shape: %w", ErrBadShape)
	}
	size := 1
	for axis, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("New: extent %d on axis %d: %w", n, axis, ErrBadShape)
		}
		size *= n
	}

	o := gatherOptions(opts...)

	spacing := o.spacing
	if spacing == nil {
		spacing = make([]float64, len(shape))
		for i := range spacing {
			spacing[i] = DefaultSpacing
		}
	}
	if len(spacing) != len(shape) {
		return nil, fmt.Errorf("New: %d spacing values for rank %d: %w", len(spacing), len(shape), ErrDimensionMismatch)
	}
	for axis, s := range spacing {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("New: spacing on axis %d: %w", axis, ErrNaNInf)
		}
	}
	if o.labels != nil && len(o.labels) != len(shape) {
		return nil, fmt.Errorf("New: %d labels for rank %d: %w", len(o.labels), len(shape), ErrDimensionMismatch)
	}

	return &Geometry{
		shape:   append([]int(nil), shape...),
		spacing: spacing,
		labels:  o.labels,
		size:    size,
	}, nil
}

// MustNew is New for package-level fixtures and tests; it panics on error.
func MustNew(shape []int, opts ...Option) *Geometry {
	g, err := New(shape, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rank returns the number of axes.
func (g *Geometry) Rank() int { return len(g.shape) }

// Size returns the total number of elements (product of extents).
func (g *Geometry) Size() int { return g.size }

// Shape returns a copy of the per-axis extents.
func (g *Geometry) Shape() []int { return append([]int(nil), g.shape...) }

// Spacing returns a copy of the per-axis voxel sizes.
func (g *Geometry) Spacing() []float64 { return append([]float64(nil), g.spacing...) }

// Labels returns a copy of the axis labels, or nil when none were set.
func (g *Geometry) Labels() []string {
	if g.labels == nil {
		return nil
	}
	return append([]string(nil), g.labels...)
}

// Extent returns the length of the given axis.
func (g *Geometry) Extent(axis int) (int, error) {
	if axis < 0 || axis >= len(g.shape) {
		return 0, fmt.Errorf("Extent(%d): %w", axis, ErrAxisOutOfRange)
	}
	return g.shape[axis], nil
}

// VoxelSize returns the spacing of the given axis.
func (g *Geometry) VoxelSize(axis int) (float64, error) {
	if axis < 0 || axis >= len(g.shape) {
		return 0, fmt.Errorf("VoxelSize(%d): %w", axis, ErrAxisOutOfRange)
	}
	return g.spacing[axis], nil
}

// Stride returns the flat-offset distance between neighbours along axis,
// i.e. the product of the extents after it. The caller guarantees a valid axis.
func (g *Geometry) Stride(axis int) int {
	s := 1
	for _, n := range g.shape[axis+1:] {
		s *= n
	}
	return s
}

// Equal reports whether g and other describe the same sampling: identical
// rank, extents and spacing. Labels are descriptive and not compared.
// A nil geometry only equals another nil geometry.
func (g *Geometry) Equal(other *Geometry) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}
	if len(g.shape) != len(other.shape) {
		return false
	}
	for i := range g.shape {
		if g.shape[i] != other.shape[i] || g.spacing[i] != other.spacing[i] {
			return false
		}
	}
	return true
}

// SameShape reports whether g and other have identical extents, ignoring spacing.
func (g *Geometry) SameShape(other *Geometry) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.shape) != len(other.shape) {
		return false
	}
	for i := range g.shape {
		if g.shape[i] != other.shape[i] {
			return false
		}
	}
	return true
}

// Allocate returns a new Container on g, initialised by fill.
// A nil fill behaves like Zero.
//
// Complexity: O(Size()).
func (g *Geometry) Allocate(fill Filler) *Container {
	c := &Container{geom: g, data: make([]float64, g.size)}
	if fill != nil {
		fill(c.data)
	}
	return c
}

// String implements fmt.Stringer, e.g. "Geometry(shape=[2 3], spacing=[1 0.5])".
func (g *Geometry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Geometry(shape=%v, spacing=%v", g.shape, g.spacing)
	if g.labels != nil {
		fmt.Fprintf(&sb, ", labels=%v", g.labels)
	}
	sb.WriteString(")")
	return sb.String()
}
