// Package geometry describes N-dimensional sampled volumes and the dense
// buffers that live on them.
//
// The geometry package provides:
//
//   - Geometry: an immutable shape (per-axis extents) plus per-axis spacing
//     ("voxel size") and optional axis labels.
//   - Container: a flat, row-major []float64 buffer bound to a Geometry,
//     with bounds-checked At/Set, in-place Fill and raw-buffer access.
//   - Fillers (Zero, Constant, Uniform, UniformInt) used by Geometry.Allocate
//     to produce zero-, constant- or deterministically random-filled buffers.
//
// Two containers are compatible iff their geometries match exactly (shape and
// spacing on every axis). Operators in package operator rely on this rule to
// validate caller-supplied output buffers.
//
// Row-major layout means the last axis is contiguous: for shape (d0, d1, d2)
// the element (i, j, k) lives at offset (i*d1 + j)*d2 + k. Along axis a the
// stride between neighbours is the product of the extents after a.
//
// See example_test.go for usage patterns.
package geometry
