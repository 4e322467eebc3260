// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with call-site context via %w). Tests match them with errors.Is.

package geometry

import "errors"

var (
	// ErrBadShape is returned when a shape is empty or holds a non-positive extent.
	ErrBadShape = errors.New("geometry: invalid shape")

	// ErrDimensionMismatch indicates a length that disagrees with the rank or
	// with the buffer size (spacing/labels length, FillFrom source length).
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrGeometryMismatch indicates two containers whose geometries differ.
	ErrGeometryMismatch = errors.New("geometry: geometry mismatch")

	// ErrOutOfRange indicates that a multi-index lies outside the shape.
	ErrOutOfRange = errors.New("geometry: index out of range")

	// ErrAxisOutOfRange indicates an axis number outside [0, rank).
	ErrAxisOutOfRange = errors.New("geometry: axis out of range")

	// ErrNaNInf signals a NaN or ±Inf spacing.
	ErrNaNInf = errors.New("geometry: NaN or Inf encountered")

	// ErrNilContainer indicates that a nil *Container was used.
	ErrNilContainer = errors.New("geometry: nil container")
)
