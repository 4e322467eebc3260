// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// Every message is prefixed with "operator: ". Call sites wrap with
// fmt.Errorf("Ctx: %w", ErrX); callers match with errors.Is.
//
// Configuration errors (ErrInvalidDirection, ErrNonPositiveVoxelSize,
// ErrUnknownMethod, ErrUnknownBoundary, ErrNilGeometry, ErrAxisTooShort)
// are returned by constructors. Shape and buffer errors are returned by
// Direct/Adjoint at call time.

package operator

import "errors"

var (
	// ErrNilGeometry indicates that a nil domain geometry was supplied.
	ErrNilGeometry = errors.New("operator: nil geometry")

	// ErrInvalidDirection indicates a differencing axis outside [0, rank).
	ErrInvalidDirection = errors.New("operator: direction out of range")

	// ErrNonPositiveVoxelSize indicates a voxel size ≤ 0 along the direction.
	ErrNonPositiveVoxelSize = errors.New("operator: voxel size must be positive")

	// ErrUnknownMethod indicates an unsupported differencing scheme.
	ErrUnknownMethod = errors.New("operator: unknown finite difference method")

	// ErrUnknownBoundary indicates an unsupported boundary condition.
	ErrUnknownBoundary = errors.New("operator: unknown boundary condition")

	// ErrAxisTooShort indicates an axis too short for the stencil
	// (fewer than 3 samples for centered, fewer than 2 otherwise).
	ErrAxisTooShort = errors.New("operator: axis too short for stencil")

	// ErrNotImplemented marks array ranks the finite difference kernels do not support.
	ErrNotImplemented = errors.New("operator: not implemented")

	// ErrGeometryMismatch indicates an input or output buffer whose geometry
	// differs from the operator's domain/range.
	ErrGeometryMismatch = errors.New("operator: geometry mismatch")

	// ErrAliasedBuffer indicates that input and output share a backing buffer.
	ErrAliasedBuffer = errors.New("operator: input and output share a buffer")

	// ErrBadIterations is returned by PowerMethod for a non-positive iteration count.
	ErrBadIterations = errors.New("operator: iterations must be > 0")

	// ErrNilContainer indicates that a nil input or output container was supplied.
	ErrNilContainer = errors.New("operator: nil container")
)
