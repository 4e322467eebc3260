// SPDX-License-Identifier: MIT

package iterate

import "errors"

// Sentinel errors returned (wrapped) by the driver. Match with errors.Is.
var (
	// ErrNotConfigured indicates Advance or Run before a successful SetUp.
	ErrNotConfigured = errors.New("iterate: algorithm not configured, call SetUp first")

	// ErrInvalidInterval indicates a negative recording or print interval.
	ErrInvalidInterval = errors.New("iterate: interval must be >= 0")

	// ErrInvalidMaxIterations indicates a negative iteration bound.
	ErrInvalidMaxIterations = errors.New("iterate: max iterations must be >= 0")

	// ErrNotImplemented is returned by the Unimplemented stubs.
	ErrNotImplemented = errors.New("iterate: not implemented")

	// ErrNilAlgorithm indicates New was given a nil Algorithm.
	ErrNilAlgorithm = errors.New("iterate: nil algorithm")
)
