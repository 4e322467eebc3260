// SPDX-License-Identifier: MIT

// Package geometry: functional configuration for New.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Validation lives in New (gatherOptions + validate), so user mistakes
//     surface as sentinel errors rather than panics.
//   - Options fields are unexported; public APIs consume ...Option.
package geometry

// DefaultSpacing is the voxel size used on every axis when WithSpacing is absent.
const DefaultSpacing = 1.0

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	spacing []float64 // nil ⇒ DefaultSpacing on every axis
	labels  []string  // nil ⇒ no labels
}

// WithSpacing sets the per-axis spacing (voxel size). The number of values
// must equal the rank of the shape passed to New; every value must be finite.
//
// Sign is not checked here: consumers such as operator.FiniteDifference
// decide whether a non-positive spacing is acceptable for them.
//
// Complexity: O(rank).
func WithSpacing(spacing ...float64) Option {
	cp := append([]float64(nil), spacing...)
	return func(o *options) { o.spacing = cp }
}

// WithLabels attaches axis names (e.g. "vertical", "horizontal_y",
// "horizontal_x"). The number of labels must equal the rank.
func WithLabels(labels ...string) Option {
	cp := append([]string(nil), labels...)
	return func(o *options) { o.labels = cp }
}

// gatherOptions applies opts over the zero configuration.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
