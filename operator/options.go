// SPDX-License-Identifier: MIT

// Package operator: functional configuration for NewFiniteDifference.
//
// Design goals:
//   - Documented defaults in one place (constants below).
//   - Values a user may plausibly get wrong (direction, method, boundary) are
//     validated by the constructor and reported as sentinel errors.
//   - Values only a programmer can get wrong (non-positive iteration count)
//     panic in the WithX constructor with a stable message.
package operator

import "github.com/katalvlaran/tomolath/geometry"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDirection is the differencing axis when WithDirection is absent.
	DefaultDirection = 0

	// DefaultMethod is the differencing scheme when WithMethod is absent.
	DefaultMethod = Forward

	// DefaultBoundary is the boundary condition when WithBoundary is absent.
	DefaultBoundary = Neumann

	// DefaultNormIterations is the number of power iterations used by Norm.
	DefaultNormIterations = 25

	// DefaultSeed seeds the random start vector of the power method.
	DefaultSeed int64 = geometry.DefaultSeed
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNormIterationsInvalid = "operator: WithNormIterations: iterations must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rangeGeom      *geometry.Geometry // nil ⇒ domain
	direction      int
	method         Method
	boundary       Boundary
	normIterations int
	seed           int64
}

func defaultOptions() options {
	return options{
		direction:      DefaultDirection,
		method:         DefaultMethod,
		boundary:       DefaultBoundary,
		normIterations: DefaultNormIterations,
		seed:           DefaultSeed,
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRange sets the range geometry. It must have the same shape as the
// domain; when absent the domain geometry is reused.
func WithRange(g *geometry.Geometry) Option {
	return func(o *options) { o.rangeGeom = g }
}

// WithDirection selects the differencing axis (0-based).
func WithDirection(axis int) Option {
	return func(o *options) { o.direction = axis }
}

// WithMethod selects the differencing scheme.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithBoundary selects the boundary condition.
func WithBoundary(b Boundary) Option {
	return func(o *options) { o.boundary = b }
}

// WithNormIterations sets the number of power iterations used by Norm.
// Panics when n ≤ 0.
func WithNormIterations(n int) Option {
	if n <= 0 {
		panic(panicNormIterationsInvalid)
	}
	return func(o *options) { o.normIterations = n }
}

// WithSeed seeds the power-method start vector (0 ⇒ geometry.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}
