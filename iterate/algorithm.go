package iterate

import (
	"fmt"
	"math"
)

// Algorithm is one iterative method. The driver calls SetUp once, then
// Update per step and UpdateObjective on recording steps. Solution is handed
// to Run callbacks and returned by Driver.Output.
type Algorithm[T any] interface {
	SetUp() error
	Update() error
	UpdateObjective() (Objective, error)
	Solution() T
}

// PreviousUpdater is implemented by algorithms that keep the previous
// iterate; UpdatePreviousSolution runs after every completed step.
type PreviousUpdater interface {
	UpdatePreviousSolution()
}

// Stopper is implemented by algorithms with their own stop criterion. It
// replaces the default (iteration ≥ max); use Status.MaxIterationReached to
// keep the bound as well.
type Stopper interface {
	ShouldStop(s Status) bool
}

// Status is a snapshot of the driver counters.
type Status struct {
	Iteration         int
	MaxIterations     int
	RecordingInterval int
}

// MaxIterationReached reports Iteration ≥ MaxIterations.
func (s Status) MaxIterationReached() bool { return s.Iteration >= s.MaxIterations }

// Unimplemented can be embedded to satisfy Algorithm while a method is still
// missing; every stub fails with ErrNotImplemented.
type Unimplemented[T any] struct{}

// SetUp fails with ErrNotImplemented.
func (Unimplemented[T]) SetUp() error { return fmt.Errorf("SetUp: %w", ErrNotImplemented) }

// Update fails with ErrNotImplemented.
func (Unimplemented[T]) Update() error { return fmt.Errorf("Update: %w", ErrNotImplemented) }

// UpdateObjective fails with ErrNotImplemented.
func (Unimplemented[T]) UpdateObjective() (Objective, error) {
	return nanObjective(), fmt.Errorf("UpdateObjective: %w", ErrNotImplemented)
}

// Solution returns the zero T.
func (Unimplemented[T]) Solution() T {
	var zero T
	return zero
}

// Objective is the value recorded at one iteration. Single-objective methods
// fill Primal only (see Scalar); primal-dual methods also report Dual and the
// Gap between them.
type Objective struct {
	Primal float64
	Dual   float64
	Gap    float64
}

// Scalar returns a single-valued objective; Dual and Gap are NaN.
func Scalar(v float64) Objective {
	return Objective{Primal: v, Dual: math.NaN(), Gap: math.NaN()}
}

// PrimalDual returns a primal-dual objective with Gap = primal − dual.
func PrimalDual(primal, dual float64) Objective {
	return Objective{Primal: primal, Dual: dual, Gap: primal - dual}
}

// HasDual reports whether the objective carries a dual value.
func (o Objective) HasDual() bool { return !math.IsNaN(o.Dual) }

func nanObjective() Objective {
	return Objective{Primal: math.NaN(), Dual: math.NaN(), Gap: math.NaN()}
}
