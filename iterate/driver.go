// SPDX-License-Identifier: MIT

package iterate

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Driver runs an Algorithm: it owns the counter, the stop predicate, the
// objective history and the timing list. Build with New.
type Driver[T any] struct {
	alg      Algorithm[T]
	previous PreviousUpdater // nil when alg does not implement it
	stopper  Stopper         // nil ⇒ default predicate

	id    uuid.UUID
	log   *slog.Logger
	clock Clock

	maxIterations     int
	recordingInterval int
	printInterval     int

	configured bool
	iteration  int
	objectives []Objective
	recorded   []int
	timing     []time.Duration
}

// New validates cfg and wraps alg in a Driver. The driver starts
// unconfigured at iteration 0; call SetUp before stepping.
//
// Errors: ErrNilAlgorithm, ErrInvalidMaxIterations, ErrInvalidInterval.
func New[T any](alg Algorithm[T], cfg Config) (*Driver[T], error) {
	if alg == nil {
		return nil, fmt.Errorf("New: %w", ErrNilAlgorithm)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	d := &Driver[T]{
		alg:               alg,
		id:                uuid.New(),
		clock:             cfg.Clock,
		maxIterations:     cfg.MaxIterations,
		recordingInterval: cfg.RecordingInterval,
		printInterval:     cfg.PrintInterval,
	}
	if p, ok := alg.(PreviousUpdater); ok {
		d.previous = p
	}
	if s, ok := alg.(Stopper); ok {
		d.stopper = s
	}
	if d.clock == nil {
		d.clock = RealClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d.log = logger.With("run_id", d.id.String())

	return d, nil
}

// SetUp runs the algorithm's set-up; success marks the driver configured.
func (d *Driver[T]) SetUp() error {
	if err := d.alg.SetUp(); err != nil {
		return fmt.Errorf("SetUp: %w", err)
	}
	d.configured = true
	d.log.Info("algorithm configured",
		"max_iterations", d.maxIterations,
		"recording_interval", d.recordingInterval)
	return nil
}

// Advance performs one step and reports whether a step happened.
// Implementation:
//   - Stage 1: fail with ErrNotConfigured before SetUp.
//   - Stage 2: return (false, nil) when the stop predicate holds.
//   - Stage 3: time Update; record the objective on recording iterations.
//   - Stage 4: increment the counter, then UpdatePreviousSolution.
//
// On an Update or UpdateObjective error nothing is recorded and the counter
// stays put.
func (d *Driver[T]) Advance() (bool, error) {
	if !d.configured {
		return false, fmt.Errorf("Advance: %w", ErrNotConfigured)
	}
	if d.shouldStop() {
		return false, nil
	}

	start := d.clock.Now()
	if err := d.alg.Update(); err != nil {
		return false, fmt.Errorf("Advance: iteration %d: %w", d.iteration, err)
	}
	elapsed := d.clock.Since(start)

	if d.isRecording(d.iteration) {
		obj, err := d.alg.UpdateObjective()
		if err != nil {
			return false, fmt.Errorf("Advance: iteration %d: %w", d.iteration, err)
		}
		d.objectives = append(d.objectives, obj)
		d.recorded = append(d.recorded, d.iteration)
		d.logObjective(obj, elapsed)
	}
	d.timing = append(d.timing, elapsed)

	d.iteration++
	if d.previous != nil {
		d.previous.UpdatePreviousSolution()
	}
	return true, nil
}

// All returns an iterator over completed iteration indices. It stops when
// the stop predicate holds, or after yielding the first error.
//
//	for it, err := range d.All() {
//		if err != nil { ... }
//	}
func (d *Driver[T]) All() iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for {
			it := d.iteration
			ok, err := d.Advance()
			if err != nil {
				yield(it, err)
				return
			}
			if !ok || !yield(it, nil) {
				return
			}
		}
	}
}

// ID returns the run id attached to every log record.
func (d *Driver[T]) ID() uuid.UUID { return d.id }

// Configured reports whether SetUp succeeded.
func (d *Driver[T]) Configured() bool { return d.configured }

// Iteration returns the number of completed steps.
func (d *Driver[T]) Iteration() int { return d.iteration }

// MaxIterations returns the current bound.
func (d *Driver[T]) MaxIterations() int { return d.maxIterations }

// SetMaxIterations changes the bound; raising it resumes a stopped run.
func (d *Driver[T]) SetMaxIterations(n int) error {
	if n < 0 {
		return fmt.Errorf("SetMaxIterations(%d): %w", n, ErrInvalidMaxIterations)
	}
	d.maxIterations = n
	return nil
}

// RecordingInterval returns the objective recording cadence.
func (d *Driver[T]) RecordingInterval() int { return d.recordingInterval }

// SetRecordingInterval changes the recording cadence; 0 disables recording.
func (d *Driver[T]) SetRecordingInterval(n int) error {
	if n < 0 {
		return fmt.Errorf("SetRecordingInterval(%d): %w", n, ErrInvalidInterval)
	}
	d.recordingInterval = n
	return nil
}

// Status returns a snapshot of the counters.
func (d *Driver[T]) Status() Status {
	return Status{
		Iteration:         d.iteration,
		MaxIterations:     d.maxIterations,
		RecordingInterval: d.recordingInterval,
	}
}

// Loss returns the recorded primal objective values.
func (d *Driver[T]) Loss() []float64 {
	out := make([]float64, len(d.objectives))
	for i, o := range d.objectives {
		out[i] = o.Primal
	}
	return out
}

// Objectives returns a copy of the recorded objectives.
func (d *Driver[T]) Objectives() []Objective {
	return append([]Objective(nil), d.objectives...)
}

// RecordedIterations returns the iteration index of each recorded objective.
func (d *Driver[T]) RecordedIterations() []int {
	return append([]int(nil), d.recorded...)
}

// Timing returns the duration of every completed Update.
func (d *Driver[T]) Timing() []time.Duration {
	return append([]time.Duration(nil), d.timing...)
}

// LastObjective returns the most recent objective, or all-NaN when nothing
// has been recorded.
func (d *Driver[T]) LastObjective() Objective {
	if len(d.objectives) == 0 {
		return nanObjective()
	}
	return d.objectives[len(d.objectives)-1]
}

// Output returns the algorithm's current solution.
func (d *Driver[T]) Output() T { return d.alg.Solution() }

func (d *Driver[T]) shouldStop() bool {
	if d.stopper != nil {
		return d.stopper.ShouldStop(d.Status())
	}
	return d.Status().MaxIterationReached()
}

func (d *Driver[T]) isRecording(it int) bool {
	return d.recordingInterval > 0 && it%d.recordingInterval == 0
}

func (d *Driver[T]) logObjective(obj Objective, elapsed time.Duration) {
	args := []any{"iteration", d.iteration, "objective", obj.Primal}
	if obj.HasDual() {
		args = append(args, "dual", obj.Dual, "gap", obj.Gap)
	}
	args = append(args, "elapsed", elapsed)
	d.log.Info("objective recorded", args...)
}
