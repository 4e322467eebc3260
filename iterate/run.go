package iterate

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Callback receives the index of a recorded iteration, its objective and the
// current solution.
type Callback[T any] func(iteration int, objective Objective, solution T)

// RunOption configures a single Run.
type RunOption func(*runOptions)

type runOptions struct {
	progress    io.Writer
	veryVerbose bool
}

// WithProgress writes the tabulated progress report to w.
func WithProgress(w io.Writer) RunOption {
	return func(o *runOptions) { o.progress = w }
}

// WithVeryVerbose switches the report to primal, dual and gap columns.
func WithVeryVerbose() RunOption {
	return func(o *runOptions) { o.veryVerbose = true }
}

// Report layout.
const (
	iterLabel   = "Iter"
	stopMessage = "Stop criterion has been reached."
	ruleLead    = 3
	colIter     = 9
	colMax      = 10
	colTime     = 13
	colScalar   = 20
	colPD       = 13
	colGap      = 15
)

// Run steps at most iterations times (iterations ≤ 0: until the stop
// predicate holds). After each step whose index was recorded it calls
// callback (when non-nil). With WithProgress, a header, one row per print
// interval and a closing summary are written.
//
// If the stop predicate already holds, Run reports it and does nothing.
//
// Complexity: O(steps · cost(Update)).
func (d *Driver[T]) Run(iterations int, callback Callback[T], opts ...RunOption) error {
	if !d.configured {
		return fmt.Errorf("Run: %w", ErrNotConfigured)
	}
	var o runOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if d.shouldStop() {
		if o.progress != nil {
			fmt.Fprintln(o.progress, stopMessage)
		}
		d.log.Info("run skipped, stop criterion already reached", "iteration", d.iteration)
		return nil
	}

	every := d.printInterval
	if every == 0 {
		every = d.recordingInterval
	}
	if o.progress != nil {
		fmt.Fprintln(o.progress, header(o.veryVerbose))
	}

	start := d.clock.Now()
	steps := 0
	for iterations <= 0 || steps < iterations {
		it := d.iteration
		ok, err := d.Advance()
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		if !ok {
			break
		}
		if callback != nil && d.isRecording(it) {
			callback(it, d.LastObjective(), d.alg.Solution())
		}
		if o.progress != nil && every > 0 && steps%every == 0 {
			fmt.Fprintln(o.progress, d.row(it, d.isRecording(it), every, o.veryVerbose))
		}
		steps++
	}

	if o.progress != nil {
		width := ruleLead + colIter + colMax + colTime + colScalar
		if o.veryVerbose {
			width = ruleLead + colIter + colMax + colTime + 2*colPD + colGap
		}
		// closing row: completed count with the latest recorded objective
		fmt.Fprintln(o.progress, strings.Repeat("-", width))
		fmt.Fprintln(o.progress, d.row(d.iteration, len(d.recorded) > 0, every, o.veryVerbose))
		fmt.Fprintln(o.progress, stopMessage)
	}
	d.log.Info("run finished",
		"iteration", d.iteration,
		"steps", steps,
		"objective", d.LastObjective().Primal,
		"elapsed", d.clock.Since(start))
	return nil
}

// header returns the two header lines of the report.
func header(veryVerbose bool) string {
	if veryVerbose {
		return fmt.Sprintf("%*s %*s %*s %*s %*s %*s\n%*s %*s %*s %*s %*s %*s",
			colIter, iterLabel, colMax, "Max "+iterLabel, colTime, "Time/"+iterLabel,
			colPD, "Primal", colPD, "Dual", colGap, "Primal-Dual",
			colIter, "", colMax, "", colTime, "[s]",
			colPD, "Objective", colPD, "Objective", colGap, "Gap")
	}
	units := fmt.Sprintf("%*s %*s %*s", colIter, "", colMax, "", colTime, "[s]")
	return fmt.Sprintf("%*s %*s %*s %*s\n%s",
		colIter, iterLabel, colMax, "Max "+iterLabel, colTime, "Time/"+iterLabel, colScalar, "Objective",
		units)
}

// row formats one report line for iteration it. The objective columns show
// the last recorded objective when withObjective is set, NaN otherwise.
// Time/Iter is the mean of the last window update durations, in seconds.
func (d *Driver[T]) row(it int, withObjective bool, window int, veryVerbose bool) string {
	obj := nanObjective()
	if withObjective {
		obj = d.LastObjective()
	}
	return fmt.Sprintf("%*d %*d %*s %s",
		colIter, it, colMax, d.maxIterations, colTime, fmt.Sprintf("%.3f", d.meanTime(window)),
		objectiveString(obj, veryVerbose))
}

// meanTime averages the last window entries of the timing list.
func (d *Driver[T]) meanTime(window int) float64 {
	if len(d.timing) == 0 {
		return 0
	}
	if window <= 0 || window > len(d.timing) {
		window = len(d.timing)
	}
	secs := make([]float64, window)
	for i, t := range d.timing[len(d.timing)-window:] {
		secs[i] = t.Seconds()
	}
	return stat.Mean(secs, nil)
}

func objectiveString(o Objective, veryVerbose bool) string {
	if veryVerbose {
		return fmt.Sprintf(" %*.5e %*.5e%*.5e", colPD, o.Primal, colPD, o.Dual, colGap, o.Gap)
	}
	return fmt.Sprintf("%*.5e", colScalar, o.Primal)
}
