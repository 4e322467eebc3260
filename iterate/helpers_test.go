package iterate_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/tomolath/iterate"
)

// stepTime is how far countingAlg moves its clock per Update.
const stepTime = 250 * time.Millisecond

// countingAlg counts calls; its objective is the number of updates so far.
type countingAlg struct {
	clock *iterate.ManualClock

	setUpErr  error
	updateErr error // returned once updates reaches failAt
	failAt    int

	updates    int
	objectives int
	previous   int
}

func newCountingAlg() *countingAlg {
	return &countingAlg{clock: iterate.NewManualClock(time.Unix(0, 0)), failAt: -1}
}

func (a *countingAlg) SetUp() error { return a.setUpErr }

func (a *countingAlg) Update() error {
	if a.updates == a.failAt {
		return a.updateErr
	}
	a.clock.Advance(stepTime)
	a.updates++
	return nil
}

func (a *countingAlg) UpdateObjective() (iterate.Objective, error) {
	a.objectives++
	return iterate.Scalar(float64(a.updates)), nil
}

func (a *countingAlg) Solution() int { return a.updates }

func (a *countingAlg) UpdatePreviousSolution() { a.previous++ }

// stoppingAlg stops after limit updates or at the driver bound, whichever first.
type stoppingAlg struct {
	*countingAlg
	limit int
}

func (a stoppingAlg) ShouldStop(s iterate.Status) bool {
	return s.MaxIterationReached() || a.updates >= a.limit
}

// pdAlg reports a primal-dual objective.
type pdAlg struct{ *countingAlg }

func (a pdAlg) UpdateObjective() (iterate.Objective, error) {
	v := float64(a.updates)
	return iterate.PrimalDual(v+1, v), nil
}

// newDriver builds a configured driver over alg with the given bounds.
func newDriver(alg iterate.Algorithm[int], clock iterate.Clock, maxIter, interval int) (*iterate.Driver[int], error) {
	cfg := iterate.DefaultConfig()
	cfg.MaxIterations = maxIter
	cfg.RecordingInterval = interval
	cfg.Clock = clock
	d, err := iterate.New(alg, cfg)
	if err != nil {
		return nil, err
	}
	return d, d.SetUp()
}

// newTextLogger writes text records without timestamps to w.
func newTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
