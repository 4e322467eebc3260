package iterate_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tomolath/iterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_StopsAtMaxIterations(t *testing.T) {
	alg := newCountingAlg()
	d, err := newDriver(alg, alg.clock, 5, 1)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		ok, err := d.Advance()
		require.NoError(t, err)
		require.True(t, ok, "advance %d", i)
	}
	ok, err := d.Advance()
	require.NoError(t, err)
	assert.False(t, ok, "sixth advance is a no-op")

	assert.Equal(t, 5, d.Iteration())
	assert.Equal(t, 5, alg.updates)
	assert.Equal(t, 5, alg.previous)
	assert.Len(t, d.Timing(), 5)
	assert.True(t, d.Status().MaxIterationReached())
}

func TestDriver_RecordingInterval(t *testing.T) {
	alg := newCountingAlg()
	d, err := newDriver(alg, alg.clock, 5, 2)
	require.NoError(t, err)
	for range 5 {
		_, err := d.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 2, 4}, d.RecordedIterations())
	// objective is taken after Update, so iteration k sees k+1 updates
	assert.Equal(t, []float64{1, 3, 5}, d.Loss())
	assert.Equal(t, 3, alg.objectives)
	assert.Equal(t, 5.0, d.LastObjective().Primal)
}

func TestDriver_RecordingDisabled(t *testing.T) {
	alg := newCountingAlg()
	d, err := newDriver(alg, alg.clock, 4, 0)
	require.NoError(t, err)
	for range 4 {
		_, err := d.Advance()
		require.NoError(t, err)
	}
	assert.Empty(t, d.Loss())
	assert.Zero(t, alg.objectives)
	assert.True(t, math.IsNaN(d.LastObjective().Primal))
}

func TestDriver_NotConfigured(t *testing.T) {
	alg := newCountingAlg()
	d, err := iterate.New[int](alg, iterate.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, d.Configured())

	// MaxIterations is 0, so the stop predicate already holds; the sequencing
	// error still wins.
	ok, err := d.Advance()
	assert.False(t, ok)
	assert.ErrorIs(t, err, iterate.ErrNotConfigured)
	assert.Zero(t, alg.updates)

	assert.ErrorIs(t, d.Run(3, nil), iterate.ErrNotConfigured)
}

func TestDriver_SetUpFailure(t *testing.T) {
	alg := newCountingAlg()
	alg.setUpErr = errors.New("no data")
	d, err := iterate.New[int](alg, iterate.Config{MaxIterations: 3, RecordingInterval: 1})
	require.NoError(t, err)
	require.ErrorIs(t, d.SetUp(), alg.setUpErr)
	assert.False(t, d.Configured())

	_, err = d.Advance()
	assert.ErrorIs(t, err, iterate.ErrNotConfigured)
}

func TestDriver_UpdateFailureKeepsCounter(t *testing.T) {
	alg := newCountingAlg()
	alg.failAt = 2
	alg.updateErr = errors.New("diverged")
	d, err := newDriver(alg, alg.clock, 10, 1)
	require.NoError(t, err)

	var seen []int
	var last error
	for it, err := range d.All() {
		if err != nil {
			last = err
			break
		}
		seen = append(seen, it)
	}
	assert.Equal(t, []int{0, 1}, seen)
	assert.ErrorIs(t, last, alg.updateErr)
	assert.Equal(t, 2, d.Iteration())
	assert.Len(t, d.Loss(), 2)
	assert.Len(t, d.Timing(), 2)
}

func TestDriver_ConfigErrors(t *testing.T) {
	alg := newCountingAlg()
	tests := []struct {
		name string
		cfg  iterate.Config
		want error
	}{
		{"negative max", iterate.Config{MaxIterations: -1}, iterate.ErrInvalidMaxIterations},
		{"negative recording", iterate.Config{RecordingInterval: -2}, iterate.ErrInvalidInterval},
		{"negative print", iterate.Config{PrintInterval: -1}, iterate.ErrInvalidInterval},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := iterate.New[int](alg, tc.cfg)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := iterate.New[int](nil, iterate.DefaultConfig())
	assert.ErrorIs(t, err, iterate.ErrNilAlgorithm)

	d, err := newDriver(alg, alg.clock, 1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, d.SetMaxIterations(-1), iterate.ErrInvalidMaxIterations)
	assert.ErrorIs(t, d.SetRecordingInterval(-1), iterate.ErrInvalidInterval)
	assert.Equal(t, 1, d.MaxIterations())
	assert.Equal(t, 1, d.RecordingInterval())
}

func TestDriver_Stopper(t *testing.T) {
	alg := stoppingAlg{countingAlg: newCountingAlg(), limit: 3}
	d, err := newDriver(alg, alg.clock, 10, 1)
	require.NoError(t, err)

	n := 0
	for _, err := range d.All() {
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, d.Iteration())
	assert.False(t, d.Status().MaxIterationReached())
}

func TestDriver_AllBreak(t *testing.T) {
	alg := newCountingAlg()
	d, err := newDriver(alg, alg.clock, 10, 1)
	require.NoError(t, err)
	for it := range d.All() {
		if it == 3 {
			break
		}
	}
	assert.Equal(t, 4, d.Iteration())
}

func TestDriver_Resume(t *testing.T) {
	alg := newCountingAlg()
	d, err := newDriver(alg, alg.clock, 3, 1)
	require.NoError(t, err)
	require.NoError(t, d.Run(0, nil))
	assert.Equal(t, 3, d.Iteration())

	ok, err := d.Advance()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, d.SetMaxIterations(6))
	require.NoError(t, d.Run(0, nil))
	assert.Equal(t, 6, d.Iteration())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, d.RecordedIterations())
	assert.Equal(t, 6, d.Output())
}

func TestDriver_Timing(t *testing.T) {
	alg := newCountingAlg()
	d, err := newDriver(alg, alg.clock, 3, 1)
	require.NoError(t, err)
	require.NoError(t, d.Run(0, nil))
	for _, dt := range d.Timing() {
		assert.Equal(t, stepTime, dt)
	}
}

func TestDriver_PrimalDual(t *testing.T) {
	alg := pdAlg{newCountingAlg()}
	d, err := newDriver(alg, alg.clock, 2, 1)
	require.NoError(t, err)
	require.NoError(t, d.Run(0, nil))

	last := d.LastObjective()
	assert.True(t, last.HasDual())
	assert.Equal(t, iterate.Objective{Primal: 3, Dual: 2, Gap: 1}, last)
	assert.Equal(t, []float64{2, 3}, d.Loss())
}

func TestDriver_Logging(t *testing.T) {
	var buf bytes.Buffer
	alg := newCountingAlg()
	cfg := iterate.Config{MaxIterations: 2, RecordingInterval: 1, Clock: alg.clock, Logger: newTextLogger(&buf)}
	d, err := iterate.New[int](alg, cfg)
	require.NoError(t, err)
	require.NoError(t, d.SetUp())
	require.NoError(t, d.Run(0, nil))

	out := buf.String()
	assert.Contains(t, out, "run_id="+d.ID().String())
	assert.Contains(t, out, "msg=\"objective recorded\"")
	assert.Contains(t, out, "iteration=0 objective=1 elapsed=250ms")
	assert.Contains(t, out, "iteration=1 objective=2 elapsed=250ms")
	assert.Contains(t, out, "msg=\"run finished\"")
	assert.NotContains(t, out, "dual=")
}

func TestUnimplemented(t *testing.T) {
	type partial struct{ iterate.Unimplemented[[]float64] }
	d, err := iterate.New[[]float64](partial{}, iterate.DefaultConfig())
	require.NoError(t, err)
	assert.ErrorIs(t, d.SetUp(), iterate.ErrNotImplemented)
	assert.Nil(t, d.Output())

	var u iterate.Unimplemented[int]
	assert.ErrorIs(t, u.Update(), iterate.ErrNotImplemented)
	obj, err := u.UpdateObjective()
	assert.ErrorIs(t, err, iterate.ErrNotImplemented)
	assert.True(t, math.IsNaN(obj.Primal))
}

func TestObjective(t *testing.T) {
	s := iterate.Scalar(4)
	assert.Equal(t, 4.0, s.Primal)
	assert.True(t, math.IsNaN(s.Dual))
	assert.True(t, math.IsNaN(s.Gap))
	assert.False(t, s.HasDual())

	pd := iterate.PrimalDual(5, 3.5)
	assert.Equal(t, 1.5, pd.Gap)
	assert.True(t, pd.HasDual())
}
