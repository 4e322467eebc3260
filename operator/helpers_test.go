package operator_test

import (
	"testing"

	"github.com/katalvlaran/tomolath/geometry"
	"github.com/katalvlaran/tomolath/operator"
	"github.com/stretchr/testify/require"
)

// allMethods and allBoundaries enumerate every supported stencil pair.
var (
	allMethods    = []operator.Method{operator.Forward, operator.Backward, operator.Centered}
	allBoundaries = []operator.Boundary{operator.Neumann, operator.Periodic}
)

// shapesByRank holds one shape per supported rank; every axis has ≥ 3
// samples so centered stencils are valid on all of them.
var shapesByRank = map[int][]int{
	2: {5, 6},
	3: {3, 4, 5},
	4: {3, 4, 3, 5},
}

// spacingFor returns a non-trivial spacing per axis so the 1/h scaling is exercised.
func spacingFor(rank int) []float64 {
	sp := make([]float64, rank)
	for i := range sp {
		sp[i] = 0.5 + 0.25*float64(i)
	}
	return sp
}

// mustFD builds a FiniteDifference or fails the test.
func mustFD(t testing.TB, g *geometry.Geometry, opts ...operator.Option) *operator.FiniteDifference {
	t.Helper()
	fd, err := operator.NewFiniteDifference(g, opts...)
	require.NoError(t, err)
	return fd
}

// containerOf allocates a container on g holding vals.
func containerOf(t testing.TB, g *geometry.Geometry, vals ...float64) *geometry.Container {
	t.Helper()
	c := g.Allocate(geometry.Zero)
	require.NoError(t, c.FillFrom(vals))
	return c
}

// denseMatrix materialises op as a dense matrix by applying apply to each
// canonical basis vector: column j of the result is apply(e_j).
func denseMatrix(t testing.TB, in, out *geometry.Geometry,
	apply func(x *geometry.Container) (*geometry.Container, error)) [][]float64 {
	t.Helper()
	cols := make([][]float64, in.Size())
	for j := range cols {
		e := in.Allocate(geometry.Zero)
		e.AsArray()[j] = 1
		col, err := apply(e)
		require.NoError(t, err)
		require.Equal(t, out.Size(), col.Len())
		cols[j] = append([]float64(nil), col.AsArray()...)
	}
	// transpose the column list into row-major [i][j]
	m := make([][]float64, out.Size())
	for i := range m {
		m[i] = make([]float64, in.Size())
		for j := range cols {
			m[i][j] = cols[j][i]
		}
	}
	return m
}
