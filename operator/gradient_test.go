package operator_test

import (
	"testing"

	"github.com/katalvlaran/tomolath/geometry"
	"github.com/katalvlaran/tomolath/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient(t *testing.T) {
	g := geometry.MustNew([]int{3, 4, 5}, geometry.WithSpacing(1, 2, 3))
	parts, err := operator.Gradient(g, operator.WithBoundary(operator.Periodic), operator.WithDirection(7))
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for axis, fd := range parts {
		assert.Equal(t, axis, fd.Direction())
		assert.Equal(t, operator.Periodic, fd.Boundary())
		assert.Equal(t, float64(axis+1), fd.VoxelSize())
	}
}

func TestGradient_Errors(t *testing.T) {
	_, err := operator.Gradient(nil)
	assert.ErrorIs(t, err, operator.ErrNilGeometry)

	short := geometry.MustNew([]int{4, 2})
	_, err = operator.Gradient(short, operator.WithMethod(operator.Centered))
	assert.ErrorIs(t, err, operator.ErrAxisTooShort)
	assert.Contains(t, err.Error(), "axis 1")
}
