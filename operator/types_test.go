package operator_test

import (
	"testing"

	"github.com/katalvlaran/tomolath/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod_Text(t *testing.T) {
	for _, m := range []operator.Method{operator.Forward, operator.Backward, operator.Centered} {
		text, err := m.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, m.String(), string(text))

		var back operator.Method
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}

	got, err := operator.ParseMethod("CENTERED")
	require.NoError(t, err)
	assert.Equal(t, operator.Centered, got)

	_, err = operator.ParseMethod("central")
	assert.ErrorIs(t, err, operator.ErrUnknownMethod)
	_, err = operator.Method(7).MarshalText()
	assert.ErrorIs(t, err, operator.ErrUnknownMethod)
	assert.Equal(t, "Method(7)", operator.Method(7).String())
}

func TestBoundary_Text(t *testing.T) {
	assert.Equal(t, "Neumann", operator.Neumann.String())
	assert.Equal(t, "Periodic", operator.Periodic.String())

	got, err := operator.ParseBoundary("periodic")
	require.NoError(t, err)
	assert.Equal(t, operator.Periodic, got)

	var b operator.Boundary
	assert.ErrorIs(t, b.UnmarshalText([]byte("Dirichlet")), operator.ErrUnknownBoundary)
	_, err = operator.Boundary(3).MarshalText()
	assert.ErrorIs(t, err, operator.ErrUnknownBoundary)
}
