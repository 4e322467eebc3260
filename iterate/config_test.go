package iterate_test

import (
	"testing"

	"github.com/katalvlaran/tomolath/iterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := iterate.DefaultConfig()
	assert.Equal(t, 0, cfg.MaxIterations)
	assert.Equal(t, 1, cfg.RecordingInterval)
	assert.Equal(t, 0, cfg.PrintInterval)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	cfg, err := iterate.ParseConfig([]byte(`
max_iterations: 500
recording_interval: 10
print_interval: 50
`))
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.Equal(t, 10, cfg.RecordingInterval)
	assert.Equal(t, 50, cfg.PrintInterval)
	assert.Nil(t, cfg.Logger)
	assert.Nil(t, cfg.Clock)
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := iterate.ParseConfig([]byte("max_iterations: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxIterations)
	assert.Equal(t, iterate.DefaultRecordingInterval, cfg.RecordingInterval)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := iterate.ParseConfig([]byte("recording_interval: -1\n"))
	assert.ErrorIs(t, err, iterate.ErrInvalidInterval)

	_, err = iterate.ParseConfig([]byte("max_iterations: -3\n"))
	assert.ErrorIs(t, err, iterate.ErrInvalidMaxIterations)

	_, err = iterate.ParseConfig([]byte("max_iterations: [1, 2]\n"))
	assert.Error(t, err)
}
