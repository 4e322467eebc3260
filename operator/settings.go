package operator

import (
	"fmt"

	"github.com/katalvlaran/tomolath/geometry"
	"gopkg.in/yaml.v3"
)

// Settings is the declarative form of the finite difference options, for
// loading operator configuration from YAML:
//
//	direction: 1
//	method: centered
//	boundary_condition: Periodic
//
// Zero values select the defaults (axis 0, forward, Neumann).
type Settings struct {
	Direction      int      `yaml:"direction"`
	Method         Method   `yaml:"method"`
	Boundary       Boundary `yaml:"boundary_condition"`
	NormIterations int      `yaml:"norm_iterations,omitempty"`
	Seed           int64    `yaml:"seed,omitempty"`
}

// ParseSettings decodes YAML into Settings. Unknown method or boundary names
// surface as ErrUnknownMethod / ErrUnknownBoundary.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("ParseSettings: %w", err)
	}
	return s, nil
}

// Options converts s into functional options.
func (s Settings) Options() []Option {
	opts := []Option{
		WithDirection(s.Direction),
		WithMethod(s.Method),
		WithBoundary(s.Boundary),
		WithSeed(s.Seed),
	}
	if s.NormIterations > 0 {
		opts = append(opts, WithNormIterations(s.NormIterations))
	}
	return opts
}

// Build constructs the operator described by s on domain.
func (s Settings) Build(domain *geometry.Geometry, extra ...Option) (*FiniteDifference, error) {
	return NewFiniteDifference(domain, append(s.Options(), extra...)...)
}
