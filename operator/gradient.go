package operator

import (
	"fmt"

	"github.com/katalvlaran/tomolath/geometry"
)

// Gradient returns one FiniteDifference per axis of domain, in axis order.
// opts apply to every component; any WithDirection among them is overridden.
// The first construction error aborts and is returned with the axis attached.
func Gradient(domain *geometry.Geometry, opts ...Option) ([]*FiniteDifference, error) {
	if domain == nil {
		return nil, fmt.Errorf("Gradient: %w", ErrNilGeometry)
	}
	parts := make([]*FiniteDifference, 0, domain.Rank())
	for axis := 0; axis < domain.Rank(); axis++ {
		axisOpts := append(append([]Option(nil), opts...), WithDirection(axis))
		fd, err := NewFiniteDifference(domain, axisOpts...)
		if err != nil {
			return nil, fmt.Errorf("Gradient: axis %d: %w", axis, err)
		}
		parts = append(parts, fd)
	}
	return parts, nil
}
