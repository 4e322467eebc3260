// SPDX-License-Identifier: MIT

// Package operator: domain types (LinearOperator contract, scheme and
// boundary enums) shared by the finite difference operator, the power
// method and the dot test.
package operator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tomolath/geometry"
)

// LinearOperator is a linear map A: X → Y together with its adjoint Aᵀ: Y → X.
//
// Direct and Adjoint allocate their result; DirectTo and AdjointTo write into
// a caller-supplied buffer that must live on the range (resp. domain)
// geometry and must not share memory with the input. The buffer is fully
// overwritten. After an error its content is unspecified.
type LinearOperator interface {
	// Direct returns A·x. x must live on DomainGeometry().
	Direct(x *geometry.Container) (*geometry.Container, error)

	// DirectTo stores A·x into out. out must live on RangeGeometry().
	DirectTo(x, out *geometry.Container) error

	// Adjoint returns Aᵀ·y. y must live on RangeGeometry().
	Adjoint(y *geometry.Container) (*geometry.Container, error)

	// AdjointTo stores Aᵀ·y into out. out must live on DomainGeometry().
	AdjointTo(y, out *geometry.Container) error

	// DomainGeometry returns the geometry of X. No side effects.
	DomainGeometry() *geometry.Geometry

	// RangeGeometry returns the geometry of Y. No side effects.
	RangeGeometry() *geometry.Geometry
}

// Method selects the differencing scheme.
type Method int

const (
	// Forward computes x[i+1] − x[i].
	Forward Method = iota
	// Backward computes x[i] − x[i−1].
	Backward
	// Centered computes (x[i+1] − x[i−1]) / 2.
	Centered
)

// Boundary selects how the stencil treats the ends of the axis.
type Boundary int

const (
	// Neumann uses one-sided differences at the edges, no wraparound.
	Neumann Boundary = iota
	// Periodic treats the axis as circular.
	Periodic
)

var methodNames = [...]string{Forward: "forward", Backward: "backward", Centered: "centered"}

var boundaryNames = [...]string{Neumann: "Neumann", Periodic: "Periodic"}

// String returns the canonical lowercase name ("forward", "backward", "centered").
func (m Method) String() string {
	if m.valid() {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool { return m >= Forward && m <= Centered }

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(m), ErrUnknownMethod)
	}
	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// String returns the canonical name ("Neumann", "Periodic").
func (b Boundary) String() string {
	if b.valid() {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

func (b Boundary) valid() bool { return b == Neumann || b == Periodic }

// ParseBoundary maps a case-insensitive name to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	for i, name := range boundaryNames {
		if strings.EqualFold(s, name) {
			return Boundary(i), nil
		}
	}
	return 0, fmt.Errorf("ParseBoundary(%q): %w", s, ErrUnknownBoundary)
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	if !b.valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(b), ErrUnknownBoundary)
	}
	return []byte(boundaryNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	v, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
