// SPDX-License-Identifier: MIT

// Package geometry - Container: dense row-major storage bound to a Geometry.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit offset formula
//     Σ idx[a]*stride[a] (row-major, last axis contiguous).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the raw buffer (AsArray) for kernels that need the flat fast path.
//
// Complexity quicksheet:
//   - Allocate: O(n) zero-init; At/Set: O(rank); Clone/Fill: O(n).
package geometry

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFillFrom = "FillFrom"
)

// containerErrorf wraps an error with a uniform Container context and callsite indices.
func containerErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Container.%s(%v): %w", method, idx, err)
}

// Container is an N-dimensional float64 buffer with geometry metadata.
//   - geom is borrowed, never mutated.
//   - data has length geom.Size() in row-major order.
type Container struct {
	geom *Geometry
	data []float64
}

var _ fmt.Stringer = (*Container)(nil)

// Geometry returns the geometry the container was allocated on.
func (c *Container) Geometry() *Geometry { return c.geom }

// AsArray returns the raw backing buffer. Writes through the returned slice
// are visible in the container; callers must not change its length.
func (c *Container) AsArray() []float64 { return c.data }

// Len returns the number of elements.
func (c *Container) Len() int { return len(c.data) }

// Compatible reports whether c and other live on equal geometries.
func (c *Container) Compatible(other *Container) bool {
	if c == nil || other == nil {
		return false
	}
	return c.geom.Equal(other.geom)
}

// SharesBuffer reports whether c and other are backed by the same memory.
func (c *Container) SharesBuffer(other *Container) bool {
	if c == nil || other == nil || len(c.data) == 0 || len(other.data) == 0 {
		return false
	}
	return &c.data[0] == &other.data[0]
}

// Fill sets every element to v in place.
// Complexity: O(n).
func (c *Container) Fill(v float64) {
	for i := range c.data {
		c.data[i] = v
	}
}

// FillFrom copies src into the container. len(src) must equal Len().
func (c *Container) FillFrom(src []float64) error {
	if len(src) != len(c.data) {
		return containerErrorf(ctxFillFrom, []int{len(src)}, ErrDimensionMismatch)
	}
	copy(c.data, src)
	return nil
}

// offset computes the flat offset of a multi-index or returns ErrOutOfRange.
// Complexity: O(rank).
func (c *Container) offset(method string, idx []int) (int, error) {
	shape := c.geom.shape
	if len(idx) != len(shape) {
		return 0, containerErrorf(method, idx, ErrOutOfRange)
	}
	off := 0
	for a, i := range idx {
		if i < 0 || i >= shape[a] {
			return 0, containerErrorf(method, idx, ErrOutOfRange)
		}
		off = off*shape[a] + i
	}
	return off, nil
}

// At returns the element at the multi-index idx.
func (c *Container) At(idx ...int) (float64, error) {
	off, err := c.offset(ctxAt, idx)
	if err != nil {
		return 0, err
	}
	return c.data[off], nil
}

// Set assigns v at the multi-index idx.
func (c *Container) Set(v float64, idx ...int) error {
	off, err := c.offset(ctxSet, idx)
	if err != nil {
		return err
	}
	c.data[off] = v
	return nil
}

// Clone returns a deep copy sharing only the (immutable) geometry.
func (c *Container) Clone() *Container {
	return &Container{geom: c.geom, data: append([]float64(nil), c.data...)}
}

// String renders the buffer as nested brackets following the shape.
// Intended for small arrays in tests and examples.
func (c *Container) String() string {
	var sb strings.Builder
	writeNested(&sb, c.data, c.geom.shape)
	return sb.String()
}

func writeNested(sb *strings.Builder, data []float64, shape []int) {
	sb.WriteString("[")
	if len(shape) == 1 {
		for i, v := range data {
			if i > 0 {
				sb.WriteString(" ")
			}
			if v == 0 {
				v = 0 // print -0 as 0
			}
			fmt.Fprintf(sb, "%g", v)
		}
	} else {
		step := len(data) / shape[0]
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			writeNested(sb, data[i*step:(i+1)*step], shape[1:])
		}
	}
	sb.WriteString("]")
}
