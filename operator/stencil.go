// SPDX-License-Identifier: MIT
// Package: operator
//
// Purpose:
//   - One-dimensional finite difference kernels applied to every line of an
//     N-d row-major buffer along a fixed axis.
//   - Direct kernels write the difference; adjoint kernels write the
//     transpose stencil BEFORE the final negation and 1/h scaling, which the
//     caller applies once over the whole buffer.
//
// Addressing:
//   - A line starts at flat offset base and visits base + k*stride for
//     k = 0..n-1. All kernels assume out is zeroed and n ≥ 2 (n ≥ 3 for
//     centered).

package operator

// lineKernel applies a stencil to one line.
type lineKernel func(x, out []float64, base, stride, n int)

// kernelKey indexes the kernel tables.
type kernelKey struct {
	method   Method
	boundary Boundary
}

var directKernels = map[kernelKey]lineKernel{
	{Forward, Neumann}:   forwardNeumann,
	{Forward, Periodic}:  forwardPeriodic,
	{Backward, Neumann}:  backwardNeumann,
	{Backward, Periodic}: backwardPeriodic,
	{Centered, Neumann}:  centeredNeumann,
	{Centered, Periodic}: centeredPeriodic,
}

var adjointKernels = map[kernelKey]lineKernel{
	{Forward, Neumann}:   forwardNeumannAdjoint,
	{Forward, Periodic}:  forwardPeriodicAdjoint,
	{Backward, Neumann}:  backwardNeumannAdjoint,
	{Backward, Periodic}: backwardPeriodicAdjoint,
	{Centered, Neumann}:  centeredNeumannAdjoint,
	{Centered, Periodic}: centeredPeriodicAdjoint,
}

// applyLines runs kernel over every line of length n along an axis with the
// given stride. size is the total buffer length.
//
// Complexity: O(size).
func applyLines(kernel lineKernel, x, out []float64, size, n, stride int) {
	block := n * stride
	for start := 0; start < size; start += block {
		for j := 0; j < stride; j++ {
			kernel(x, out, start+j, stride, n)
		}
	}
}

// ---------- direct stencils ----------

// forwardNeumann: out[k] = x[k+1] − x[k] for k < n−1; out[n−1] stays 0.
func forwardNeumann(x, out []float64, b, s, n int) {
	for k := 0; k < n-1; k++ {
		out[b+k*s] = x[b+(k+1)*s] - x[b+k*s]
	}
}

// forwardPeriodic: as forwardNeumann, with out[n−1] = x[0] − x[n−1].
func forwardPeriodic(x, out []float64, b, s, n int) {
	forwardNeumann(x, out, b, s, n)
	last := b + (n-1)*s
	out[last] = x[b] - x[last]
}

// backwardNeumann: out[k] = x[k] − x[k−1] for k ≥ 1; out[0] stays 0.
func backwardNeumann(x, out []float64, b, s, n int) {
	for k := 1; k < n; k++ {
		out[b+k*s] = x[b+k*s] - x[b+(k-1)*s]
	}
}

// backwardPeriodic: as backwardNeumann, with out[0] = x[0] − x[n−1].
func backwardPeriodic(x, out []float64, b, s, n int) {
	backwardNeumann(x, out, b, s, n)
	out[b] = x[b] - x[b+(n-1)*s]
}

// centeredInterior: out[k] = (x[k+1] − x[k−1]) / 2 for 0 < k < n−1.
func centeredInterior(x, out []float64, b, s, n int) {
	for k := 1; k < n-1; k++ {
		out[b+k*s] = (x[b+(k+1)*s] - x[b+(k-1)*s]) / 2
	}
}

func centeredNeumann(x, out []float64, b, s, n int) {
	centeredInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = (x[b+s] - x[b]) / 2
	out[last] = (x[last] - x[last-s]) / 2
}

func centeredPeriodic(x, out []float64, b, s, n int) {
	centeredInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = (x[b+s] - x[last]) / 2
	out[last] = (x[b] - x[last-s]) / 2
}

// ---------- adjoint stencils (pre-negation) ----------

// backwardInterior: out[k] = x[k] − x[k−1] for 0 < k < n−1.
func backwardInterior(x, out []float64, b, s, n int) {
	for k := 1; k < n-1; k++ {
		out[b+k*s] = x[b+k*s] - x[b+(k-1)*s]
	}
}

// forwardInterior: out[k] = x[k+1] − x[k] for 0 < k < n−1.
func forwardInterior(x, out []float64, b, s, n int) {
	for k := 1; k < n-1; k++ {
		out[b+k*s] = x[b+(k+1)*s] - x[b+k*s]
	}
}

func forwardNeumannAdjoint(x, out []float64, b, s, n int) {
	backwardInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = x[b]
	out[last] = -x[last-s]
}

func forwardPeriodicAdjoint(x, out []float64, b, s, n int) {
	backwardInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = x[b] - x[last]
	out[last] = x[last] - x[last-s]
}

func backwardNeumannAdjoint(x, out []float64, b, s, n int) {
	forwardInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = x[b+s]
	out[last] = -x[last]
}

func backwardPeriodicAdjoint(x, out []float64, b, s, n int) {
	forwardInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = x[b+s] - x[b]
	out[last] = x[b] - x[last]
}

func centeredNeumannAdjoint(x, out []float64, b, s, n int) {
	centeredInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = (x[b] + x[b+s]) / 2
	out[last] = -(x[last] + x[last-s]) / 2
}

func centeredPeriodicAdjoint(x, out []float64, b, s, n int) {
	centeredInterior(x, out, b, s, n)
	last := b + (n-1)*s
	out[b] = (x[b+s] - x[last]) / 2
	out[last] = (x[b] - x[last-s]) / 2
}
