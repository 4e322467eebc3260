// Package tomolath is a small toolkit for iterative reconstruction: linear
// operators on N-d voxel arrays and a resumable driver for the iterative
// methods built on them.
//
// What is inside?
//
//	A pure-Go library, built on gonum for the numeric kernels, that brings together:
//		• Geometry & containers: shape, voxel spacing and flat row-major arrays
//		• Finite differences: forward, backward and centered schemes with
//		  Neumann or Periodic boundaries and an exact adjoint
//		• Operator checks: power-method norm estimate and the dot test
//		• Iteration driver: stop predicate, objective recording, timing,
//		  slog logging and a tabulated progress report
//
// Packages:
//
//	geometry/ — Geometry (shape + spacing) and Container (flat float64 buffer) with BLAS-1 algebra
//	operator/ — LinearOperator, FiniteDifference, Gradient, PowerMethod, DotTest, YAML Settings
//	iterate/  — Algorithm contract, Driver (Advance / All / Run), Config, Clock, log file sink
//
// Quick example:
//
//	g := geometry.MustNew([]int{2, 3})
//	fd, _ := operator.NewFiniteDifference(g, operator.WithDirection(1))
//	x := g.Allocate(geometry.Zero)
//	_ = x.FillFrom([]float64{0, 1, 2, 0, 1, 2})
//	dx, _ := fd.Direct(x) // [[1 1 0] [1 1 0]]
//
//	go get github.com/katalvlaran/tomolath
package tomolath
