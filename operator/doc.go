// Package operator defines the LinearOperator contract and the finite
// difference operator used as the forward model of gradient-based
// regularisation in iterative reconstruction.
//
// The operator package provides:
//
//   - LinearOperator: Direct/Adjoint in a value-returning form and an
//     in-place (caller-supplied output) form, plus domain/range geometry.
//   - FiniteDifference: directional differences along one axis of a rank
//     2, 3 or 4 array with forward, backward or centered schemes and
//     Neumann or Periodic boundaries. Adjoint is the exact discrete transpose
//     of Direct for every scheme/boundary pair.
//   - PowerMethod: largest singular value estimate by power iteration.
//   - DotTest: numerical check of ⟨Au, v⟩ = ⟨u, Aᵀv⟩.
//   - Gradient: one FiniteDifference per axis of a geometry.
//
// Operators borrow their geometries and never retain the arrays passed to
// Direct/Adjoint. Passing the same buffer as input and output is rejected
// with ErrAliasedBuffer.
package operator
