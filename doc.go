// Package linsolve is a small laboratory for dense linear systems A·x = b:
// direct elimination, triangular factorization, fixed-point iteration and
// the diagnostics needed to compare them on ill-conditioned inputs.
//
// 🚀 What is inside?
//
//	• Gauss elimination with no, partial, scaled-partial or total pivoting
//	• Doolittle LU (no pivoting) with substitution, determinant and inverse
//	• Jacobi, Gauss-Seidel and their relaxed forms (weighted Jacobi, SOR)
//	• Relative error, residual, identity deviation and condition number
//	• Hilbert and diagonally dominant test systems, a plain-text system format
//
// Every solver reports its outcome through one error taxonomy; see
// matrix.StatusOf for SINGULAR, INCONSISTENT, NOT CONVERGED and INVALID
// PARAMETER.
//
// Packages:
//
//	matrix/       Dense and Augmented storage, validators, status taxonomy
//	gauss/        forward elimination and back substitution
//	lu/           Doolittle factorization, inverse, determinant
//	iterative/    stationary iterative methods with divergence guards
//	diag/         error reports, residuals and text rendering
//	systems/      Hilbert, exercise and random dominant systems
//	sysio/        reading and writing [A|b] text files
//	cmd/linsolve  command-line driver (gauss, lu, iterate, sweep, batch)
//
// Quick example:
//
//	sys, _ := systems.Hilbert(6)
//	x := make([]float64, 6)
//	opts := gauss.DefaultOptions()
//	opts.Pivoting = gauss.Total
//	if err := gauss.Solve(sys, x, opts); err != nil {
//		fmt.Println(matrix.StatusOf(err))
//	}
//
//	go get github.com/katalvlaran/linsolve
package linsolve
