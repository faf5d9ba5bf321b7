// SPDX-License-Identifier: MIT

// Package matrix provides the numeric buffers and shared vocabulary of the
// linsolve solvers.
//
// The matrix package provides:
//
//   - Dense, an r×c matrix stored as independently owned row handles, so
//     that pivoting strategies exchange rows in O(1).
//   - Augmented, the n×(n+1) system [A|b] every solver consumes.
//   - Mul and MatVec, the kernels used to verify inverses and compute
//     residuals.
//   - The sentinel error set (ErrSingular, ErrNotConverged, ...) and the
//     Status taxonomy derived from it via StatusOf.
//   - Generic vector kernels (NormInf, MaxAbsDiff) shared by the iterative
//     engines and the diagnostics.
//
// Solver engines live in sibling packages: gauss (elimination with four
// pivoting strategies), lu (Doolittle factorization and inverse) and
// iterative (Jacobi, Gauss-Seidel, weighted Jacobi, SOR).
package matrix
