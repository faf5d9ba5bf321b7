// SPDX-License-Identifier: MIT

// Package iterative solves an augmented system [A|b] by fixed-point
// iteration: Jacobi, Gauss-Seidel and their relaxed forms (weighted Jacobi
// and SOR).
//
// All four methods run through one routine, Iterate, parameterized by:
//
//   - an update Rule: PreviousIterate (Jacobi: every component of sweep k+1
//     is computed from iterate k) or InPlace (Gauss-Seidel: components updated
//     earlier in the same sweep are used immediately);
//   - a relaxation factor ω ∈ (0,2) blending the previous value with the plain
//     update, x_i ← (1−ω)·x_i + ω·x_i^plain. ω = 1 skips the blend, so the
//     relaxed methods reproduce the plain ones exactly.
//
// The initial guess is x_i = b_i / A[i][i]. A diagonal entry below the
// tolerance fails with matrix.ErrSingular for every method before any sweep.
//
// Convergence is tested after every sweep with the selected Criterion.
// NormDrift (the default) compares the infinity norms of successive iterates;
// it is cheap but weak, since two different vectors may share a norm.
// Displacement compares the iterates themselves.
//
// Divergence (norm above Options.DivergenceLimit, or non-finite) and an
// exhausted iteration budget both fail with matrix.ErrNotConverged; x then
// holds the last finite iterate, so partial progress is never discarded.
//
// The system is only read. Working buffers are local to each call.
package iterative
