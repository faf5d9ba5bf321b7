// SPDX-License-Identifier: MIT

// Package gauss reduces an augmented system [A|b] to upper-triangular form by
// Gauss elimination and solves it by back substitution.
//
// Four pivoting strategies share a single elimination routine:
//
//   - NoPivoting: use A[k][k] as found; with SkipPivotCheck the routine never
//     checks it and proceeds through tiny pivots (diagnostic mode used to
//     observe instability on ill-conditioned systems).
//   - Partial: pick the row with maximal |A[i][k]|, i ≥ k.
//   - Scaled: pick the row maximizing |A[i][k]| / w_i, where w_i is the
//     largest magnitude of the ORIGINAL row i; weights travel with their rows.
//   - Total: search the whole trailing block; columns are reordered
//     logically through a Permutation and never moved in memory.
//
// Rows are exchanged in O(1) by swapping row handles (see matrix.Augmented).
//
// Failure policy: elimination is fail-fast. A pivot below tolerance aborts
// with matrix.ErrSingular at the step it is detected and the system is left
// in a partially reduced state that must not be trusted. The permuted back
// substitution distinguishes an indeterminate system (ErrSingular) from one
// with no solution (ErrInconsistent).
//
// Complexity: elimination O(n³) (Total adds an O(n²) search per step, still
// O(n³) overall); back substitution O(n²). Working buffers (weights,
// permutation) are solver-local.
package gauss
