// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by every solver package.
// This file defines ONLY package-level sentinel errors. Solvers (gauss, lu,
// iterative) MUST return these sentinels, optionally wrapped with an operation
// tag, and tests MUST check them via errors.Is. No solver panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Solvers wrap with fmt.Errorf("<Op>: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape/index -> NaN/Inf -> parameter domain -> numerical outcome
// (singular, inconsistent, not converged).

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a solution vector whose length differs from the system order,
	// or rows of unequal length handed to a constructor.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix, system or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular reports a degenerate pivot or diagonal: an elimination pivot,
	// a back-substitution diagonal or an iterative diagonal fell below tolerance
	// and the method cannot proceed reliably.
	ErrSingular = errors.New("matrix: singular system")

	// ErrInconsistent reports a zero pivot row whose right-hand-side residual is
	// not zero: the system has no solution. Produced only by the permuted
	// (total pivoting) back substitution.
	ErrInconsistent = errors.New("matrix: inconsistent system")

	// ErrNotConverged reports that an iterative method exhausted its iteration
	// budget or tripped its divergence guard. The solution vector still holds
	// the last (finite) iterate.
	ErrNotConverged = errors.New("matrix: iteration did not converge")

	// ErrInvalidParameter reports a solver parameter outside its domain, most
	// notably a relaxation factor outside the open interval (0, 2).
	ErrInvalidParameter = errors.New("matrix: invalid parameter")
)
