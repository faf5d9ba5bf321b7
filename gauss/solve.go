// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/linsolve/matrix"

// Solve eliminates sys in place and back-substitutes into x, stopping at the
// first failure. Total pivoting uses the permuted back substitution with
// opts.Tolerance; every other strategy uses BackSubstitute.
//
// Arguments are validated before sys is touched, so a shape error never
// leaves a half-reduced system behind.
//
// Example:
//
//	sys, _ := systems.Hilbert(3)
//	x := make([]float64, 3)
//	if err := gauss.Solve(sys, x, gauss.DefaultOptions()); err != nil {
//	  // matrix.StatusOf(err) tells SINGULAR from INCONSISTENT
//	}
func Solve(sys *matrix.Augmented, x []float64, opts Options) error {
	if err := matrix.ValidateSystem(sys, x); err != nil {
		return gaussErrorf(opSolve, err)
	}

	perm, err := Eliminate(sys, opts)
	if err != nil {
		return gaussErrorf(opSolve, err)
	}
	if opts.Pivoting == Total {
		err = BackSubstitutePermuted(sys, perm, x, opts.Tolerance)
	} else {
		err = BackSubstitute(sys, x)
	}
	if err != nil {
		return gaussErrorf(opSolve, err)
	}

	return nil
}

// SolveCopy solves a private copy of sys and returns the solution.
// The caller's system is left untouched.
func SolveCopy(sys *matrix.Augmented, opts Options) ([]float64, error) {
	if err := matrix.ValidateNotNil(sys); err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	x := make([]float64, sys.Order())
	if err := Solve(sys.Clone(), x, opts); err != nil {
		return nil, err
	}

	return x, nil
}
