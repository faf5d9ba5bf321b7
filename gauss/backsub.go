// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// BackSubstitute solves the upper-triangular system left by Eliminate
// (non-Total strategies) and writes the solution into x.
//
//	x[i] = (b[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i],  i = n-1 … 0
//
// Entries below the diagonal are ignored. The system is not modified, so
// repeated calls produce bit-identical output.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad arguments.
//   - matrix.ErrSingular when a diagonal entry is exactly zero; x is then
//     only partially written.
func BackSubstitute(sys *matrix.Augmented, x []float64) error {
	if err := matrix.ValidateSystem(sys, x); err != nil {
		return gaussErrorf(opBackSubstitute, err)
	}

	n := sys.Order()
	var (
		i, j int
		sum  float64
		row  []float64
	)
	for i = n - 1; i >= 0; i-- {
		row = sys.Row(i)
		sum = row[n]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		if row[i] == 0 {
			return gaussErrorf(opBackSubstitute, fmt.Errorf("row %d: %w", i, matrix.ErrSingular))
		}
		x[i] = sum / row[i]
	}

	return nil
}

// BackSubstitutePermuted solves the triangular system left by Total pivoting.
// Unknowns are computed in logical (permuted) order and written to x in the
// original variable order: x[perm[j]] = y[j]. A nil perm means identity.
//
// A diagonal entry d is negligible when |d| < tol (tol > 0) or d == 0 (tol == 0).
// At a negligible diagonal the row residual r = b[i] − Σ_{j>i} U[i][j]·y[j]
// decides the outcome using the same rule:
//   - negligible residual ⇒ matrix.ErrSingular (infinitely many solutions);
//   - otherwise           ⇒ matrix.ErrInconsistent (no solution).
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad arguments.
//   - matrix.ErrInvalidParameter for a non-bijective perm or a bad tol.
//   - matrix.ErrSingular / matrix.ErrInconsistent as described above; x is
//     left untouched in that case.
//
// Complexity: Time O(n²), Space O(n).
func BackSubstitutePermuted(sys *matrix.Augmented, perm Permutation, x []float64, tol float64) error {
	if err := matrix.ValidateSystem(sys, x); err != nil {
		return gaussErrorf(opBackPermuted, err)
	}
	n := sys.Order()
	if perm == nil {
		perm = identityPermutation(n)
	}
	if err := perm.Validate(n); err != nil {
		return gaussErrorf(opBackPermuted, err)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return gaussErrorf(opBackPermuted, fmt.Errorf("tolerance %g: %w", tol, matrix.ErrInvalidParameter))
	}

	negligible := func(v float64) bool {
		if tol > 0 {
			return math.Abs(v) < tol
		}

		return v == 0
	}

	y := make([]float64, n)
	var (
		i, j int
		sum  float64
		d    float64
		row  []float64
	)
	for i = n - 1; i >= 0; i-- {
		row = sys.Row(i)
		sum = row[n]
		for j = i + 1; j < n; j++ {
			sum -= row[perm[j]] * y[j]
		}
		d = row[perm[i]]
		if negligible(d) {
			if negligible(sum) {
				return gaussErrorf(opBackPermuted, fmt.Errorf("row %d: %w", i, matrix.ErrSingular))
			}

			return gaussErrorf(opBackPermuted, fmt.Errorf("row %d: residual %g: %w", i, sum, matrix.ErrInconsistent))
		}
		y[i] = sum / d
	}

	for j = 0; j < n; j++ {
		x[perm[j]] = y[j]
	}

	return nil
}
