// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opBackPermuted   = "BackSubstitutePermuted"
	opSolve          = "Solve"
)

// gaussErrorf wraps err with an operation tag, preserving the sentinel via %w.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elimination is the per-call working state shared by the pivot selectors.
// It lives only for the duration of one Eliminate call.
type elimination struct {
	rows    [][]float64 // live row handles of the system
	n       int
	cols    Permutation // logical → physical column; identity unless Total
	weights []float64   // Scaled only: one weight per row, swapped with rows
}

// selector picks the pivot for step k. It returns the physical pivot row,
// the logical pivot column and the score compared against the tolerance.
type selector func(e *elimination, k int) (row, col int, score float64)

// selectDiagonal keeps A[k][k].
func selectDiagonal(e *elimination, k int) (int, int, float64) {
	return k, k, math.Abs(e.rows[k][k])
}

// selectPartial scans column k from row k down; strict > keeps the first maximum.
func selectPartial(e *elimination, k int) (int, int, float64) {
	best, bestAbs := k, math.Abs(e.rows[k][k])
	var v float64
	for i := k + 1; i < e.n; i++ {
		if v = math.Abs(e.rows[i][k]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best, k, bestAbs
}

// selectScaled maximizes |A[i][k]| / w_i; a zero weight falls back to the raw magnitude.
func selectScaled(e *elimination, k int) (int, int, float64) {
	best, bestRatio := k, e.ratio(k, k)
	var r float64
	for i := k + 1; i < e.n; i++ {
		if r = e.ratio(i, k); r > bestRatio {
			best, bestRatio = i, r
		}
	}

	return best, k, bestRatio
}

func (e *elimination) ratio(i, k int) float64 {
	v := math.Abs(e.rows[i][k])
	if w := e.weights[i]; w != 0 {
		return v / w
	}

	return v
}

// selectTotal scans rows k..n-1 × logical columns k..n-1.
func selectTotal(e *elimination, k int) (int, int, float64) {
	bestRow, bestCol := k, k
	bestAbs := math.Abs(e.rows[k][e.cols[k]])
	var (
		i, j int
		v    float64
		row  []float64
	)
	for i = k; i < e.n; i++ {
		row = e.rows[i]
		for j = k; j < e.n; j++ {
			if v = math.Abs(row[e.cols[j]]); v > bestAbs {
				bestRow, bestCol, bestAbs = i, j, v
			}
		}
	}

	return bestRow, bestCol, bestAbs
}

// rowWeights returns max_j<n |A[i][j]| for every row of the current system.
func rowWeights(rows [][]float64, n int) []float64 {
	w := make([]float64, n)
	for i, row := range rows {
		w[i] = matrix.NormInf(row[:n])
	}

	return w
}

// Eliminate reduces sys in place to upper-triangular form.
//
// Implementation:
//   - Stage 1: validate sys and opts; build the selector for opts.Pivoting.
//   - Stage 2: for k = 0..n-2 pick the pivot, check it against the tolerance,
//     swap the pivot row into place (row handles, plus weights for Scaled and
//     permutation entries for Total), then for every row below compute the
//     multiplier and, unless it is exactly zero, subtract multiplier × pivot
//     row over logical columns k..n-1 and the right-hand side.
//   - Stage 3: check the last diagonal entry.
//
// Behavior highlights:
//   - Scaled: weights come from the original rows, computed once, and the
//     validity check applies to the best ratio and then to the raw pivot.
//   - Total: column n (b) is never permuted; in unchecked mode an all-zero
//     trailing block ends elimination early (the remaining steps would only
//     divide zero by zero).
//
// Returns:
//   - The column Permutation for Total pivoting, nil otherwise. It must be
//     handed to BackSubstitutePermuted.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil system.
//   - matrix.ErrInvalidParameter for an unknown strategy or a negative/non-finite tolerance.
//   - matrix.ErrSingular when a pivot falls below the tolerance; the system is
//     left partially reduced.
//
// Complexity:
//   - Time O(n³), Space O(n) for weights/permutation.
func Eliminate(sys *matrix.Augmented, opts Options) (Permutation, error) {
	if err := matrix.ValidateNotNil(sys); err != nil {
		return nil, gaussErrorf(opEliminate, err)
	}
	if err := validateOptions(opts); err != nil {
		return nil, gaussErrorf(opEliminate, err)
	}

	n := sys.Order()
	e := &elimination{n: n, rows: make([][]float64, n), cols: identityPermutation(n)}
	for i := 0; i < n; i++ {
		e.rows[i] = sys.Row(i)
	}

	var sel selector
	switch opts.Pivoting {
	case NoPivoting:
		sel = selectDiagonal
	case Partial:
		sel = selectPartial
	case Scaled:
		sel = selectScaled
		e.weights = rowWeights(e.rows, n)
	case Total:
		sel = selectTotal
	}

	tol, check := opts.Tolerance, !opts.SkipPivotCheck
	var (
		k, i, j    int
		pr, pc     int
		score      float64
		pivot, mul float64
		pivotRow   []float64
		row        []float64
	)
	for k = 0; k < n-1; k++ {
		pr, pc, score = sel(e, k)
		if opts.Pivoting == Total && !check && score == 0 {
			break
		}
		if check && score < tol {
			return nil, gaussErrorf(opEliminate, fmt.Errorf("step %d: pivot %g: %w", k, score, matrix.ErrSingular))
		}

		if pr != k {
			if err := sys.SwapRows(pr, k); err != nil {
				return nil, gaussErrorf(opEliminate, err)
			}
			e.rows[pr], e.rows[k] = e.rows[k], e.rows[pr]
			if e.weights != nil {
				e.weights[pr], e.weights[k] = e.weights[k], e.weights[pr]
			}
		}
		if pc != k {
			e.cols[pc], e.cols[k] = e.cols[k], e.cols[pc]
		}

		pivotRow = e.rows[k]
		pivot = pivotRow[e.cols[k]]
		if check && math.Abs(pivot) < tol {
			return nil, gaussErrorf(opEliminate, fmt.Errorf("step %d: pivot %g: %w", k, pivot, matrix.ErrSingular))
		}

		for i = k + 1; i < n; i++ {
			row = e.rows[i]
			mul = row[e.cols[k]] / pivot
			if mul == 0 {
				continue
			}
			for j = k; j < n; j++ {
				row[e.cols[j]] -= mul * pivotRow[e.cols[j]]
			}
			row[n] -= mul * pivotRow[n]
		}
	}

	if check {
		if last := e.rows[n-1][e.cols[n-1]]; math.Abs(last) < tol {
			return nil, gaussErrorf(opEliminate, fmt.Errorf("step %d: pivot %g: %w", n-1, last, matrix.ErrSingular))
		}
	}

	if opts.Pivoting != Total {
		return nil, nil
	}

	return e.cols, nil
}

func validateOptions(opts Options) error {
	if opts.Pivoting < NoPivoting || opts.Pivoting > Total {
		return fmt.Errorf("pivoting %d: %w", int(opts.Pivoting), matrix.ErrInvalidParameter)
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return fmt.Errorf("tolerance %g: %w", opts.Tolerance, matrix.ErrInvalidParameter)
	}

	return nil
}
