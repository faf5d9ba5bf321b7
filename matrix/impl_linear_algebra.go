// SPDX-License-Identifier: MIT
// Package matrix provides the small set of linear-algebra kernels the solver
// engines and diagnostics need: matrix product (inverse verification) and
// matrix-vector product (residuals, right-hand-side construction).
//
// Notes:
//   - Kernels use central validators and wrap failures via matrixErrorf.
//   - Fast paths read *Dense row handles directly; the generic path uses At.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul    = "Mul"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A·B and returns a fresh Dense.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: if both are *Dense, run the i→k→j loop over row handles
//     (row i of A scales row k of B into row i of C); else fall back to At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(a.Rows(), b.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var (
			i, k, j    int
			aik        float64
			ri, ai, bk []float64
		)
		for i = 0; i < da.r; i++ {
			ri, ai = res.rows[i], da.rows[i]
			for k = 0; k < da.c; k++ {
				aik = ai[k]
				if aik == 0 {
					continue
				}
				bk = db.rows[k]
				for j = 0; j < db.c; j++ {
					ri[j] += aik * bk[j]
				}
			}
		}
		res.validateNaNInf = DefaultValidateNaNInf

		return res, nil
	}

	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			sum = ZeroSum
			for k = 0; k < a.Cols(); k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.rows[i][j] = sum
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// MatVec computes y = M·x for len(x) == M.Cols().
//
// An *Augmented operand is treated as its coefficient block: x must have
// Order() entries and column n (b) is ignored. This is what residual
// computations need (r = b − A·x).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
//
// Complexity:
//   - Time O(r·c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	cols := m.Cols()
	var rowsOf [][]float64
	switch t := m.(type) {
	case *Dense:
		rowsOf = t.rows
	case *Augmented:
		rowsOf, cols = t.rows, t.n
	}
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.Rows())
	if rowsOf != nil {
		var acc float64
		for i, row := range rowsOf {
			acc = ZeroSum
			for j := 0; j < cols; j++ {
				acc += row[j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var (
		v   float64
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}
