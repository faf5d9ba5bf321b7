// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

const (
	opDecompose = "Decompose"
	opForward   = "ForwardSubstitute"
	opBackward  = "BackwardSubstitute"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

func luErrorf(tag string, err error) error {
	return fmt.Errorf("lu.%s: %w", tag, err)
}

// Factors holds A = L·U with L unit lower-triangular and U upper-triangular.
//   - Unstable: a pivot U[k][k], k ≤ n-2, fell below the tolerance during
//     factorization. The factors are still returned and may hold ±Inf.
type Factors struct {
	L, U     *matrix.Dense
	Unstable bool
}

// Order returns n.
func (f *Factors) Order() int { return f.U.Rows() }

// Decompose factors a by Doolittle elimination (U := A, L := I).
//
// Implementation:
//   - for k = 0..n-2: flag |U[k][k]| < tol, then for every row i > k with
//     U[i][k] != 0 store the multiplier m = U[i][k]/U[k][k] in L[i][k] and
//     subtract m × row k from row i of U (column k is set to exactly zero).
//
// Behavior highlights:
//   - A near-zero pivot sets Factors.Unstable and factoring continues.
//   - The last diagonal entry U[n-1][n-1] is not checked here; the backward
//     substitution reports it.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
//     matrix.ErrInvalidParameter (negative or non-finite tol).
func Decompose(a *matrix.Dense, tol float64) (*Factors, error) {
	if err := validateSquare(a); err != nil {
		return nil, luErrorf(opDecompose, err)
	}
	if err := validateTol(tol); err != nil {
		return nil, luErrorf(opDecompose, err)
	}

	n := a.Rows()
	u := a.Clone()
	l, err := matrix.Identity(n)
	if err != nil {
		return nil, luErrorf(opDecompose, err)
	}

	f := &Factors{L: l, U: u}
	var (
		k, i, j    int
		pivot, mul float64
		uk, ui     []float64
	)
	for k = 0; k < n-1; k++ {
		uk = u.Row(k)
		pivot = uk[k]
		if math.Abs(pivot) < tol {
			f.Unstable = true
		}
		for i = k + 1; i < n; i++ {
			ui = u.Row(i)
			if ui[k] == 0 {
				continue
			}
			mul = ui[k] / pivot
			l.Row(i)[k] = mul
			ui[k] = 0
			for j = k + 1; j < n; j++ {
				ui[j] -= mul * uk[j]
			}
		}
	}

	return f, nil
}

// ForwardSubstitute solves L·y = b for lower-triangular l:
//
//	y[i] = (b[i] − Σ_{j<i} L[i][j]·y[j]) / L[i][i]
//
// It returns unstable = true when some |L[i][i]| < tol; the division is
// performed regardless. y may alias b.
//
// Errors:
//   - argument validation only (nil, shape, length, tol).
func ForwardSubstitute(l *matrix.Dense, b, y []float64, tol float64) (bool, error) {
	if err := validateTriangular(l, b, y, tol); err != nil {
		return false, luErrorf(opForward, err)
	}

	n := l.Rows()
	unstable := false
	var (
		i, j int
		sum  float64
		row  []float64
	)
	for i = 0; i < n; i++ {
		row = l.Row(i)
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= row[j] * y[j]
		}
		if math.Abs(row[i]) < tol {
			unstable = true
		}
		y[i] = sum / row[i]
	}

	return unstable, nil
}

// BackwardSubstitute solves U·x = y for upper-triangular u:
//
//	x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i],  i = n-1 … 0
//
// It returns unstable = true when some |U[i][i]| < tol; the division is
// performed regardless. x may alias y.
func BackwardSubstitute(u *matrix.Dense, y, x []float64, tol float64) (bool, error) {
	if err := validateTriangular(u, y, x, tol); err != nil {
		return false, luErrorf(opBackward, err)
	}

	n := u.Rows()
	unstable := false
	var (
		i, j int
		sum  float64
		row  []float64
	)
	for i = n - 1; i >= 0; i-- {
		row = u.Row(i)
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		if math.Abs(row[i]) < tol {
			unstable = true
		}
		x[i] = sum / row[i]
	}

	return unstable, nil
}

// Solve returns x with L·U·x = b. The bool reports instability of either
// substitution (factorization instability is in f.Unstable).
func (f *Factors) Solve(b []float64, tol float64) ([]float64, bool, error) {
	n := f.Order()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, false, luErrorf(opSolve, err)
	}
	y := make([]float64, n)
	fwd, err := ForwardSubstitute(f.L, b, y, tol)
	if err != nil {
		return nil, false, luErrorf(opSolve, err)
	}
	bwd, err := BackwardSubstitute(f.U, y, y, tol)
	if err != nil {
		return nil, false, luErrorf(opSolve, err)
	}

	return y, fwd || bwd, nil
}

// Inverse assembles A⁻¹ column by column: for each unit vector e_j it solves
// L·y = e_j, then U·x = y, and stores x as column j.
//
// The bool is the OR of f.Unstable and every substitution flag. When it is
// true the returned matrix may hold huge or non-finite entries.
func (f *Factors) Inverse(tol float64) (*matrix.Dense, bool, error) {
	n := f.Order()
	inv, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, false, luErrorf(opInverse, err)
	}

	unstable := f.Unstable
	e := make([]float64, n)
	col := make([]float64, n)
	var (
		i, j     int
		fwd, bwd bool
	)
	for j = 0; j < n; j++ {
		for i = range e {
			e[i] = 0
		}
		e[j] = 1
		if fwd, err = ForwardSubstitute(f.L, e, col, tol); err != nil {
			return nil, false, luErrorf(opInverse, err)
		}
		if bwd, err = BackwardSubstitute(f.U, col, col, tol); err != nil {
			return nil, false, luErrorf(opInverse, err)
		}
		unstable = unstable || fwd || bwd
		for i = 0; i < n; i++ {
			inv.Row(i)[j] = col[i]
		}
	}

	return inv, unstable, nil
}

// Determinant returns Π U[i][i] (L has a unit diagonal).
func (f *Factors) Determinant() float64 {
	det := 1.0
	for i := 0; i < f.Order(); i++ {
		det *= f.U.Row(i)[i]
	}

	return det
}

// Inverse factors a and inverts it through the factors.
func Inverse(a *matrix.Dense, tol float64) (*matrix.Dense, bool, error) {
	f, err := Decompose(a, tol)
	if err != nil {
		return nil, false, err
	}

	return f.Inverse(tol)
}

// SolveSystem solves the augmented system through an LU factorization of its
// coefficient block and writes the solution into x. sys is not modified.
// The bool reports any instability met by the factorization or substitutions.
func SolveSystem(sys *matrix.Augmented, x []float64, tol float64) (bool, error) {
	if err := matrix.ValidateSystem(sys, x); err != nil {
		return false, luErrorf(opSolve, err)
	}
	f, err := Decompose(sys.Coefficients(), tol)
	if err != nil {
		return false, err
	}
	sol, unstable, err := f.Solve(sys.RightHandSide(), tol)
	if err != nil {
		return false, err
	}
	copy(x, sol)

	return f.Unstable || unstable, nil
}

func validateSquare(a *matrix.Dense) error {
	if a == nil {
		return matrix.ErrNilMatrix
	}

	return matrix.ValidateSquare(a)
}

func validateTol(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("tolerance %g: %w", tol, matrix.ErrInvalidParameter)
	}

	return nil
}

func validateTriangular(t *matrix.Dense, in, out []float64, tol float64) error {
	if err := validateSquare(t); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(in, t.Rows()); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(out, t.Rows()); err != nil {
		return err
	}

	return validateTol(tol)
}
