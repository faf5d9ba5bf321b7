// SPDX-License-Identifier: MIT

// Package matrix - Augmented system [A|b].
//
// Purpose:
//   - Hold an n×(n+1) system: columns [0,n) are the coefficient matrix A,
//     column n is the right-hand side b.
//   - Use the same row-handle layout as Dense, so pivoting strategies can
//     exchange rows in O(1).
//
// Ownership:
//   - The caller owns the system. Direct solvers mutate it in place into
//     triangular form; iterative solvers only read it.

package matrix

import "fmt"

const (
	ctxAugAt       = "At"
	ctxAugSet      = "Set"
	ctxAugSwapRows = "SwapRows"
)

func augmentedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Augmented.%s(%d,%d): %w", method, row, col, err)
}

// Augmented is an n×(n+1) augmented linear system [A|b].
type Augmented struct {
	n              int         // order of A (n ≥ 1)
	rows           [][]float64 // n row handles of length n+1
	validateNaNInf bool
}

// NewAugmented allocates a zero n×(n+1) system.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
func NewAugmented(n int, opts ...Option) (*Augmented, error) {
	if n < 1 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Augmented{n: n, rows: allocRows(n, n+1), validateNaNInf: o.validateNaNInf}, nil
}

// AugmentedFromRows copies n rows of n+1 values into a new system.
//
// Errors:
//   - ErrInvalidDimensions when src is empty.
//   - ErrDimensionMismatch when any row does not have exactly len(src)+1 values.
//   - ErrNaNInf when the finite-only policy is on and src holds NaN/±Inf.
func AugmentedFromRows(src [][]float64, opts ...Option) (*Augmented, error) {
	s, err := NewAugmented(len(src), opts...)
	if err != nil {
		return nil, err
	}
	if err = copyRows(s.rows, src, s.n+1, s.validateNaNInf); err != nil {
		return nil, err
	}

	return s, nil
}

// Augment builds [A|b] from a square coefficient matrix and a right-hand side.
// Both inputs are copied.
//
// Errors:
//   - ErrNilMatrix for nil a; ErrDimensionMismatch when a is not square or len(b) != n.
func Augment(a *Dense, b []float64, opts ...Option) (*Augmented, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, err
	}
	s, err := NewAugmented(a.r, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < s.n; i++ {
		copy(s.rows[i], a.rows[i])
		s.rows[i][s.n] = b[i]
	}
	if s.validateNaNInf {
		if err = ValidateFinite(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Order returns n, the size of the coefficient matrix.
func (s *Augmented) Order() int { return s.n }

// Rows returns n.
func (s *Augmented) Rows() int { return s.n }

// Cols returns n+1.
func (s *Augmented) Cols() int { return s.n + 1 }

// At returns the entry at (row, col); col == Order() addresses b.
func (s *Augmented) At(row, col int) (float64, error) {
	if !inBounds(row, col, s.n, s.n+1) {
		return 0, augmentedErrorf(ctxAugAt, row, col, ErrOutOfRange)
	}

	return s.rows[row][col], nil
}

// Set stores v at (row, col) under the numeric policy.
func (s *Augmented) Set(row, col int, v float64) error {
	if !inBounds(row, col, s.n, s.n+1) {
		return augmentedErrorf(ctxAugSet, row, col, ErrOutOfRange)
	}
	if s.validateNaNInf && isNonFinite(v) {
		return augmentedErrorf(ctxAugSet, row, col, ErrNaNInf)
	}
	s.rows[row][col] = v

	return nil
}

// Row returns the LIVE handle of row i: n coefficients followed by b_i.
// Panics when i is out of range, like a slice index.
func (s *Augmented) Row(i int) []float64 { return s.rows[i] }

// RHS returns b_i.
func (s *Augmented) RHS(i int) float64 { return s.rows[i][s.n] }

// SwapRows exchanges rows i and j (coefficients and b together) in O(1).
func (s *Augmented) SwapRows(i, j int) error {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return augmentedErrorf(ctxAugSwapRows, i, j, ErrOutOfRange)
	}
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]

	return nil
}

// Clone returns an independent deep copy.
func (s *Augmented) Clone() *Augmented {
	cp := allocRows(s.n, s.n+1)
	for i := range s.rows {
		copy(cp[i], s.rows[i])
	}

	return &Augmented{n: s.n, rows: cp, validateNaNInf: s.validateNaNInf}
}

// Coefficients returns a copy of A as a new Dense.
func (s *Augmented) Coefficients() *Dense {
	a := &Dense{r: s.n, c: s.n, rows: allocRows(s.n, s.n), validateNaNInf: s.validateNaNInf}
	for i := 0; i < s.n; i++ {
		copy(a.rows[i], s.rows[i][:s.n])
	}

	return a
}

// RightHandSide returns a copy of b.
func (s *Augmented) RightHandSide() []float64 {
	b := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		b[i] = s.rows[i][s.n]
	}

	return b
}

// String renders the system row by row; the last value of each line is b_i.
func (s *Augmented) String() string {
	return formatRows(s.rows)
}
