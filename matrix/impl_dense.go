// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (array of row handles) & safe accessors.
//
// Purpose:
//   - Keep every row as an independently owned buffer so that exchanging two
//     rows is an O(1) swap of slice headers, never an O(n) element copy.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Hot solver loops should grab Row(i) once and index the returned slice directly.
//   - Row handles are LIVE: writes through them mutate the matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); SwapRows: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete r×c matrix stored as r independently owned rows.
//   - r,c hold dimensions (rows, cols).
//   - rows[i] is a buffer of length c; no two rows share backing storage.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int         // row and column counts (> 0)
	rows           [][]float64 // row handles; len(rows) == r, len(rows[i]) == c
	validateNaNInf bool        // numeric guard: reject NaN/Inf in Set when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one row buffer per row.
//   - Stage 3: resolve numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		rows:           allocRows(rows, cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// DenseFromRows copies a rectangular [][]float64 into a new Dense.
// The input is never retained: later writes to src do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when src or its first row is empty.
//   - ErrDimensionMismatch when rows have unequal lengths.
//   - ErrNaNInf when the finite-only policy is on and src holds NaN/±Inf.
func DenseFromRows(src [][]float64, opts ...Option) (*Dense, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(src), len(src[0]), opts...)
	if err != nil {
		return nil, err
	}
	if err = copyRows(m.rows, src, m.c, m.validateNaNInf); err != nil {
		return nil, err
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i][i] = 1.0
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
func (m *Dense) At(row, col int) (float64, error) {
	if !inBounds(row, col, m.r, m.c) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.rows[row][col], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the finite-only policy.
func (m *Dense) Set(row, col int, v float64) error {
	if !inBounds(row, col, m.r, m.c) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.rows[row][col] = v

	return nil
}

// Row returns the LIVE handle of row i (no copy). It panics when i is out
// of range, like a slice index; use At for checked access.
func (m *Dense) Row(i int) []float64 { return m.rows[i] }

// SwapRows exchanges rows i and j by swapping their handles in O(1).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// Clone returns a deep copy (new row buffers, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := allocRows(m.r, m.c)
	for i := range m.rows {
		copy(cp[i], m.rows[i])
	}

	return &Dense{r: m.r, c: m.c, rows: cp, validateNaNInf: m.validateNaNInf}
}

// RawRows returns a deep copy of the contents as [][]float64.
func (m *Dense) RawRows() [][]float64 {
	return m.Clone().rows
}

// Equal reports whether m and other have the same shape and every pair of
// entries differs by at most eps (DefaultEpsilon unless overridden).
func (m *Dense) Equal(other *Dense, opts ...Option) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i := 0; i < m.r; i++ {
		if MaxAbsDiff(m.rows[i], other.rows[i]) > eps {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]" lines for diagnostics; not for hot paths.
func (m *Dense) String() string {
	return formatRows(m.rows)
}

// ---------- shared helpers (Dense & Augmented) ----------

// allocRows allocates r independent row buffers of length c.
// Rows never share backing storage.
func allocRows(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}

	return out
}

// copyRows copies src into dst enforcing width c and the numeric policy.
func copyRows(dst, src [][]float64, c int, finiteOnly bool) error {
	var i, j int
	for i = range src {
		if len(src[i]) != c {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(src[i]), c, ErrDimensionMismatch)
		}
		if finiteOnly {
			for j = 0; j < c; j++ {
				if isNonFinite(src[i][j]) {
					return fmt.Errorf("row %d col %d: %w", i, j, ErrNaNInf)
				}
			}
		}
		copy(dst[i], src[i])
	}

	return nil
}

func inBounds(row, col, r, c int) bool {
	return row >= 0 && row < r && col >= 0 && col < c
}

func formatRows(rows [][]float64) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < len(row) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
