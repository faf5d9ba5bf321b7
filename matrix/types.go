// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interfaces.
// Concrete storage lives in impl_dense.go (Dense) and augmented.go (Augmented);
// errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only view shared by Dense and Augmented.
// Kernels such as Mul and MatVec accept Matrix and take a fast path when the
// dynamic type is *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*Augmented)(nil)
)
