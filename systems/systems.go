// SPDX-License-Identifier: MIT

package systems

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linsolve/matrix"
)

// HilbertMatrix returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1) (0-based).
//
// Errors:
//   - matrix.ErrInvalidDimensions when n < 1.
func HilbertMatrix(n int) (*matrix.Dense, error) {
	h, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("HilbertMatrix(%d): %w", n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		row := h.Row(i)
		for j = 0; j < n; j++ {
			row[j] = 1.0 / float64(i+j+1)
		}
	}

	return h, nil
}

// Hilbert returns the augmented Hilbert system of order n with b[i] equal to
// the sum of row i, so that the exact solution is the all-ones vector.
func Hilbert(n int) (*matrix.Augmented, error) {
	s, err := matrix.NewAugmented(n)
	if err != nil {
		return nil, fmt.Errorf("Hilbert(%d): %w", n, err)
	}
	var (
		i, j int
		v    float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		row := s.Row(i)
		sum = 0
		for j = 0; j < n; j++ {
			v = 1.0 / float64(i+j+1)
			row[j] = v
			sum += v
		}
		row[n] = sum
	}

	return s, nil
}

// FromSolution returns [A | A·x] for a square A, so that x is an exact
// solution of the resulting system up to the rounding of the product.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad arguments.
func FromSolution(a *matrix.Dense, x []float64) (*matrix.Augmented, error) {
	if a == nil {
		return nil, fmt.Errorf("FromSolution: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("FromSolution: %w", err)
	}
	b, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, fmt.Errorf("FromSolution: %w", err)
	}

	return matrix.Augment(a, b)
}

// ExerciseA1 returns the well-conditioned 3×3 matrix of the LU exercise
// (det = -289).
func ExerciseA1() *matrix.Dense {
	return mustRows([][]float64{
		{10, 2, -1},
		{-3, -6, 2},
		{1, 1, 5},
	})
}

// ExerciseA2 returns the rank-deficient 4×4 matrix A[i][j] = (i+j+1)² of the
// LU exercise. Its Doolittle factorization ends with U[3][3] ≈ 0.
func ExerciseA2() *matrix.Dense {
	return mustRows([][]float64{
		{1, 4, 9, 16},
		{4, 9, 16, 25},
		{9, 16, 25, 36},
		{16, 25, 36, 49},
	})
}

// DiagonallyDominant returns a strictly diagonally dominant system of order n
// with exact solution all ones: A[i][j] = 1/(1+|i−j|) off the diagonal and
// A[i][i] = n+1.
func DiagonallyDominant(n int) (*matrix.Augmented, error) {
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("DiagonallyDominant(%d): %w", n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		row := a.Row(i)
		for j = 0; j < n; j++ {
			if i == j {
				row[j] = float64(n + 1)
				continue
			}
			row[j] = 1.0 / float64(1+abs(i-j))
		}
	}

	return FromSolution(a, matrix.Ones(n))
}

// Random returns a strictly diagonally dominant system of order n with
// off-diagonal entries uniform in [-1, 1) drawn from seed, and exact solution
// all ones. Equal seeds give equal systems.
func Random(n int, seed int64) (*matrix.Augmented, error) {
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Random(%d): %w", n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var (
		i, j int
		off  float64
	)
	for i = 0; i < n; i++ {
		row := a.Row(i)
		off = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			row[j] = rng.Float64()*2 - 1
			off += matrix.Abs(row[j])
		}
		row[i] = off + 1
	}

	return FromSolution(a, matrix.Ones(n))
}

func mustRows(rows [][]float64) *matrix.Dense {
	m, err := matrix.DenseFromRows(rows)
	if err != nil {
		panic(err) // literal fixtures are always well-formed
	}

	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
