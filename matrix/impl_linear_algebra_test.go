// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulSmall(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, c)
}

// TestMulFastPathMatchesFallback asserts the *Dense fast path and the At
// fallback agree on random input.
func TestMulFastPathMatchesFallback(t *testing.T) {
	a := RandFilledDense(t, 5, 4, 7)
	b := RandFilledDense(t, 4, 6, 11)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)

	assert.True(t, fast.Equal(slow, matrix.WithEpsilon(1e-12)))
}

func TestMulErrors(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{2, 0}, {1, 3}})
	y, err := matrix.MatVec(a, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 7}, y)

	y, err = matrix.MatVec(hide{a}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVecAugmentedIgnoresRHS verifies that only the coefficient block is used.
func TestMatVecAugmentedIgnoresRHS(t *testing.T) {
	s, err := matrix.AugmentedFromRows([][]float64{{2, 0, 100}, {1, 3, 200}})
	require.NoError(t, err)

	y, err := matrix.MatVec(s, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 7}, y)
}
