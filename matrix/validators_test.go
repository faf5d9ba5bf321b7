// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Augmented
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquareAndVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen(make([]float64, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen(make([]float64, 3), 2), matrix.ErrDimensionMismatch)
}

func TestValidateSystem(t *testing.T) {
	s, err := matrix.NewAugmented(3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSystem(s, make([]float64, 3)))
	require.ErrorIs(t, matrix.ValidateSystem(s, make([]float64, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSystem(nil, make([]float64, 3)), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 0, math.NaN()))
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
}
