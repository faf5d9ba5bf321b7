// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
)

func TestNormInf(t *testing.T) {
	assert.Equal(t, 0.0, matrix.NormInf([]float64(nil)))
	assert.Equal(t, 3.0, matrix.NormInf([]float64{1, -3, 2}))
	assert.Equal(t, float32(2.5), matrix.NormInf([]float32{-2.5, 1}))
	assert.True(t, math.IsNaN(matrix.NormInf([]float64{1, math.NaN(), 5})))
	assert.True(t, math.IsInf(matrix.NormInf([]float64{1, math.Inf(-1)}), 1))
}

func TestMaxAbsDiff(t *testing.T) {
	assert.Equal(t, 0.5, matrix.MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3}))
	// Only the common prefix is compared.
	assert.Equal(t, 0.0, matrix.MaxAbsDiff([]float64{1, 2}, []float64{1}))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 2.0, matrix.Abs(-2.0))
	assert.Equal(t, 3, matrix.Max(3, -1))
	assert.Equal(t, 1e-30, matrix.Max(0.0, 1e-30))
	assert.Equal(t, []float64{1, 1, 1}, matrix.Ones(3))
	assert.True(t, matrix.AllFinite([]float64{1, -2}))
	assert.False(t, matrix.AllFinite([]float64{1, math.Inf(1)}))
}
