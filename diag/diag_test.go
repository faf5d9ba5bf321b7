// SPDX-License-Identifier: MIT
package diag_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/linsolve/diag"
	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeError(t *testing.T) {
	r, err := diag.RelativeError([]float64{1.01, 0.98, 1}, matrix.Ones(3))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 0}, r.Percent, 1e-9)
	assert.InDelta(t, 1.0, r.Mean, 1e-9)
	assert.InDelta(t, 2.0, r.Max, 1e-9)

	// Zero exact component: absolute error scaled to percent.
	r, err = diag.RelativeError([]float64{0.5, 4}, []float64{0, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{50, 100}, r.Percent, 1e-12)

	r, err = diag.RelativeError([]float64{math.NaN()}, []float64{1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.Max))

	_, err = diag.RelativeError([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResidualOfExactSolution(t *testing.T) {
	s, err := systems.FromSolution(systems.ExerciseA1(), []float64{1, 2, 3})
	require.NoError(t, err)

	r, norm, err := diag.Residual(s, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, r, 3)
	assert.InDelta(t, 0, norm, 1e-12)

	_, norm, err = diag.Residual(s, []float64{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, norm, 1e-12) // column 2 is {-1, 2, 5}

	_, _, err = diag.Residual(s, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityDeviation(t *testing.T) {
	a := systems.ExerciseA1()
	inv, _, err := lu.Inverse(a, 1e-9)
	require.NoError(t, err)

	dev, worst, err := diag.IdentityDeviation(a, inv)
	require.NoError(t, err)
	assert.Less(t, worst, 1e-12)
	assert.Equal(t, 3, dev.Rows())

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	_, worst, err = diag.IdentityDeviation(a, id)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, worst, 1e-15) // |10 − 1|

	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, _, err = diag.IdentityDeviation(a, rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestConditionNumber(t *testing.T) {
	id, err := matrix.Identity(4)
	require.NoError(t, err)
	k, err := diag.ConditionNumber(id)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, k, 1e-9)

	h, err := systems.HilbertMatrix(4)
	require.NoError(t, err)
	k, err = diag.ConditionNumber(h)
	require.NoError(t, err)
	assert.InEpsilon(t, 28375.0, k, 0.05) // κ∞(H4) = 25/12 · 13620; gonum estimates ‖A⁻¹‖

	_, err = diag.ConditionNumber(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, diag.WriteStatus(&buf, "gauss", nil))
	assert.Equal(t, "gauss: OK\n", buf.String())

	buf.Reset()
	require.NoError(t, diag.WriteStatus(&buf, "sor", fmt.Errorf("SOR: %w", matrix.ErrInvalidParameter)))
	assert.Contains(t, buf.String(), "sor: invalid parameter")
	assert.Contains(t, buf.String(), "cause: SOR: matrix: invalid parameter")

	buf.Reset()
	require.NoError(t, diag.WriteSolution(&buf, "x", []float64{1, -0.5}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "x[0]  1", lines[0])
	assert.Equal(t, "x[1]  -0.5", lines[1])

	buf.Reset()
	require.NoError(t, diag.WriteErrorReport(&buf, diag.ErrorReport{Percent: []float64{1}, Mean: 1, Max: 1}))
	assert.Contains(t, buf.String(), "mean    1.000000e+00 %")

	buf.Reset()
	m, err := matrix.DenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, diag.WriteMatrix(&buf, "A", m))
	assert.True(t, strings.HasPrefix(buf.String(), "A\n1  2"))
}
