// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrorReport holds the per-component percent errors of a solution and their
// aggregates.
type ErrorReport struct {
	Percent []float64 // |x_i − e_i| / |e_i| · 100 (|x_i − e_i| · 100 when e_i = 0)
	Mean    float64
	Max     float64
}

// RelativeError compares x against the exact solution.
// Non-finite components propagate into the report (Max and Mean become NaN or +Inf).
//
// Errors:
//   - matrix.ErrDimensionMismatch when the lengths differ or are zero.
func RelativeError(x, exact []float64) (ErrorReport, error) {
	if len(x) != len(exact) || len(x) == 0 {
		return ErrorReport{}, fmt.Errorf("RelativeError: len %d vs %d: %w", len(x), len(exact), matrix.ErrDimensionMismatch)
	}

	pct := make([]float64, len(x))
	var d float64
	for i := range x {
		d = math.Abs(x[i] - exact[i])
		if exact[i] != 0 {
			d /= math.Abs(exact[i])
		}
		pct[i] = d * 100
	}

	return ErrorReport{
		Percent: pct,
		Mean:    floats.Sum(pct) / float64(len(pct)),
		Max:     matrix.NormInf(pct),
	}, nil
}

// Residual returns r = b − A·x and ‖r‖∞ for the augmented system.
func Residual(sys *matrix.Augmented, x []float64) ([]float64, float64, error) {
	if err := matrix.ValidateSystem(sys, x); err != nil {
		return nil, 0, fmt.Errorf("Residual: %w", err)
	}
	ax, err := matrix.MatVec(sys, x)
	if err != nil {
		return nil, 0, fmt.Errorf("Residual: %w", err)
	}
	for i := range ax {
		ax[i] = sys.RHS(i) - ax[i]
	}

	return ax, matrix.NormInf(ax), nil
}

// IdentityDeviation returns |A·inv − I| element-wise and its largest entry.
func IdentityDeviation(a, inv *matrix.Dense) (*matrix.Dense, float64, error) {
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return nil, 0, fmt.Errorf("IdentityDeviation: %w", err)
	}
	if err = matrix.ValidateSquare(prod); err != nil {
		return nil, 0, fmt.Errorf("IdentityDeviation: %w", err)
	}

	worst := 0.0
	var row []float64
	for i := 0; i < prod.Rows(); i++ {
		row = prod.Row(i)
		row[i] -= 1
		for j := range row {
			row[j] = math.Abs(row[j])
		}
		worst = math.Max(worst, floats.Max(row))
	}

	return prod, worst, nil
}

// ConditionNumber returns κ∞(A) = ‖A‖∞·‖A⁻¹‖∞ as computed by gonum.
// A singular matrix yields +Inf.
func ConditionNumber(a *matrix.Dense) (float64, error) {
	if a == nil {
		return 0, fmt.Errorf("ConditionNumber: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("ConditionNumber: %w", err)
	}

	n := a.Rows()
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.SetRow(i, a.Row(i))
	}

	return mat.Cond(g, math.Inf(1)), nil
}
