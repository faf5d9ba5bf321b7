// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

const opIterate = "Iterate"

func iterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Jacobi runs the plain Jacobi method.
func Jacobi(sys *matrix.Augmented, x []float64, opts Options) (Result, error) {
	return run("Jacobi", sys, x, PreviousIterate, 1, opts)
}

// GaussSeidel runs the plain Gauss-Seidel method.
func GaussSeidel(sys *matrix.Augmented, x []float64, opts Options) (Result, error) {
	return run("GaussSeidel", sys, x, InPlace, 1, opts)
}

// WeightedJacobi runs Jacobi relaxed by omega ∈ (0,2).
func WeightedJacobi(sys *matrix.Augmented, x []float64, omega float64, opts Options) (Result, error) {
	return run("WeightedJacobi", sys, x, PreviousIterate, omega, opts)
}

// SOR runs Gauss-Seidel relaxed by omega ∈ (0,2).
func SOR(sys *matrix.Augmented, x []float64, omega float64, opts Options) (Result, error) {
	return run("SOR", sys, x, InPlace, omega, opts)
}

// Solve dispatches to the method m. omega is ignored by the unrelaxed methods.
func Solve(sys *matrix.Augmented, x []float64, m Method, omega float64, opts Options) (Result, error) {
	switch m {
	case Jacobi:
		return Jacobi(sys, x, opts)
	case GaussSeidel:
		return GaussSeidel(sys, x, opts)
	case WeightedJacobi:
		return WeightedJacobi(sys, x, omega, opts)
	case SOR:
		return SOR(sys, x, omega, opts)
	default:
		return Result{}, iterErrorf("Solve", fmt.Errorf("method %d: %w", int(m), matrix.ErrInvalidParameter))
	}
}

func run(tag string, sys *matrix.Augmented, x []float64, rule Rule, omega float64, opts Options) (Result, error) {
	res, err := Iterate(sys, x, rule, omega, opts)
	if err != nil {
		return res, iterErrorf(tag, err)
	}

	return res, nil
}

// Iterate is the fixed-point routine behind every method.
//
// Implementation:
//   - Stage 1: validate the system, options and ω (0 < ω < 2, NaN rejected).
//   - Stage 2: guard every diagonal entry and form x⁰_i = b_i / A[i][i].
//   - Stage 3: per sweep, save the previous iterate, update each component
//     from the previous iterate (PreviousIterate) or from the live one
//     (InPlace), blend with ω when ω != 1, then test divergence before
//     convergence.
//
// Behavior highlights:
//   - On success and on an exhausted budget x receives the last iterate.
//   - On divergence x receives the iterate before the offending sweep.
//   - On validation or singular-diagonal errors x is untouched.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad arguments.
//   - matrix.ErrInvalidParameter for ω ∉ (0,2), a bad tolerance, a budget
//     below 1, an unknown rule or criterion.
//   - matrix.ErrSingular when |A[i][i]| < Tolerance or A[i][i] == 0.
//   - matrix.ErrNotConverged on divergence or an exhausted budget.
//
// Complexity:
//   - Time O(k·n²) for k sweeps, Space O(n).
func Iterate(sys *matrix.Augmented, x []float64, rule Rule, omega float64, opts Options) (Result, error) {
	if err := matrix.ValidateSystem(sys, x); err != nil {
		return Result{}, iterErrorf(opIterate, err)
	}
	if !(omega > 0 && omega < 2) {
		return Result{}, iterErrorf(opIterate, fmt.Errorf("omega %g: %w", omega, matrix.ErrInvalidParameter))
	}
	if rule != PreviousIterate && rule != InPlace {
		return Result{}, iterErrorf(opIterate, fmt.Errorf("rule %d: %w", int(rule), matrix.ErrInvalidParameter))
	}
	opts, err := resolve(opts)
	if err != nil {
		return Result{}, iterErrorf(opIterate, err)
	}

	n := sys.Order()
	diag := make([]float64, n)
	cur := make([]float64, n)
	var (
		i, j int
		row  []float64
	)
	for i = 0; i < n; i++ {
		row = sys.Row(i)
		if row[i] == 0 || math.Abs(row[i]) < opts.Tolerance {
			return Result{}, iterErrorf(opIterate, fmt.Errorf("diagonal %d = %g: %w", i, row[i], matrix.ErrSingular))
		}
		diag[i] = row[i]
		cur[i] = row[n] / row[i]
	}

	prev := make([]float64, n)
	src := prev
	if rule == InPlace {
		src = cur
	}

	var (
		k          int
		sum, plain float64
		norm0      = matrix.NormInf(cur)
		norm1      float64
		change     float64
	)
	for k = 1; k <= opts.MaxIterations; k++ {
		copy(prev, cur)
		for i = 0; i < n; i++ {
			row = sys.Row(i)
			sum = row[n]
			for j = 0; j < n; j++ {
				if j != i {
					sum -= row[j] * src[j]
				}
			}
			plain = sum / diag[i]
			if omega == 1 {
				cur[i] = plain
			} else {
				cur[i] = (1-omega)*prev[i] + omega*plain
			}
		}

		norm1 = matrix.NormInf(cur)
		change = criterion(opts, cur, prev, norm0, norm1)
		if opts.OnSweep != nil {
			opts.OnSweep(Sweep{Iteration: k, Norm: norm1, Change: change})
		}

		if math.IsNaN(norm1) || math.IsInf(norm1, 0) || norm1 > opts.DivergenceLimit {
			copy(x, prev)
			return Result{Iterations: k, Norm: norm0, Change: change, Diverged: true},
				iterErrorf(opIterate, fmt.Errorf("sweep %d: norm %g: %w", k, norm1, matrix.ErrNotConverged))
		}
		if change < opts.Tolerance {
			copy(x, cur)
			return Result{Iterations: k, Norm: norm1, Change: change}, nil
		}
		norm0 = norm1
	}

	copy(x, cur)

	return Result{Iterations: opts.MaxIterations, Norm: norm1, Change: change},
		iterErrorf(opIterate, fmt.Errorf("%d sweeps: %w", opts.MaxIterations, matrix.ErrNotConverged))
}

// criterion evaluates the configured convergence measure for one sweep.
func criterion(opts Options, cur, prev []float64, norm0, norm1 float64) float64 {
	if opts.Criterion == Displacement {
		return matrix.MaxAbsDiff(cur, prev) / matrix.Max(norm1, opts.NormFloor)
	}

	return math.Abs(norm1-norm0) / matrix.Max(matrix.Max(norm1, norm0), opts.NormFloor)
}

// resolve validates opts and fills zero-valued optional fields.
func resolve(opts Options) (Options, error) {
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return opts, fmt.Errorf("tolerance %g: %w", opts.Tolerance, matrix.ErrInvalidParameter)
	}
	if opts.MaxIterations < 1 {
		return opts, fmt.Errorf("max iterations %d: %w", opts.MaxIterations, matrix.ErrInvalidParameter)
	}
	if opts.Criterion != NormDrift && opts.Criterion != Displacement {
		return opts, fmt.Errorf("criterion %d: %w", int(opts.Criterion), matrix.ErrInvalidParameter)
	}
	if opts.DivergenceLimit == 0 {
		opts.DivergenceLimit = DefaultDivergenceLimit
	}
	if opts.NormFloor == 0 {
		opts.NormFloor = DefaultNormFloor
	}
	if !(opts.DivergenceLimit > 0) || !(opts.NormFloor > 0) {
		return opts, fmt.Errorf("divergence limit %g / norm floor %g: %w",
			opts.DivergenceLimit, opts.NormFloor, matrix.ErrInvalidParameter)
	}

	return opts, nil
}
