// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// Method names one of the four iterative solvers.
type Method int

const (
	// Jacobi updates every component from the previous iterate.
	Jacobi Method = iota

	// GaussSeidel updates components in place within a sweep.
	GaussSeidel

	// WeightedJacobi is Jacobi blended with the previous iterate by ω.
	WeightedJacobi

	// SOR (successive over-relaxation) is Gauss-Seidel blended by ω.
	SOR
)

var methodNames = [...]string{
	Jacobi:         "jacobi",
	GaussSeidel:    "gauss-seidel",
	WeightedJacobi: "weighted-jacobi",
	SOR:            "sor",
}

// String returns the name accepted by ParseMethod.
func (m Method) String() string {
	if m < Jacobi || m > SOR {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Rule reports the update rule of m.
func (m Method) Rule() Rule {
	if m == GaussSeidel || m == SOR {
		return InPlace
	}

	return PreviousIterate
}

// Relaxed reports whether m takes a relaxation factor.
func (m Method) Relaxed() bool { return m == WeightedJacobi || m == SOR }

// ParseMethod maps a method name (case-insensitive) to its Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("iterative: unknown method %q: %w", s, matrix.ErrInvalidParameter)
}

// Rule selects which values a sweep reads.
type Rule int

const (
	// PreviousIterate computes sweep k+1 entirely from iterate k (two buffers).
	PreviousIterate Rule = iota

	// InPlace overwrites components as they are computed (one buffer).
	InPlace
)

// Criterion selects the convergence test.
type Criterion int

const (
	// NormDrift: |‖x⁺‖∞ − ‖x‖∞| / max(‖x⁺‖∞, ‖x‖∞, floor) < tol.
	NormDrift Criterion = iota

	// Displacement: ‖x⁺ − x‖∞ / max(‖x⁺‖∞, floor) < tol.
	Displacement
)

var criterionNames = [...]string{
	NormDrift:    "norm",
	Displacement: "displacement",
}

// String returns the name accepted by ParseCriterion.
func (c Criterion) String() string {
	if c < NormDrift || c > Displacement {
		return fmt.Sprintf("Criterion(%d)", int(c))
	}

	return criterionNames[c]
}

// ParseCriterion maps "norm" or "displacement" to its Criterion.
func ParseCriterion(s string) (Criterion, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range criterionNames {
		if n == name {
			return Criterion(c), nil
		}
	}

	return 0, fmt.Errorf("iterative: unknown criterion %q: %w", s, matrix.ErrInvalidParameter)
}

// Defaults used by DefaultOptions and for zero-valued optional fields.
const (
	DefaultTolerance       = 1e-10
	DefaultMaxIterations   = 10000
	DefaultDivergenceLimit = 1e12
	DefaultNormFloor       = 1e-30
)

// Sweep is the per-sweep trace handed to Options.OnSweep.
type Sweep struct {
	Iteration int     // 1-based sweep number
	Norm      float64 // ‖x‖∞ after the sweep
	Change    float64 // value of the convergence criterion (NaN/Inf possible on divergence)
}

// Options configures Iterate and the method wrappers.
//   - Tolerance: convergence threshold, also the diagonal guard. Finite, ≥ 0.
//   - MaxIterations: sweep budget, ≥ 1.
//   - DivergenceLimit: stop when ‖x‖∞ exceeds it (0 selects DefaultDivergenceLimit).
//   - NormFloor: lower bound of every denominator (0 selects DefaultNormFloor).
//   - Criterion: NormDrift (default) or Displacement.
//   - OnSweep: optional hook called after every sweep; it must not retain x.
type Options struct {
	Tolerance       float64
	MaxIterations   int
	DivergenceLimit float64
	NormFloor       float64
	Criterion       Criterion
	OnSweep         func(Sweep)
}

// DefaultOptions returns the documented defaults with the NormDrift criterion.
func DefaultOptions() Options {
	return Options{
		Tolerance:       DefaultTolerance,
		MaxIterations:   DefaultMaxIterations,
		DivergenceLimit: DefaultDivergenceLimit,
		NormFloor:       DefaultNormFloor,
		Criterion:       NormDrift,
	}
}

// Result summarizes a run. It is meaningful on success and on
// matrix.ErrNotConverged.
type Result struct {
	Iterations int     // sweeps performed
	Norm       float64 // ‖x‖∞ of the returned iterate
	Change     float64 // last criterion value
	Diverged   bool    // stopped by the divergence guard
}
