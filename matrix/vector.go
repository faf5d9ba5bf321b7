// SPDX-License-Identifier: MIT

// Package matrix - vector kernels shared by the solver engines.
//
// The kernels are generic over floating-point element types so that the
// same norm/convergence code serves float64 systems and float32 traces.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs returns |v| for any floating-point type.
func Abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// NormInf returns the infinity norm max_i |x_i|. An empty vector has norm 0.
// NaN components propagate: the result is NaN if any component is NaN.
func NormInf[T constraints.Float](x []T) T {
	var norm T
	for _, v := range x {
		a := Abs(v)
		if a != a { // NaN
			return a
		}
		if a > norm {
			norm = a
		}
	}

	return norm
}

// MaxAbsDiff returns max_i |a_i − b_i| over the common prefix of a and b.
func MaxAbsDiff[T constraints.Float](a, b []T) T {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var d T
	for i := 0; i < n; i++ {
		if v := Abs(a[i] - b[i]); v > d {
			d = v
		}
	}

	return d
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Ones returns a vector of n ones (the exact solution of Hilbert test systems).
func Ones(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0
	}

	return x
}

// AllFinite reports whether every component is finite.
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
