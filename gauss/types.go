// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// Pivoting selects the pivot strategy used by Eliminate.
type Pivoting int

const (
	// NoPivoting uses the diagonal entry as found.
	NoPivoting Pivoting = iota

	// Partial swaps in the row with maximal |A[i][k]| (first maximum wins).
	Partial

	// Scaled swaps in the row maximizing |A[i][k]| relative to its row weight.
	Scaled

	// Total searches rows and columns of the trailing block.
	Total
)

var pivotingNames = [...]string{
	NoPivoting: "none",
	Partial:    "partial",
	Scaled:     "scaled",
	Total:      "total",
}

// String returns the lower-case name accepted by ParsePivoting.
func (p Pivoting) String() string {
	if p < NoPivoting || p > Total {
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}

	return pivotingNames[p]
}

// ParsePivoting maps a strategy name ("none", "partial", "scaled", "total";
// case-insensitive) to its Pivoting value.
func ParsePivoting(s string) (Pivoting, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range pivotingNames {
		if n == name {
			return Pivoting(p), nil
		}
	}

	return 0, fmt.Errorf("gauss: unknown pivoting %q: %w", s, matrix.ErrInvalidParameter)
}

// DefaultTolerance is the pivot threshold used by DefaultOptions.
const DefaultTolerance = 1e-12

// Options configures Eliminate and Solve.
//   - Pivoting: the pivot strategy (default Partial).
//   - Tolerance: pivots with magnitude below this value are treated as zero
//     and abort elimination with matrix.ErrSingular. Must be finite and ≥ 0.
//   - SkipPivotCheck: never compare pivots against Tolerance; elimination runs
//     to completion through tiny pivots. Total pivoting still stops early when
//     the whole trailing block is exactly zero.
type Options struct {
	Pivoting       Pivoting
	Tolerance      float64
	SkipPivotCheck bool
}

// DefaultOptions returns partial pivoting with DefaultTolerance.
func DefaultOptions() Options {
	return Options{
		Pivoting:  Partial,
		Tolerance: DefaultTolerance,
	}
}

// Permutation is the logical column order produced by total pivoting:
// p[j] is the original column (variable) index currently at position j.
// It is always a bijection on [0,n); the right-hand-side column is never part
// of it.
type Permutation []int

// identityPermutation returns [0, 1, ..., n-1].
func identityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports whether p is a bijection on [0,n).
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(p) != n.
//   - matrix.ErrInvalidParameter when an entry is out of range or repeated.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("Permutation: length %d, want %d: %w", len(p), n, matrix.ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for j, c := range p {
		if c < 0 || c >= n || seen[c] {
			return fmt.Errorf("Permutation: entry %d=%d: %w", j, c, matrix.ErrInvalidParameter)
		}
		seen[c] = true
	}

	return nil
}
