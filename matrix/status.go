// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Status is the tagged outcome of a solve. Solvers report outcomes as errors;
// Status is the compact view used by diagnostics, printers and the CLI.
type Status int

const (
	// StatusOK means the solve completed and the solution vector is populated.
	StatusOK Status = iota

	// StatusSingular means a pivot or diagonal fell below tolerance.
	StatusSingular

	// StatusNotConverged means an iterative method hit its cap or diverged.
	StatusNotConverged

	// StatusInconsistent means a zero pivot row carried a non-zero residual.
	StatusInconsistent

	// StatusInvalidParameter means a parameter (e.g. ω) was out of its domain.
	StatusInvalidParameter

	// StatusFailed covers every non-numerical failure (shape, nil, NaN input).
	StatusFailed
)

var statusText = [...]string{
	StatusOK:               "OK",
	StatusSingular:         "singular or indeterminate system (pivot ~ 0)",
	StatusNotConverged:     "did not converge within the iteration budget",
	StatusInconsistent:     "inconsistent system (zero row in A with b != 0)",
	StatusInvalidParameter: "invalid parameter (relaxation factor must satisfy 0 < omega < 2)",
	StatusFailed:           "failed",
}

// String returns the human-readable description of s.
func (s Status) String() string {
	if s < StatusOK || int(s) >= len(statusText) {
		return "unknown status"
	}

	return statusText[s]
}

// StatusOf maps an error chain returned by any solver to its Status.
// A nil error maps to StatusOK; errors outside the numerical taxonomy map to
// StatusFailed.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrSingular):
		return StatusSingular
	case errors.Is(err, ErrNotConverged):
		return StatusNotConverged
	case errors.Is(err, ErrInconsistent):
		return StatusInconsistent
	case errors.Is(err, ErrInvalidParameter):
		return StatusInvalidParameter
	default:
		return StatusFailed
	}
}

// Err returns the sentinel corresponding to s, or nil for StatusOK.
// StatusFailed has no single sentinel and yields nil as well.
func (s Status) Err() error {
	switch s {
	case StatusSingular:
		return ErrSingular
	case StatusNotConverged:
		return ErrNotConverged
	case StatusInconsistent:
		return ErrInconsistent
	case StatusInvalidParameter:
		return ErrInvalidParameter
	default:
		return nil
	}
}
