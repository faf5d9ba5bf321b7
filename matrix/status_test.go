// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want matrix.Status
	}{
		{"nil", nil, matrix.StatusOK},
		{"singular", fmt.Errorf("Eliminate: %w", matrix.ErrSingular), matrix.StatusSingular},
		{"notConverged", matrix.ErrNotConverged, matrix.StatusNotConverged},
		{"inconsistent", fmt.Errorf("a: %w", fmt.Errorf("b: %w", matrix.ErrInconsistent)), matrix.StatusInconsistent},
		{"invalidParameter", matrix.ErrInvalidParameter, matrix.StatusInvalidParameter},
		{"shape", matrix.ErrDimensionMismatch, matrix.StatusFailed},
		{"foreign", errors.New("boom"), matrix.StatusFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matrix.StatusOf(tc.err))
		})
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []matrix.Status{
		matrix.StatusSingular, matrix.StatusNotConverged,
		matrix.StatusInconsistent, matrix.StatusInvalidParameter,
	} {
		assert.Equal(t, s, matrix.StatusOf(s.Err()), s.String())
	}
	assert.NoError(t, matrix.StatusOK.Err())
	assert.NoError(t, matrix.StatusFailed.Err())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", matrix.StatusOK.String())
	assert.Contains(t, matrix.StatusInvalidParameter.String(), "omega")
	assert.Equal(t, "unknown status", matrix.Status(42).String())
}
