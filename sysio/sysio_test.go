// SPDX-License-Identifier: MIT
package sysio_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/sysio"
	"github.com/katalvlaran/linsolve/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := "2\n4 1 1\n2\t3   2\n"
	s, err := sysio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Order())
	assert.Equal(t, []float64{4, 1, 1}, s.Row(0))
	assert.Equal(t, []float64{2, 3, 2}, s.Row(1))
}

func TestReadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"short":     "2\n1 2 3\n4 5\n",
		"badOrder":  "two\n",
		"zeroOrder": "0\n",
		"badNumber": "1\n1 x\n",
		"nonFinite": "1\n1 NaN\n",
		"huge":      "1152921504606846976\n",
		"overCap":   strconv.Itoa(sysio.MaxOrder+1) + "\n",
		"negative":  "-3\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = sysio.Read(strings.NewReader(in)) })
			require.ErrorIs(t, err, sysio.ErrFormat)
		})
	}

	_, err := sysio.Read(strings.NewReader("2\n1 2 3\n"))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// TestReadHeaderOnlyAtCap declares the largest order but supplies no data.
func TestReadHeaderOnlyAtCap(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, err = sysio.Read(strings.NewReader(strconv.Itoa(sysio.MaxOrder) + "\n"))
	})
	require.ErrorIs(t, err, sysio.ErrFormat)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWriteReadRoundTrip(t *testing.T) {
	orig, err := systems.Hilbert(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sysio.Write(&buf, orig))

	back, err := sysio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.String(), back.String())
	for i := 0; i < 5; i++ {
		assert.Equal(t, orig.Row(i), back.Row(i))
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2 4\n"), 0o600))

	s, err := sysio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.RHS(0))

	_, err = sysio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, sysio.Write(io.Discard, nil), matrix.ErrNilMatrix)
}
