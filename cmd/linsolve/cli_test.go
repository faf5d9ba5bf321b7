// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/sysio"
	"github.com/katalvlaran/linsolve/systems"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewLinsolveCommand(&out)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

// dominantFile writes a diagonally dominant system with solution ones.
func dominantFile(t *testing.T, n int) string {
	t.Helper()
	sys, err := systems.DiagonallyDominant(n)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dominant.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, sysio.Write(f, sys))
	require.NoError(t, f.Close())

	return path
}

func TestGaussCommand(t *testing.T) {
	for _, pivot := range []string{"none", "partial", "scaled", "total"} {
		t.Run(pivot, func(t *testing.T) {
			out, err := execute(t, "gauss", "--hilbert", "3", "--pivot", pivot)
			require.NoError(t, err)
			assert.Contains(t, out, "[gauss/"+pivot+"]: OK")
			assert.Contains(t, out, "x[2]")
			assert.Contains(t, out, "mean")
			assert.Contains(t, out, "elapsed = ")
		})
	}
}

func TestGaussCommandReportsSingular(t *testing.T) {
	out, err := execute(t, "gauss", "--hilbert", "3", "--tol", "0.5")
	require.NoError(t, err, "numerical outcomes are reported, not returned")
	assert.Contains(t, out, matrix.StatusSingular.String())
	assert.NotContains(t, out, "x[0]")
}

func TestSourceFlags(t *testing.T) {
	_, err := execute(t, "gauss")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	_, err = execute(t, "gauss", "--hilbert", "3", "--input", "a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, err = execute(t, "gauss", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, err = execute(t, "gauss", "--hilbert", "3", "--pivot", "rook")
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
}

func TestLUCommand(t *testing.T) {
	out, err := execute(t, "lu", "--hilbert", "3", "--inverse")
	require.NoError(t, err)
	assert.Contains(t, out, "[lu]: OK")
	assert.Contains(t, out, "inverse")
	assert.Contains(t, out, "det = ")
	assert.Contains(t, out, "max |A·A⁻¹ − I|")
	assert.Contains(t, out, "cond∞")
}

func TestIterateCommand(t *testing.T) {
	path := dominantFile(t, 6)

	for _, m := range []string{"jacobi", "gauss-seidel", "weighted-jacobi", "sor"} {
		t.Run(m, func(t *testing.T) {
			out, err := execute(t, "iterate", "--input", path, "--method", m, "--omega", "0.9", "--tol", "1e-12", "--criterion", "displacement")
			require.NoError(t, err)
			assert.Contains(t, out, ": OK")
			assert.Contains(t, out, "iterations = ")
			assert.NotContains(t, out, "mean", "file systems have no known solution")
			assert.Contains(t, out, "residual")
		})
	}
}

func TestIterateCommandInvalidOmega(t *testing.T) {
	out, err := execute(t, "iterate", "--hilbert", "3", "--method", "sor", "--omega", "2")
	require.NoError(t, err)
	assert.Contains(t, out, matrix.StatusInvalidParameter.String())
	assert.NotContains(t, out, "iterations = ")
}

func TestIterateCommandDiverges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "div.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n1 2 1\n3 1 1\n"), 0o600))

	out, err := execute(t, "iterate", "--input", path, "--method", "jacobi")
	require.NoError(t, err)
	assert.Contains(t, out, matrix.StatusNotConverged.String())
	assert.Contains(t, out, "(diverged)")
}

func TestOmegaRange(t *testing.T) {
	sor := omegaRange(1.1, 1.9, 0.1)
	require.Len(t, sor, 9)
	assert.InDelta(t, 1.9, sor[8], 1e-12)

	assert.Len(t, omegaRange(0.01, 0.15, 0.01), 15)
	assert.Equal(t, []float64{1}, omegaRange(1, 1, 0.5))
	assert.Nil(t, omegaRange(1, 2, 0))
	assert.Nil(t, omegaRange(2, 1, 0.1))
}

func TestSweepCommand(t *testing.T) {
	path := dominantFile(t, 5)
	dir := t.TempDir()
	png := filepath.Join(dir, "sor.png")
	html := filepath.Join(dir, "sor.html")

	out, err := execute(t, "sweep", "--input", path, "--from", "1.0", "--to", "1.4", "--step", "0.2",
		"--plot", png, "--html", html)
	require.NoError(t, err)
	assert.Contains(t, out, "omega")
	assert.Contains(t, out, "1.2000")
	assert.Equal(t, 4, strings.Count(out, "\n"), "header plus three factors")

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	page, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(page), "echarts")
}

func TestSweepCommandRejects(t *testing.T) {
	_, err := execute(t, "sweep", "--hilbert", "3", "--method", "jacobi")
	require.Error(t, err)

	_, err = execute(t, "sweep", "--hilbert", "3", "--from", "1.5", "--to", "1.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty omega range")
}

func TestSweepOutOfDomainFactorsAreReported(t *testing.T) {
	out, err := execute(t, "sweep", "--input", dominantFile(t, 4), "--from", "1.8", "--to", "2.2", "--step", "0.2")
	require.NoError(t, err)
	assert.Contains(t, out, matrix.StatusInvalidParameter.String())
}

func TestColorOnlyOnStdout(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, (&runner{out: &buf, color: true}).colorize())
	assert.False(t, (&runner{out: os.Stdout, color: false}).colorize())
	assert.True(t, (&runner{out: os.Stdout, color: true}).colorize())

	out, err := execute(t, "--color", "gauss", "--hilbert", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[", "buffered reports carry no escape codes")
	assert.Contains(t, out, "[gauss/partial]: OK")
}

// failingWriter accepts writes until one contains failOn, then rejects
// everything and counts the further attempts.
type failingWriter struct {
	failOn   string
	written  strings.Builder
	failed   bool
	attempts int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.failed {
		w.attempts++
		return 0, io.ErrClosedPipe
	}
	if strings.Contains(string(p), w.failOn) {
		w.failed = true
		return 0, io.ErrClosedPipe
	}

	return w.written.Write(p)
}

func TestReportStopsOnErrorReportWriteFailure(t *testing.T) {
	sys, err := systems.Hilbert(2)
	require.NoError(t, err)

	w := &failingWriter{failOn: "err["}
	r := &runner{out: w}
	r.report("h2", sys, []float64{1, 1}, matrix.Ones(2), nil, 0)

	require.True(t, w.failed)
	assert.Contains(t, w.written.String(), "x[1]")
	assert.Zero(t, w.attempts, "nothing is written after a failed error report")
}
