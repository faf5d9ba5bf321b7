// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"k8s.io/klog"

	"github.com/katalvlaran/linsolve/diag"
	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// Solver names accepted by Job.Solver.
const (
	solverGauss   = "gauss"
	solverLU      = "lu"
	solverIterate = "iterate"
)

// Job is one fully described solver run. Subcommands fill it from flags,
// batch plans from YAML.
type Job struct {
	Name    string `yaml:"name"`
	Solver  string `yaml:"solver"`
	Input   string `yaml:"input,omitempty"`
	Hilbert int    `yaml:"hilbert,omitempty"`

	// Tolerance and Omega are pointers so that an explicit 0 in a plan is
	// kept instead of being replaced by a default.
	Tolerance *float64 `yaml:"tolerance,omitempty"`

	Pivot     string `yaml:"pivot,omitempty"`
	Unchecked bool   `yaml:"unchecked,omitempty"`

	Inverse bool `yaml:"inverse,omitempty"`

	Method    string   `yaml:"method,omitempty"`
	Omega     *float64 `yaml:"omega,omitempty"`
	MaxIter   int      `yaml:"maxIter,omitempty"`
	Criterion string   `yaml:"criterion,omitempty"`
}

func (j Job) source() source { return source{Input: j.Input, Hilbert: j.Hilbert} }

func (j Job) label() string {
	if j.Name != "" {
		return j.Name
	}

	return fmt.Sprintf("%s %s", j.Solver, j.source())
}

// Validate checks the fields the chosen solver reads.
func (j Job) Validate() error {
	if err := j.source().validate(); err != nil {
		return err
	}
	if j.Tolerance != nil && *j.Tolerance < 0 {
		return fmt.Errorf("tolerance %g must be >= 0", *j.Tolerance)
	}

	switch strings.ToLower(j.Solver) {
	case solverGauss:
		if j.Pivot != "" {
			if _, err := gauss.ParsePivoting(j.Pivot); err != nil {
				return err
			}
		}
	case solverLU:
	case solverIterate:
		m, err := iterative.ParseMethod(j.Method)
		if err != nil {
			return err
		}
		if m.Relaxed() && j.Omega == nil {
			return fmt.Errorf("method %s needs omega", m)
		}
		if j.Criterion != "" {
			if _, err := iterative.ParseCriterion(j.Criterion); err != nil {
				return err
			}
		}
		if j.MaxIter < 0 {
			return fmt.Errorf("maxIter %d must be >= 0", j.MaxIter)
		}
	default:
		return fmt.Errorf("unknown solver %q (want gauss, lu or iterate)", j.Solver)
	}

	return nil
}

// runner executes jobs and writes their reports.
type runner struct {
	out       io.Writer
	color     bool
	tolerance float64
}

func newRunner(g *globalFlags, out io.Writer) *runner {
	return &runner{out: out, color: g.Color, tolerance: g.Tolerance}
}

// Run loads the job's system, solves it and reports the outcome. Numerical
// outcomes (singular, not converged, ...) are reported, not returned; only
// setup failures produce an error.
func (r *runner) Run(j Job) error {
	if err := j.Validate(); err != nil {
		return fmt.Errorf("%s: %w", j.label(), err)
	}
	sys, exact, err := j.source().load()
	if err != nil {
		return fmt.Errorf("%s: %w", j.label(), err)
	}
	if j.Tolerance == nil {
		tol := r.tolerance
		j.Tolerance = &tol
	}
	klog.V(1).Infof("running %s on %s (n=%d, tol=%g)", j.Solver, j.source(), sys.Order(), *j.Tolerance)

	x := make([]float64, sys.Order())
	switch strings.ToLower(j.Solver) {
	case solverGauss:
		err = r.runGauss(j, sys, x, exact)
	case solverLU:
		err = r.runLU(j, sys, x, exact)
	default:
		err = r.runIterate(j, sys, x, exact)
	}
	if matrix.StatusOf(err) == matrix.StatusFailed {
		return fmt.Errorf("%s: %w", j.label(), err)
	}

	return nil
}

func (r *runner) runGauss(j Job, sys *matrix.Augmented, x, exact []float64) error {
	opts := gauss.DefaultOptions()
	opts.Tolerance = *j.Tolerance
	opts.SkipPivotCheck = j.Unchecked
	if j.Pivot != "" {
		opts.Pivoting, _ = gauss.ParsePivoting(j.Pivot)
	}

	start := time.Now()
	err := gauss.Solve(sys.Clone(), x, opts)
	elapsed := time.Since(start)
	if err != nil {
		x = nil
	}

	r.report(fmt.Sprintf("%s [gauss/%s]", j.label(), opts.Pivoting), sys, x, exact, err, elapsed)

	return err
}

func (r *runner) runLU(j Job, sys *matrix.Augmented, x, exact []float64) error {
	start := time.Now()
	tol := *j.Tolerance
	unstable, err := lu.SolveSystem(sys, x, tol)
	elapsed := time.Since(start)

	r.report(j.label()+" [lu]", sys, x, exact, err, elapsed)
	if err != nil {
		return err
	}
	if unstable {
		klog.Warningf("%s: near-zero pivot (|u_kk| < %g), result may be inaccurate", j.label(), tol)
		fmt.Fprintln(r.out, "warning: near-zero pivot encountered")
	}
	if !j.Inverse {
		return nil
	}

	a := sys.Coefficients()
	f, err := lu.Decompose(a, tol)
	if err != nil {
		return err
	}
	inv, _, err := f.Inverse(tol)
	if err != nil {
		return err
	}
	_, dev, err := diag.IdentityDeviation(a, inv)
	if err != nil {
		return err
	}
	if err = diag.WriteMatrix(r.out, "inverse", inv); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "det = %.10g\n", f.Determinant())
	fmt.Fprintf(r.out, "max |A·A⁻¹ − I| = %.3e\n", dev)
	if cond, cerr := diag.ConditionNumber(a); cerr == nil {
		fmt.Fprintf(r.out, "cond∞ ≈ %.3e\n", cond)
	} else {
		klog.V(1).Infof("condition number unavailable: %v", cerr)
	}

	return nil
}

func (r *runner) runIterate(j Job, sys *matrix.Augmented, x, exact []float64) error {
	method, _ := iterative.ParseMethod(j.Method)
	opts := iterative.DefaultOptions()
	opts.Tolerance = *j.Tolerance
	opts.MaxIterations = defaultMaxIter
	if j.MaxIter > 0 {
		opts.MaxIterations = j.MaxIter
	}
	if j.Criterion != "" {
		opts.Criterion, _ = iterative.ParseCriterion(j.Criterion)
	}
	if klog.V(2) {
		opts.OnSweep = func(s iterative.Sweep) {
			klog.Infof("%s sweep %d: norm=%.6e change=%.3e", method, s.Iteration, s.Norm, s.Change)
		}
	}

	start := time.Now()
	omega := 1.0
	if j.Omega != nil {
		omega = *j.Omega
	}
	res, err := iterative.Solve(sys, x, method, omega, opts)
	elapsed := time.Since(start)

	label := fmt.Sprintf("%s [%s]", j.label(), method)
	if method.Relaxed() {
		label = fmt.Sprintf("%s [%s ω=%g]", j.label(), method, omega)
	}
	if errors.Is(err, matrix.ErrInvalidParameter) || errors.Is(err, matrix.ErrSingular) {
		r.report(label, sys, nil, nil, err, elapsed)
		return err
	}
	r.report(label, sys, x, exact, err, elapsed)
	fmt.Fprintf(r.out, "iterations = %d", res.Iterations)
	if res.Diverged {
		fmt.Fprint(r.out, " (diverged)")
	}
	fmt.Fprintln(r.out)

	return err
}
