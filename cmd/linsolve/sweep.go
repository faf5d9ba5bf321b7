// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
)

const sweepLong = `Run a relaxed method over a range of relaxation factors and report the
sweep count and time per factor. Defaults cover 1.1..1.9 for sor and
0.01..0.15 for weighted-jacobi.`

// sweepPoint is one relaxation factor's outcome.
type sweepPoint struct {
	Omega      float64
	Iterations int
	Status     matrix.Status
	Elapsed    time.Duration
}

func (p sweepPoint) converged() bool { return p.Status == matrix.StatusOK }

// SweepFlags are the flags of the sweep subcommand.
type SweepFlags struct {
	Method    string
	From      float64
	To        float64
	Step      float64
	MaxIter   int
	Criterion string
	PNG       string
	HTML      string
}

func (f *SweepFlags) AddFlags(c *cobra.Command) {
	c.Flags().StringVarP(&f.Method, "method", "m", "sor", "relaxed method: sor or weighted-jacobi")
	c.Flags().Float64Var(&f.From, "from", 0, "first omega (method default when unset)")
	c.Flags().Float64Var(&f.To, "to", 0, "last omega (method default when unset)")
	c.Flags().Float64Var(&f.Step, "step", 0, "omega increment (method default when unset)")
	c.Flags().IntVar(&f.MaxIter, "max-iter", defaultMaxIter, "sweep budget per omega")
	c.Flags().StringVar(&f.Criterion, "criterion", "norm", "convergence measure: norm or displacement")
	c.Flags().StringVar(&f.PNG, "plot", "", "write an iterations-vs-omega PNG to this path")
	c.Flags().StringVar(&f.HTML, "html", "", "write an interactive iterations-vs-omega HTML page to this path")
}

// SweepOptions is the validated sweep request.
type SweepOptions struct {
	Source    source
	Method    iterative.Method
	Omegas    []float64
	Iter      iterative.Options
	PNG, HTML string

	Out io.Writer
}

func (f *SweepFlags) ToOptions(g *globalFlags, out io.Writer) (*SweepOptions, error) {
	m, err := iterative.ParseMethod(f.Method)
	if err != nil {
		return nil, err
	}
	if !m.Relaxed() {
		return nil, fmt.Errorf("method %s has no relaxation factor", m)
	}
	crit, err := iterative.ParseCriterion(f.Criterion)
	if err != nil {
		return nil, err
	}

	from, to, step := 1.1, 1.9, 0.1
	if m == iterative.WeightedJacobi {
		from, to, step = 0.01, 0.15, 0.01
	}
	if f.From != 0 {
		from = f.From
	}
	if f.To != 0 {
		to = f.To
	}
	if f.Step != 0 {
		step = f.Step
	}

	iter := iterative.DefaultOptions()
	iter.Tolerance = g.Tolerance
	iter.MaxIterations = f.MaxIter
	iter.Criterion = crit

	return &SweepOptions{
		Source: source{Input: g.Input, Hilbert: g.Hilbert},
		Method: m,
		Omegas: omegaRange(from, to, step),
		Iter:   iter,
		PNG:    f.PNG,
		HTML:   f.HTML,
		Out:    out,
	}, nil
}

// omegaRange returns from, from+step, ... up to to inclusive. Values are
// computed as from + k·step to avoid accumulating rounding.
func omegaRange(from, to, step float64) []float64 {
	if !(step > 0) || to < from {
		return nil
	}
	count := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, count)
	for k := range out {
		out[k] = from + float64(k)*step
	}

	return out
}

func (o *SweepOptions) Validate() error {
	if err := o.Source.validate(); err != nil {
		return err
	}
	if len(o.Omegas) == 0 {
		return errors.New("empty omega range (need step > 0 and from <= to)")
	}
	if o.Iter.MaxIterations < 1 {
		return fmt.Errorf("--max-iter %d must be positive", o.Iter.MaxIterations)
	}

	return nil
}

// Run solves the system once per omega. Factors outside (0,2) are reported
// as invalid parameters rather than aborting the sweep.
func (o *SweepOptions) Run() error {
	sys, _, err := o.Source.load()
	if err != nil {
		return err
	}

	points := make([]sweepPoint, 0, len(o.Omegas))
	x := make([]float64, sys.Order())
	for _, omega := range o.Omegas {
		start := time.Now()
		res, serr := iterative.Solve(sys, x, o.Method, omega, o.Iter)
		pt := sweepPoint{Omega: omega, Iterations: res.Iterations, Status: matrix.StatusOf(serr), Elapsed: time.Since(start)}
		if pt.Status == matrix.StatusFailed {
			return serr
		}
		klog.V(1).Infof("%s ω=%.4f: %d sweeps, %s", o.Method, omega, pt.Iterations, pt.Status)
		points = append(points, pt)
	}

	if err = writeSweepTable(o.Out, points); err != nil {
		return err
	}

	title := fmt.Sprintf("%s on %s", o.Method, o.Source)
	if o.PNG != "" {
		if err = writeSweepPNG(o.PNG, title, points); err != nil {
			return fmt.Errorf("writing %s: %w", o.PNG, err)
		}
		klog.Infof("wrote %s", o.PNG)
	}
	if o.HTML != "" {
		if err = writeSweepHTMLFile(o.HTML, title, points); err != nil {
			return fmt.Errorf("writing %s: %w", o.HTML, err)
		}
		klog.Infof("wrote %s", o.HTML)
	}

	return nil
}

func writeSweepTable(w io.Writer, points []sweepPoint) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "omega\titerations\tstatus\telapsed")
	for _, p := range points {
		fmt.Fprintf(tw, "%.4f\t%d\t%s\t%s\n", p.Omega, p.Iterations, p.Status, p.Elapsed)
	}

	return tw.Flush()
}

func writeSweepHTMLFile(path, title string, points []sweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = writeSweepHTML(f, title, points); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// NewCmdSweep builds "linsolve sweep".
func NewCmdSweep(g *globalFlags, out io.Writer) *cobra.Command {
	flags := &SweepFlags{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare relaxation factors of sor or weighted-jacobi",
		Long:  sweepLong,
		RunE: func(c *cobra.Command, args []string) error {
			o, err := flags.ToOptions(g, out)
			if err != nil {
				return err
			}
			if err = o.Validate(); err != nil {
				return err
			}

			return o.Run()
		},
	}
	flags.AddFlags(cmd)

	return cmd
}
