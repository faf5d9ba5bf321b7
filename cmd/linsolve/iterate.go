// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
)

const iterateLong = `Solve the system with a fixed-point method.

Methods: jacobi, gauss-seidel, weighted-jacobi, sor. The relaxed methods
need 0 < omega < 2. Convergence is tested with the norm-drift criterion by
default; --criterion displacement measures ‖xᵏ − xᵏ⁻¹‖∞ / ‖xᵏ‖∞ instead.
Run with -v=2 to log every sweep.`

// IterateFlags are the flags of the iterate subcommand.
type IterateFlags struct {
	Method    string
	Omega     float64
	MaxIter   int
	Criterion string
}

func (f *IterateFlags) AddFlags(c *cobra.Command) {
	c.Flags().StringVarP(&f.Method, "method", "m", "gauss-seidel", "jacobi, gauss-seidel, weighted-jacobi or sor")
	c.Flags().Float64Var(&f.Omega, "omega", 1, "relaxation factor for weighted-jacobi and sor")
	c.Flags().IntVar(&f.MaxIter, "max-iter", defaultMaxIter, "sweep budget")
	c.Flags().StringVar(&f.Criterion, "criterion", "norm", "convergence measure: norm or displacement")
}

func (f *IterateFlags) ToOptions(g *globalFlags, out io.Writer) *jobOptions {
	omega := f.Omega
	return newJobOptions(g, out, Job{
		Solver:    solverIterate,
		Method:    f.Method,
		Omega:     &omega,
		MaxIter:   f.MaxIter,
		Criterion: f.Criterion,
	})
}

// NewCmdIterate builds "linsolve iterate".
func NewCmdIterate(g *globalFlags, out io.Writer) *cobra.Command {
	flags := &IterateFlags{}
	cmd := &cobra.Command{
		Use:   "iterate",
		Short: "Jacobi, Gauss-Seidel and their relaxed variants",
		Long:  iterateLong,
		RunE:  runJob(func() *jobOptions { return flags.ToOptions(g, out) }),
	}
	flags.AddFlags(cmd)

	return cmd
}
