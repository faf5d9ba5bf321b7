// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
)

const gaussLong = `Solve the system by Gauss elimination and back substitution.

Pivoting strategies: none, partial, scaled, total. With --unchecked the
near-zero pivot test is skipped and elimination proceeds on whatever pivot
the strategy selected.`

// GaussFlags are the flags of the gauss subcommand.
type GaussFlags struct {
	Pivot     string
	Unchecked bool
}

func (f *GaussFlags) AddFlags(c *cobra.Command) {
	c.Flags().StringVarP(&f.Pivot, "pivot", "p", "partial", "pivoting strategy: none, partial, scaled or total")
	c.Flags().BoolVar(&f.Unchecked, "unchecked", false, "skip the near-zero pivot check")
}

func (f *GaussFlags) ToOptions(g *globalFlags, out io.Writer) *jobOptions {
	return newJobOptions(g, out, Job{Solver: solverGauss, Pivot: f.Pivot, Unchecked: f.Unchecked})
}

// NewCmdGauss builds "linsolve gauss".
func NewCmdGauss(g *globalFlags, out io.Writer) *cobra.Command {
	flags := &GaussFlags{}
	cmd := &cobra.Command{
		Use:   "gauss",
		Short: "Gauss elimination with a selectable pivoting strategy",
		Long:  gaussLong,
		RunE:  runJob(func() *jobOptions { return flags.ToOptions(g, out) }),
	}
	flags.AddFlags(cmd)

	return cmd
}
