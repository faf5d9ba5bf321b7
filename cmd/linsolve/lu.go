// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
)

// LUFlags are the flags of the lu subcommand.
type LUFlags struct {
	Inverse bool
}

func (f *LUFlags) AddFlags(c *cobra.Command) {
	c.Flags().BoolVar(&f.Inverse, "inverse", false, "also print A⁻¹, det(A), the identity deviation and cond∞(A)")
}

func (f *LUFlags) ToOptions(g *globalFlags, out io.Writer) *jobOptions {
	return newJobOptions(g, out, Job{Solver: solverLU, Inverse: f.Inverse})
}

// NewCmdLU builds "linsolve lu".
func NewCmdLU(g *globalFlags, out io.Writer) *cobra.Command {
	flags := &LUFlags{}
	cmd := &cobra.Command{
		Use:   "lu",
		Short: "Doolittle LU factorization (no pivoting)",
		Long:  "Factor A = L·U, solve by forward and backward substitution and optionally invert A column by column.",
		RunE:  runJob(func() *jobOptions { return flags.ToOptions(g, out) }),
	}
	flags.AddFlags(cmd)

	return cmd
}
