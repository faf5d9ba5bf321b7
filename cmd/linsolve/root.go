// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/sysio"
	"github.com/katalvlaran/linsolve/systems"
)

// Defaults of the persistent flags.
const (
	defaultTolerance = 1e-7
	defaultMaxIter   = 100000
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	Input     string
	Hilbert   int
	Tolerance float64
	Color     bool
}

// NewLinsolveCommand builds the root command writing reports to out.
func NewLinsolveCommand(out io.Writer) *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "linsolve",
		Short:         "Dense direct and iterative linear-system solvers",
		Long:          "Solve [A|b] by Gauss elimination, LU factorization or fixed-point iteration and report accuracy and timing.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&g.Input, "input", "i", "", "read the system from a text file (order, then n rows of n+1 numbers)")
	cmd.PersistentFlags().IntVar(&g.Hilbert, "hilbert", 0, "use the Hilbert system of this order (exact solution all ones)")
	cmd.PersistentFlags().Float64Var(&g.Tolerance, "tol", defaultTolerance, "pivot / diagonal / convergence tolerance")
	cmd.PersistentFlags().BoolVar(&g.Color, "color", false, "colorize status lines (only when reports go to stdout)")

	cmd.AddCommand(
		NewCmdGauss(g, out),
		NewCmdLU(g, out),
		NewCmdIterate(g, out),
		NewCmdSweep(g, out),
		NewCmdBatch(g, out),
	)

	return cmd
}

// source names where the system comes from.
type source struct {
	Input   string
	Hilbert int
}

func (s source) validate() error {
	switch {
	case s.Input != "" && s.Hilbert > 0:
		return errors.New("--input and --hilbert are mutually exclusive")
	case s.Input == "" && s.Hilbert <= 0:
		return errors.New("one of --input or --hilbert N (N > 0) is required")
	}

	return nil
}

// load returns the system and, for Hilbert systems, the exact solution.
func (s source) load() (*matrix.Augmented, []float64, error) {
	if err := s.validate(); err != nil {
		return nil, nil, err
	}
	if s.Hilbert > 0 {
		sys, err := systems.Hilbert(s.Hilbert)
		if err != nil {
			return nil, nil, err
		}

		return sys, matrix.Ones(s.Hilbert), nil
	}
	sys, err := sysio.ReadFile(s.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("loading system: %w", err)
	}

	return sys, nil, nil
}

func (s source) String() string {
	if s.Hilbert > 0 {
		return fmt.Sprintf("hilbert(%d)", s.Hilbert)
	}

	return s.Input
}
