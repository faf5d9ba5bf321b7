// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
)

// jobOptions is the validated form shared by the single-run subcommands.
type jobOptions struct {
	Job    Job
	runner *runner
}

func newJobOptions(g *globalFlags, out io.Writer, j Job) *jobOptions {
	j.Input, j.Hilbert = g.Input, g.Hilbert
	return &jobOptions{Job: j, runner: newRunner(g, out)}
}

func (o *jobOptions) Validate() error {
	return o.Job.Validate()
}

func (o *jobOptions) Run() error {
	return o.runner.Run(o.Job)
}

// runJob is the RunE body of the single-run subcommands.
func runJob(toOptions func() *jobOptions) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		o := toOptions()
		if err := o.Validate(); err != nil {
			return err
		}

		return o.Run()
	}
}
