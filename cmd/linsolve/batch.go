// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog"
)

const batchLong = `Run every job of a YAML plan in order.

	defaults:
	  hilbert: 6
	  tolerance: 1e-9
	jobs:
	  - name: gauss-total
	    solver: gauss
	    pivot: total
	  - name: sor-1.3
	    solver: iterate
	    method: sor
	    omega: 1.3

Job fields left out inherit from defaults; an explicit value, including
tolerance: 0 or omega: 0, is kept. A job names either input or hilbert.
Relaxed methods (sor, weighted-jacobi) require omega. Numerical failures are reported and the plan continues; setup
failures stop it unless --keep-going is set.`

// Plan is the batch file layout.
type Plan struct {
	Defaults Job   `yaml:"defaults"`
	Jobs     []Job `yaml:"jobs"`
}

// ParsePlan decodes a plan, rejecting unknown keys, and applies defaults.
func ParsePlan(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty plan")
		}
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if len(p.Jobs) == 0 {
		return nil, errors.New("plan has no jobs")
	}
	for i := range p.Jobs {
		p.Jobs[i] = p.Jobs[i].withDefaults(p.Defaults)
		if p.Jobs[i].Name == "" {
			p.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}

	return &p, nil
}

// withDefaults fills zero-valued fields of j from d. A job that names its
// own input or hilbert order keeps it and ignores the default source.
func (j Job) withDefaults(d Job) Job {
	if j.Input == "" && j.Hilbert == 0 {
		j.Input, j.Hilbert = d.Input, d.Hilbert
	}
	if j.Solver == "" {
		j.Solver = d.Solver
	}
	if j.Tolerance == nil {
		j.Tolerance = d.Tolerance
	}
	if j.Pivot == "" {
		j.Pivot = d.Pivot
	}
	if j.Method == "" {
		j.Method = d.Method
	}
	if j.Omega == nil {
		j.Omega = d.Omega
	}
	if j.MaxIter == 0 {
		j.MaxIter = d.MaxIter
	}
	if j.Criterion == "" {
		j.Criterion = d.Criterion
	}
	j.Unchecked = j.Unchecked || d.Unchecked
	j.Inverse = j.Inverse || d.Inverse

	return j
}

// BatchFlags are the flags of the batch subcommand.
type BatchFlags struct {
	File      string
	KeepGoing bool
}

func (f *BatchFlags) AddFlags(c *cobra.Command) {
	c.Flags().StringVarP(&f.File, "filename", "f", "", "plan file (\"-\" reads stdin)")
	c.Flags().BoolVar(&f.KeepGoing, "keep-going", false, "continue after a job fails to set up")
}

// BatchOptions is the validated batch request.
type BatchOptions struct {
	File      string
	KeepGoing bool
	// Fallback is used by jobs that name no source even after defaults.
	Fallback source

	In     io.Reader
	runner *runner
}

func (f *BatchFlags) ToOptions(g *globalFlags, in io.Reader, out io.Writer) *BatchOptions {
	return &BatchOptions{
		File:      f.File,
		KeepGoing: f.KeepGoing,
		Fallback:  source{Input: g.Input, Hilbert: g.Hilbert},
		In:        in,
		runner:    newRunner(g, out),
	}
}

func (o *BatchOptions) Validate() error {
	if o.File == "" {
		return errors.New("--filename is required")
	}

	return nil
}

func (o *BatchOptions) Run() error {
	r := o.In
	if o.File != "-" {
		f, err := os.Open(o.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	plan, err := ParsePlan(r)
	if err != nil {
		return fmt.Errorf("%s: %w", o.File, err)
	}

	var errs []error
	for i, j := range plan.Jobs {
		if i > 0 {
			fmt.Fprintln(o.runner.out)
		}
		j = j.withDefaults(Job{Input: o.Fallback.Input, Hilbert: o.Fallback.Hilbert})
		if err = o.runner.Run(j); err != nil {
			if !o.KeepGoing {
				return err
			}
			klog.Errorf("%v", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewCmdBatch builds "linsolve batch".
func NewCmdBatch(g *globalFlags, out io.Writer) *cobra.Command {
	flags := &BatchFlags{}
	cmd := &cobra.Command{
		Use:   "batch -f PLAN",
		Short: "Run the jobs of a YAML plan",
		Long:  batchLong,
		RunE: func(c *cobra.Command, args []string) error {
			o := flags.ToOptions(g, c.InOrStdin(), out)
			if err := o.Validate(); err != nil {
				return err
			}

			return o.Run()
		},
	}
	flags.AddFlags(cmd)

	return cmd
}
