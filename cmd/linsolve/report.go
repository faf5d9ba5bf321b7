// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	ct "github.com/daviddengcn/go-colortext"
	"k8s.io/klog"

	"github.com/katalvlaran/linsolve/diag"
	"github.com/katalvlaran/linsolve/matrix"
)

type statusColor struct {
	color  ct.Color
	bright bool
}

var statusColors = map[matrix.Status]statusColor{
	matrix.StatusOK:               {ct.Green, true},
	matrix.StatusSingular:         {ct.Red, true},
	matrix.StatusInconsistent:     {ct.Red, false},
	matrix.StatusNotConverged:     {ct.Yellow, true},
	matrix.StatusInvalidParameter: {ct.Magenta, false},
}

// report prints status, solution, error against exact (when known),
// residual and elapsed time. A nil x prints the status line only.
func (r *runner) report(label string, sys *matrix.Augmented, x, exact []float64, err error, elapsed time.Duration) {
	r.writeStatus(label, err)
	if x == nil {
		return
	}
	if werr := diag.WriteSolution(r.out, "x", x); werr != nil {
		klog.Errorf("writing solution: %v", werr)
		return
	}
	if exact != nil {
		if rep, rerr := diag.RelativeError(x, exact); rerr == nil {
			if werr := diag.WriteErrorReport(r.out, rep); werr != nil {
				klog.Errorf("writing error report: %v", werr)
				return
			}
		}
	}
	if _, res, rerr := diag.Residual(sys, x); rerr == nil {
		fmt.Fprintf(r.out, "residual ‖b − Ax‖∞ = %.3e\n", res)
	}
	fmt.Fprintf(r.out, "elapsed = %s\n", elapsed)
}

// colorize reports whether status lines get colors. go-colortext writes its
// escape codes to os.Stdout, so any other writer stays plain.
func (r *runner) colorize() bool {
	return r.color && r.out == os.Stdout
}

func (r *runner) writeStatus(label string, err error) {
	if r.colorize() {
		c, ok := statusColors[matrix.StatusOf(err)]
		if ok {
			ct.ChangeColor(c.color, c.bright, ct.None, false)
			defer ct.ResetColor()
		}
	}
	if werr := diag.WriteStatus(r.out, label, err); werr != nil {
		klog.Errorf("writing status: %v", werr)
	}
}
