// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/linsolve/matrix"
)

// Formatting literals shared by the printers.
const (
	_fmtValue  = "%.10g"
	_fmtIndex  = "%s[%d]"
	_tabMinW   = 0
	_tabWidth  = 8
	_tabPad    = 2
	_tabFiller = ' '
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, _tabMinW, _tabWidth, _tabPad, _tabFiller, 0)
}

// WriteStatus prints "<label>: <status text>" and, when err carries more
// detail than the status text, the error itself.
func WriteStatus(w io.Writer, label string, err error) error {
	s := matrix.StatusOf(err)
	if _, e := fmt.Fprintf(w, "%s: %s\n", label, s); e != nil {
		return e
	}
	if err != nil {
		if _, e := fmt.Fprintf(w, "  cause: %v\n", err); e != nil {
			return e
		}
	}

	return nil
}

// WriteSolution prints one "x[i]  value" line per component.
func WriteSolution(w io.Writer, name string, x []float64) error {
	tw := newTable(w)
	for i, v := range x {
		fmt.Fprintf(tw, _fmtIndex+"\t"+_fmtValue+"\n", name, i, v)
	}

	return tw.Flush()
}

// WriteErrorReport prints the per-component percent errors and the mean/max lines.
func WriteErrorReport(w io.Writer, r ErrorReport) error {
	tw := newTable(w)
	for i, p := range r.Percent {
		fmt.Fprintf(tw, "err[%d]\t%.6e %%\n", i, p)
	}
	fmt.Fprintf(tw, "mean\t%.6e %%\n", r.Mean)
	fmt.Fprintf(tw, "max\t%.6e %%\n", r.Max)

	return tw.Flush()
}

// WriteMatrix prints m row by row in aligned columns under a title line.
func WriteMatrix(w io.Writer, title string, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	tw := newTable(w)
	var (
		v   float64
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("WriteMatrix: %w", err)
			}
			fmt.Fprintf(tw, _fmtValue+"\t", v)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
