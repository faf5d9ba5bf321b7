// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errNothingToPlot = errors.New("no converged run to plot")

// writeSweepPNG plots iterations against omega for the converged points.
func writeSweepPNG(path, title string, points []sweepPoint) error {
	xys := make(plotter.XYs, 0, len(points))
	for _, p := range points {
		if p.converged() {
			xys = append(xys, plotter.XY{X: p.Omega, Y: float64(p.Iterations)})
		}
	}
	if len(xys) == 0 {
		return errNothingToPlot
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "ω"
	p.Y.Label.Text = "iterations"

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), line, scatter)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// writeSweepHTML renders the same curve as an echarts page. Runs that did
// not converge leave a gap.
func writeSweepHTML(w io.Writer, title string, points []sweepPoint) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "sweeps to converge per relaxation factor"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "omega"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "iterations", Scale: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xs := make([]string, len(points))
	ys := make([]opts.LineData, len(points))
	for i, p := range points {
		xs[i] = fmt.Sprintf("%.4f", p.Omega)
		if p.converged() {
			ys[i] = opts.LineData{Value: p.Iterations}
		} else {
			ys[i] = opts.LineData{Value: "-"}
		}
	}
	line.SetXAxis(xs).AddSeries("iterations", ys)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(line)

	return page.Render(w)
}
