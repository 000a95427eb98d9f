package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderOptions carries the renderer knobs that are not part of the
// dataset itself.
type RenderOptions struct {
	XLabel    string
	YLabel    string
	NoLegend  bool
	Smoothing string
}

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// RenderPNG draws the dataset as a line chart and writes it to path. Each
// series gets a distinct color/dash pairing and a legend entry labeled with
// its source file. The y range is [0, max] unless the autoscale hint is
// set, in which case the plot computes its own range.
func RenderPNG(ds Dataset, opts RenderOptions, path string) error {
	p := plot.New()
	p.Title.Text = strings.ReplaceAll(ds.Meta.Title, TitleLineBreak, "\n")
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if ds.Meta.Autoscale {
		slog.Debug("axis max exceeded, letting the renderer autoscale", slog.Float64("max", ds.Meta.YAxisMax))
	} else {
		p.Y.Min = 0
		p.Y.Max = ds.Meta.YAxisMax
	}
	p.Add(plotter.NewGrid())
	for i, series := range ds.Series {
		xs, ys := smoothSeries(series.Timestamps, series.Values, opts.Smoothing)
		points := make(plotter.XYs, len(xs))
		for j := range xs {
			points[j].X = xs[j]
			points[j].Y = ys[j]
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", series.SourceLabel, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		if !opts.NoLegend {
			p.Legend.Add(series.SourceLabel, line)
		}
	}
	p.Legend.Top = true
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}
