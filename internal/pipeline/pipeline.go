/*
Package pipeline runs the extract → transform → assemble → render sequence
over a set of input files. Files are processed one at a time in a
deterministic order; the cross-file state (running axis max, sticky
autoscale flag, first-file title) is folded with explicit accumulators.
*/
package pipeline

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dstatplot/internal/chart"
	"dstatplot/internal/dstat"
	"dstatplot/internal/progress"
	"dstatplot/internal/transform"
	"dstatplot/internal/util"
)

// Request describes one chart to produce.
type Request struct {
	Inputs        []string // CSV files and/or directories to scan
	Ref           dstat.ColumnRef
	Expr          string // non-empty selects expression mode over Ref.Category's fields
	Transforms    transform.Config
	ExplicitTitle string
	YAxisMax      float64
	YAxisMaxSet   bool
	NoLegend      bool
	DryRun        bool
	Format        string // chart.FormatPNG or chart.FormatXLSX
	Output        string // explicit output path, may name an existing directory
	TargetDir     string // default output directory
}

// Result reports what a run produced.
type Result struct {
	Dataset    chart.Dataset
	OutputPath string
	FileCount  int
}

// Run executes the pipeline for one request. The first failing file aborts
// the run; a single malformed file would invalidate the whole comparative
// chart.
func Run(req Request) (Result, error) {
	files, err := ExpandInputs(req.Inputs)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		return Result{}, fmt.Errorf("%w: no CSV files found in %s", chart.ErrNoData, strings.Join(req.Inputs, ", "))
	}
	prog := progress.NewPrinter(len(files))
	defer prog.Done()
	tracker := transform.NewAxisTracker(req.YAxisMax, req.YAxisMaxSet, req.Transforms)
	var series []dstat.RawSeries
	var title string
	columnIndex := -1
	for i, path := range files {
		prog.Update(i+1, filepath.Base(path), "extracting")
		file, err := dstat.Load(path)
		if err != nil {
			return Result{}, err
		}
		var s dstat.RawSeries
		if req.Expr != "" {
			s, err = file.ExtractExpr(req.Ref.Category, req.Expr)
		} else {
			if columnIndex < 0 {
				// resolve against the first file only; overlaid files reuse
				// the same raw index so their columns stay aligned
				if columnIndex, err = file.Schema.Resolve(req.Ref); err != nil {
					return Result{}, err
				}
				if !req.Ref.ByIndex {
					columnIndex = dstat.DataColumn(columnIndex)
				}
			}
			s, err = file.Extract(columnIndex)
		}
		if err != nil {
			return Result{}, err
		}
		s = req.Transforms.Apply(s)
		tracker.Observe(s)
		if i == 0 {
			title = chart.BuildTitle(req.Prefix(), req.Transforms, file.Metadata, req.ExplicitTitle)
		}
		series = append(series, s)
		prog.Update(i+1, filepath.Base(path), fmt.Sprintf("%d samples", s.Len()))
		slog.Debug("extracted series", slog.String("file", path), slog.Int("samples", s.Len()))
	}
	dataset, err := chart.Assemble(series, title, tracker.Max(), tracker.Autoscale())
	if err != nil {
		return Result{}, err
	}
	result := Result{
		Dataset:    dataset,
		OutputPath: chart.DerivePath(req.Output, req.basename(), req.TargetDir),
		FileCount:  len(files),
	}
	if req.DryRun {
		slog.Info("dry run, skipping render", slog.String("wouldWrite", result.OutputPath))
		return result, nil
	}
	switch req.Format {
	case chart.FormatXLSX:
		err = chart.RenderXLSX(dataset, result.OutputPath)
	default:
		opts := chart.RenderOptions{
			XLabel:    "elapsed time (s)",
			YLabel:    req.Prefix(),
			NoLegend:  req.NoLegend,
			Smoothing: req.Transforms.Smoothing,
		}
		err = chart.RenderPNG(dataset, opts, result.OutputPath)
	}
	if err != nil {
		return Result{}, err
	}
	slog.Info("rendered chart", slog.String("path", result.OutputPath), slog.Int("series", len(dataset.Series)))
	return result, nil
}

// Prefix is the human-readable column selector used in titles and axis
// labels: "<category>-<field>", "column <index>", or
// "<category>-<expression>".
func (r Request) Prefix() string {
	if r.Expr != "" {
		return fmt.Sprintf("%s-%s", r.Ref.Category, strings.ReplaceAll(r.Expr, " ", ""))
	}
	if r.Ref.ByIndex {
		return fmt.Sprintf("column %d", r.Ref.Index)
	}
	return fmt.Sprintf("%s-%s", r.Ref.Category, r.Ref.Field)
}

func (r Request) basename() string {
	format := r.Format
	if format == "" {
		format = chart.FormatPNG
	}
	if r.Expr != "" {
		return chart.ExprBasename(r.Ref.Category, r.Expr, format)
	}
	return chart.Basename(r.Ref, format)
}

// ExpandInputs resolves the command-line inputs to an ordered file list:
// directories are scanned (non-recursively) for .csv files in
// lexicographic order, explicit files keep their command-line order.
func ExpandInputs(inputs []string) (files []string, err error) {
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("input not found: %s", input)
			}
			return nil, err
		}
		if info.IsDir() {
			found, err := util.SortedCsvFiles(input)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		files = append(files, input)
	}
	return files, nil
}
