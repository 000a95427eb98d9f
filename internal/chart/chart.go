/*
Package chart assembles extracted series into a plot-ready dataset and
renders it to PNG line charts or XLSX workbooks.
*/
package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"strings"

	"dstatplot/internal/dstat"
	"dstatplot/internal/transform"
)

// TitleLineBreak is the escaped line-break marker used inside title
// strings. Titles never carry literal newlines; renderers split on the
// marker.
const TitleLineBreak = `\n`

// ErrNoData is returned when assembly is attempted with no series, i.e.,
// no input files resolved or every file was empty.
var ErrNoData = errors.New("no data to plot")

// Metadata is the shared chart state: one title for all series, the y-axis
// ceiling, and the autoscale hint for the renderer.
type Metadata struct {
	Title     string
	YAxisMax  float64
	Autoscale bool
}

// Dataset is the plot-ready bundle handed to a renderer: one labeled series
// per input file plus the shared metadata. It is never mutated after
// assembly.
type Dataset struct {
	Series []dstat.RawSeries
	Meta   Metadata
}

// Samples returns the total sample count across all series.
func (d Dataset) Samples() int {
	total := 0
	for _, s := range d.Series {
		total += s.Len()
	}
	return total
}

// Assemble packages per-file series and the accumulated metadata into a
// Dataset. Fails with ErrNoData when series is empty.
func Assemble(series []dstat.RawSeries, title string, yAxisMax float64, autoscale bool) (Dataset, error) {
	if len(series) == 0 {
		return Dataset{}, ErrNoData
	}
	return Dataset{
		Series: series,
		Meta:   Metadata{Title: title, YAxisMax: yAxisMax, Autoscale: autoscale},
	}, nil
}

// BuildTitle derives the chart title from the column selector prefix, the
// active transforms, and the first file's preamble metadata. An explicit
// title wins over everything else. Lines are joined with TitleLineBreak.
func BuildTitle(prefix string, cfg transform.Config, meta dstat.FileMetadata, explicit string) string {
	if explicit != "" {
		return explicit
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(" over time")
	if cfg.Smoothing != "" {
		sb.WriteString(" (smoothing: ")
		sb.WriteString(cfg.Smoothing)
		sb.WriteString(")")
	}
	if meta.Present() {
		sb.WriteString(TitleLineBreak)
		sb.WriteString(metadataLine(meta))
	}
	if cfg.Inverted {
		sb.WriteString(TitleLineBreak)
		sb.WriteString("(inverted)")
	}
	return sb.String()
}

func metadataLine(meta dstat.FileMetadata) string {
	var parts []string
	if meta.Host != "" {
		parts = append(parts, "host "+meta.Host)
	}
	if meta.User != "" {
		parts = append(parts, "user "+meta.User)
	}
	if meta.Date != "" {
		parts = append(parts, meta.Date)
	}
	return strings.Join(parts, ", ")
}
