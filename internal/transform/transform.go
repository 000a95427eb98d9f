/*
Package transform applies the optional per-series stages between extraction
and chart assembly: inversion about a pivot, grouped averaging, and the
cross-file y-axis tracking.
*/
package transform

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"

	"dstatplot/internal/dstat"
)

// Smoothing algorithm names, following the gnuplot vocabulary. Smoothing is
// carried here as configuration and applied by the renderer.
const (
	SmoothBezier   = "bezier"
	SmoothSBezier  = "sbezier"
	SmoothCsplines = "csplines"
	SmoothUnique   = "unique"
)

// SmoothingOptions lists the accepted smoothing algorithm names.
var SmoothingOptions = []string{SmoothBezier, SmoothSBezier, SmoothCsplines, SmoothUnique}

// DefaultAxisMax is the y-axis ceiling used when neither an explicit max
// nor an inversion pivot is in play. It suits percentage-scaled dstat
// columns with a little headroom.
const DefaultAxisMax = 105.0

// InvalidConfigError reports transform configuration that cannot be
// applied, e.g., an unrecognized smoothing algorithm or a non-positive
// group size.
type InvalidConfigError struct {
	Detail string
}

func (e *InvalidConfigError) Error() string {
	return "invalid transform configuration: " + e.Detail
}

// Config is the validated, immutable transform state for one run.
type Config struct {
	Inverted    bool
	InvertPivot float64
	GroupSize   int    // 0 disables grouped averaging
	Smoothing   string // empty disables smoothing
}

// NewConfig validates and builds a Config. groupSize 0 and smoothing ""
// leave the corresponding stage disabled.
func NewConfig(inverted bool, pivot float64, groupSize int, smoothing string) (Config, error) {
	if groupSize < 0 {
		return Config{}, &InvalidConfigError{Detail: fmt.Sprintf("group size must be a positive integer, got %d", groupSize)}
	}
	if smoothing != "" {
		valid := false
		for _, option := range SmoothingOptions {
			if smoothing == option {
				valid = true
				break
			}
		}
		if !valid {
			return Config{}, &InvalidConfigError{
				Detail: fmt.Sprintf("unknown smoothing algorithm %q, valid options: %s", smoothing, strings.Join(SmoothingOptions, ", ")),
			}
		}
	}
	return Config{Inverted: inverted, InvertPivot: pivot, GroupSize: groupSize, Smoothing: smoothing}, nil
}

// Apply runs the active stages over one series in fixed order: inversion,
// then grouped averaging. A config with no active stages is the identity.
func (c Config) Apply(series dstat.RawSeries) dstat.RawSeries {
	if c.Inverted {
		series = Invert(series, c.InvertPivot)
	}
	if c.GroupSize > 1 {
		series = GroupAverage(series, c.GroupSize)
	}
	return series
}

// Invert replaces every value with its absolute distance from pivot.
// Inverted data is bounded by the pivot for inputs within [0, 2*pivot], so
// the axis policy pins the y max to the pivot when inversion is active.
func Invert(series dstat.RawSeries, pivot float64) dstat.RawSeries {
	out := dstat.RawSeries{
		Timestamps:  series.Timestamps,
		Values:      make([]float64, len(series.Values)),
		SourceLabel: series.SourceLabel,
	}
	for i, value := range series.Values {
		distance := value - pivot
		if distance < 0 {
			distance = -distance
		}
		out.Values[i] = distance
	}
	return out
}

// GroupAverage decimates a series into consecutive groups of size samples,
// averaging timestamps and values independently per group. The final
// partial group, if any, is averaged over its actual size, so an n-sample
// series yields ceil(n/size) points. Time ordering is preserved.
func GroupAverage(series dstat.RawSeries, size int) dstat.RawSeries {
	if size <= 1 {
		return series
	}
	out := dstat.RawSeries{SourceLabel: series.SourceLabel}
	for start := 0; start < series.Len(); start += size {
		end := start + size
		if end > series.Len() {
			end = series.Len()
		}
		var timeSum, valueSum float64
		for i := start; i < end; i++ {
			timeSum += series.Timestamps[i]
			valueSum += series.Values[i]
		}
		count := float64(end - start)
		out.Timestamps = append(out.Timestamps, timeSum/count)
		out.Values = append(out.Values, valueSum/count)
	}
	return out
}
