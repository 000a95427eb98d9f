package transform

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import "dstatplot/internal/dstat"

// AxisTracker folds per-file value ranges into the y-axis policy. The
// tracked max grows monotonically and the autoscale flag only ever moves
// toward true; neither resets between files.
//
// Policy, in precedence order:
//   - caller supplied an explicit max: the max is fixed and values beyond
//     it set the autoscale flag (the max itself is never recomputed)
//   - inversion is active: the max is pinned to the pivot
//   - otherwise: running max over all observed values, starting from
//     DefaultAxisMax
type AxisTracker struct {
	fixed     bool
	max       float64
	autoscale bool
}

// NewAxisTracker builds the tracker for one run. explicitSet marks that
// explicitMax was supplied by the caller.
func NewAxisTracker(explicitMax float64, explicitSet bool, cfg Config) *AxisTracker {
	switch {
	case explicitSet:
		return &AxisTracker{fixed: true, max: explicitMax}
	case cfg.Inverted:
		return &AxisTracker{fixed: true, max: cfg.InvertPivot}
	default:
		return &AxisTracker{max: DefaultAxisMax}
	}
}

// Observe folds one post-transform series into the tracker.
func (t *AxisTracker) Observe(series dstat.RawSeries) {
	for _, value := range series.Values {
		if value <= t.max {
			continue
		}
		if t.fixed {
			t.autoscale = true
		} else {
			t.max = value
		}
	}
}

// Max returns the y-axis max accumulated so far.
func (t *AxisTracker) Max() float64 {
	return t.max
}

// Autoscale reports whether a fixed max was exceeded and the renderer
// should compute its own range.
func (t *AxisTracker) Autoscale() bool {
	return t.autoscale
}
