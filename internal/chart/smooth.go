package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"gonum.org/v1/gonum/interp"

	"dstatplot/internal/transform"
)

const (
	// resampled point count for curve-fitting smoothers
	smoothSamples = 512
	// cap on the Bezier control polygon; de Casteljau is quadratic in the
	// number of control points
	maxBezierControl = 256
)

// smoothSeries applies a gnuplot-style smoothing algorithm to one series'
// points before plotting. The empty algorithm is the identity. Series too
// short to fit a curve are returned unchanged.
func smoothSeries(xs []float64, ys []float64, algorithm string) ([]float64, []float64) {
	switch algorithm {
	case transform.SmoothUnique:
		return uniquePoints(xs, ys)
	case transform.SmoothBezier:
		return bezierPoints(xs, ys)
	case transform.SmoothSBezier:
		xs, ys = uniquePoints(xs, ys)
		return bezierPoints(xs, ys)
	case transform.SmoothCsplines:
		return csplinePoints(xs, ys)
	default:
		return xs, ys
	}
}

// uniquePoints collapses runs of equal x values into one point whose y is
// the mean of the run. Assumes xs are non-decreasing, which extraction
// guarantees.
func uniquePoints(xs []float64, ys []float64) ([]float64, []float64) {
	var outX, outY []float64
	for i := 0; i < len(xs); {
		j := i
		sum := 0.0
		for j < len(xs) && xs[j] == xs[i] {
			sum += ys[j]
			j++
		}
		outX = append(outX, xs[i])
		outY = append(outY, sum/float64(j-i))
		i = j
	}
	return outX, outY
}

// csplinePoints resamples the series along a natural cubic spline through
// its points. Duplicate x values are collapsed first since the spline fit
// requires strictly increasing xs.
func csplinePoints(xs []float64, ys []float64) ([]float64, []float64) {
	xs, ys = uniquePoints(xs, ys)
	if len(xs) < 3 {
		return xs, ys
	}
	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return xs, ys
	}
	first := xs[0]
	last := xs[len(xs)-1]
	outX := make([]float64, smoothSamples)
	outY := make([]float64, smoothSamples)
	for i := range outX {
		x := first + (last-first)*float64(i)/float64(smoothSamples-1)
		outX[i] = x
		outY[i] = spline.Predict(x)
	}
	return outX, outY
}

// bezierPoints resamples the series along the Bezier curve whose control
// polygon is the series itself, matching gnuplot's "smooth bezier". Long
// series are decimated to keep de Casteljau evaluation tractable.
func bezierPoints(xs []float64, ys []float64) ([]float64, []float64) {
	if len(xs) < 3 {
		return xs, ys
	}
	if len(xs) > maxBezierControl {
		step := (len(xs) + maxBezierControl - 1) / maxBezierControl
		var dx, dy []float64
		for i := 0; i < len(xs); i += step {
			dx = append(dx, xs[i])
			dy = append(dy, ys[i])
		}
		// keep the original endpoint so the curve spans the full range
		if dx[len(dx)-1] != xs[len(xs)-1] {
			dx = append(dx, xs[len(xs)-1])
			dy = append(dy, ys[len(ys)-1])
		}
		xs, ys = dx, dy
	}
	outX := make([]float64, smoothSamples)
	outY := make([]float64, smoothSamples)
	cx := make([]float64, len(xs))
	cy := make([]float64, len(ys))
	for i := range outX {
		t := float64(i) / float64(smoothSamples-1)
		copy(cx, xs)
		copy(cy, ys)
		// de Casteljau reduction
		for level := len(cx) - 1; level > 0; level-- {
			for j := 0; j < level; j++ {
				cx[j] = cx[j] + t*(cx[j+1]-cx[j])
				cy[j] = cy[j] + t*(cy[j+1]-cy[j])
			}
		}
		outX[i] = cx[0]
		outY[i] = cy[0]
	}
	return outX, outY
}
