package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dstatplot/internal/transform"
)

func TestSmoothIdentity(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{5, 6, 7}
	outX, outY := smoothSeries(xs, ys, "")
	assert.Equal(t, xs, outX)
	assert.Equal(t, ys, outY)
}

func TestUniquePoints(t *testing.T) {
	xs := []float64{0, 0, 1, 2, 2, 2}
	ys := []float64{10, 20, 5, 3, 6, 9}
	outX, outY := smoothSeries(xs, ys, transform.SmoothUnique)
	assert.Equal(t, []float64{0, 1, 2}, outX)
	assert.Equal(t, []float64{15, 5, 6}, outY)
}

func TestBezierSpansRange(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 10, 0, 10, 0}
	outX, outY := smoothSeries(xs, ys, transform.SmoothBezier)
	assert.Len(t, outX, smoothSamples)
	// a Bezier curve interpolates its endpoints
	assert.InDelta(t, 0.0, outX[0], 1e-9)
	assert.InDelta(t, 0.0, outY[0], 1e-9)
	assert.InDelta(t, 4.0, outX[len(outX)-1], 1e-9)
	assert.InDelta(t, 0.0, outY[len(outY)-1], 1e-9)
	// x stays monotonically non-decreasing for a monotone control polygon
	for i := 1; i < len(outX); i++ {
		assert.GreaterOrEqual(t, outX[i], outX[i-1])
	}
}

func TestCsplinesPassesNearKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 10, 10, 0}
	outX, outY := smoothSeries(xs, ys, transform.SmoothCsplines)
	assert.Len(t, outX, smoothSamples)
	// the resampled curve starts and ends on the original endpoints
	assert.InDelta(t, 0.0, outY[0], 1e-9)
	assert.InDelta(t, 0.0, outY[len(outY)-1], 1e-9)
}

func TestSmoothShortSeriesUnchanged(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{5, 6}
	for _, algorithm := range []string{transform.SmoothBezier, transform.SmoothSBezier, transform.SmoothCsplines} {
		outX, outY := smoothSeries(xs, ys, algorithm)
		assert.Equal(t, xs, outX, algorithm)
		assert.Equal(t, ys, outY, algorithm)
	}
}
