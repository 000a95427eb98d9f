package transform

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisTrackerRunningMax(t *testing.T) {
	tracker := NewAxisTracker(0, false, Config{})
	assert.Equal(t, DefaultAxisMax, tracker.Max())

	// values below the default leave the max alone
	tracker.Observe(series([]float64{0, 1, 2}, []float64{5, 6, 7}))
	assert.Equal(t, DefaultAxisMax, tracker.Max())
	assert.False(t, tracker.Autoscale())

	// the max grows monotonically across files
	tracker.Observe(series([]float64{0, 1}, []float64{200, 150}))
	assert.Equal(t, 200.0, tracker.Max())
	tracker.Observe(series([]float64{0, 1}, []float64{120, 180}))
	assert.Equal(t, 200.0, tracker.Max())
	assert.False(t, tracker.Autoscale())
}

func TestAxisTrackerExplicitMax(t *testing.T) {
	tracker := NewAxisTracker(50, true, Config{})
	tracker.Observe(series([]float64{0, 1}, []float64{10, 20}))
	assert.Equal(t, 50.0, tracker.Max())
	assert.False(t, tracker.Autoscale())

	// exceeding values set the autoscale flag but never move the max
	tracker.Observe(series([]float64{0, 1}, []float64{60, 10}))
	assert.Equal(t, 50.0, tracker.Max())
	assert.True(t, tracker.Autoscale())

	// the flag is sticky
	tracker.Observe(series([]float64{0}, []float64{1}))
	assert.True(t, tracker.Autoscale())
}

func TestAxisTrackerInversionPinsPivot(t *testing.T) {
	cfg, err := NewConfig(true, 100, 0, "")
	assert.NoError(t, err)
	tracker := NewAxisTracker(0, false, cfg)
	assert.Equal(t, 100.0, tracker.Max())
	tracker.Observe(series([]float64{0, 1}, []float64{30, 90}))
	assert.Equal(t, 100.0, tracker.Max())
	assert.False(t, tracker.Autoscale())
}

func TestAxisTrackerExplicitWinsOverInversion(t *testing.T) {
	cfg, err := NewConfig(true, 100, 0, "")
	assert.NoError(t, err)
	tracker := NewAxisTracker(40, true, cfg)
	assert.Equal(t, 40.0, tracker.Max())
}
