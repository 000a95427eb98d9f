package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dstatplot/internal/dstat"
	"dstatplot/internal/transform"
)

func TestBuildTitle(t *testing.T) {
	withMeta := dstat.FileMetadata{Host: "gandalf", User: "dag", Date: "07 Mar 2021"}
	smoothed, err := transform.NewConfig(false, 0, 0, transform.SmoothBezier)
	assert.NoError(t, err)
	inverted, err := transform.NewConfig(true, 100, 0, "")
	assert.NoError(t, err)
	tests := []struct {
		name     string
		prefix   string
		cfg      transform.Config
		meta     dstat.FileMetadata
		explicit string
		expected string
	}{
		{
			name:     "plain",
			prefix:   "cpu-sys",
			expected: "cpu-sys over time",
		},
		{
			name:     "explicit title wins",
			prefix:   "cpu-sys",
			cfg:      inverted,
			meta:     withMeta,
			explicit: "my chart",
			expected: "my chart",
		},
		{
			name:     "smoothing noted",
			prefix:   "cpu-usr",
			cfg:      smoothed,
			expected: "cpu-usr over time (smoothing: bezier)",
		},
		{
			name:     "metadata second line",
			prefix:   "cpu-usr",
			meta:     withMeta,
			expected: `cpu-usr over time\nhost gandalf, user dag, 07 Mar 2021`,
		},
		{
			name:     "inversion final line",
			prefix:   "cpu-idl",
			cfg:      inverted,
			meta:     withMeta,
			expected: `cpu-idl over time\nhost gandalf, user dag, 07 Mar 2021\n(inverted)`,
		},
		{
			name:     "column prefix",
			prefix:   "column 3",
			expected: "column 3 over time",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildTitle(tt.prefix, tt.cfg, tt.meta, tt.explicit))
		})
	}
}

func TestAssemble(t *testing.T) {
	series := []dstat.RawSeries{
		{Timestamps: []float64{0, 1}, Values: []float64{5, 6}, SourceLabel: "a.csv"},
		{Timestamps: []float64{0, 1}, Values: []float64{7, 8}, SourceLabel: "b.csv"},
	}
	ds, err := Assemble(series, "cpu-sys over time", 105.0, false)
	assert.NoError(t, err)
	assert.Len(t, ds.Series, 2)
	assert.Equal(t, "cpu-sys over time", ds.Meta.Title)
	assert.Equal(t, 105.0, ds.Meta.YAxisMax)
	assert.False(t, ds.Meta.Autoscale)
	assert.Equal(t, 4, ds.Samples())
}

func TestAssembleNoData(t *testing.T) {
	_, err := Assemble(nil, "title", 105.0, false)
	assert.ErrorIs(t, err, ErrNoData)
}
