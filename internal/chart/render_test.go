package chart

// Copyright (C) 2025 dstatplot authors
/// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dstatplot/internal/dstat"
)

func testDataset(t *testing.T) Dataset {
	t.Helper()
	series := []dstat.RawSeries{
		{Timestamps: []float64{0, 1, 2}, Values: []float64{5, 6, 7}, SourceLabel: "a.csv"},
		{Timestamps: []float64{0, 1, 2}, Values: []float64{8, 9, 10}, SourceLabel: "b.csv"},
	}
	ds, err := Assemble(series, "cpu-sys over time", 105.0, false)
	require.NoError(t, err)
	return ds
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	opts := RenderOptions{XLabel: "elapsed time (s)", YLabel: "cpu-sys"}
	err := RenderPNG(testDataset(t), opts, path)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderPNGMultilineTitle(t *testing.T) {
	ds := testDataset(t)
	ds.Meta.Title = `cpu-sys over time\nhost gandalf\n(inverted)`
	path := filepath.Join(t.TempDir(), "chart.png")
	err := RenderPNG(ds, RenderOptions{NoLegend: true, Smoothing: "bezier"}, path)
	require.NoError(t, err)
}

func TestRenderXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	require.NoError(t, RenderXLSX(testDataset(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	title, err := f.GetCellValue(xlsxSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "cpu-sys over time", title)
	header, err := f.GetCellValue(xlsxSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "a.csv", header)
	value, err := f.GetCellValue(xlsxSheetName, "D5")
	require.NoError(t, err)
	assert.Equal(t, "10", value)
}
