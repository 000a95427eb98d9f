package dstat

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// preamble layout, row numbers are zero-indexed:
	// rows 0-4 metadata ("Host:" marker on row 0, "Cmdline:" with a trailing
	// date token further down), row 5 categories, row 6 fields, data from 7.
	// Without the preamble the header pair sits at rows 0 and 1.
	preambleMetadataRows = 5

	hostMarker    = "Host:"
	cmdlineMarker = "Cmdline:"

	// positions within the "Host:" row
	hostCell = 1
	userCell = 6
)

// FileMetadata holds the host/user/date/command-line strings captured from a
// file's preamble. All fields are empty when the file has no preamble.
type FileMetadata struct {
	Host    string
	User    string
	Date    string
	Cmdline string
}

// Present reports whether any preamble metadata was captured.
func (m FileMetadata) Present() bool {
	return m.Host != "" || m.User != "" || m.Date != "" || m.Cmdline != ""
}

// RawSeries is one extracted time series: elapsed seconds since the file's
// first sample paired with the column's numeric values. Timestamps and
// Values are always the same length. SourceLabel is the file basename and
// becomes the series' legend label.
type RawSeries struct {
	Timestamps  []float64
	Values      []float64
	SourceLabel string
}

// Len returns the number of samples in the series.
func (s RawSeries) Len() int {
	return len(s.Values)
}

type dataRow struct {
	num   int // 1-based row number in the file, for error reporting
	cells []string
}

// File is one parsed CSV log, ready for column extraction.
type File struct {
	Path     string
	Schema   Schema
	Metadata FileMetadata
	rows     []dataRow
	width    int
}

// Load reads and parses one dstat CSV file: preamble detection and metadata
// capture, header schema, and data rows. Data rows must all have the same
// number of cells so they can be transposed into column series.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	records := make([][]string, len(lines))
	for i, line := range lines {
		var record []string
		if record, err = parseRow(line); err != nil {
			return nil, &MalformedCsvError{Path: path, Row: i + 1, Detail: err.Error()}
		}
		records[i] = record
	}
	f := &File{Path: path}
	headerRow := 0
	if len(records) > 0 && len(records[0]) > 0 && strings.HasPrefix(records[0][0], hostMarker) {
		f.Metadata = parseMetadata(records[:min(preambleMetadataRows, len(records))])
		headerRow = preambleMetadataRows
	}
	if len(records) <= headerRow+1 || len(records[headerRow+1]) == 0 {
		return nil, &MalformedCsvError{Path: path, Detail: "missing header rows"}
	}
	f.Schema = NewSchema(records[headerRow], records[headerRow+1])
	for i := headerRow + 2; i < len(records); i++ {
		if len(records[i]) == 0 {
			continue
		}
		if len(f.rows) == 0 {
			f.width = len(records[i])
		} else if len(records[i]) != f.width {
			return nil, &MalformedCsvError{
				Path:   path,
				Row:    i + 1,
				Detail: fmt.Sprintf("row has %d fields, expected %d", len(records[i]), f.width),
			}
		}
		f.rows = append(f.rows, dataRow{num: i + 1, cells: records[i]})
	}
	return f, nil
}

// DataColumn maps a schema position to its raw data-row column. The time
// basis occupies raw column 0 and is not labeled by the header, so labeled
// columns start one position later.
func DataColumn(schemaIndex int) int {
	return schemaIndex + 1
}

// Extract produces the series for one raw column. Column 0 of every data
// row is the time basis; elapsed time is each row's first cell minus the
// first row's first cell, so the series always starts at 0.0.
func (f *File) Extract(columnIndex int) (RawSeries, error) {
	series := RawSeries{SourceLabel: filepath.Base(f.Path)}
	if len(f.rows) == 0 {
		return series, nil
	}
	if columnIndex < 0 || columnIndex >= f.width {
		return series, &MalformedCsvError{
			Path:   f.Path,
			Detail: fmt.Sprintf("column index %d out of range, file has %d columns", columnIndex, f.width),
		}
	}
	base, err := f.numericCell(f.rows[0], 0)
	if err != nil {
		return series, err
	}
	for _, row := range f.rows {
		timecode, err := f.numericCell(row, 0)
		if err != nil {
			return series, err
		}
		value, err := f.numericCell(row, columnIndex)
		if err != nil {
			return series, err
		}
		series.Timestamps = append(series.Timestamps, timecode-base)
		series.Values = append(series.Values, value)
	}
	return series, nil
}

// Samples returns the number of data rows in the file.
func (f *File) Samples() int {
	return len(f.rows)
}

// Columns returns the data-row width.
func (f *File) Columns() int {
	return f.width
}

func (f *File) numericCell(row dataRow, col int) (float64, error) {
	value, err := strconv.ParseFloat(row.cells[col], 64)
	if err != nil {
		return 0, &MalformedCsvError{
			Path:   f.Path,
			Row:    row.num,
			Detail: fmt.Sprintf("cannot parse %q as a number", row.cells[col]),
		}
	}
	return value, nil
}

// parseRow parses one physical line as CSV. Blank lines yield a nil record.
func parseRow(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	return reader.Read()
}

// parseMetadata captures host/user/date/command line from preamble rows.
// Cells are taken opportunistically; rows shorter than expected leave the
// corresponding fields empty.
func parseMetadata(records [][]string) (meta FileMetadata) {
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(record[0], hostMarker):
			if len(record) > hostCell {
				meta.Host = record[hostCell]
			}
			if len(record) > userCell {
				meta.User = record[userCell]
			}
		case strings.HasPrefix(record[0], cmdlineMarker):
			if len(record) > 1 {
				meta.Cmdline = record[1]
			}
			// the date token is the last non-empty cell on the command line row
			for i := len(record) - 1; i >= 2; i-- {
				if record[i] != "" {
					meta.Date = record[i]
					break
				}
			}
		}
	}
	return
}
