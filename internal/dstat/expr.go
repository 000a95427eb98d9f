package dstat

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/casbin/govaluate"
)

// ExtractExpr produces a synthetic series by evaluating expression once per
// sample, with the fields of the given category bound as variables, e.g.,
// category "total cpu usage" with expression "usr + sys". The time basis is
// normalized the same way as Extract.
func (f *File) ExtractExpr(category string, expression string) (RawSeries, error) {
	series := RawSeries{SourceLabel: filepath.Base(f.Path)}
	fields, ok := f.Schema.CategoryFields(category)
	if !ok {
		return series, &UnknownCategoryError{Category: category, Valid: f.Schema.CategoryNames()}
	}
	evaluable, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return series, fmt.Errorf("invalid expression %q: %w", expression, err)
	}
	start, err := f.Schema.Resolve(NewFieldRef(category, fields[0]))
	if err != nil {
		return series, err
	}
	if len(f.rows) == 0 {
		return series, nil
	}
	first := DataColumn(start)
	if first+len(fields) > f.width {
		return series, &MalformedCsvError{
			Path:   f.Path,
			Detail: fmt.Sprintf("category %q spans columns %d-%d, file has %d columns", category, first, first+len(fields)-1, f.width),
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
		variables := make(map[string]any, len(fields))
		for i, field := range fields {
			value, err := f.numericCell(row, first+i)
			if err != nil {
				return series, err
			}
			variables[field] = value
		}
		result, err := evaluable.Evaluate(variables)
		if err != nil {
			return series, fmt.Errorf("failed to evaluate %q on row %d of %s: %w", expression, row.num, f.Path, err)
		}
		value, ok := result.(float64)
		if !ok {
			return series, fmt.Errorf("expression %q is not numeric, got %v on row %d of %s", expression, result, row.num, f.Path)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			slog.Debug("expression produced a non-finite value", slog.String("expression", expression), slog.Int("row", row.num))
		}
		series.Timestamps = append(series.Timestamps, timecode-base)
		series.Values = append(series.Values, value)
	}
	return series, nil
}
