package dstat

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"
)

// UnknownCategoryError is returned when a requested category is not present
// in a file's header. Valid holds the distinct non-empty categories in
// column order so callers can show the user what is available.
type UnknownCategoryError struct {
	Category string
	Valid    []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q, valid categories: %s", e.Category, strings.Join(e.Valid, ", "))
}

// UnknownFieldError is returned when a category matched but no field with
// the requested name follows it. Valid holds the distinct non-empty field
// names in column order.
type UnknownFieldError struct {
	Category string
	Field    string
	Valid    []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q in category %q, valid fields: %s", e.Field, e.Category, strings.Join(e.Valid, ", "))
}

// MalformedCsvError is returned when a file cannot be transposed into
// column series, e.g., ragged rows, a column index beyond the row width, or
// a cell that does not parse as a number.
type MalformedCsvError struct {
	Path   string
	Row    int // 1-based row number in the file, 0 when not row-specific
	Detail string
}

func (e *MalformedCsvError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("malformed CSV %s, row %d: %s", e.Path, e.Row, e.Detail)
	}
	return fmt.Sprintf("malformed CSV %s: %s", e.Path, e.Detail)
}
