/*
Package dstat reads dstat-style CSV resource logs: an optional "Host:"
preamble, a two-tier category/field header, and numeric time-series rows.
*/
package dstat

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Schema is the two-level column header of a dstat CSV. Categories and
// Fields are positionally aligned and always the same length; a category
// label appears once at the start of its group with empty cells after it,
// e.g., categories ["total cpu usage","","",...] over fields
// ["usr","sys","idl",...].
type Schema struct {
	Categories []string
	Fields     []string
}

// NewSchema builds a Schema from the raw header rows. The category row in
// dstat output is often shorter than the field row, so it is padded with
// empty strings; extra category cells beyond the field row are dropped.
func NewSchema(categories []string, fields []string) Schema {
	aligned := make([]string, len(fields))
	copy(aligned, categories)
	return Schema{Categories: aligned, Fields: fields}
}

// ColumnRef selects one column, either by category/field pair or by raw
// column index. Use NewFieldRef or NewIndexRef to construct.
type ColumnRef struct {
	Category string
	Field    string
	Index    int
	ByIndex  bool
}

// NewFieldRef selects a column by its category and field labels.
func NewFieldRef(category string, field string) ColumnRef {
	return ColumnRef{Category: category, Field: field}
}

// NewIndexRef selects a column by raw position in the data rows.
func NewIndexRef(index int) ColumnRef {
	return ColumnRef{Index: index, ByIndex: true}
}

// Resolve maps ref to a column position. An index ref is returned as-is;
// the caller is trusted to supply a valid raw index. A category/field ref
// finds the first matching category cell, then the first matching field
// cell at or after it. First match wins in both searches so resolution is
// stable and follows natural column order.
func (s Schema) Resolve(ref ColumnRef) (int, error) {
	if ref.ByIndex {
		return ref.Index, nil
	}
	start := -1
	for i, category := range s.Categories {
		if category == ref.Category {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, &UnknownCategoryError{Category: ref.Category, Valid: s.CategoryNames()}
	}
	for j := start; j < len(s.Fields); j++ {
		if s.Fields[j] == ref.Field {
			return j, nil
		}
	}
	return 0, &UnknownFieldError{Category: ref.Category, Field: ref.Field, Valid: s.FieldNames()}
}

// CategoryNames returns the distinct non-empty category labels in column
// order.
func (s Schema) CategoryNames() []string {
	return distinct(s.Categories)
}

// FieldNames returns the distinct non-empty field labels in column order.
func (s Schema) FieldNames() []string {
	return distinct(s.Fields)
}

// CategoryFields returns the field labels belonging to one category: from
// the category's first cell up to the next non-empty category cell. The
// bool result reports whether the category exists.
func (s Schema) CategoryFields(category string) ([]string, bool) {
	start := -1
	for i, c := range s.Categories {
		if c == category {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, false
	}
	fields := []string{s.Fields[start]}
	for i := start + 1; i < len(s.Fields); i++ {
		if s.Categories[i] != "" {
			break
		}
		fields = append(fields, s.Fields[i])
	}
	return fields, true
}

// distinct filters names to distinct non-empty values, preserving
// first-seen order.
func distinct(names []string) []string {
	seen := mapset.NewSet[string]()
	var out []string
	for _, name := range names {
		if name == "" {
			continue
		}
		if seen.Add(name) {
			out = append(out, name)
		}
	}
	return out
}
