package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dstatplot/internal/dstat"
)

// Output formats supported by the renderers.
const (
	FormatPNG  = "png"
	FormatXLSX = "xlsx"
)

// FormatOptions lists the accepted output formats.
var FormatOptions = []string{FormatPNG, FormatXLSX}

// Basename generates the output file name for a column selection:
// "<category>-<field>.<ext>" with any '/' in the field replaced by '_', or
// "column-<index>.<ext>" when selection was by raw index.
func Basename(ref dstat.ColumnRef, format string) string {
	if ref.ByIndex {
		return fmt.Sprintf("column-%d.%s", ref.Index, format)
	}
	field := strings.ReplaceAll(ref.Field, "/", "_")
	return fmt.Sprintf("%s-%s.%s", ref.Category, field, format)
}

// ExprBasename generates the output file name for an expression selection.
func ExprBasename(category string, expression string, format string) string {
	compact := strings.ReplaceAll(expression, " ", "")
	compact = strings.ReplaceAll(compact, "/", "_")
	return fmt.Sprintf("%s-%s.%s", category, compact, format)
}

// DerivePath computes the output path. An explicit path naming an existing
// directory is joined with basename; any other explicit path is used
// verbatim; with no explicit path the target directory is joined with
// basename.
func DerivePath(explicit string, basename string, targetDir string) string {
	if explicit != "" {
		if info, err := os.Stat(explicit); err == nil && info.IsDir() {
			return filepath.Join(explicit, basename)
		}
		return explicit
	}
	return filepath.Join(targetDir, basename)
}
