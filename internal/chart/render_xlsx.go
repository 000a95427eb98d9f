package chart

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Data"

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

// RenderXLSX writes the dataset to an XLSX workbook: the title in the first
// row, then a pair of columns (elapsed time, values) per series with bold
// headers. Series keep their own time columns since overlaid files do not
// share a time base.
func RenderXLSX(ds Dataset, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	title := strings.ReplaceAll(ds.Meta.Title, TitleLineBreak, " ")
	_ = f.SetCellValue(xlsxSheetName, cellName(1, 1), title)
	_ = f.SetCellStyle(xlsxSheetName, cellName(1, 1), cellName(1, 1), boldStyle)
	col := 1
	for _, series := range ds.Series {
		_ = f.SetCellValue(xlsxSheetName, cellName(col, 2), series.SourceLabel+" time (s)")
		_ = f.SetCellValue(xlsxSheetName, cellName(col+1, 2), series.SourceLabel)
		_ = f.SetCellStyle(xlsxSheetName, cellName(col, 2), cellName(col+1, 2), boldStyle)
		for i := range series.Values {
			_ = f.SetCellValue(xlsxSheetName, cellName(col, 3+i), series.Timestamps[i])
			_ = f.SetCellValue(xlsxSheetName, cellName(col+1, 3+i), series.Values[i])
		}
		col += 2
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	return nil
}
