// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

// Package spreadsheet merges the batch sheets of an inventory workbook
// into one flat table for the training export.
//
// The contract is deliberately thin: rows are preserved in sheet order,
// column sets are unioned, and each row is tagged with the sheet it came
// from unless the sheet already carries a batch column. No cell content
// is interpreted.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/logging"
)

// SourceColumn is the column added to tag each row with its source sheet.
const SourceColumn = "source_batch"

// Table is a flat tabular result: a header and string rows aligned to it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// MergeSheets reads the named sheets from the workbook at path and
// concatenates them into one table. An empty sheetNames merges every
// sheet in the workbook. The first row of each sheet is its header;
// headers are unioned across sheets in first-seen order, and cells a
// sheet does not provide are left empty.
func MergeSheets(path string, sheetNames []string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Err(cerr).Str("workbook", path).Msg("failed to close workbook")
		}
	}()

	if len(sheetNames) == 0 {
		sheetNames = f.GetSheetList()
		logging.Info().
			Int("sheets", len(sheetNames)).
			Msg("no sheets named; merging all sheets in workbook")
	}

	merged := &Table{}
	columnIndex := make(map[string]int)

	for _, sheet := range sheetNames {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			logging.Warn().Str("sheet", sheet).Msg("sheet is empty; skipped")
			continue
		}

		header := rows[0]
		tagSource := !hasBatchColumn(header)
		if tagSource {
			header = append(append([]string{}, header...), SourceColumn)
		}

		// Union this sheet's columns into the merged header.
		for _, col := range header {
			if _, ok := columnIndex[col]; !ok {
				columnIndex[col] = len(merged.Columns)
				merged.Columns = append(merged.Columns, col)
			}
		}

		for _, row := range rows[1:] {
			out := make([]string, len(merged.Columns))
			for j, cell := range row {
				if j >= len(header) {
					break // cells beyond the header are unnamed; dropped
				}
				out[columnIndex[header[j]]] = cell
			}
			if tagSource {
				out[columnIndex[SourceColumn]] = sheet
			}
			merged.Rows = append(merged.Rows, out)
		}

		logging.Info().
			Str("sheet", sheet).
			Int("rows", len(rows)-1).
			Int("columns", len(header)).
			Bool("tagged", tagSource).
			Msg("sheet merged")
	}

	// Earlier sheets may have produced short rows before later sheets
	// widened the header; pad them out.
	for i, row := range merged.Rows {
		if len(row) < len(merged.Columns) {
			padded := make([]string, len(merged.Columns))
			copy(padded, row)
			merged.Rows[i] = padded
		}
	}

	return merged, nil
}

// hasBatchColumn reports whether a header already names a batch column.
func hasBatchColumn(header []string) bool {
	for _, col := range header {
		if strings.ToLower(col) == "batch" {
			return true
		}
	}
	return false
}

// WriteCSV writes the table as flat CSV: header first, then rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
