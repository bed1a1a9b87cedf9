// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

// Package main is the sheet-merge utility. It concatenates the batch
// sheets of an inventory workbook into one flat CSV for the training
// export, tagging each row with its source sheet.
//
//	mergesheets -workbook inventory.xlsx -sheets Batch1,Batch2,Batch3 -output merged_data.csv
//
// Omitting -sheets merges every sheet in the workbook.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/logging"
	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/spreadsheet"
)

func main() {
	workbook := flag.String("workbook", "", "path of the .xlsx workbook to merge (required)")
	sheets := flag.String("sheets", "", "comma-separated sheet names; empty merges all sheets")
	output := flag.String("output", "merged_data.csv", "path of the CSV file to write")
	logLevel := flag.String("log-level", "info", "diagnostic log level")
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console"})

	if *workbook == "" {
		logging.Error().Msg("-workbook is required")
		flag.Usage()
		os.Exit(2)
	}

	var names []string
	for _, s := range strings.Split(*sheets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}

	table, err := spreadsheet.MergeSheets(*workbook, names)
	if err != nil {
		logging.Err(err).Msg("merge failed")
		os.Exit(1)
	}

	out, err := os.Create(*output)
	if err != nil {
		logging.Err(err).Str("output", *output).Msg("cannot create output file")
		os.Exit(1)
	}

	if err := table.WriteCSV(out); err != nil {
		logging.Err(err).Msg("failed to write CSV")
		_ = out.Close()
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		logging.Err(err).Msg("failed to close output file")
		os.Exit(1)
	}

	logging.Info().
		Str("output", *output).
		Int("rows", len(table.Rows)).
		Int("columns", len(table.Columns)).
		Msg("merged dataset written")
}
