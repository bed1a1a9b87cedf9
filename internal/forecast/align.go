// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"math"
	"sort"

	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/logging"
)

// One-hot feature name prefixes. These follow the trained artifact's
// vocabulary naming, which the training export derives from its column
// names ("uniform_type_gendered", "size").
const (
	typeFeaturePrefix = "uniform_type_gendered_"
	sizeFeaturePrefix = "size_"
)

// FeatureMatrix is a dense rows x columns numeric table. Every cell is
// finite; column order matches Columns.
type FeatureMatrix struct {
	Columns []string
	Rows    [][]float64
}

// Align one-hot encodes the (type, canonical size) pairs of a batch and
// aligns the result to the trained model's feature vocabulary.
//
// With a vocabulary, the output has exactly len(vocabulary) columns in
// vocabulary order: batch columns missing from the vocabulary are dropped
// and vocabulary columns missing from the batch are zero-filled. This is
// deliberate lossy degradation for categories unseen at training time,
// not an error.
//
// Without a vocabulary the batch-local one-hot table is used as-is.
// Its column set depends on which values appear in the batch, so column
// order is NOT stable across invocations; callers must prefer the
// vocabulary path whenever the model provides one.
//
// The output has one row per input record, in input order.
func Align(records []NormalizedRecord, vocabulary []string) *FeatureMatrix {
	batchColumns := batchOneHotColumns(records)

	columns := batchColumns
	if len(vocabulary) > 0 {
		columns = vocabulary
		logAlignmentGap(batchColumns, vocabulary)
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(columns))
		if j, ok := index[typeFeaturePrefix+rec.Type]; ok {
			row[j] = 1
		}
		if j, ok := index[sizeFeaturePrefix+rec.CanonicalSize.String()]; ok {
			row[j] = 1
		}
		rows[i] = row
	}

	m := &FeatureMatrix{Columns: columns, Rows: rows}
	m.sanitize()
	return m
}

// batchOneHotColumns builds the batch-local column list: one column per
// distinct type value, then one per distinct size value, each group
// sorted. Deterministic for a given batch, but batch-dependent.
func batchOneHotColumns(records []NormalizedRecord) []string {
	typeSet := make(map[string]struct{})
	sizeSet := make(map[string]struct{})
	for _, rec := range records {
		typeSet[rec.Type] = struct{}{}
		sizeSet[rec.CanonicalSize.String()] = struct{}{}
	}

	columns := make([]string, 0, len(typeSet)+len(sizeSet))
	for v := range typeSet {
		columns = append(columns, typeFeaturePrefix+v)
	}
	sort.Strings(columns[:len(typeSet)])

	sizeStart := len(columns)
	for v := range sizeSet {
		columns = append(columns, sizeFeaturePrefix+v)
	}
	sort.Strings(columns[sizeStart:])

	return columns
}

// logAlignmentGap reports how far the batch's categories diverge from the
// model vocabulary. Diagnostic only.
func logAlignmentGap(batchColumns, vocabulary []string) {
	vocabSet := make(map[string]struct{}, len(vocabulary))
	for _, col := range vocabulary {
		vocabSet[col] = struct{}{}
	}

	dropped := 0
	for _, col := range batchColumns {
		if _, ok := vocabSet[col]; !ok {
			dropped++
		}
	}

	if dropped > 0 {
		logging.Warn().
			Int("dropped_columns", dropped).
			Int("batch_columns", len(batchColumns)).
			Int("vocabulary_size", len(vocabulary)).
			Msg("batch categories unseen at training time; their one-hot columns are dropped")
	}
}

// sanitize replaces non-finite cells with 0.
func (m *FeatureMatrix) sanitize() {
	for _, row := range m.Rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				row[j] = 0
			}
		}
	}
}
