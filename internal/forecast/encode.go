// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"strconv"
	"strings"
)

// Legacy ordinal encoders.
//
// An earlier model generation consumed ordinal codes instead of one-hot
// vectors. The active prediction path never calls these; they are kept as
// an isolated, independently tested strategy so the pipeline can be
// switched back if a model trained on the ordinal contract is deployed.
// Do not assume the two encodings are interchangeable.

// legacyCategories maps category labels to ordinal codes.
var legacyCategories = map[string]int{
	"Uniform No 3": 0,
	"Uniform No 4": 1,
	"T-Shirt":      2,
	"T Shirt":      2,
	"TShirt":       2,
	"Others":       -1,
}

// legacyTypes lists uniform types in priority order; the index is the
// ordinal code. Forecastable sized items come first.
var legacyTypes = []string{
	"BAJU_NO_3_LELAKI",
	"BAJU_NO_3_PEREMPUAN",
	"BAJU_NO_4",
	"BOOT",
	"PVC Shoes",
	"Cloth No 3", "Cloth No 4", "Trousers No 3", "Trousers No 4",
	"Hat", "Beret", "Shoes", "Belt", "Socks", "Shirt", "Jacket", "BERET",
}

// legacySizes maps cloth tokens to ordinal codes. Numeric sizes are
// handled by range in EncodeSize.
var legacySizes = map[string]int{
	"XS": 0, "S": 1, "M": 2, "L": 3, "XL": 4, "2XL": 5, "3XL": 6,
	"XXL": 7, "XXXL": 8, "4XL": 9, "5XL": 10,
}

// EncodeCategory returns the ordinal code for a category label.
// Unknown labels encode as -1, never an error.
func EncodeCategory(category string) int {
	if code, ok := legacyCategories[category]; ok {
		return code
	}
	return -1
}

// EncodeType returns the ordinal code for a uniform type. Unknown types
// encode as len(legacyTypes), the explicit default-unknown sentinel.
func EncodeType(uniformType string) int {
	for i, t := range legacyTypes {
		if t == uniformType {
			return i
		}
	}
	return len(legacyTypes)
}

// EncodeSize returns the ordinal code for a size value. Cloth tokens use
// the fixed table; numeric values use range offsets that keep shoe and
// headwear codes clear of the cloth codes:
//
//	shoe sizes    [4, 13]    -> int(v) + 6
//	headwear      [6.5, 8.0] -> int(v*4) + 5
//	other numeric            -> int(v)
//
// Null, empty, and unparsable values encode as -1, never an error.
func EncodeSize(size Size) int {
	if size.IsNull() {
		return -1
	}

	var v float64
	if size.IsNumeric() {
		v = size.Num()
	} else {
		token := strings.TrimSpace(size.Str())
		if token == "" {
			return -1
		}
		if code, ok := legacySizes[token]; ok {
			return code
		}
		parsed, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return -1
		}
		v = parsed
	}

	// Shoe range is checked first; it overlaps the headwear range.
	if v >= 4 && v <= 13 {
		return int(v) + 6
	}
	if v >= 6.5 && v <= 8.0 {
		return int(v*4) + 5
	}
	return int(v)
}
