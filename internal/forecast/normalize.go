// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"strconv"
	"strings"
)

// Family is the category family of a uniform type, derived from the type
// string. It selects the size normalization strategy.
type Family int

const (
	// FamilyOther covers everything without a recognized size scheme;
	// sizes pass through as opaque strings.
	FamilyOther Family = iota

	// FamilyApparel covers BAJU types sized with cloth tokens (S, M, XL...).
	FamilyApparel

	// FamilyMeasured covers BOOT and BERET types sized with numeric
	// measurements.
	FamilyMeasured
)

// FamilyOf derives the category family by substring match on the
// uppercased type.
func FamilyOf(uniformType string) Family {
	upper := strings.ToUpper(uniformType)
	switch {
	case strings.Contains(upper, "BAJU"):
		return FamilyApparel
	case strings.Contains(upper, "BOOT"), strings.Contains(upper, "BERET"):
		return FamilyMeasured
	default:
		return FamilyOther
	}
}

// apparelSynonyms folds vendor spelling variants onto the canonical cloth
// tokens. Recognized tokens not listed here pass through unchanged.
var apparelSynonyms = map[string]string{
	"2XL": "XXL",
	"3XL": "XXXL",
}

// Normalize canonicalizes a raw size for the given uniform type:
//
//   - apparel: trimmed, uppercased, synonym-folded cloth token;
//     unrecognized tokens pass through uppercased rather than rejected
//   - measured: parsed floating-point measurement; unparsable -> null
//   - other: string form of the value, unchanged
//
// Null or empty input is null for every family. Pure function of its
// arguments.
func Normalize(uniformType string, size Size) Size {
	switch FamilyOf(uniformType) {
	case FamilyApparel:
		return normalizeApparel(size)
	case FamilyMeasured:
		return normalizeMeasured(size)
	default:
		return normalizeOther(size)
	}
}

func normalizeApparel(size Size) Size {
	if size.IsNull() {
		return NullSize()
	}

	token := strings.ToUpper(strings.TrimSpace(size.String()))
	if token == "" {
		return NullSize()
	}

	if canonical, ok := apparelSynonyms[token]; ok {
		return StringSize(canonical)
	}
	return StringSize(token)
}

func normalizeMeasured(size Size) Size {
	if size.IsNull() {
		return NullSize()
	}
	if size.IsNumeric() {
		return NumericSize(size.Num())
	}

	trimmed := strings.TrimSpace(size.Str())
	if trimmed == "" {
		return NullSize()
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return NullSize()
	}
	return NumericSize(v)
}

func normalizeOther(size Size) Size {
	if size.IsNull() {
		return NullSize()
	}
	s := size.String()
	if s == "" {
		return NullSize()
	}
	return StringSize(s)
}
