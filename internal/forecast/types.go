// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

// Package forecast implements the demand forecasting pipeline: size
// normalization, one-hot feature alignment against the trained model's
// vocabulary, prediction, and post-processing into stock recommendations.
//
// Control flow for one batch:
//
//	raw records -> Normalize (per record) -> drop unnormalizable rows
//	            -> Align (batch) -> PredictDemand (batch) -> recommendations
//
// All stages are pure transforms over batch-local values; nothing is
// shared or persisted across invocations.
package forecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// sizeKind discriminates the JSON shapes a size value arrives in.
type sizeKind int

const (
	sizeNull sizeKind = iota
	sizeString
	sizeNumber
)

// Size is a raw or canonical size value: a string token, a number, or
// null. Inventory exports are loosely typed, so all three occur in the
// same column.
type Size struct {
	kind sizeKind
	str  string
	num  float64
}

// NullSize returns the null size value.
func NullSize() Size {
	return Size{kind: sizeNull}
}

// StringSize returns a string-valued size.
func StringSize(s string) Size {
	return Size{kind: sizeString, str: s}
}

// NumericSize returns a number-valued size.
func NumericSize(v float64) Size {
	return Size{kind: sizeNumber, num: v}
}

// IsNull reports whether the size is null.
func (s Size) IsNull() bool {
	return s.kind == sizeNull
}

// IsNumeric reports whether the size is a number.
func (s Size) IsNumeric() bool {
	return s.kind == sizeNumber
}

// Num returns the numeric value; only meaningful when IsNumeric.
func (s Size) Num() float64 {
	return s.num
}

// Str returns the string value; only meaningful for string sizes.
func (s Size) Str() string {
	return s.str
}

// String renders the size the way the training export stringifies it:
// string values unchanged, numeric values with at least one decimal
// ("9.0", "6.5"), null as the empty string. Feature column names and the
// output envelope both depend on this rendering.
func (s Size) String() string {
	switch s.kind {
	case sizeNumber:
		return formatSizeNumber(s.num)
	case sizeString:
		return s.str
	default:
		return ""
	}
}

// formatSizeNumber formats a numeric size, keeping a trailing ".0" on
// integral values so column names match the artifact vocabulary
// (size_9.0, not size_9).
func formatSizeNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// UnmarshalJSON accepts a JSON string, number, or null.
func (s *Size) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = NullSize()
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringSize(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("size must be a string, number, or null: %w", err)
	}
	*s = NumericSize(num)
	return nil
}

// MarshalJSON round-trips the three shapes.
func (s Size) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case sizeNumber:
		return json.Marshal(s.num)
	case sizeString:
		return json.Marshal(s.str)
	default:
		return []byte("null"), nil
	}
}

// RawRecord is one heterogeneous inventory record as received on the
// input channel. The type field may arrive as "type" or "uniform_type".
type RawRecord struct {
	Type     string `json:"type" validate:"required"`
	Size     Size   `json:"size"`
	Category string `json:"category,omitempty"`
}

// UnmarshalJSON maps the "uniform_type" alias onto Type when "type" is
// absent.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var aux struct {
		Type        string `json:"type"`
		UniformType string `json:"uniform_type"`
		Size        Size   `json:"size"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Type = aux.Type
	if r.Type == "" {
		r.Type = aux.UniformType
	}
	r.Size = aux.Size
	r.Category = aux.Category
	return nil
}

// NormalizedRecord is a RawRecord with its size canonicalized for the
// record's category family. CanonicalSize is null iff the size could not
// be interpreted; such records are dropped before feature construction.
type NormalizedRecord struct {
	Type          string
	CanonicalSize Size
	Category      string
}

// Recommendation is one row of the success envelope.
type Recommendation struct {
	Category         string `json:"category"`
	Type             string `json:"type"`
	Size             string `json:"size"`
	ForecastedDemand int    `json:"forecasted_demand"`
	RecommendedStock int    `json:"recommended_stock"`
}

// Result is the success envelope written to stdout.
type Result struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
}

// Failure is the failure envelope written to stdout before a non-zero
// exit.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
