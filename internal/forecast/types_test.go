// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestSizeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Size
	}{
		{"string", `"XL"`, StringSize("XL")},
		{"integer", `9`, NumericSize(9)},
		{"float", `6.5`, NumericSize(6.5)},
		{"null", `null`, NullSize()},
		{"empty string", `""`, StringSize("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Size
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	var s Size
	if err := json.Unmarshal([]byte(`{"a":1}`), &s); err == nil {
		t.Error("Unmarshal accepted an object as a size")
	}
}

func TestRawRecordUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RawRecord
	}{
		{
			name:  "type field",
			input: `{"type":"BOOT","size":9,"category":"Others"}`,
			want:  RawRecord{Type: "BOOT", Size: NumericSize(9), Category: "Others"},
		},
		{
			name:  "uniform_type alias",
			input: `{"uniform_type":"BAJU_NO_4","size":"M"}`,
			want:  RawRecord{Type: "BAJU_NO_4", Size: StringSize("M")},
		},
		{
			name:  "type wins over alias",
			input: `{"type":"BOOT","uniform_type":"BERET","size":null}`,
			want:  RawRecord{Type: "BOOT", Size: NullSize()},
		},
		{
			name:  "missing size is null",
			input: `{"type":"Belt"}`,
			want:  RawRecord{Type: "Belt", Size: NullSize()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got RawRecord
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResultEnvelopeShape(t *testing.T) {
	result := &Result{
		Success:         true,
		Recommendations: []Recommendation{},
		Count:           0,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"success":true,"recommendations":[],"count":0}`
	if string(data) != want {
		t.Errorf("envelope = %s, want %s", data, want)
	}
}
