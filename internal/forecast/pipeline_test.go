// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"errors"
	"reflect"
	"testing"
)

func TestPipelineRun(t *testing.T) {
	est := &stubEstimator{
		predictions: []float64{12.7, 5.2},
		featureNames: []string{
			"uniform_type_gendered_BAJU_NO_3_LELAKI",
			"uniform_type_gendered_BOOT",
			"size_9.0",
			"size_XXL",
		},
	}

	records := []RawRecord{
		{Type: "BAJU_NO_3_LELAKI", Size: StringSize("2xl"), Category: "Uniform No 3"},
		{Type: "BOOT", Size: StringSize("wide")}, // unparsable measured size: dropped
		{Type: "BOOT", Size: StringSize("9")},
	}

	result, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.Success {
		t.Error("Success = false, want true")
	}
	if result.Count != 2 || len(result.Recommendations) != 2 {
		t.Fatalf("Count = %d, recommendations = %d, want 2", result.Count, len(result.Recommendations))
	}

	want := []Recommendation{
		{Category: "Uniform No 3", Type: "BAJU_NO_3_LELAKI", Size: "XXL", ForecastedDemand: 12, RecommendedStock: 14},
		{Category: "BOOT", Type: "BOOT", Size: "9.0", ForecastedDemand: 5, RecommendedStock: 6},
	}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("Recommendations = %+v, want %+v", result.Recommendations, want)
	}
}

func TestPipelineCategoryFallback(t *testing.T) {
	// A record without a category inherits its uniform type.
	est := &stubEstimator{predictions: []float64{1, 1}}
	records := []RawRecord{
		{Type: "BOOT", Size: NumericSize(9), Category: "Footwear"},
		{Type: "BOOT", Size: NumericSize(10)},
	}

	result, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := result.Recommendations[0].Category; got != "Footwear" {
		t.Errorf("explicit category = %q, want Footwear", got)
	}
	if got := result.Recommendations[1].Category; got != "BOOT" {
		t.Errorf("fallback category = %q, want the uniform type", got)
	}
}

func TestPipelineRunAllRecordsDropped(t *testing.T) {
	est := &stubEstimator{predictions: []float64{}}
	records := []RawRecord{
		{Type: "BOOT", Size: StringSize("wide")},
		{Type: "BERET", Size: NullSize()},
	}

	_, err := NewPipeline(est).Run(records)
	if !errors.Is(err, ErrNoValidRecords) {
		t.Errorf("Run() error = %v, want ErrNoValidRecords", err)
	}
}

func TestPipelineRunMissingType(t *testing.T) {
	est := &stubEstimator{predictions: []float64{1}}
	records := []RawRecord{
		{Type: "", Size: StringSize("M")},
	}

	_, err := NewPipeline(est).Run(records)
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("Run() error = %v, want ErrInvalidRecord", err)
	}
}

func TestPipelineRunEstimatorFailure(t *testing.T) {
	// A failing estimator must not abort the batch: every surviving row
	// gets the fallback demand of 2 and the stock floor of 2.
	est := &stubEstimator{err: errors.New("boom")}
	records := []RawRecord{
		{Type: "BAJU_NO_4", Size: StringSize("M")},
		{Type: "BOOT", Size: NumericSize(10)},
	}

	result, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for i, rec := range result.Recommendations {
		if rec.ForecastedDemand != 2 || rec.RecommendedStock != 2 {
			t.Errorf("recommendation[%d] = %+v, want fallback demand 2 / stock 2", i, rec)
		}
	}
}

func TestPipelineRunWithoutFeatureNames(t *testing.T) {
	// Estimator without the optional capability: the aligner uses the
	// batch-local column order. One type and one size column here.
	est := &bareEstimator{predictions: []float64{3}}
	records := []RawRecord{
		{Type: "BAJU_NO_4", Size: StringSize("L")},
	}

	result, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Recommendations[0].ForecastedDemand != 3 {
		t.Errorf("ForecastedDemand = %d, want 3", result.Recommendations[0].ForecastedDemand)
	}
}

func TestPipelineIdempotence(t *testing.T) {
	est := &stubEstimator{predictions: []float64{4, 9}}
	records := []RawRecord{
		{Type: "BAJU_NO_3_PEREMPUAN", Size: StringSize("s")},
		{Type: "BERET", Size: StringSize("7.5")},
	}

	first, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different output:\n%+v\n%+v", first, second)
	}
}

func TestPipelineRecommendationInvariants(t *testing.T) {
	est := &stubEstimator{predictions: []float64{-10, 0.3, 55.9}}
	records := []RawRecord{
		{Type: "BAJU_NO_4", Size: StringSize("M")},
		{Type: "BAJU_NO_4", Size: StringSize("L")},
		{Type: "BOOT", Size: StringSize("11")},
	}

	result, err := NewPipeline(est).Run(records)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for i, rec := range result.Recommendations {
		if rec.ForecastedDemand < 0 {
			t.Errorf("recommendation[%d]: demand %d < 0", i, rec.ForecastedDemand)
		}
		if rec.RecommendedStock < 2 {
			t.Errorf("recommendation[%d]: stock %d < 2", i, rec.RecommendedStock)
		}
	}
}
