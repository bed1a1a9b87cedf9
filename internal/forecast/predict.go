// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"math"

	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/logging"
	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/model"
)

// Business rules for post-processing raw predictions.
const (
	// bufferFactor is the multiplicative buffer-stock margin applied to
	// predicted demand.
	bufferFactor = 1.15

	// minimumStock is the absolute floor for recommended stock.
	minimumStock = 2

	// fallbackDemand substitutes for every row when the estimator fails.
	fallbackDemand = 2
)

// Prediction is the post-processed model output for one record.
// Demand >= 0 and Stock >= minimumStock hold unconditionally.
type Prediction struct {
	Demand int
	Stock  int
}

// PredictDemand invokes the estimator on the aligned feature matrix and
// derives integer demand and stock recommendations.
//
// An estimator failure never aborts the batch: the raw predictions are
// replaced by a constant fallback of fallbackDemand per row, the failure
// is logged, and processing continues. Summary statistics of the raw
// predictions are emitted to the diagnostic channel.
func PredictDemand(matrix *FeatureMatrix, est model.Estimator) []Prediction {
	raw, err := est.Predict(matrix.Rows)
	if err != nil || len(raw) != len(matrix.Rows) {
		if err != nil {
			logging.Err(err).
				Int("rows", len(matrix.Rows)).
				Msg("model invocation failed; falling back to constant predictions")
		} else {
			logging.Error().
				Int("rows", len(matrix.Rows)).
				Int("predictions", len(raw)).
				Msg("model returned wrong prediction count; falling back to constant predictions")
		}
		raw = make([]float64, len(matrix.Rows))
		for i := range raw {
			raw[i] = fallbackDemand
		}
	}

	logPredictionStats(raw)

	predictions := make([]Prediction, len(raw))
	for i, v := range raw {
		predictions[i] = postprocess(v)
	}
	return predictions
}

// postprocess clamps a raw prediction to >= 0, truncates to integer
// demand, and applies the buffer-stock rule:
//
//	stock = max(round(demand * bufferFactor), minimumStock)
func postprocess(raw float64) Prediction {
	if raw < 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		raw = 0
	}
	demand := int(raw)

	stock := int(math.Round(float64(demand) * bufferFactor))
	if stock < minimumStock {
		stock = minimumStock
	}

	return Prediction{Demand: demand, Stock: stock}
}

// logPredictionStats emits min/max/mean of the raw predictions.
func logPredictionStats(raw []float64) {
	if len(raw) == 0 {
		return
	}

	minV, maxV, sum := raw[0], raw[0], 0.0
	for _, v := range raw {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}

	logging.Info().
		Int("rows", len(raw)).
		Float64("min", minV).
		Float64("max", maxV).
		Float64("mean", sum/float64(len(raw))).
		Msg("predictions generated")
}
