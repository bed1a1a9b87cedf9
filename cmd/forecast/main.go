// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

// Package main is the single-shot forecast CLI.
//
// The Node.js inventory backend invokes this binary per batch: it writes a
// JSON array of historical demand records to stdin and reads exactly one
// JSON envelope from stdout. Diagnostics go to stderr as structured logs
// and never mix with the envelope.
//
// # Contract
//
// Input: a JSON array of records, each with "type" (or "uniform_type"),
// "size" (string, number, or null), and an optional "category". An empty
// array is valid and yields an empty success envelope.
//
// Success: {"success": true, "recommendations": [...], "count": N},
// exit status 0.
//
// Failure: {"success": false, "error": "...", "message": "..."},
// exit status 1. A missing model artifact produces a remediation message
// naming the expected path.
//
// # Configuration
//
// Loaded via Koanf v2 (env > config.yaml > defaults):
//   - MODEL_PATH: path of the trained estimator artifact
//     (default models/uniform_forecast.json)
//   - LOG_LEVEL, LOG_FORMAT: diagnostic output control
//   - CONFIG_PATH: explicit config file location
//
// # Example
//
//	echo '[{"type":"BAJU_NO_3_LELAKI","size":"2xl"}]' | MODEL_PATH=/data/uniform_forecast.json forecast
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/config"
	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/forecast"
	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/logging"
	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/model"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

// run is the testable body of main: reads one batch from in, writes one
// envelope to out, returns the process exit code.
func run(in io.Reader, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		return fail(out, err, fmt.Sprintf("Configuration error: %v", err))
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	records, err := decodeBatch(in)
	if err != nil {
		return fail(out, err, fmt.Sprintf("Input error: %v", err))
	}

	// Empty batch short-circuits before the artifact is touched.
	if len(records) == 0 {
		return emit(out, &forecast.Result{
			Success:         true,
			Recommendations: []forecast.Recommendation{},
			Count:           0,
		})
	}

	est, err := model.Load(cfg.Model.Path)
	if err != nil {
		if errors.Is(err, model.ErrArtifactNotFound) {
			msg := fmt.Sprintf(
				"Model file not found. Please ensure the model is uploaded to %s or set MODEL_PATH",
				cfg.Model.Path)
			return fail(out, err, msg)
		}
		return fail(out, err, fmt.Sprintf("Model load error: %v", err))
	}
	logging.Info().Str("path", cfg.Model.Path).Msg("model loaded")

	result, err := forecast.NewPipeline(est).Run(records)
	if err != nil {
		return fail(out, err, fmt.Sprintf("Prediction error: %v", err))
	}

	return emit(out, result)
}

// decodeBatch decodes the input channel into raw records. Anything other
// than a JSON array is an input validation error.
func decodeBatch(in io.Reader) ([]forecast.RawRecord, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var records []forecast.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("input must be a JSON array of historical data records: %w", err)
	}
	// A JSON null unmarshals into a nil slice without error; only a real
	// array (possibly empty) is acceptable input.
	if records == nil {
		return nil, errors.New("input must be a JSON array of historical data records, got null")
	}
	return records, nil
}

// emit writes the success envelope to the output channel.
func emit(out io.Writer, result *forecast.Result) int {
	if err := json.NewEncoder(out).Encode(result); err != nil {
		logging.Err(err).Msg("failed to write result envelope")
		return 1
	}
	return 0
}

// fail writes the failure envelope and returns a non-zero exit code.
func fail(out io.Writer, err error, message string) int {
	logging.Err(err).Msg("run failed")
	envelope := &forecast.Failure{
		Success: false,
		Error:   err.Error(),
		Message: message,
	}
	if encErr := json.NewEncoder(out).Encode(envelope); encErr != nil {
		logging.Err(encErr).Msg("failed to write failure envelope")
	}
	return 1
}
