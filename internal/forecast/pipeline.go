// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package forecast

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/logging"
	"github.com/munchies09/backend-SmartUniformInventoryForecastingSystem/internal/model"
)

// Input validation failures. Both terminate the run with the failure
// envelope; neither is retried.
var (
	// ErrNoValidRecords indicates every record was dropped during size
	// normalization, leaving nothing to predict on.
	ErrNoValidRecords = errors.New("no valid data after filtering null sizes")

	// ErrInvalidRecord indicates a record is missing a required field.
	ErrInvalidRecord = errors.New("invalid record")
)

// singleton validator for per-record field checks.
var (
	recordValidate *validator.Validate
	recordOnce     sync.Once
)

func recordValidator() *validator.Validate {
	recordOnce.Do(func() {
		recordValidate = validator.New(validator.WithRequiredStructEnabled())
	})
	return recordValidate
}

// Pipeline runs one batch of raw records through normalization, feature
// alignment, and prediction. The estimator is loaded once at process
// start and treated as read-only; the pipeline itself holds no mutable
// state, so separate invocations share nothing.
type Pipeline struct {
	est model.Estimator
}

// NewPipeline creates a pipeline around a loaded estimator.
func NewPipeline(est model.Estimator) *Pipeline {
	return &Pipeline{est: est}
}

// Run processes exactly one batch to completion, or fails atomically
// before any output is produced.
//
// Per-record size parse failures are recovered locally by dropping the
// record; they only escalate to an error when the whole batch empties.
// Estimator failures are recovered inside PredictDemand and never
// surface here.
func (p *Pipeline) Run(records []RawRecord) (*Result, error) {
	survivors, err := p.normalizeBatch(records)
	if err != nil {
		return nil, err
	}

	vocabulary := p.vocabulary()
	matrix := Align(survivors, vocabulary)
	predictions := PredictDemand(matrix, p.est)

	recommendations := make([]Recommendation, len(survivors))
	for i, rec := range survivors {
		// Missing category falls back to the uniform type, then "Others".
		category := rec.Category
		if category == "" {
			category = rec.Type
		}
		if category == "" {
			category = "Others"
		}
		recommendations[i] = Recommendation{
			Category:         category,
			Type:             rec.Type,
			Size:             rec.CanonicalSize.String(),
			ForecastedDemand: predictions[i].Demand,
			RecommendedStock: predictions[i].Stock,
		}
	}

	return &Result{
		Success:         true,
		Recommendations: recommendations,
		Count:           len(recommendations),
	}, nil
}

// normalizeBatch validates and normalizes every record, dropping those
// whose size cannot be interpreted for their category family.
func (p *Pipeline) normalizeBatch(records []RawRecord) ([]NormalizedRecord, error) {
	survivors := make([]NormalizedRecord, 0, len(records))
	dropped := 0

	for i := range records {
		rec := &records[i]
		if err := recordValidator().Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d is missing required field \"type\"", ErrInvalidRecord, i)
		}

		canonical := Normalize(rec.Type, rec.Size)
		if canonical.IsNull() {
			dropped++
			logging.Debug().
				Int("record", i).
				Str("type", rec.Type).
				Str("size", rec.Size.String()).
				Msg("record dropped: size not interpretable for category family")
			continue
		}

		survivors = append(survivors, NormalizedRecord{
			Type:          rec.Type,
			CanonicalSize: canonical,
			Category:      rec.Category,
		})
	}

	if dropped > 0 {
		logging.Info().
			Int("dropped", dropped).
			Int("survivors", len(survivors)).
			Msg("batch normalized")
	}

	if len(survivors) == 0 {
		return nil, ErrNoValidRecords
	}
	return survivors, nil
}

// vocabulary probes the estimator for its optional feature-name
// capability. The absent branch is explicit: without a vocabulary the
// aligner falls back to batch-local column order.
func (p *Pipeline) vocabulary() []string {
	fn, ok := p.est.(model.FeatureNamer)
	if !ok || len(fn.FeatureNames()) == 0 {
		logging.Warn().Msg("estimator exposes no feature names; one-hot column order is batch-dependent")
		return nil
	}

	vocabulary := fn.FeatureNames()
	logging.Debug().
		Int("features", len(vocabulary)).
		Msg("using estimator feature vocabulary")
	return vocabulary
}
