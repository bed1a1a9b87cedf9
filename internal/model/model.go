// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

// Package model loads the trained demand estimator from its serialized
// artifact and exposes it behind a small capability-based interface.
//
// The artifact is produced by an external training pipeline and is treated
// as read-only for the duration of a run. It is a JSON document with a
// "kind" discriminator selecting the estimator family:
//
//   - "linear": intercept + coefficient vector
//   - "random_forest": ensemble of regression trees, mean-aggregated
//
// Either kind may carry "feature_names", the ordered one-hot vocabulary
// the estimator was trained on. When present it is authoritative: the
// feature aligner builds its matrix in exactly that column order.
//
// # Capabilities
//
// Estimator is the single required capability. FeatureNamer is optional;
// callers probe for it with a type assertion and take an explicit absent
// branch rather than reflecting over the concrete type:
//
//	vocab := []string(nil)
//	if fn, ok := est.(model.FeatureNamer); ok {
//	    vocab = fn.FeatureNames()
//	}
package model

// Estimator is the required capability of a loaded model: score a feature
// matrix and return one raw prediction per row.
type Estimator interface {
	// Predict returns a prediction vector of length len(matrix).
	// It must not mutate the matrix.
	Predict(matrix [][]float64) ([]float64, error)
}

// FeatureNamer is the optional capability of estimators that carry their
// training-time feature vocabulary.
type FeatureNamer interface {
	// FeatureNames returns the ordered feature vocabulary.
	FeatureNames() []string
}

// Ensure estimators implement the expected capabilities.
var (
	_ Estimator    = (*Linear)(nil)
	_ Estimator    = (*RandomForest)(nil)
	_ FeatureNamer = (*Linear)(nil)
	_ FeatureNamer = (*RandomForest)(nil)
)
