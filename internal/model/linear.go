// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package model

import "fmt"

// Linear is a linear regression estimator: prediction = intercept + x·coef.
type Linear struct {
	intercept    float64
	coefficients []float64
	featureNames []string
}

func newLinear(doc *artifactDoc) (*Linear, error) {
	if len(doc.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: linear estimator has no coefficients", ErrArtifactInvalid)
	}
	if len(doc.FeatureNames) > 0 && len(doc.FeatureNames) != len(doc.Coefficients) {
		return nil, fmt.Errorf("%w: %d feature names for %d coefficients",
			ErrArtifactInvalid, len(doc.FeatureNames), len(doc.Coefficients))
	}

	return &Linear{
		intercept:    doc.Intercept,
		coefficients: doc.Coefficients,
		featureNames: doc.FeatureNames,
	}, nil
}

// Predict scores each row as intercept plus the dot product with the
// coefficient vector. Every row must match the coefficient width.
func (l *Linear) Predict(matrix [][]float64) ([]float64, error) {
	predictions := make([]float64, len(matrix))
	for i, row := range matrix {
		if len(row) != len(l.coefficients) {
			return nil, fmt.Errorf("row %d has %d features, estimator expects %d",
				i, len(row), len(l.coefficients))
		}

		sum := l.intercept
		for j, v := range row {
			sum += v * l.coefficients[j]
		}
		predictions[i] = sum
	}
	return predictions, nil
}

// FeatureNames returns the training-time vocabulary, or nil when the
// artifact carried none.
func (l *Linear) FeatureNames() []string {
	return l.featureNames
}
