// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package model

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Artifact load failures. A missing artifact is a distinct, remediable
// condition: the caller reports where to place the file. Both are fatal
// for the run; the pipeline never starts without a loaded estimator.
var (
	// ErrArtifactNotFound indicates the artifact file does not exist.
	ErrArtifactNotFound = errors.New("model artifact not found")

	// ErrArtifactInvalid indicates the artifact exists but cannot be
	// decoded into a known estimator kind.
	ErrArtifactInvalid = errors.New("model artifact invalid")
)

// Estimator kinds recognized in the artifact document.
const (
	KindLinear       = "linear"
	KindRandomForest = "random_forest"
)

// artifactDoc is the on-disk shape of the serialized estimator.
// Exactly one kind-specific section is consulted, selected by Kind.
type artifactDoc struct {
	Kind         string   `json:"kind"`
	FeatureNames []string `json:"feature_names,omitempty"`

	// kind: linear
	Intercept    float64   `json:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`

	// kind: random_forest
	Trees []treeDoc `json:"trees,omitempty"`
}

// treeDoc is one regression tree in parallel-array form: node i splits on
// Feature[i] at Threshold[i], descending to Left[i]/Right[i]. A node with
// Left[i] == -1 is a leaf with prediction Value[i].
type treeDoc struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

// Load reads and decodes the estimator artifact at path. The artifact is
// loaded exactly once per run, before any record is processed; there is
// no retry on failure.
func Load(path string) (Estimator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var doc artifactDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactInvalid, path, err)
	}

	switch doc.Kind {
	case KindLinear:
		return newLinear(&doc)
	case KindRandomForest:
		return newRandomForest(&doc)
	case "":
		return nil, fmt.Errorf("%w: %s: missing kind", ErrArtifactInvalid, path)
	default:
		return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrArtifactInvalid, path, doc.Kind)
	}
}
