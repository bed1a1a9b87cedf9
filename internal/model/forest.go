// Smart Uniform Inventory Forecasting System - Demand Forecasting Backend
// Copyright 2026 munchies09
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/munchies09/backend-SmartUniformInventoryForecastingSystem

package model

import "fmt"

// RandomForest is an ensemble of regression trees whose per-tree
// predictions are averaged. Trees are stored in parallel-array form as
// exported by the training pipeline.
type RandomForest struct {
	trees        []treeDoc
	featureNames []string
}

func newRandomForest(doc *artifactDoc) (*RandomForest, error) {
	if len(doc.Trees) == 0 {
		return nil, fmt.Errorf("%w: random forest has no trees", ErrArtifactInvalid)
	}

	for i := range doc.Trees {
		if err := validateTree(&doc.Trees[i]); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrArtifactInvalid, i, err)
		}
	}

	return &RandomForest{
		trees:        doc.Trees,
		featureNames: doc.FeatureNames,
	}, nil
}

// validateTree checks the parallel arrays are consistent so traversal
// cannot index out of range at prediction time.
func validateTree(t *treeDoc) error {
	n := len(t.Feature)
	if n == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("node arrays have inconsistent lengths")
	}

	for i := 0; i < n; i++ {
		if t.Left[i] == -1 {
			continue // leaf
		}
		if t.Left[i] < 0 || t.Left[i] >= n || t.Right[i] < 0 || t.Right[i] >= n {
			return fmt.Errorf("node %d has child index out of range", i)
		}
	}
	return nil
}

// Predict averages the per-tree predictions for each row.
func (f *RandomForest) Predict(matrix [][]float64) ([]float64, error) {
	predictions := make([]float64, len(matrix))
	for i, row := range matrix {
		var sum float64
		for t := range f.trees {
			v, err := f.trees[t].predict(row)
			if err != nil {
				return nil, fmt.Errorf("row %d, tree %d: %w", i, t, err)
			}
			sum += v
		}
		predictions[i] = sum / float64(len(f.trees))
	}
	return predictions, nil
}

// FeatureNames returns the training-time vocabulary, or nil when the
// artifact carried none.
func (f *RandomForest) FeatureNames() []string {
	return f.featureNames
}

// predict walks the tree from the root for a single feature row.
func (t *treeDoc) predict(row []float64) (float64, error) {
	node := 0
	// A tree with n nodes has depth < n; more steps means a cycle.
	for steps := 0; steps < len(t.Feature); steps++ {
		if t.Left[node] == -1 {
			return t.Value[node], nil
		}

		feat := t.Feature[node]
		if feat < 0 || feat >= len(row) {
			return 0, fmt.Errorf("split feature %d outside row width %d", feat, len(row))
		}

		if row[feat] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return 0, fmt.Errorf("traversal did not reach a leaf")
}
