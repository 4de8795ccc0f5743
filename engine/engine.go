// Copyright 2025 The mininn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides the public API for running inference.
//
// An InferenceEngine owns one model and executes its forward pass:
//
//	eng, err := engine.NewFromFile("model.minn")
//	eng.EnableProfiling(true)
//	output, err := eng.Predict(input)
//	best, err := engine.ArgMax(output)
//
// A single engine mutates its own profiling state on every call and
// must not be shared by concurrent callers without external mutual
// exclusion.
package engine

import (
	"github.com/mininn-ml/mininn/internal/engine"
	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// InferenceEngine owns one model and runs its forward pass.
type InferenceEngine = engine.InferenceEngine

// InferenceStats holds the profiling results of the last Predict call.
type InferenceStats = engine.InferenceStats

// Prediction is one (class index, score) result entry.
type Prediction = engine.Prediction

// New creates an inference engine that takes ownership of model.
func New(model *nn.Model) (*InferenceEngine, error) {
	return engine.New(model)
}

// NewFromFile loads a model file and creates an engine for it.
func NewFromFile(path string) (*InferenceEngine, error) {
	return engine.NewFromFile(path)
}

// NormalizeInput returns (x - mean) / std applied elementwise to a
// copy of input.
func NormalizeInput(input *tensor.Tensor, mean, std float32) (*tensor.Tensor, error) {
	return engine.NormalizeInput(input, mean, std)
}

// PreprocessImage packs raw pixel data into a tensor of shape
// [height, width, channels].
func PreprocessImage(pixels []float32, width, height, channels int) (*tensor.Tensor, error) {
	return engine.PreprocessImage(pixels, width, height, channels)
}

// TopK returns up to k (index, value) pairs sorted by descending
// value from a rank-1 tensor.
func TopK(output *tensor.Tensor, k int) ([]Prediction, error) {
	return engine.TopK(output, k)
}

// ArgMax returns the index of the maximum value of a rank-1 tensor.
func ArgMax(output *tensor.Tensor) (int, error) {
	return engine.ArgMax(output)
}

// IsValidModelFile reports whether path exists and starts with the
// model-format magic number.
func IsValidModelFile(path string) bool {
	return engine.IsValidModelFile(path)
}

// ValidateTensorShape fails with a description of expected vs. actual
// shape on mismatch.
func ValidateTensorShape(t *tensor.Tensor, expected tensor.Shape) error {
	return engine.ValidateTensorShape(t, expected)
}
