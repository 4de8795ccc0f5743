// Copyright 2025 The mininn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the public API for the numeric kernels:
// matrix multiplication and the in-place activation functions.
package ops

import (
	"github.com/mininn-ml/mininn/internal/ops"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// MatMul computes the matrix product of two rank-2 tensors, returning
// a freshly allocated result of shape [a.rows, b.cols].
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.MatMul(a, b)
}

// ReLU applies max(x, 0) to every element of t in place.
func ReLU(t *tensor.Tensor) {
	ops.ReLU(t)
}

// Sigmoid applies 1 / (1 + exp(-x)) to every element of t in place.
func Sigmoid(t *tensor.Tensor) {
	ops.Sigmoid(t)
}

// Softmax normalizes the flattened elements of t into a probability
// distribution, in place.
func Softmax(t *tensor.Tensor) error {
	return ops.Softmax(t)
}
