// Copyright 2025 The mininn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for layers and models.
//
// A Model is an ordered pipeline of layers plus declared input and
// output shapes:
//
//	model := nn.NewModel()
//	linear, err := nn.NewLinear(weights, bias)
//	err = model.AddLayer(linear)
//	err = model.AddLayer(nn.NewReLU())
//	model.SetInputShape(tensor.Shape{2})
//	model.SetOutputShape(tensor.Shape{3})
package nn

import (
	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// LayerType identifies the variant of a layer.
type LayerType = nn.LayerType

// Layer type constants. The numeric values are the on-disk layer tags
// of the model file format.
const (
	LayerLinear  LayerType = nn.LayerLinear
	LayerReLU    LayerType = nn.LayerReLU
	LayerSigmoid LayerType = nn.LayerSigmoid
	LayerSoftmax LayerType = nn.LayerSoftmax
)

// Layer is a single forward transformation step.
type Layer = nn.Layer

// Linear is a fully connected layer: y = x @ W + b.
type Linear = nn.Linear

// ReLU is a Rectified Linear Unit activation layer.
type ReLU = nn.ReLU

// Sigmoid is a sigmoid activation layer.
type Sigmoid = nn.Sigmoid

// Softmax is a softmax activation layer.
type Softmax = nn.Softmax

// Model is an ordered pipeline of layers plus declared input/output
// shapes.
type Model = nn.Model

// NewModel creates an empty model.
func NewModel() *Model {
	return nn.NewModel()
}

// NewLinear creates a Linear layer from pre-built weight ([in, out])
// and bias ([out]) tensors.
func NewLinear(weights, bias *tensor.Tensor) (*Linear, error) {
	return nn.NewLinear(weights, bias)
}

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// NewSoftmax creates a Softmax activation layer.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}
