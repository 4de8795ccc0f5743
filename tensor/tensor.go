// Copyright 2025 The mininn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense tensors in the
// mininn inference runtime.
//
// A Tensor is an n-dimensional float32 array with an explicit,
// non-empty shape and a flat row-major buffer:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	v, err := x.At(1, 2)   // bounds-checked element access
//	err = x.Reshape(tensor.Shape{3, 2})
package tensor

import (
	"github.com/mininn-ml/mininn/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants. Only Float32 payloads are populated today;
// Int8 and Int4 are reserved format tags.
const (
	Float32 DataType = tensor.Float32
	Int8    DataType = tensor.Int8
	Int4    DataType = tensor.Int4
)

// Tensor is a dense n-dimensional float32 array.
type Tensor = tensor.Tensor

// New creates a zero-filled Float32 tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// NewWithDType creates a zero-filled tensor with the given shape and
// dtype tag.
func NewWithDType(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.NewWithDType(shape, dtype)
}

// FromSlice creates a Float32 tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Add returns a new tensor holding the elementwise sum a + b.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Sub returns a new tensor holding the elementwise difference a - b.
func Sub(a, b *Tensor) (*Tensor, error) {
	return tensor.Sub(a, b)
}

// Mul returns a new tensor holding the elementwise product a * b.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}

// Div returns a new tensor holding the elementwise quotient a / b.
func Div(a, b *Tensor) (*Tensor, error) {
	return tensor.Div(a, b)
}
