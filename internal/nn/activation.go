package nn

import (
	"github.com/mininn-ml/mininn/internal/ops"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation layer: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Type returns LayerReLU.
func (r *ReLU) Type() LayerType {
	return LayerReLU
}

// Forward copies input and applies ReLU to the copy.
func (r *ReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input.Clone()
	ops.ReLU(output)
	return output, nil
}

// Sigmoid is a sigmoid activation layer: σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Type returns LayerSigmoid.
func (s *Sigmoid) Type() LayerType {
	return LayerSigmoid
}

// Forward copies input and applies the sigmoid to the copy.
func (s *Sigmoid) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input.Clone()
	ops.Sigmoid(output)
	return output, nil
}

// Softmax is a softmax activation layer. It normalizes the flattened
// elements of its input into a probability distribution regardless of
// rank.
type Softmax struct{}

// NewSoftmax creates a Softmax activation layer.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Type returns LayerSoftmax.
func (s *Softmax) Type() LayerType {
	return LayerSoftmax
}

// Forward copies input and applies softmax to the copy.
func (s *Softmax) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input.Clone()
	if err := ops.Softmax(output); err != nil {
		return nil, err
	}
	return output, nil
}
