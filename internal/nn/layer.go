// Package nn provides the layer and model abstractions for the mininn
// inference runtime: a closed set of forward-transform layer types and
// an ordered Model container that chains them.
package nn

import (
	"github.com/mininn-ml/mininn/internal/tensor"
)

// LayerType identifies the variant of a layer. The numeric values are
// the on-disk layer tags of the model file format and must not change.
type LayerType uint8

// Supported layer types.
const (
	LayerLinear LayerType = iota
	LayerReLU
	LayerSigmoid
	LayerSoftmax
)

// String returns a human-readable layer type name.
func (lt LayerType) String() string {
	switch lt {
	case LayerLinear:
		return "Linear"
	case LayerReLU:
		return "ReLU"
	case LayerSigmoid:
		return "Sigmoid"
	case LayerSoftmax:
		return "Softmax"
	default:
		return "Unknown"
	}
}

// Layer is a single forward transformation step. Layers are immutable
// after construction and never retain references to the tensors they
// are given: Forward returns a freshly allocated output.
type Layer interface {
	// Type returns the layer's variant tag.
	Type() LayerType

	// Forward applies the layer's transformation to input.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)
}
