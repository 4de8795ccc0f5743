package nn

import (
	"fmt"

	"github.com/mininn-ml/mininn/internal/ops"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// Linear implements a fully connected layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features] or [in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y has shape [batch_size, out_features] or [out_features]
type Linear struct {
	weights *tensor.Tensor // [in_features, out_features]
	bias    *tensor.Tensor // [out_features]
}

// NewLinear creates a Linear layer from pre-built weight and bias
// tensors. Weights must be rank 2, bias rank 1, and the weight output
// dimension must equal the bias length.
func NewLinear(weights, bias *tensor.Tensor) (*Linear, error) {
	if weights == nil || bias == nil {
		return nil, fmt.Errorf("linear layer weights and bias must not be nil")
	}
	if weights.Rank() != 2 {
		return nil, fmt.Errorf("linear layer weights must be rank 2, got shape %s", weights.Shape())
	}
	if bias.Rank() != 1 {
		return nil, fmt.Errorf("linear layer bias must be rank 1, got shape %s", bias.Shape())
	}
	if weights.Shape()[1] != bias.Shape()[0] {
		return nil, fmt.Errorf("weight output dimension must match bias length: %d != %d",
			weights.Shape()[1], bias.Shape()[0])
	}

	return &Linear{weights: weights, bias: bias}, nil
}

// Type returns LayerLinear.
func (l *Linear) Type() LayerType {
	return LayerLinear
}

// InFeatures returns the weight input dimension.
func (l *Linear) InFeatures() int {
	return l.weights.Shape()[0]
}

// OutFeatures returns the weight output dimension.
func (l *Linear) OutFeatures() int {
	return l.weights.Shape()[1]
}

// Weights returns the weight tensor.
func (l *Linear) Weights() *tensor.Tensor {
	return l.weights
}

// Bias returns the bias tensor.
func (l *Linear) Bias() *tensor.Tensor {
	return l.bias
}

// Forward computes x @ W + b.
//
// A rank-1 input of length in_features produces a rank-1 output of
// length out_features. A rank-2 input of shape [batch, in_features]
// produces [batch, out_features] with the bias added to every row.
func (l *Linear) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	switch input.Rank() {
	case 1:
		if input.Shape()[0] != l.InFeatures() {
			return nil, fmt.Errorf("input features must match weight input dimension: %d != %d",
				input.Shape()[0], l.InFeatures())
		}

		row := input.Clone()
		if err := row.Reshape(tensor.Shape{1, input.Shape()[0]}); err != nil {
			return nil, err
		}

		output, err := ops.MatMul(row, l.weights)
		if err != nil {
			return nil, err
		}

		l.addBiasRows(output)
		if err := output.Reshape(tensor.Shape{l.OutFeatures()}); err != nil {
			return nil, err
		}
		return output, nil

	case 2:
		if input.Shape()[1] != l.InFeatures() {
			return nil, fmt.Errorf("input features must match weight input dimension: %d != %d",
				input.Shape()[1], l.InFeatures())
		}

		output, err := ops.MatMul(input, l.weights)
		if err != nil {
			return nil, err
		}

		l.addBiasRows(output)
		return output, nil

	default:
		return nil, fmt.Errorf("linear layer input must be rank 1 or 2, got shape %s", input.Shape())
	}
}

// addBiasRows adds the bias vector to every row of a [batch, out]
// tensor.
func (l *Linear) addBiasRows(t *tensor.Tensor) {
	rows, cols := t.Shape()[0], t.Shape()[1]
	data := t.Data()
	bias := l.bias.Data()
	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]
		for c := 0; c < cols; c++ {
			row[c] += bias[c]
		}
	}
}
