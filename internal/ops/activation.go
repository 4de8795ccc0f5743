package ops

import (
	"fmt"
	"math"

	"github.com/mininn-ml/mininn/internal/tensor"
)

// ReLU applies max(x, 0) to every element of t in place.
func ReLU(t *tensor.Tensor) {
	data := t.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}
}

// Sigmoid applies 1 / (1 + exp(-x)) to every element of t in place.
// The intermediate exponential is computed in float64, so inputs of
// large magnitude saturate to 0 or 1 instead of overflowing.
func Sigmoid(t *tensor.Tensor) {
	data := t.Data()
	for i, v := range data {
		data[i] = float32(1.0 / (1.0 + math.Exp(-float64(v))))
	}
}

// Softmax normalizes the flattened elements of t into a probability
// distribution, in place. The global maximum is subtracted before
// exponentiation, so the result is finite for inputs spanning at
// least ±1000 and invariant under adding a constant to every element.
func Softmax(t *tensor.Tensor) error {
	if t == nil || t.Size() == 0 {
		return fmt.Errorf("softmax requires a non-empty tensor")
	}

	data := t.Data()

	maxVal := data[0]
	for _, v := range data[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float64
	for i, v := range data {
		e := math.Exp(float64(v - maxVal))
		data[i] = float32(e)
		sum += e
	}

	for i := range data {
		data[i] = float32(float64(data[i]) / sum)
	}
	return nil
}
