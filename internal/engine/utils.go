package engine

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mininn-ml/mininn/internal/serialization"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// Prediction is one (class index, score) result entry.
type Prediction struct {
	Index int
	Value float32
}

// NormalizeInput returns (x - mean) / std applied elementwise to a
// copy of input. std must be non-zero.
func NormalizeInput(input *tensor.Tensor, mean, std float32) (*tensor.Tensor, error) {
	if input == nil {
		return nil, fmt.Errorf("input tensor must not be nil")
	}
	if std == 0 {
		return nil, fmt.Errorf("standard deviation cannot be zero for normalization")
	}

	normalized := input.Clone()
	data := normalized.Data()
	for i := range data {
		data[i] = (data[i] - mean) / std
	}
	return normalized, nil
}

// PreprocessImage packs raw pixel data into a tensor of shape
// [height, width, channels]. The pixel count must match the
// dimensions exactly.
func PreprocessImage(pixels []float32, width, height, channels int) (*tensor.Tensor, error) {
	if len(pixels) != width*height*channels {
		return nil, fmt.Errorf("pixel data size %d does not match dimensions %dx%dx%d",
			len(pixels), width, height, channels)
	}
	return tensor.FromSlice(pixels, tensor.Shape{height, width, channels})
}

// TopK returns up to k (index, value) pairs from a rank-1 output
// tensor, sorted by strictly descending value. Ties keep their input
// order. k larger than the tensor is clamped.
func TopK(output *tensor.Tensor, k int) ([]Prediction, error) {
	if output == nil || output.Rank() != 1 {
		return nil, fmt.Errorf("topK requires a rank-1 tensor")
	}
	if k > output.Size() {
		k = output.Size()
	}
	if k < 0 {
		k = 0
	}

	predictions := make([]Prediction, output.Size())
	for i, v := range output.Data() {
		predictions[i] = Prediction{Index: i, Value: v}
	}
	sort.SliceStable(predictions, func(a, b int) bool {
		return predictions[a].Value > predictions[b].Value
	})

	return predictions[:k], nil
}

// ArgMax returns the index of the maximum value of a rank-1 tensor,
// first occurrence on ties.
func ArgMax(output *tensor.Tensor) (int, error) {
	if output == nil || output.Rank() != 1 {
		return 0, fmt.Errorf("argMax requires a rank-1 tensor")
	}
	if output.Size() == 0 {
		return 0, fmt.Errorf("cannot find argmax of empty tensor")
	}

	data := output.Data()
	maxIdx := 0
	maxVal := data[0]
	for i := 1; i < len(data); i++ {
		if data[i] > maxVal {
			maxVal = data[i]
			maxIdx = i
		}
	}
	return maxIdx, nil
}

// IsValidModelFile reports whether path exists and starts with the
// model-format magic number. It never fails; it does not validate the
// rest of the format.
func IsValidModelFile(path string) bool {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close() //nolint:errcheck // read-only file

	var magic uint32
	if err := binary.Read(io.LimitReader(file, 4), binary.LittleEndian, &magic); err != nil {
		return false
	}
	return magic == serialization.MagicNumber
}

// ValidateTensorShape fails with a description of expected vs. actual
// shape when t does not match expected.
func ValidateTensorShape(t *tensor.Tensor, expected tensor.Shape) error {
	if t == nil {
		return fmt.Errorf("tensor must not be nil")
	}
	if !t.Shape().Equal(expected) {
		return fmt.Errorf("tensor shape validation failed: expected %s, got %s",
			expected, t.Shape())
	}
	return nil
}
