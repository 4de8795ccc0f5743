package tensor

import (
	"fmt"
)

// Tensor is a dense n-dimensional float array.
//
// A tensor always satisfies two invariants: its shape is non-empty
// with strictly positive dimensions, and len(Data()) equals
// Shape().NumElements(). The dtype tag records the on-disk element
// type; only Float32 data is populated by this runtime.
type Tensor struct {
	shape  Shape
	stride []int
	dtype  DataType
	data   []float32
}

// New creates a zero-filled Float32 tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	return NewWithDType(shape, Float32)
}

// NewWithDType creates a zero-filled tensor with the given shape and
// dtype tag. The backing buffer is always float32; the tag is
// metadata carried for format compatibility.
func NewWithDType(shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		data:   make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice creates a Float32 tensor holding a copy of data.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %s (%d elements)",
			len(data), shape, shape.NumElements())
	}

	t := &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  Float32,
		data:   make([]float32, len(data)),
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// DType returns the tensor's data type tag.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// ByteSize returns the memory footprint of the element buffer.
func (t *Tensor) ByteSize() int {
	return len(t.data) * Float32.Size()
}

// Data returns the flat row-major element buffer.
// Mutations through the returned slice are visible in the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// offset computes the row-major linear offset for the given indices,
// bounds-checking every dimension.
func (t *Tensor) offset(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("expected %d indices for shape %s, got %d",
			len(t.shape), t.shape, len(indices))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("index %d out of range for dimension %d (size %d)",
				idx, i, t.shape[i])
		}
		off += idx * t.stride[i]
	}
	return off, nil
}

// At returns the element at the given indices with bounds checking.
func (t *Tensor) At(indices ...int) (float32, error) {
	off, err := t.offset(indices)
	if err != nil {
		return 0, err
	}
	return t.data[off], nil
}

// Set stores v at the given indices with bounds checking.
func (t *Tensor) Set(v float32, indices ...int) error {
	off, err := t.offset(indices)
	if err != nil {
		return err
	}
	t.data[off] = v
	return nil
}

// Reshape reinterprets the tensor's buffer under a new shape. The new
// shape must describe the same number of elements; element order is
// preserved.
func (t *Tensor) Reshape(newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	if newShape.NumElements() != len(t.data) {
		return fmt.Errorf("cannot reshape %s (%d elements) to %s (%d elements)",
			t.shape, len(t.data), newShape, newShape.NumElements())
	}

	t.shape = newShape.Clone()
	t.stride = newShape.ComputeStrides()
	return nil
}

// Clone returns a deep copy with an independent buffer.
func (t *Tensor) Clone() *Tensor {
	clone := &Tensor{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		dtype:  t.dtype,
		data:   make([]float32, len(t.data)),
	}
	copy(clone.data, t.data)
	return clone
}

// String formats a short description, e.g. "Tensor(float32, [2, 3])".
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%s, %s)", t.dtype, t.shape)
}
