package nn

import (
	"fmt"

	"github.com/mininn-ml/mininn/internal/tensor"
)

// Model is an ordered, append-only pipeline of layers plus the
// declared input and output shapes of the network.
//
// A model is built empty, populated with AddLayer and the shape
// setters, then handed to an inference engine (or a serializer).
// There is no layer removal.
type Model struct {
	layers      []Layer
	inputShape  tensor.Shape
	outputShape tensor.Shape
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddLayer appends a layer to the pipeline.
func (m *Model) AddLayer(layer Layer) error {
	if layer == nil {
		return fmt.Errorf("cannot add nil layer to model")
	}
	m.layers = append(m.layers, layer)
	return nil
}

// Layers returns the ordered layer sequence.
func (m *Model) Layers() []Layer {
	return m.layers
}

// NumLayers returns the number of layers.
func (m *Model) NumLayers() int {
	return len(m.layers)
}

// SetInputShape declares the model's expected input shape.
func (m *Model) SetInputShape(shape tensor.Shape) {
	m.inputShape = shape.Clone()
}

// SetOutputShape declares the model's expected output shape.
func (m *Model) SetOutputShape(shape tensor.Shape) {
	m.outputShape = shape.Clone()
}

// InputShape returns the declared input shape.
func (m *Model) InputShape() tensor.Shape {
	return m.inputShape
}

// OutputShape returns the declared output shape.
func (m *Model) OutputShape() tensor.Shape {
	return m.outputShape
}
