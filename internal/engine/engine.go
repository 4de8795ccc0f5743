// Package engine executes model forward passes over dense tensors,
// with optional timing and memory instrumentation.
package engine

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/serialization"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// linearLayerBytesEstimate is the fixed per-Linear-layer contribution
// to the memory estimate. It is a deliberately rough placeholder;
// the estimate is advisory, not an exact count.
const linearLayerBytesEstimate = 1_000_000

// InferenceEngine owns one model for its entire lifetime and runs its
// forward pass. The engine mutates its own profiling state on every
// Predict, so a single engine must not be shared by concurrent
// callers without external mutual exclusion; parallel inference needs
// independent engine instances.
type InferenceEngine struct {
	model            *nn.Model
	profilingEnabled bool
	lastStats        InferenceStats

	// Intermediate buffer slots. Shapes are not precomputed; the
	// readiness flag is the only observable effect for now.
	intermediates []*tensor.Tensor
	buffersReady  bool
}

// New creates an inference engine that takes ownership of model.
// The model must be non-nil, contain at least one layer, and declare
// both an input and an output shape.
func New(model *nn.Model) (*InferenceEngine, error) {
	if model == nil {
		return nil, fmt.Errorf("cannot create inference engine with nil model")
	}
	if model.NumLayers() == 0 {
		return nil, fmt.Errorf("cannot create inference engine with empty model")
	}
	if len(model.InputShape()) == 0 || len(model.OutputShape()) == 0 {
		return nil, fmt.Errorf("model must have defined input and output shapes")
	}

	return &InferenceEngine{model: model}, nil
}

// NewFromFile loads a model file and creates an engine for it.
func NewFromFile(path string) (*InferenceEngine, error) {
	model, err := serialization.LoadModel(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inference engine")
	}
	return New(model)
}

// Predict runs the full forward pass for a single input tensor.
//
// The input must match the model's declared input shape and be
// float32. The returned tensor is freshly allocated; the input is
// never retained or mutated.
func (e *InferenceEngine) Predict(input *tensor.Tensor) (*tensor.Tensor, error) {
	start := time.Now()

	if e.profilingEnabled {
		e.lastStats = InferenceStats{
			LayerTimes: make([]time.Duration, e.model.NumLayers()),
		}
	}

	if err := e.validateInput(input); err != nil {
		return nil, err
	}

	output, err := e.forward(input)
	if err != nil {
		return nil, err
	}

	if e.profilingEnabled {
		e.lastStats.TotalTime = time.Since(start)
		e.updateMemoryUsage()
		klog.V(1).Infof("predict completed in %v", e.lastStats.TotalTime)
	}

	return output, nil
}

// PredictBatch runs Predict on each input independently, in order.
// There is no shared batched fast path.
func (e *InferenceEngine) PredictBatch(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("cannot process empty batch")
	}

	outputs := make([]*tensor.Tensor, 0, len(inputs))
	for i, input := range inputs {
		output, err := e.Predict(input)
		if err != nil {
			return nil, errors.Wrapf(err, "batch input %d", i)
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// validateInput checks rank, per-dimension sizes, and dtype against
// the model's declared input shape.
func (e *InferenceEngine) validateInput(input *tensor.Tensor) error {
	if input == nil {
		return fmt.Errorf("input tensor must not be nil")
	}

	expected := e.model.InputShape()
	if input.Rank() != expected.Rank() {
		return fmt.Errorf("input tensor rank mismatch: expected %d, got %d",
			expected.Rank(), input.Rank())
	}
	for i, dim := range expected {
		if input.Shape()[i] != dim {
			return fmt.Errorf("input tensor shape mismatch at dimension %d: expected %d, got %d",
				i, dim, input.Shape()[i])
		}
	}
	if input.DType() != tensor.Float32 {
		return fmt.Errorf("input tensor must be float32, got %s", input.DType())
	}
	return nil
}

// forward threads the tensor through each layer in order. Each
// layer's output becomes the next layer's input; no stage retains a
// reference to its input.
func (e *InferenceEngine) forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	current := input

	for i, layer := range e.model.Layers() {
		layerStart := time.Now()

		output, err := layer.Forward(current)
		if err != nil {
			return nil, errors.Wrapf(err, "error in layer %d (type: %s)", i, layer.Type())
		}

		if e.profilingEnabled {
			e.lastStats.LayerTimes[i] = time.Since(layerStart)
		}
		current = output
	}

	if !current.Shape().Equal(e.model.OutputShape()) {
		return nil, fmt.Errorf("output shape mismatch: expected %s, got %s",
			e.model.OutputShape(), current.Shape())
	}
	return current, nil
}

// updateMemoryUsage recomputes the approximate memory estimate: a
// fixed heuristic per Linear layer plus the bytes of any allocated
// intermediate buffers.
func (e *InferenceEngine) updateMemoryUsage() {
	var total uint64
	for _, layer := range e.model.Layers() {
		if layer.Type() == nn.LayerLinear {
			total += linearLayerBytesEstimate
		}
	}
	for _, t := range e.intermediates {
		if t != nil {
			total += uint64(t.ByteSize())
		}
	}
	e.lastStats.MemoryUsageBytes = total
}

// PreallocateBuffers marks intermediate buffers as ready. Shapes are
// determined dynamically during the forward pass, so the slots stay
// empty; the call is idempotent and never fails.
func (e *InferenceEngine) PreallocateBuffers() {
	if e.buffersReady {
		return
	}
	e.intermediates = make([]*tensor.Tensor, e.model.NumLayers())
	e.buffersReady = true
}

// ClearBuffers drops intermediate buffers. Idempotent, never fails.
func (e *InferenceEngine) ClearBuffers() {
	e.intermediates = nil
	e.buffersReady = false
}

// InputShape returns the model's declared input shape.
func (e *InferenceEngine) InputShape() tensor.Shape {
	return e.model.InputShape()
}

// OutputShape returns the model's declared output shape.
func (e *InferenceEngine) OutputShape() tensor.Shape {
	return e.model.OutputShape()
}

// NumLayers returns the model's layer count.
func (e *InferenceEngine) NumLayers() int {
	return e.model.NumLayers()
}

// EnableProfiling toggles timing and memory instrumentation.
func (e *InferenceEngine) EnableProfiling(enable bool) {
	e.profilingEnabled = enable
}

// LastStats returns the stats collected by the most recent profiled
// Predict call.
func (e *InferenceEngine) LastStats() InferenceStats {
	return e.lastStats
}
