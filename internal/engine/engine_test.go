package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/serialization"
	"github.com/mininn-ml/mininn/internal/tensor"
)

func mustFromSlice(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

// buildTestModel creates the fixture network Linear(2→3) → ReLU.
func buildTestModel(t *testing.T) *nn.Model {
	t.Helper()

	weights := mustFromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	bias := mustFromSlice(t, []float32{0.1, 0.2, 0.3}, tensor.Shape{3})
	linear, err := nn.NewLinear(weights, bias)
	require.NoError(t, err)

	model := nn.NewModel()
	require.NoError(t, model.AddLayer(linear))
	require.NoError(t, model.AddLayer(nn.NewReLU()))
	model.SetInputShape(tensor.Shape{2})
	model.SetOutputShape(tensor.Shape{3})
	return model
}

// buildIdentityModel creates Linear(2→2) with identity weights and
// zero bias, so outputs mirror inputs.
func buildIdentityModel(t *testing.T) *nn.Model {
	t.Helper()

	weights := mustFromSlice(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})
	bias := mustFromSlice(t, []float32{0, 0}, tensor.Shape{2})
	linear, err := nn.NewLinear(weights, bias)
	require.NoError(t, err)

	model := nn.NewModel()
	require.NoError(t, model.AddLayer(linear))
	model.SetInputShape(tensor.Shape{2})
	model.SetOutputShape(tensor.Shape{2})
	return model
}

func TestNewValidation(t *testing.T) {
	t.Run("nil model", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})

	t.Run("empty model", func(t *testing.T) {
		model := nn.NewModel()
		model.SetInputShape(tensor.Shape{2})
		model.SetOutputShape(tensor.Shape{3})
		_, err := New(model)
		assert.Error(t, err)
	})

	t.Run("missing input shape", func(t *testing.T) {
		model := nn.NewModel()
		require.NoError(t, model.AddLayer(nn.NewReLU()))
		model.SetOutputShape(tensor.Shape{3})
		_, err := New(model)
		assert.Error(t, err)
	})

	t.Run("missing output shape", func(t *testing.T) {
		model := nn.NewModel()
		require.NoError(t, model.AddLayer(nn.NewReLU()))
		model.SetInputShape(tensor.Shape{2})
		_, err := New(model)
		assert.Error(t, err)
	})
}

func TestPredictEndToEnd(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)

	input := mustFromSlice(t, []float32{1, 2}, tensor.Shape{2})
	output, err := eng.Predict(input)
	require.NoError(t, err)

	require.True(t, output.Shape().Equal(tensor.Shape{3}))
	expected := []float32{9.1, 12.2, 15.3}
	for i, e := range expected {
		assert.InDelta(t, e, output.Data()[i], 1e-5)
	}
}

func TestPredictValidatesInput(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)

	_, err = eng.Predict(nil)
	assert.Error(t, err, "nil input")

	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{1, 2}))
	assert.Error(t, err, "wrong rank")

	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2, 3}, tensor.Shape{3}))
	assert.Error(t, err, "wrong dimension size")

	badDType, err := tensor.NewWithDType(tensor.Shape{2}, tensor.Int8)
	require.NoError(t, err)
	_, err = eng.Predict(badDType)
	assert.Error(t, err, "wrong dtype")
}

func TestPredictOutputShapeMismatchFails(t *testing.T) {
	model := buildTestModel(t)
	model.SetOutputShape(tensor.Shape{4}) // network actually produces [3]

	eng, err := New(model)
	require.NoError(t, err)

	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{2}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output shape mismatch")
}

func TestPredictWrapsLayerErrors(t *testing.T) {
	// The second Linear expects 3 features but receives 2 once the
	// declared shapes are bypassed, so its forward call fails.
	weights := mustFromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	bias := mustFromSlice(t, []float32{0, 0}, tensor.Shape{2})
	linear, err := nn.NewLinear(weights, bias)
	require.NoError(t, err)

	model := nn.NewModel()
	require.NoError(t, model.AddLayer(nn.NewReLU()))
	require.NoError(t, model.AddLayer(linear))
	model.SetInputShape(tensor.Shape{2})
	model.SetOutputShape(tensor.Shape{2})

	eng, err := New(model)
	require.NoError(t, err)

	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{2}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layer 1")
	assert.Contains(t, err.Error(), "Linear")
}

func TestPredictBatch(t *testing.T) {
	eng, err := New(buildIdentityModel(t))
	require.NoError(t, err)

	inputs := []*tensor.Tensor{
		mustFromSlice(t, []float32{1, 10}, tensor.Shape{2}),
		mustFromSlice(t, []float32{2, 20}, tensor.Shape{2}),
		mustFromSlice(t, []float32{3, 30}, tensor.Shape{2}),
	}

	outputs, err := eng.PredictBatch(inputs)
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	// Outputs preserve input order.
	for i, output := range outputs {
		assert.InDelta(t, float32(i+1), output.Data()[0], 1e-6)
		assert.InDelta(t, float32((i+1)*10), output.Data()[1], 1e-6)
	}
}

func TestPredictBatchRejectsEmpty(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)

	_, err = eng.PredictBatch(nil)
	assert.Error(t, err)
}

func TestProfilingStats(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)
	eng.EnableProfiling(true)

	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{2}))
	require.NoError(t, err)

	stats := eng.LastStats()
	assert.Greater(t, stats.TotalTime, time.Duration(0))
	require.Len(t, stats.LayerTimes, 2)
	// One Linear layer contributes the fixed heuristic estimate.
	assert.Equal(t, uint64(1_000_000), stats.MemoryUsageBytes)
	assert.Contains(t, stats.String(), "layer 0")
}

func TestProfilingDisabledLeavesStatsEmpty(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)

	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{2}))
	require.NoError(t, err)

	assert.Equal(t, InferenceStats{}, eng.LastStats())
}

func TestProfilingStatsResetPerCall(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)
	eng.EnableProfiling(true)

	input := mustFromSlice(t, []float32{1, 2}, tensor.Shape{2})
	_, err = eng.Predict(input)
	require.NoError(t, err)
	first := eng.LastStats()

	_, err = eng.Predict(input)
	require.NoError(t, err)
	second := eng.LastStats()

	require.Len(t, second.LayerTimes, 2)
	assert.NotSame(t, &first.LayerTimes[0], &second.LayerTimes[0])
}

func TestBufferTogglesAreIdempotent(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)

	eng.PreallocateBuffers()
	eng.PreallocateBuffers()
	eng.ClearBuffers()
	eng.ClearBuffers()
	eng.PreallocateBuffers()

	// Still fully functional afterward.
	_, err = eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{2}))
	assert.NoError(t, err)
}

func TestAccessors(t *testing.T) {
	eng, err := New(buildTestModel(t))
	require.NoError(t, err)

	assert.True(t, eng.InputShape().Equal(tensor.Shape{2}))
	assert.True(t, eng.OutputShape().Equal(tensor.Shape{3}))
	assert.Equal(t, 2, eng.NumLayers())
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.minn")
	require.NoError(t, serialization.SaveModel(buildTestModel(t), path))

	eng, err := NewFromFile(path)
	require.NoError(t, err)

	output, err := eng.Predict(mustFromSlice(t, []float32{1, 2}, tensor.Shape{2}))
	require.NoError(t, err)
	assert.InDelta(t, 9.1, output.Data()[0], 1e-5)
}

func TestNewFromFileMissing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.minn"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.minn")
}
