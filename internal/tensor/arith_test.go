package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t *testing.T, data []float32, shape Shape) *Tensor {
	t.Helper()
	x, err := FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

func TestAddInPlace(t *testing.T) {
	a := mustFromSlice(t, []float32{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromSlice(t, []float32{10, 20, 30, 40}, Shape{2, 2})

	require.NoError(t, a.AddInPlace(b))
	assert.Equal(t, []float32{11, 22, 33, 44}, a.Data())
	// The operand is untouched.
	assert.Equal(t, []float32{10, 20, 30, 40}, b.Data())
}

func TestSubMulInPlace(t *testing.T) {
	a := mustFromSlice(t, []float32{5, 6}, Shape{2})
	b := mustFromSlice(t, []float32{2, 3}, Shape{2})

	require.NoError(t, a.SubInPlace(b))
	assert.Equal(t, []float32{3, 3}, a.Data())

	require.NoError(t, a.MulInPlace(b))
	assert.Equal(t, []float32{6, 9}, a.Data())
}

func TestInPlaceShapeMismatch(t *testing.T) {
	a := mustFromSlice(t, []float32{1, 2}, Shape{2})
	b := mustFromSlice(t, []float32{1, 2, 3}, Shape{3})

	assert.Error(t, a.AddInPlace(b))
	assert.Error(t, a.SubInPlace(b))
	assert.Error(t, a.MulInPlace(b))
	assert.Error(t, a.DivInPlace(b))
	assert.Error(t, a.AddInPlace(nil))
}

func TestDivInPlace(t *testing.T) {
	a := mustFromSlice(t, []float32{8, 9}, Shape{2})
	b := mustFromSlice(t, []float32{2, 3}, Shape{2})

	require.NoError(t, a.DivInPlace(b))
	assert.Equal(t, []float32{4, 3}, a.Data())
}

// Division stops at the first zero divisor; elements processed before
// it stay divided. This partial-mutation behavior is intentional.
func TestDivInPlaceZeroDivisorLeavesPartialResult(t *testing.T) {
	a := mustFromSlice(t, []float32{8, 9, 10}, Shape{3})
	b := mustFromSlice(t, []float32{2, 0, 5}, Shape{3})

	err := a.DivInPlace(b)
	require.Error(t, err)
	assert.Equal(t, []float32{4, 9, 10}, a.Data())
}

func TestBinaryOperatorsDoNotMutateOperands(t *testing.T) {
	a := mustFromSlice(t, []float32{1, 2}, Shape{2})
	b := mustFromSlice(t, []float32{3, 4}, Shape{2})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 6}, sum.Data())
	assert.Equal(t, []float32{1, 2}, a.Data())
	assert.Equal(t, []float32{3, 4}, b.Data())

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{-2, -2}, diff.Data())

	prod, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 8}, prod.Data())

	quot, err := Div(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 2}, quot.Data())

	_, err = Div(a, mustFromSlice(t, []float32{0, 1}, Shape{2}))
	assert.Error(t, err)
}
