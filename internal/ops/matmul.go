// Package ops provides the stateless numeric kernels that layers are
// built from: matrix multiplication and the activation functions.
// Kernels operate on dense float32 tensors; activations mutate their
// argument in place.
package ops

import (
	"fmt"

	"github.com/mininn-ml/mininn/internal/tensor"
)

// MatMul computes the matrix product of two rank-2 tensors.
//
// a has shape [m, k], b has shape [k, n]; the result is a freshly
// allocated tensor of shape [m, n] with r[i][j] = Σ_k a[i][k]·b[k][j].
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("matmul operands must not be nil")
	}
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, fmt.Errorf("matmul requires rank-2 tensors, got %s and %s",
			a.Shape(), b.Shape())
	}

	m, k := a.Shape()[0], a.Shape()[1]
	kb, n := b.Shape()[0], b.Shape()[1]
	if k != kb {
		return nil, fmt.Errorf("matmul inner dimensions must agree: %s x %s", a.Shape(), b.Shape())
	}

	result, err := tensor.New(tensor.Shape{m, n})
	if err != nil {
		return nil, err
	}

	aData := a.Data()
	bData := b.Data()
	rData := result.Data()

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += aData[i*k+p] * bData[p*n+j]
			}
			rData[i*n+j] = sum
		}
	}

	return result, nil
}
