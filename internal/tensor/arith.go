package tensor

import "fmt"

// checkSameShape verifies that other is non-nil and shape-compatible
// for elementwise combination with t.
func (t *Tensor) checkSameShape(other *Tensor) error {
	if other == nil {
		return fmt.Errorf("operand tensor is nil")
	}
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("shape mismatch: %s vs %s", t.shape, other.shape)
	}
	return nil
}

// AddInPlace adds other elementwise into t.
func (t *Tensor) AddInPlace(other *Tensor) error {
	if err := t.checkSameShape(other); err != nil {
		return err
	}
	for i := range t.data {
		t.data[i] += other.data[i]
	}
	return nil
}

// SubInPlace subtracts other elementwise from t.
func (t *Tensor) SubInPlace(other *Tensor) error {
	if err := t.checkSameShape(other); err != nil {
		return err
	}
	for i := range t.data {
		t.data[i] -= other.data[i]
	}
	return nil
}

// MulInPlace multiplies t elementwise by other.
func (t *Tensor) MulInPlace(other *Tensor) error {
	if err := t.checkSameShape(other); err != nil {
		return err
	}
	for i := range t.data {
		t.data[i] *= other.data[i]
	}
	return nil
}

// DivInPlace divides t elementwise by other. A divisor element that
// is exactly zero fails the call at that element; elements processed
// before it remain divided. Callers that need all-or-nothing behavior
// must Clone first.
func (t *Tensor) DivInPlace(other *Tensor) error {
	if err := t.checkSameShape(other); err != nil {
		return err
	}
	for i := range t.data {
		if other.data[i] == 0 {
			return fmt.Errorf("division by zero at element %d", i)
		}
		t.data[i] /= other.data[i]
	}
	return nil
}

// Add returns a new tensor holding a + b.
func Add(a, b *Tensor) (*Tensor, error) {
	result := a.Clone()
	if err := result.AddInPlace(b); err != nil {
		return nil, err
	}
	return result, nil
}

// Sub returns a new tensor holding a - b.
func Sub(a, b *Tensor) (*Tensor, error) {
	result := a.Clone()
	if err := result.SubInPlace(b); err != nil {
		return nil, err
	}
	return result, nil
}

// Mul returns a new tensor holding the elementwise product a * b.
func Mul(a, b *Tensor) (*Tensor, error) {
	result := a.Clone()
	if err := result.MulInPlace(b); err != nil {
		return nil, err
	}
	return result, nil
}

// Div returns a new tensor holding the elementwise quotient a / b.
func Div(a, b *Tensor) (*Tensor, error) {
	result := a.Clone()
	if err := result.DivInPlace(b); err != nil {
		return nil, err
	}
	return result, nil
}
