// Package tensors - shape and dtype validation shared by the tensor-backed APIs.
package tensors

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Float64Matrix checks that t is a dense 2-D Float64 tensor and returns its
// row-major backing slice together with the row and column counts. The name
// identifies the argument in error messages.
//
// The backing slice is shared with the tensor, not copied. Callers must treat
// it as read-only.
func Float64Matrix(t *tensor.Dense, name string) ([]float64, int, int, error) {
	if t == nil {
		return nil, 0, 0, errors.Errorf("%s: tensor is nil", name)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, 0, 0, errors.Errorf("%s: expected a Float64 tensor, given %v", name, t.Dtype())
	}
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, 0, 0, errors.Errorf("%s: expected a 2-D tensor, given shape %v", name, shape)
	}
	return t.Float64s(), shape[0], shape[1], nil
}

// Float64Cube is Float64Matrix for 3-D tensors.
func Float64Cube(t *tensor.Dense, name string) ([]float64, int, int, int, error) {
	if t == nil {
		return nil, 0, 0, 0, errors.Errorf("%s: tensor is nil", name)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, 0, 0, 0, errors.Errorf("%s: expected a Float64 tensor, given %v", name, t.Dtype())
	}
	shape := t.Shape()
	if len(shape) != 3 {
		return nil, 0, 0, 0, errors.Errorf("%s: expected a 3-D tensor, given shape %v", name, shape)
	}
	return t.Float64s(), shape[0], shape[1], shape[2], nil
}
