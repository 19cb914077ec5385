package nn

import "github.com/ember-ml/ember/internal/tensor"

// ReLU applies the rectified linear unit: max(x, 0) element-wise.
// At exactly zero the gradient routes to the input, per the maximum
// first-operand tie rule.
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward computes max(input, 0).
func (r *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	return tensor.MaximumScalar(input, 0)
}

// Parameters returns an empty slice; ReLU has no trainable state.
func (r *ReLU) Parameters() []*Parameter {
	return nil
}
