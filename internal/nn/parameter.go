package nn

import "github.com/ember-ml/ember/internal/tensor"

// Parameter is a named, trainable leaf tensor. Optimizers read its
// accumulated gradient and write updates through its data buffer in place.
type Parameter struct {
	name  string
	value *tensor.Tensor
}

// NewParameter wraps a tensor as a named parameter.
// The tensor should be a gradient-requiring leaf.
func NewParameter(name string, value *tensor.Tensor) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter's name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the underlying tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.value
}

// ZeroGrad resets the parameter's gradient buffer.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
