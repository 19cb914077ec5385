package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/tensor"
)

// Sequential chains modules, feeding each output into the next.
type Sequential struct {
	modules []Module
}

// NewSequential creates a container over the given modules, applied in
// order.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward feeds the input through every module in order.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	output := input
	for _, m := range s.modules {
		output = m.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all contained modules, in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// NewMLP builds a small multi-layer classifier: Linear layers joined by
// ReLU activations, with no activation after the last layer. sizes lists
// the layer widths, input first; at least two are required.
func NewMLP(sizes []int, rng *rand.Rand) *Sequential {
	if len(sizes) < 2 {
		panic("nn: MLP needs at least an input and an output size")
	}
	var modules []Module
	for i := 0; i+1 < len(sizes); i++ {
		modules = append(modules, NewLinear(sizes[i], sizes[i+1], rng))
		if i+2 < len(sizes) {
			modules = append(modules, NewReLU())
		}
	}
	return NewSequential(modules...)
}
