package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/tensor"
)

// Linear implements a fully connected (dense) layer: y = x @ Wᵀ + b.
//
//   - x: [batch, inFeatures]
//   - W: [outFeatures, inFeatures], Xavier-initialized
//   - b: [outFeatures], zero-initialized
//   - y: [batch, outFeatures]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
}

// NewLinear creates a Linear layer with Xavier-initialized weights and zero
// biases, drawing from the given generator.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	weight := Xavier(inFeatures, outFeatures, array.Shape{outFeatures, inFeatures}, rng)
	bias := Zeros(array.Shape{outFeatures})
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes y = x @ Wᵀ + b for a [batch, inFeatures] input.
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, shape[1]))
	}

	wT := tensor.Transpose(l.weight.Tensor())
	output := tensor.MatMul(input, wT)

	// Bias broadcasts from [1, out] across the batch.
	b := tensor.Reshape(l.bias.Tensor(), 1, l.outFeatures)
	return tensor.Add(output, b)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}
