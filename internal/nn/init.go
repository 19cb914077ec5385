package nn

import (
	"math"
	"math/rand"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/tensor"
)

// Xavier creates a gradient-requiring leaf initialized with Xavier/Glorot
// uniform samples: U(-limit, limit) with limit = sqrt(6 / (fanIn + fanOut)).
// The generator is passed explicitly so runs are reproducible.
func Xavier(fanIn, fanOut int, shape array.Shape, rng *rand.Rand) *tensor.Tensor {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.NewLeaf(array.RandUniform(shape, -limit, limit, rng), true)
}

// Zeros creates a zero-filled gradient-requiring leaf.
func Zeros(shape array.Shape) *tensor.Tensor {
	return tensor.NewLeaf(array.Zeros(shape), true)
}
