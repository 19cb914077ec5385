package autodiff_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

const (
	fdEpsilon   = 1e-6
	fdTolerance = 1e-4
)

// checkGradient compares the backpropagated gradient of sum(build(x))
// against a centered finite-difference estimate, element by element.
// build must construct its graph from the leaf it is given, so the forward
// pass can be re-evaluated at perturbed inputs.
func checkGradient(t *testing.T, name string, data []float64, shape array.Shape, build func(x *tensor.Tensor) *tensor.Tensor) {
	t.Helper()

	x := tensor.MustFromSlice(data, shape, true)
	loss := tensor.Sum(build(x))
	autodiff.Backward(loss, nil)
	analytic := x.Grad().Data()

	eval := func(values []float64) float64 {
		leaf := tensor.MustFromSlice(values, shape, true)
		return tensor.Sum(build(leaf)).Item()
	}

	for i := range data {
		perturbed := append([]float64(nil), data...)
		perturbed[i] = data[i] + fdEpsilon
		plus := eval(perturbed)
		perturbed[i] = data[i] - fdEpsilon
		minus := eval(perturbed)

		numeric := (plus - minus) / (2 * fdEpsilon)
		diff := math.Abs(analytic[i] - numeric)
		scale := math.Max(1, math.Max(math.Abs(analytic[i]), math.Abs(numeric)))
		if diff/scale > fdTolerance {
			t.Errorf("%s: gradient[%d] = %g, finite difference = %g", name, i, analytic[i], numeric)
		}
	}
}

func randomData(n int, rng *rand.Rand) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return data
}

func positiveData(n int, rng *rand.Rand) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = 0.5 + rng.Float64()*2
	}
	return data
}

func TestGradientCheckPrimitives(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	other := tensor.MustFromSlice(randomData(6, rng), array.Shape{2, 3}, false)
	row := tensor.MustFromSlice(randomData(3, rng), array.Shape{1, 3}, false)

	tests := []struct {
		name  string
		data  []float64
		shape array.Shape
		build func(x *tensor.Tensor) *tensor.Tensor
	}{
		{"add", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Add(x, other) }},
		{"add broadcast", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Add(x, row) }},
		{"mul", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Mul(x, other) }},
		{"mul broadcast", randomData(3, rng), array.Shape{1, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Mul(x, other) }},
		{"div", positiveData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Div(other, x) }},
		{"neg", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Neg(x) }},
		{"exp", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Exp(x) }},
		{"log", positiveData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Log(x) }},
		{"sum axis keep", randomData(24, rng), array.Shape{2, 3, 4},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.SumAxis(x, 1, true) }},
		{"sum axis drop", randomData(24, rng), array.Shape{2, 3, 4},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.SumAxis(x, 2, false) }},
		{"take", randomData(8, rng), array.Shape{4, 2},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Take(x, []int{3, 0, 3}) }},
		{"reshape", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Reshape(x, 6) }},
		{"transpose", randomData(6, rng), array.Shape{2, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.Transpose(x) }},
		{"broadcast to", randomData(3, rng), array.Shape{1, 3},
			func(x *tensor.Tensor) *tensor.Tensor { return tensor.BroadcastTo(x, 5, 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.name, tt.data, tt.shape, tt.build)
		})
	}
}

func TestGradientCheckMaximum(t *testing.T) {
	// Keep operands well separated so the finite-difference step cannot
	// cross the tie boundary, where the subgradient jumps.
	x := []float64{1, -2, 3, -4}
	other := tensor.MustFromSlice([]float64{-3, 2, -1, 4}, array.Shape{4}, false)

	checkGradient(t, "maximum", x, array.Shape{4}, func(x *tensor.Tensor) *tensor.Tensor {
		return tensor.Maximum(x, other)
	})
}

func TestGradientCheckMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b := tensor.MustFromSlice(randomData(12, rng), array.Shape{3, 4}, false)
	a := tensor.MustFromSlice(randomData(6, rng), array.Shape{2, 3}, false)

	checkGradient(t, "matmul lhs", randomData(6, rng), array.Shape{2, 3},
		func(x *tensor.Tensor) *tensor.Tensor { return tensor.MatMul(x, b) })
	checkGradient(t, "matmul rhs", randomData(12, rng), array.Shape{3, 4},
		func(x *tensor.Tensor) *tensor.Tensor { return tensor.MatMul(a, x) })
}

func TestGradientCheckComposite(t *testing.T) {
	// f(x) = exp(x)·x + x/2 mixes shared subexpressions with several rules.
	rng := rand.New(rand.NewSource(13))

	checkGradient(t, "composite", randomData(4, rng), array.Shape{4},
		func(x *tensor.Tensor) *tensor.Tensor {
			return tensor.Add(tensor.Mul(tensor.Exp(x), x), tensor.DivScalar(x, 2))
		})
}
