package optim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/tensor"
)

func TestSGDStepAppliesUpdateInPlace(t *testing.T) {
	param := nn.NewParameter("w", tensor.MustFromSlice([]float64{1, 2}, array.Shape{2}, true))
	param.Tensor().AccumulateGrad(array.MustFromSlice([]float64{10, 20}, array.Shape{2}))

	buffer := param.Tensor().Array()
	sgd := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})
	sgd.Step()

	assert.Equal(t, []float64{0, 0}, param.Tensor().Data())
	assert.Same(t, buffer, param.Tensor().Array(), "update must not replace the buffer")
}

func TestSGDDefaultLR(t *testing.T) {
	sgd := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.LR())
}

func TestSGDZeroGrad(t *testing.T) {
	param := nn.NewParameter("w", tensor.MustFromSlice([]float64{1}, array.Shape{1}, true))
	param.Tensor().AccumulateGrad(array.Ones(array.Shape{1}))

	sgd := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})
	sgd.ZeroGrad()

	assert.Equal(t, []float64{0}, param.Tensor().Grad().Data())
}

func TestSGDDescendsQuadratic(t *testing.T) {
	// Minimize sum((x - 3)²); every step must shrink the loss.
	x := tensor.MustFromSlice([]float64{10, -4}, array.Shape{2}, true)
	param := nn.NewParameter("x", x)
	sgd := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	lossAt := func() *tensor.Tensor {
		diff := tensor.AddScalar(x, -3)
		return tensor.Sum(tensor.Mul(diff, diff))
	}

	previous := lossAt().Item()
	for step := 0; step < 50; step++ {
		sgd.ZeroGrad()
		loss := lossAt()
		autodiff.Backward(loss, nil)
		sgd.Step()

		current := lossAt().Item()
		require.Less(t, current, previous, "step %d must descend", step)
		previous = current
	}
	assert.InDelta(t, 3, x.Data()[0], 1e-3)
	assert.InDelta(t, 3, x.Data()[1], 1e-3)
}

func TestSGDTrainsLinearModel(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	layer := nn.NewLinear(2, 2, rng)
	sgd := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.05})

	inputs := tensor.NewLeaf(array.Randn(array.Shape{16, 2}, rng), false)
	targets := make([]int, 16)
	for i := range targets {
		// Label by the sign of the first feature.
		if inputs.Array().At(i, 0) > 0 {
			targets[i] = 1
		}
	}

	first := nn.CrossEntropy(layer.Forward(inputs), targets).Item()
	for step := 0; step < 200; step++ {
		sgd.ZeroGrad()
		loss := nn.CrossEntropy(layer.Forward(inputs), targets)
		autodiff.Backward(loss, nil)
		sgd.Step()
	}
	last := nn.CrossEntropy(layer.Forward(inputs), targets).Item()

	assert.Less(t, last, first, "training must reduce the loss")
	assert.Greater(t, nn.Accuracy(layer.Forward(inputs), targets), 0.9)
}
