package optim

import "github.com/ember-ml/ember/internal/nn"

// SGD implements plain stochastic gradient descent:
//
//	param = param - lr * gradient
//
// applied in place to each parameter's data buffer.
type SGD struct {
	params []*nn.Parameter
	lr     float64
}

// SGDConfig holds SGD configuration.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{params: params, lr: config.LR}
}

// Step subtracts lr-scaled gradients from every parameter in place.
func (s *SGD) Step() {
	for _, p := range s.params {
		data := p.Tensor().Data()
		grad := p.Tensor().Grad().Data()
		for i := range data {
			data[i] -= s.lr * grad[i]
		}
	}
}

// ZeroGrad clears every parameter's gradient buffer.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}
