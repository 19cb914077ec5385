// Package optim implements gradient-descent parameter updates.
//
// Optimizers read the gradients backpropagation accumulated into each
// parameter's buffer and write updates through the parameter's data buffer
// in place; the engine itself never replaces a parameter's array.
//
//	for step := 0; step < steps; step++ {
//	    optimizer.ZeroGrad()
//	    loss := nn.CrossEntropy(model.Forward(x), targets)
//	    autodiff.Backward(loss, nil)
//	    optimizer.Step()
//	}
package optim

import "github.com/ember-ml/ember/internal/nn"

// Optimizer is the base interface for parameter updaters.
type Optimizer interface {
	// Step applies one update to every parameter from its accumulated
	// gradient.
	Step()

	// ZeroGrad clears every parameter's gradient buffer. Call before each
	// backward pass to prevent accumulation across steps.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// Config is the base configuration shared by optimizers.
type Config struct {
	LR float64 // Learning rate
}

func zeroGrads(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
