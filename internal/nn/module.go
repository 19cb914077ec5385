// Package nn implements neural network modules on top of the tensor core.
//
// Everything here is pure composition of core operations — no module
// contributes new gradient rules. Building blocks:
//   - Module interface: Forward + Parameters
//   - Parameter: a named leaf tensor that accumulates gradients
//   - Linear: fully connected layer
//   - ReLU: rectified linear activation
//   - Sequential: layer container; NewMLP builds a small classifier
//   - CrossEntropy: classification loss composed from core ops
//
// Design inspired by PyTorch's nn.Module.
package nn

import "github.com/ember-ml/ember/internal/tensor"

// Module is the base interface for all neural network components.
//
// Modules compose into larger architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 16, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(16, 3, rng),
//	)
type Module interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module,
	// including nested ones. Modules without trainable state return an
	// empty slice.
	Parameters() []*Parameter
}
