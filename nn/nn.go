// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes neural network modules built from core tensor
// operations.
package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter is a named, trainable leaf tensor.
type Parameter = nn.Parameter

// Linear is a fully connected layer.
type Linear = nn.Linear

// ReLU is the rectified linear activation.
type ReLU = nn.ReLU

// Sequential chains modules in order.
type Sequential = nn.Sequential

// NewParameter wraps a tensor as a named parameter.
func NewParameter(name string, value *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, value)
}

// NewLinear creates a Linear layer with Xavier-initialized weights.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return nn.NewReLU() }

// NewSequential creates a container over the given modules.
func NewSequential(modules ...Module) *Sequential { return nn.NewSequential(modules...) }

// NewMLP builds a small multi-layer classifier from the given layer sizes.
func NewMLP(sizes []int, rng *rand.Rand) *Sequential { return nn.NewMLP(sizes, rng) }

// CrossEntropy computes the mean negative log-likelihood of the targets
// under the softmax of the logits.
func CrossEntropy(logits *tensor.Tensor, targets []int) *tensor.Tensor {
	return nn.CrossEntropy(logits, targets)
}

// Accuracy reports the fraction of arg-max predictions matching targets.
func Accuracy(logits *tensor.Tensor, targets []int) float64 {
	return nn.Accuracy(logits, targets)
}

// Xavier creates a leaf initialized with Xavier/Glorot uniform samples.
func Xavier(fanIn, fanOut int, shape array.Shape, rng *rand.Rand) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, rng)
}
