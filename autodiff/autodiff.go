// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff exposes reverse-mode automatic differentiation.
//
// Backward walks the recipe graph recorded by the tensor package in
// reverse topological order and accumulates gradients into every ancestor:
//
//	a := tensor.MustFromSlice([]float64{1, 2}, array.Shape{2}, true)
//	b := tensor.MustFromSlice([]float64{3, 4}, array.Shape{2}, true)
//	loss := tensor.Sum(tensor.Mul(a, b))
//	autodiff.Backward(loss, nil)
//	// a.Grad() holds b's values; b.Grad() holds a's values.
package autodiff

import (
	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Backward runs backpropagation from root. The root's gradient is set to
// seed, or ones when seed is nil; every ancestor's gradient buffer then
// receives its accumulated gradient.
func Backward(root *tensor.Tensor, seed *array.Array) {
	autodiff.Backward(root, seed)
}

// Topsort returns a topological order of every tensor reachable from root:
// each tensor appears after all of its parents.
func Topsort(root *tensor.Tensor) []*tensor.Tensor {
	return autodiff.Topsort(root)
}

// Unbroadcast reduces a gradient shaped like a broadcast output back to
// the original operand shape.
func Unbroadcast(grad *array.Array, target array.Shape) *array.Array {
	return autodiff.Unbroadcast(grad, target)
}
