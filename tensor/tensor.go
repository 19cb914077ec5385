// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the differentiable tensor value and its operation
// set.
//
// Every operation records a provenance recipe on its result; call
// autodiff.Backward on a scalar output to fill every ancestor's gradient
// buffer.
//
//	x := tensor.MustFromSlice([]float64{2}, array.Shape{1}, true)
//	y := tensor.Mul(x, x)
//	autodiff.Backward(y, nil)
//	fmt.Println(x.Grad().Data()) // [4]
package tensor

import (
	iarray "github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/tensor"
)

// Tensor is a numeric array annotated with differentiation metadata.
type Tensor = tensor.Tensor

// Recipe records how a tensor's array was produced.
type Recipe = tensor.Recipe

// Attrs carries an operation's non-array configuration.
type Attrs = tensor.Attrs

// OpKind identifies a differentiable primitive.
type OpKind = tensor.OpKind

// The differentiable primitives.
const (
	OpAdd       = tensor.OpAdd
	OpMul       = tensor.OpMul
	OpDiv       = tensor.OpDiv
	OpNeg       = tensor.OpNeg
	OpMaximum   = tensor.OpMaximum
	OpExp       = tensor.OpExp
	OpLog       = tensor.OpLog
	OpMatMul    = tensor.OpMatMul
	OpSum       = tensor.OpSum
	OpTake      = tensor.OpTake
	OpReshape   = tensor.OpReshape
	OpBroadcast = tensor.OpBroadcast
	OpTranspose = tensor.OpTranspose
)

// NewLeaf creates a leaf tensor owning the given array.
func NewLeaf(data *iarray.Array, requiresGrad bool) *Tensor {
	return tensor.NewLeaf(data, requiresGrad)
}

// FromSlice creates a leaf tensor by copying data into the given shape.
func FromSlice(data []float64, shape iarray.Shape, requiresGrad bool) (*Tensor, error) {
	return tensor.FromSlice(data, shape, requiresGrad)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice(data []float64, shape iarray.Shape, requiresGrad bool) *Tensor {
	return tensor.MustFromSlice(data, shape, requiresGrad)
}

// Add returns a + b with broadcasting.
func Add(a, b *Tensor) *Tensor { return tensor.Add(a, b) }

// AddScalar returns a + s.
func AddScalar(a *Tensor, s float64) *Tensor { return tensor.AddScalar(a, s) }

// Sub returns a - b.
func Sub(a, b *Tensor) *Tensor { return tensor.Sub(a, b) }

// Mul returns a * b element-wise with broadcasting.
func Mul(a, b *Tensor) *Tensor { return tensor.Mul(a, b) }

// MulScalar returns a * s.
func MulScalar(a *Tensor, s float64) *Tensor { return tensor.MulScalar(a, s) }

// Div returns a / b element-wise with broadcasting.
func Div(a, b *Tensor) *Tensor { return tensor.Div(a, b) }

// DivScalar returns a / s.
func DivScalar(a *Tensor, s float64) *Tensor { return tensor.DivScalar(a, s) }

// Neg returns -a.
func Neg(a *Tensor) *Tensor { return tensor.Neg(a) }

// Maximum returns the element-wise maximum; ties route gradient to a.
func Maximum(a, b *Tensor) *Tensor { return tensor.Maximum(a, b) }

// MaximumScalar returns the element-wise maximum of a and s.
func MaximumScalar(a *Tensor, s float64) *Tensor { return tensor.MaximumScalar(a, s) }

// Exp returns e**a element-wise.
func Exp(a *Tensor) *Tensor { return tensor.Exp(a) }

// Log returns the natural logarithm element-wise.
func Log(a *Tensor) *Tensor { return tensor.Log(a) }

// MatMul returns the matrix product of two 2-D tensors.
func MatMul(a, b *Tensor) *Tensor { return tensor.MatMul(a, b) }

// Sum reduces every element to a scalar.
func Sum(a *Tensor) *Tensor { return tensor.Sum(a) }

// SumAxis reduces along one axis, optionally keeping it with size 1.
func SumAxis(a *Tensor, axis int, keepDims bool) *Tensor {
	return tensor.SumAxis(a, axis, keepDims)
}

// Take reads elements selected by an int, []int, array.Index, or
// tensor-valued index.
func Take(a *Tensor, index any) *Tensor { return tensor.Take(a, index) }

// Reshape returns a with the given shape.
func Reshape(a *Tensor, shape ...int) *Tensor { return tensor.Reshape(a, shape...) }

// BroadcastTo materializes a broadcast of a to the given shape.
func BroadcastTo(a *Tensor, shape ...int) *Tensor { return tensor.BroadcastTo(a, shape...) }

// Transpose permutes a's axes; with no permutation the order is reversed.
func Transpose(a *Tensor, perm ...int) *Tensor { return tensor.Transpose(a, perm...) }
