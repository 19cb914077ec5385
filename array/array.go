// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array exposes the dense float64 n-dimensional array backend.
//
// Arrays carry no differentiation metadata; see the tensor package for
// gradient-tracked values.
package array

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/array"
)

// Array is a dense row-major n-dimensional array of float64 values.
type Array = array.Array

// Shape represents the dimensions of an array.
type Shape = array.Shape

// Index selects elements for Take and ScatterAdd.
type Index = array.Index

// New creates a zero-filled array with the given shape.
func New(shape Shape) (*Array, error) {
	return array.New(shape)
}

// FromSlice creates an array by copying data into the given shape.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice(data []float64, shape Shape) *Array {
	return array.MustFromSlice(data, shape)
}

// Zeros creates a zero-filled array.
func Zeros(shape Shape) *Array { return array.Zeros(shape) }

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array { return array.Ones(shape) }

// Full creates an array filled with the given value.
func Full(value float64, shape Shape) *Array { return array.Full(value, shape) }

// Scalar creates a 0-dimensional array holding one value.
func Scalar(value float64) *Array { return array.Scalar(value) }

// Randn creates an array of standard-normal samples drawn from rng.
func Randn(shape Shape, rng *rand.Rand) *Array { return array.Randn(shape, rng) }

// RandUniform creates an array of samples uniform in [low, high).
func RandUniform(shape Shape, low, high float64, rng *rand.Rand) *Array {
	return array.RandUniform(shape, low, high, rng)
}

// IndexAt selects one position along the leading axis.
func IndexAt(i int) Index { return array.IndexAt(i) }

// IndexCoords selects a single element by full coordinates.
func IndexCoords(coords ...int) Index { return array.IndexCoords(coords...) }

// IndexList gathers positions along the leading axis, repeats allowed.
func IndexList(rows []int) Index { return array.IndexList(rows) }
