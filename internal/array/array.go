// Package array implements the dense float64 n-dimensional array backend.
//
// Array is a plain numeric value with no differentiation metadata; the
// tensor package layers gradient tracking on top of it. All operations
// allocate fresh result arrays — nothing here mutates its operands except
// the explicitly in-place helpers (AddInPlace, Fill).
//
// Shape errors are programming errors and panic; constructor errors
// (mismatched data length, invalid shape) are returned.
package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Array is a dense row-major n-dimensional array of float64 values.
// A zero-length shape denotes a scalar holding exactly one element.
type Array struct {
	data    []float64
	shape   Shape
	strides []int
}

// New creates an array with the given shape, zero-filled.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "array.New")
	}
	return &Array{
		data:    make([]float64, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.Strides(),
	}, nil
}

// FromSlice creates an array by copying data into the given shape.
// The data length must match the shape's element count.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "array.FromSlice")
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	a := &Array{
		data:    make([]float64, len(data)),
		shape:   shape.Clone(),
		strides: shape.Strides(),
	}
	copy(a.data, data)
	return a, nil
}

// MustFromSlice is FromSlice that panics on error. Intended for test and
// example code where the shape is a literal.
func MustFromSlice(data []float64, shape Shape) *Array {
	a, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Zeros creates a zero-filled array.
func Zeros(shape Shape) *Array {
	a, err := New(shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return Full(1, shape)
}

// Full creates an array filled with the given value.
func Full(value float64, shape Shape) *Array {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Scalar creates a 0-dimensional array holding a single value.
func Scalar(value float64) *Array {
	return Full(value, Shape{})
}

// ZerosLike creates a zero-filled array with the same shape as a.
func ZerosLike(a *Array) *Array {
	return Zeros(a.shape)
}

// OnesLike creates a ones-filled array with the same shape as a.
func OnesLike(a *Array) *Array {
	return Ones(a.shape)
}

// Shape returns the array's shape. The returned slice must not be mutated.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major strides.
func (a *Array) Strides() []int {
	return a.strides
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Data returns the underlying buffer. Writes through the returned slice
// mutate the array in place.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the element at the given multi-dimensional coordinates.
func (a *Array) At(coords ...int) float64 {
	return a.data[a.flatIndex(coords)]
}

// Set stores a value at the given multi-dimensional coordinates.
func (a *Array) Set(value float64, coords ...int) {
	a.data[a.flatIndex(coords)] = value
}

func (a *Array) flatIndex(coords []int) int {
	if len(coords) != len(a.shape) {
		panic(fmt.Sprintf("array: %d coordinates for %d-dimensional array", len(coords), len(a.shape)))
	}
	flat := 0
	for i, c := range coords {
		if c < 0 || c >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range for axis %d with size %d", c, i, a.shape[i]))
		}
		flat += c * a.strides[i]
	}
	return flat
}

// Item returns the value of a single-element array.
// Panics for arrays with more than one element.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("array: Item on array with %d elements is ambiguous", len(a.data)))
	}
	return a.data[0]
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	clone := &Array{
		data:    make([]float64, len(a.data)),
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
	}
	copy(clone.data, a.data)
	return clone
}

// Fill overwrites every element with the given value.
func (a *Array) Fill(value float64) {
	for i := range a.data {
		a.data[i] = value
	}
}

// AddInPlace accumulates b into a element-wise. Shapes must match exactly.
func (a *Array) AddInPlace(b *Array) {
	if !a.shape.Equal(b.shape) {
		panic(fmt.Sprintf("array: AddInPlace shape mismatch %v vs %v", a.shape, b.shape))
	}
	for i := range a.data {
		a.data[i] += b.data[i]
	}
}

// AllClose reports whether a and b have the same shape and element-wise
// values within the given absolute tolerance.
func (a *Array) AllClose(b *Array, tolerance float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		diff := a.data[i] - b.data[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			return false
		}
	}
	return true
}

// String renders the shape and flat contents, for debugging and error text.
func (a *Array) String() string {
	return fmt.Sprintf("Array(shape=%v, data=%v)", a.shape, a.data)
}
