// Package tensor implements the differentiable tensor value and the
// operation wrapper that records provenance for backpropagation.
//
// A Tensor wraps one array buffer plus differentiation metadata: a gradient
// buffer of identical shape, a requires-grad flag, and an optional Recipe
// describing how the array was produced. Tensors are graph nodes with
// pointer identity; two tensors holding equal values are still distinct
// nodes, and every graph-keyed structure in this module keys by pointer.
//
// Example:
//
//	x := tensor.MustFromSlice([]float64{2}, array.Shape{1}, true)
//	y := tensor.Mul(x, x) // y = x²
//	autodiff.Backward(y, nil)
//	fmt.Println(x.Grad().Data()) // dy/dx = 2x = [4]
package tensor

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ember-ml/ember/internal/array"
)

// Tensor is a numeric array annotated with differentiation metadata.
type Tensor struct {
	data         *array.Array
	grad         *array.Array // same shape as data, zero-initialized
	requiresGrad bool
	recipe       *Recipe // nil for user-constructed leaves
}

// NewLeaf creates a leaf tensor owning the given array.
// The gradient buffer is allocated immediately, zero-filled, and keeps the
// array's shape for the tensor's whole lifetime.
func NewLeaf(data *array.Array, requiresGrad bool) *Tensor {
	return &Tensor{
		data:         data,
		grad:         array.ZerosLike(data),
		requiresGrad: requiresGrad,
	}
}

// FromSlice creates a leaf tensor by copying data into the given shape.
func FromSlice(data []float64, shape array.Shape, requiresGrad bool) (*Tensor, error) {
	a, err := array.FromSlice(data, shape)
	if err != nil {
		return nil, errors.Wrap(err, "tensor.FromSlice")
	}
	return NewLeaf(a, requiresGrad), nil
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice(data []float64, shape array.Shape, requiresGrad bool) *Tensor {
	t, err := FromSlice(data, shape, requiresGrad)
	if err != nil {
		panic(err)
	}
	return t
}

// NewFromOp wraps an operation result. Operation outputs always require
// gradients and carry the recipe that produced them. The operation wrapper
// is the normal caller; constructing a recipe by hand is only useful for
// testing dispatch behavior.
func NewFromOp(result *array.Array, recipe *Recipe) *Tensor {
	return &Tensor{
		data:         result,
		grad:         array.ZerosLike(result),
		requiresGrad: true,
		recipe:       recipe,
	}
}

// Array returns the tensor's value buffer. Callers may write through it for
// in-place parameter updates, but must not mutate an array that is still
// referenced by a live, not-yet-backpropagated graph.
func (t *Tensor) Array() *array.Array {
	return t.data
}

// Grad returns the gradient buffer. It is mutated only by accumulation
// during backpropagation and by ZeroGrad; the buffer itself is never
// replaced.
func (t *Tensor) Grad() *array.Array {
	return t.grad
}

// Data returns the value buffer's flat contents for in-place writes.
func (t *Tensor) Data() []float64 {
	return t.data.Data()
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() array.Shape {
	return t.data.Shape()
}

// RequiresGrad reports whether operations on this tensor record provenance.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Recipe returns the provenance record, or nil for leaves.
func (t *Tensor) Recipe() *Recipe {
	return t.recipe
}

// IsLeaf reports whether this tensor terminates backpropagation: it does
// not require gradients, has no recipe, or its recipe has no parents.
func (t *Tensor) IsLeaf() bool {
	return !t.requiresGrad || t.recipe == nil || len(t.recipe.Parents) == 0
}

// ZeroGrad resets the gradient buffer to zero, typically between training
// steps.
func (t *Tensor) ZeroGrad() {
	t.grad.Fill(0)
}

// AccumulateGrad adds a contribution into the gradient buffer.
// The contribution's shape must match the tensor's shape exactly.
func (t *Tensor) AccumulateGrad(contribution *array.Array) {
	t.grad.AddInPlace(contribution)
}

// Item returns the value of a single-element tensor.
// Panics for tensors with more than one element rather than picking an
// arbitrary one.
func (t *Tensor) Item() float64 {
	return t.data.Item()
}

// Bool coerces a single-element tensor to a boolean (nonzero is true).
// Panics for multi-element tensors, whose truth value is ambiguous.
func (t *Tensor) Bool() bool {
	return t.data.Item() != 0
}

// Len returns the size of the leading axis.
// Panics for 0-dimensional tensors, which have no length.
func (t *Tensor) Len() int {
	shape := t.data.Shape()
	if len(shape) == 0 {
		panic("tensor: len of a 0-dimensional tensor is undefined")
	}
	return shape[0]
}

// String renders the tensor for debugging.
func (t *Tensor) String() string {
	op := "leaf"
	if t.recipe != nil {
		op = t.recipe.Op.String()
	}
	return fmt.Sprintf("Tensor(shape=%v, op=%s, requiresGrad=%t)", t.Shape(), op, t.requiresGrad)
}
