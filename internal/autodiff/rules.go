package autodiff

import (
	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/tensor"
)

// Rule computes one parent's gradient contribution for one operation.
//
// gradOut is the gradient already accumulated for the node that used the
// operation, out is that node's array value, and the recipe supplies the
// snapshotted operands and attrs of the original call. The returned array
// must match the corresponding parent's shape exactly.
type Rule func(gradOut, out *array.Array, r *tensor.Recipe) *array.Array

// ruleKey addresses the backward table: one entry per operation kind and
// parent slot.
type ruleKey struct {
	op   tensor.OpKind
	slot int
}

// rules is the closed backward dispatch table. Lookup misses are
// programming errors; the driver aborts rather than silently dropping a
// gradient contribution.
var rules = map[ruleKey]Rule{
	// d(a+b)/da = 1, d(a+b)/db = 1; broadcasting reduced per operand.
	{tensor.OpAdd, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return Unbroadcast(gradOut, r.Args[0].Shape())
	},
	{tensor.OpAdd, 1}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return Unbroadcast(gradOut, r.Args[1].Shape())
	},

	// d(a*b)/da = b, d(a*b)/db = a.
	{tensor.OpMul, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return Unbroadcast(array.Mul(gradOut, r.Args[1]), r.Args[0].Shape())
	},
	{tensor.OpMul, 1}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return Unbroadcast(array.Mul(gradOut, r.Args[0]), r.Args[1].Shape())
	},

	// d(a/b)/da = 1/b, d(a/b)/db = -a/b².
	{tensor.OpDiv, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return Unbroadcast(array.Div(gradOut, r.Args[1]), r.Args[0].Shape())
	},
	{tensor.OpDiv, 1}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		b := r.Args[1]
		quotient := array.Div(r.Args[0], array.Mul(b, b))
		return Unbroadcast(array.Neg(array.Mul(gradOut, quotient)), b.Shape())
	},

	{tensor.OpNeg, 0}: func(gradOut, _ *array.Array, _ *tensor.Recipe) *array.Array {
		return array.Neg(gradOut)
	},

	// Element-wise maximum routes the gradient to whichever operand won;
	// ties (a == b) go to the first operand via the >= comparison.
	{tensor.OpMaximum, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		mask := array.GreaterEqual(r.Args[0], r.Args[1])
		return Unbroadcast(array.Mul(gradOut, mask), r.Args[0].Shape())
	},
	{tensor.OpMaximum, 1}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		mask := array.GreaterEqual(r.Args[0], r.Args[1])
		inverse := array.Sub(array.OnesLike(mask), mask)
		return Unbroadcast(array.Mul(gradOut, inverse), r.Args[1].Shape())
	},

	// d(exp(x))/dx = exp(x), which is the forward output itself.
	{tensor.OpExp, 0}: func(gradOut, out *array.Array, _ *tensor.Recipe) *array.Array {
		return array.Mul(gradOut, out)
	},

	// d(log(x))/dx = 1/x.
	{tensor.OpLog, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return array.Div(gradOut, r.Args[0])
	},

	// d(A@B)/dA = grad @ Bᵀ, d(A@B)/dB = Aᵀ @ grad.
	{tensor.OpMatMul, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return array.MatMul(gradOut, array.Transpose(r.Args[1]))
	},
	{tensor.OpMatMul, 1}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return array.MatMul(array.Transpose(r.Args[0]), gradOut)
	},

	{tensor.OpSum, 0}: sumBackward,

	// Scatter-add the incoming gradient into a zero buffer at the original
	// read positions; repeated positions accumulate.
	{tensor.OpTake, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		contribution := array.ZerosLike(r.Args[0])
		array.ScatterAdd(contribution, *r.Attrs.Index, gradOut)
		return contribution
	},

	{tensor.OpReshape, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return array.Reshape(gradOut, r.Args[0].Shape())
	},

	{tensor.OpBroadcast, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		return Unbroadcast(gradOut, r.Args[0].Shape())
	},

	{tensor.OpTranspose, 0}: func(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
		perm := r.Attrs.Perm
		if len(perm) == 0 {
			// Default transpose reverses the axes; reversing again undoes it.
			return array.Transpose(gradOut)
		}
		return array.Transpose(gradOut, array.InversePermutation(perm)...)
	},
}

// sumBackward re-expands a reduction gradient to the input shape. Every
// (axis, keepDims) combination is handled:
//
//   - axis nil: the gradient holds one element (scalar, or all-ones shape
//     with keepDims) and broadcasts straight back to the input shape;
//   - axis set, keepDims true: the gradient already has the input's rank
//     with size 1 at the reduced axis and broadcasts back directly;
//   - axis set, keepDims false: the reduced axis is reinserted with size 1
//     first, then the gradient broadcasts back.
func sumBackward(gradOut, _ *array.Array, r *tensor.Recipe) *array.Array {
	input := r.Args[0]
	expanded := gradOut

	if r.Attrs.Axis != nil && !r.Attrs.KeepDims {
		axis := array.NormalizeAxis(*r.Attrs.Axis, len(input.Shape()))
		kept := make(array.Shape, 0, len(input.Shape()))
		kept = append(kept, gradOut.Shape()[:axis]...)
		kept = append(kept, 1)
		kept = append(kept, gradOut.Shape()[axis:]...)
		expanded = array.Reshape(gradOut, kept)
	}

	return array.BroadcastTo(expanded, input.Shape())
}
