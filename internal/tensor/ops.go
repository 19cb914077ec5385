package tensor

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/array"
)

// apply is the single operation wrapper every differentiable primitive goes
// through. It unwraps tensor operands to raw arrays, evaluates the forward
// kernel, and wraps the result in a new tensor whose recipe records the
// operation kind, a deep-copied snapshot of the raw operands, the attrs,
// and — keyed by positional slot — which operands were tensors.
//
// Operands may be *Tensor, *array.Array, or float64; only tensor operands
// become graph parents.
func apply(op OpKind, attrs Attrs, operands ...any) *Tensor {
	raw := make([]*array.Array, len(operands))
	parents := make(map[int]*Tensor)
	for i, operand := range operands {
		switch v := operand.(type) {
		case *Tensor:
			parents[i] = v
			raw[i] = v.data
		case *array.Array:
			raw[i] = v
		case float64:
			raw[i] = array.Scalar(v)
		default:
			panic(fmt.Sprintf("tensor: %s operand %d has unsupported type %T", op, i, operand))
		}
	}

	result := forward(op, attrs, raw)

	snapshot := make([]*array.Array, len(raw))
	for i, r := range raw {
		snapshot[i] = r.Clone()
	}

	return NewFromOp(result, &Recipe{
		Op:      op,
		Args:    snapshot,
		Attrs:   attrs,
		Parents: parents,
	})
}

// forward evaluates the raw array kernel for one operation kind.
func forward(op OpKind, attrs Attrs, args []*array.Array) *array.Array {
	switch op {
	case OpAdd:
		return array.Add(args[0], args[1])
	case OpMul:
		return array.Mul(args[0], args[1])
	case OpDiv:
		return array.Div(args[0], args[1])
	case OpNeg:
		return array.Neg(args[0])
	case OpMaximum:
		return array.Maximum(args[0], args[1])
	case OpExp:
		return array.Exp(args[0])
	case OpLog:
		return array.Log(args[0])
	case OpMatMul:
		return array.MatMul(args[0], args[1])
	case OpSum:
		return array.Sum(args[0], attrs.Axis, attrs.KeepDims)
	case OpTake:
		return array.Take(args[0], *attrs.Index)
	case OpReshape:
		return array.Reshape(args[0], attrs.Shape)
	case OpBroadcast:
		return array.BroadcastTo(args[0], attrs.Shape)
	case OpTranspose:
		return array.Transpose(args[0], attrs.Perm...)
	default:
		panic(fmt.Sprintf("tensor: no forward kernel for operation %s", op))
	}
}

// Add returns a + b with broadcasting.
func Add(a, b *Tensor) *Tensor {
	return apply(OpAdd, Attrs{}, a, b)
}

// AddScalar returns a + s. The scalar occupies no parent slot.
func AddScalar(a *Tensor, s float64) *Tensor {
	return apply(OpAdd, Attrs{}, a, s)
}

// Sub returns a - b, composed as a + (-b); there is no subtract primitive.
func Sub(a, b *Tensor) *Tensor {
	return Add(a, Neg(b))
}

// Mul returns a * b element-wise with broadcasting.
func Mul(a, b *Tensor) *Tensor {
	return apply(OpMul, Attrs{}, a, b)
}

// MulScalar returns a * s.
func MulScalar(a *Tensor, s float64) *Tensor {
	return apply(OpMul, Attrs{}, a, s)
}

// Div returns a / b element-wise with broadcasting.
func Div(a, b *Tensor) *Tensor {
	return apply(OpDiv, Attrs{}, a, b)
}

// DivScalar returns a / s.
func DivScalar(a *Tensor, s float64) *Tensor {
	return apply(OpDiv, Attrs{}, a, s)
}

// Neg returns -a.
func Neg(a *Tensor) *Tensor {
	return apply(OpNeg, Attrs{}, a)
}

// Maximum returns the element-wise maximum with broadcasting.
// Where both operands are equal the gradient routes to a, the first
// operand.
func Maximum(a, b *Tensor) *Tensor {
	return apply(OpMaximum, Attrs{}, a, b)
}

// MaximumScalar returns the element-wise maximum of a and s (ReLU for s=0).
func MaximumScalar(a *Tensor, s float64) *Tensor {
	return apply(OpMaximum, Attrs{}, a, s)
}

// Exp returns e**a element-wise.
func Exp(a *Tensor) *Tensor {
	return apply(OpExp, Attrs{}, a)
}

// Log returns the natural logarithm element-wise.
func Log(a *Tensor) *Tensor {
	return apply(OpLog, Attrs{}, a)
}

// MatMul returns the matrix product of two 2-D tensors.
func MatMul(a, b *Tensor) *Tensor {
	return apply(OpMatMul, Attrs{}, a, b)
}

// Sum reduces every element to a scalar.
func Sum(a *Tensor) *Tensor {
	return apply(OpSum, Attrs{}, a)
}

// SumAxis reduces along one axis. keepDims retains the reduced axis with
// size 1 so the result still broadcasts against the input.
func SumAxis(a *Tensor, axis int, keepDims bool) *Tensor {
	ax := axis
	return apply(OpSum, Attrs{Axis: &ax, KeepDims: keepDims}, a)
}

// Take reads elements of a selected by index.
//
// Accepted index forms: int (one position along the leading axis), []int
// (gather along the leading axis, repeats allowed), array.Index, or a
// *Tensor whose values are coerced to integer positions. A tensor-valued
// index contributes no gradient and is not recorded as a parent.
func Take(a *Tensor, index any) *Tensor {
	ix := coerceIndex(index)
	return apply(OpTake, Attrs{Index: &ix}, a)
}

func coerceIndex(index any) array.Index {
	switch v := index.(type) {
	case int:
		return array.IndexAt(v)
	case []int:
		return array.IndexList(v)
	case array.Index:
		return v.Clone()
	case *Tensor:
		data := v.Array().Data()
		rows := make([]int, len(data))
		for i, f := range data {
			rows[i] = int(math.Round(f))
		}
		return array.IndexList(rows)
	default:
		panic(fmt.Sprintf("tensor: unsupported index type %T", index))
	}
}

// Reshape returns a with the given shape.
func Reshape(a *Tensor, shape ...int) *Tensor {
	return apply(OpReshape, Attrs{Shape: array.Shape(shape).Clone()}, a)
}

// BroadcastTo materializes a broadcast of a to the given shape.
func BroadcastTo(a *Tensor, shape ...int) *Tensor {
	return apply(OpBroadcast, Attrs{Shape: array.Shape(shape).Clone()}, a)
}

// Transpose permutes a's axes; with no permutation the axis order is
// reversed.
func Transpose(a *Tensor, perm ...int) *Tensor {
	return apply(OpTranspose, Attrs{Perm: append([]int(nil), perm...)}, a)
}
