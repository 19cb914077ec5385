package tensor

import (
	"fmt"

	"github.com/ember-ml/ember/internal/array"
)

// OpKind identifies a differentiable primitive. The set is closed: dispatch
// keys on this enumeration, never on function identity, so the backward
// table is finite and auditable.
type OpKind int

// The differentiable primitives. Subtraction has no kind of its own; it is
// composed from OpAdd and OpNeg.
const (
	OpAdd OpKind = iota
	OpMul
	OpDiv
	OpNeg
	OpMaximum
	OpExp
	OpLog
	OpMatMul
	OpSum
	OpTake
	OpReshape
	OpBroadcast
	OpTranspose
)

// String returns the operation's name.
func (op OpKind) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpNeg:
		return "neg"
	case OpMaximum:
		return "maximum"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpMatMul:
		return "matmul"
	case OpSum:
		return "sum"
	case OpTake:
		return "take"
	case OpReshape:
		return "reshape"
	case OpBroadcast:
		return "broadcast"
	case OpTranspose:
		return "transpose"
	default:
		return fmt.Sprintf("OpKind(%d)", int(op))
	}
}

// Attrs carries an operation's non-array configuration: the reduction axis,
// the index of a Take, a permutation, or a target shape. Unused fields stay
// at their zero values.
type Attrs struct {
	Axis     *int         // OpSum: reduction axis, nil for all elements
	KeepDims bool         // OpSum: retain the reduced axis with size 1
	Index    *array.Index // OpTake: positions read
	Perm     []int        // OpTranspose: axis permutation, empty reverses
	Shape    array.Shape  // OpReshape, OpBroadcast: target shape
}

// Recipe records how a tensor's array was produced: the operation kind, a
// snapshot of the raw operands, the attrs, and the tensor operands keyed by
// their positional slot.
//
// Args are deep copies taken at recipe creation, so later in-place writes to
// an operand (a parameter update, for instance) cannot corrupt a pending
// backward pass. Parents holds only the operands that were tensors; scalar
// and raw-array operands appear in Args but receive no gradient.
type Recipe struct {
	Op      OpKind
	Args    []*array.Array
	Attrs   Attrs
	Parents map[int]*Tensor
}
