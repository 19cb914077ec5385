// Package autodiff implements reverse-mode automatic differentiation over
// the recipe-annotated graph the tensor package records.
//
// Forward operations attach a Recipe to each result; Backward walks the
// reachable graph in reverse topological order, dispatches each (operation,
// slot) pair through a closed backward-rule table, and accumulates every
// contribution into the parents' gradient buffers. Shared subexpressions
// (diamond dependencies) therefore receive the sum of all path
// contributions, and the reverse order guarantees a node's gradient is
// complete before it propagates further.
//
// Example:
//
//	a := tensor.MustFromSlice([]float64{1, 2}, array.Shape{2}, true)
//	b := tensor.MustFromSlice([]float64{3, 4}, array.Shape{2}, true)
//	loss := tensor.Sum(tensor.Mul(a, b))
//	autodiff.Backward(loss, nil)
//	// a.Grad() == b's values, b.Grad() == a's values
package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/tensor"
)

// Backward runs backpropagation from root.
//
// The root's gradient buffer is set to seed, or to ones when seed is nil.
// The graph reachable from root is then walked in reverse topological
// order; for every non-leaf node each (operation, slot) pair is looked up
// in the backward table and the resulting contribution is added — never
// assigned — into the parent's gradient buffer. Leaves are skipped as
// propagation sources but still end up holding their accumulated gradients.
//
// A recipe whose operation has no registered rule for a required slot is a
// programming error and panics; silently skipping the contribution would
// corrupt every downstream gradient without a signal.
func Backward(root *tensor.Tensor, seed *array.Array) {
	order := Topsort(root)

	seedGrad(root, seed)

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.IsLeaf() {
			continue
		}
		recipe := node.Recipe()
		for slot, parent := range recipe.Parents {
			rule, ok := rules[ruleKey{op: recipe.Op, slot: slot}]
			if !ok {
				panic(fmt.Sprintf("autodiff: no backward rule for operation %s slot %d", recipe.Op, slot))
			}
			contribution := rule(node.Grad(), node.Array(), recipe)
			parent.AccumulateGrad(contribution)
		}
	}
}

// seedGrad overwrites the root's gradient buffer in place; the buffer is
// never replaced by reference.
func seedGrad(root *tensor.Tensor, seed *array.Array) {
	grad := root.Grad()
	if seed == nil {
		grad.Fill(1)
		return
	}
	if !seed.Shape().Equal(grad.Shape()) {
		panic(fmt.Sprintf("autodiff: seed shape %v does not match root shape %v", seed.Shape(), grad.Shape()))
	}
	copy(grad.Data(), seed.Data())
}
