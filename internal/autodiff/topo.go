package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Topsort returns a topological order of every tensor reachable from root
// through the parent relation: each tensor appears after all of its
// parents. Ties among independent branches are unordered.
//
// The algorithm is Kahn's: a depth-first pass records each node's
// remaining-parent count (its recipe's slot count, zero for leaves) and a
// parent-to-children reverse adjacency; a worklist seeded with the
// zero-count nodes is then drained, decrementing children as their parents
// are emitted.
//
// Node-keyed structures use pointer identity throughout. Tensors can hold
// equal values and still be distinct graph nodes.
func Topsort(root *tensor.Tensor) []*tensor.Tensor {
	remaining := make(map[*tensor.Tensor]int)
	children := make(map[*tensor.Tensor][]*tensor.Tensor)

	var visit func(t *tensor.Tensor)
	visit = func(t *tensor.Tensor) {
		if _, seen := remaining[t]; seen {
			return
		}
		if t.IsLeaf() {
			remaining[t] = 0
			return
		}
		parents := t.Recipe().Parents
		remaining[t] = len(parents)
		for _, parent := range parents {
			// A tensor occupying several slots is a child of that parent
			// once per slot, matching its remaining-parent count.
			children[parent] = append(children[parent], t)
			visit(parent)
		}
	}
	visit(root)

	worklist := make([]*tensor.Tensor, 0, len(remaining))
	for t, count := range remaining {
		if count == 0 {
			worklist = append(worklist, t)
		}
	}

	order := make([]*tensor.Tensor, 0, len(remaining))
	for len(worklist) > 0 {
		t := worklist[0]
		worklist = worklist[1:]
		order = append(order, t)
		for _, child := range children[t] {
			remaining[child]--
			if remaining[child] == 0 {
				worklist = append(worklist, child)
			}
		}
	}
	return order
}
