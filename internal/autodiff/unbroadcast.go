package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/array"
)

// Unbroadcast reduces a gradient shaped like a broadcast output back to the
// shape of the original, pre-broadcast operand. It exactly inverts the
// broadcasting rules in array.BroadcastShapes:
//
//  1. leading axes present in the gradient but not in the target were
//     implicitly prepended by broadcasting and are summed away;
//  2. every remaining axis where the target size is 1 but the gradient size
//     is larger is summed with the dimension kept.
//
// Every binary backward rule whose operands can differ in shape goes
// through this before returning its contribution.
func Unbroadcast(grad *array.Array, target array.Shape) *array.Array {
	out := grad
	for len(out.Shape()) > len(target) {
		axis := 0
		out = array.Sum(out, &axis, false)
	}
	for i, dim := range target {
		if dim == 1 && out.Shape()[i] > 1 {
			axis := i
			out = array.Sum(out, &axis, true)
		}
	}
	if !out.Shape().Equal(target) {
		panic(fmt.Sprintf("autodiff: cannot unbroadcast %v to %v", grad.Shape(), target))
	}
	return out
}
