package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/tensor"
)

// CrossEntropy computes the mean negative log-likelihood of the target
// classes under the softmax of the logits.
//
// logits is [batch, classes]; targets holds one class index per row. The
// loss is composed entirely from core operations (Exp, Sum, Div, Log, Mul,
// Neg), so its gradient flows through the standard backward rules with no
// special casing:
//
//	probs = exp(logits) / Σ_row exp(logits)
//	loss  = -Σ log(probs)·onehot(targets) / batch
func CrossEntropy(logits *tensor.Tensor, targets []int) *tensor.Tensor {
	shape := logits.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("CrossEntropy: expected 2D logits [batch, classes], got shape %v", shape))
	}
	batch, classes := shape[0], shape[1]
	if len(targets) != batch {
		panic(fmt.Sprintf("CrossEntropy: %d targets for batch of %d", len(targets), batch))
	}

	exps := tensor.Exp(logits)
	sums := tensor.SumAxis(exps, 1, true)
	probs := tensor.Div(exps, sums)
	logProbs := tensor.Log(probs)

	// The one-hot mask is a constant; it selects the target log-probability
	// of each row without participating in the gradient.
	mask := array.Zeros(array.Shape{batch, classes})
	for i, target := range targets {
		if target < 0 || target >= classes {
			panic(fmt.Sprintf("CrossEntropy: target %d out of range for %d classes", target, classes))
		}
		mask.Set(1, i, target)
	}
	onehot := tensor.NewLeaf(mask, false)

	picked := tensor.Mul(logProbs, onehot)
	return tensor.DivScalar(tensor.Neg(tensor.Sum(picked)), float64(batch))
}

// Accuracy reports the fraction of rows whose arg-max class matches the
// target. Evaluation only; no gradient flows through it.
func Accuracy(logits *tensor.Tensor, targets []int) float64 {
	shape := logits.Shape()
	batch, classes := shape[0], shape[1]
	data := logits.Array().Data()

	correct := 0
	for i := 0; i < batch; i++ {
		row := data[i*classes : (i+1)*classes]
		best := 0
		for j, v := range row {
			if v > row[best] {
				best = j
			}
		}
		if best == targets[i] {
			correct++
		}
	}
	return float64(correct) / float64(batch)
}
