package array

import "fmt"

// Reshape returns a copy of a with the given shape.
// The element count must be preserved.
func Reshape(a *Array, shape Shape) *Array {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	if shape.NumElements() != len(a.data) {
		panic(fmt.Sprintf("reshape: cannot reshape %d elements into %v", len(a.data), shape))
	}
	out := Zeros(shape)
	copy(out.data, a.data)
	return out
}

// Transpose permutes the array's axes. With no permutation given, the axis
// order is reversed (matrix transpose for 2-D arrays).
func Transpose(a *Array, perm ...int) *Array {
	rank := len(a.shape)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		panic(fmt.Sprintf("transpose: permutation %v does not match rank %d", perm, rank))
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			panic(fmt.Sprintf("transpose: invalid permutation %v for rank %d", perm, rank))
		}
		seen[p] = true
	}

	outShape := make(Shape, rank)
	for i, p := range perm {
		outShape[i] = a.shape[p]
	}
	out := Zeros(outShape)

	if rank == 0 {
		out.data[0] = a.data[0]
		return out
	}

	srcStrides := a.strides
	coords := make([]int, rank)
	for i := range out.data {
		src := 0
		for d, p := range perm {
			src += coords[d] * srcStrides[p]
		}
		out.data[i] = a.data[src]

		for d := rank - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
		}
	}
	return out
}

// InversePermutation returns the permutation that undoes perm.
func InversePermutation(perm []int) []int {
	inverse := make([]int, len(perm))
	for i, p := range perm {
		inverse[p] = i
	}
	return inverse
}

// BroadcastTo materializes a broadcast of a to the given shape.
// The target must be reachable from a's shape under broadcasting rules.
func BroadcastTo(a *Array, shape Shape) *Array {
	joint, err := BroadcastShapes(a.shape, shape)
	if err != nil || !joint.Equal(shape) {
		panic(fmt.Sprintf("broadcast: cannot broadcast %v to %v", a.shape, shape))
	}
	out := Zeros(shape)

	strides := broadcastStrides(a.shape, shape)
	coords := make([]int, len(shape))
	for i := range out.data {
		src := 0
		for d := range coords {
			src += coords[d] * strides[d]
		}
		out.data[i] = a.data[src]

		for d := len(coords) - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < shape[d] {
				break
			}
			coords[d] = 0
		}
	}
	return out
}
