package array

import "fmt"

// NormalizeAxis resolves a possibly-negative axis against the given rank.
// Panics when the axis is out of range.
func NormalizeAxis(axis, rank int) int {
	normalized := axis
	if normalized < 0 {
		normalized += rank
	}
	if normalized < 0 || normalized >= rank {
		panic(fmt.Sprintf("array: axis %d out of range for rank %d", axis, rank))
	}
	return normalized
}

// Sum reduces the array by summation.
//
// axis == nil sums every element; the result is a scalar, or an all-ones
// shape of the input's rank when keepDims is true. With an axis, only that
// axis is reduced; keepDims retains it with size 1, otherwise it is removed.
func Sum(a *Array, axis *int, keepDims bool) *Array {
	if axis == nil {
		total := 0.0
		for _, v := range a.data {
			total += v
		}
		if !keepDims {
			return Scalar(total)
		}
		kept := make(Shape, len(a.shape))
		for i := range kept {
			kept[i] = 1
		}
		return Full(total, kept)
	}

	ax := NormalizeAxis(*axis, len(a.shape))

	// outer × size(ax) × inner decomposition of the flat buffer.
	outer, inner := 1, 1
	for i := 0; i < ax; i++ {
		outer *= a.shape[i]
	}
	for i := ax + 1; i < len(a.shape); i++ {
		inner *= a.shape[i]
	}
	axSize := a.shape[ax]

	outShape := make(Shape, 0, len(a.shape))
	for i, dim := range a.shape {
		switch {
		case i != ax:
			outShape = append(outShape, dim)
		case keepDims:
			outShape = append(outShape, 1)
		}
	}

	out := Zeros(outShape)
	for o := 0; o < outer; o++ {
		for j := 0; j < axSize; j++ {
			base := (o*axSize + j) * inner
			outBase := o * inner
			for k := 0; k < inner; k++ {
				out.data[outBase+k] += a.data[base+k]
			}
		}
	}
	return out
}
