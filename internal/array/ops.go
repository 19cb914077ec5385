package array

import (
	"fmt"
	"math"
)

// broadcastStrides returns the strides to use when reading operand shape s
// as if it had the broadcast shape out: missing leading axes and size-1 axes
// contribute stride 0 so the same element is re-read across that axis.
func broadcastStrides(s Shape, out Shape) []int {
	strides := make([]int, len(out))
	real := s.Strides()
	offset := len(out) - len(s)
	for i := range out {
		si := i - offset
		if si < 0 || s[si] == 1 && out[i] != 1 {
			strides[i] = 0
		} else {
			strides[i] = real[si]
		}
	}
	return strides
}

// binary applies fn element-wise to a and b under NumPy broadcasting rules.
// Incompatible shapes panic, matching the backend contract that shape errors
// propagate unchanged to the caller.
func binary(a, b *Array, fn func(x, y float64) float64) *Array {
	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(err)
	}
	out := Zeros(outShape)

	// Fast path: identical shapes need no coordinate walk.
	if a.shape.Equal(b.shape) {
		for i := range out.data {
			out.data[i] = fn(a.data[i], b.data[i])
		}
		return out
	}

	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)
	coords := make([]int, len(outShape))
	for i := range out.data {
		ai, bi := 0, 0
		for d := range coords {
			ai += coords[d] * aStrides[d]
			bi += coords[d] * bStrides[d]
		}
		out.data[i] = fn(a.data[ai], b.data[bi])

		// Advance coordinates, rightmost axis fastest.
		for d := len(coords) - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
		}
	}
	return out
}

// unary applies fn element-wise.
func unary(a *Array, fn func(x float64) float64) *Array {
	out := Zeros(a.shape)
	for i, v := range a.data {
		out.data[i] = fn(v)
	}
	return out
}

// Add returns a + b with broadcasting.
func Add(a, b *Array) *Array {
	return binary(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Array) *Array {
	return binary(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b element-wise with broadcasting.
func Mul(a, b *Array) *Array {
	return binary(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b element-wise with broadcasting.
// Division by zero follows IEEE 754 (Inf/NaN), as the underlying math does.
func Div(a, b *Array) *Array {
	return binary(a, b, func(x, y float64) float64 { return x / y })
}

// Maximum returns the element-wise maximum of a and b with broadcasting.
// Ties hold the value shared by both operands; gradient routing for ties is
// decided by the differentiation layer, not here.
func Maximum(a, b *Array) *Array {
	return binary(a, b, func(x, y float64) float64 {
		if x >= y {
			return x
		}
		return y
	})
}

// Neg returns -a.
func Neg(a *Array) *Array {
	return unary(a, func(x float64) float64 { return -x })
}

// Exp returns e**a element-wise.
func Exp(a *Array) *Array {
	return unary(a, math.Exp)
}

// Log returns the natural logarithm element-wise.
// Non-positive inputs yield -Inf/NaN per math.Log.
func Log(a *Array) *Array {
	return unary(a, math.Log)
}

// GreaterEqual returns a mask of 1s where a >= b and 0s elsewhere,
// with broadcasting.
func GreaterEqual(a, b *Array) *Array {
	return binary(a, b, func(x, y float64) float64 {
		if x >= y {
			return 1
		}
		return 0
	})
}

// MatMul returns the matrix product of two 2-D arrays.
func MatMul(a, b *Array) *Array {
	if len(a.shape) != 2 || len(b.shape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D arrays supported, got %dD and %dD", len(a.shape), len(b.shape)))
	}
	m, k := a.shape[0], a.shape[1]
	kAlt, n := b.shape[0], b.shape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	out := Zeros(Shape{m, n})
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := a.data[i*k+l]
			if av == 0 {
				continue
			}
			row := b.data[l*n : (l+1)*n]
			outRow := out.data[i*n : (i+1)*n]
			for j, bv := range row {
				outRow[j] += av * bv
			}
		}
	}
	return out
}
