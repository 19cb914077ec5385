package array

import "math/rand"

// Randn creates an array of standard-normal samples drawn from rng.
// The generator is passed explicitly so initialization is reproducible;
// there is no package-level random state.
func Randn(shape Shape, rng *rand.Rand) *Array {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = rng.NormFloat64()
	}
	return a
}

// RandUniform creates an array of samples uniform in [low, high).
func RandUniform(shape Shape, low, high float64, rng *rand.Rand) *Array {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = low + rng.Float64()*(high-low)
	}
	return a
}
