package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/array"
)

func axis(i int) *int { return &i }

func TestSumAll(t *testing.T) {
	a := array.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	got := array.Sum(a, nil, false)
	require.Equal(t, array.Shape{}, got.Shape())
	assert.Equal(t, 21.0, got.Item())
}

func TestSumAllKeepDims(t *testing.T) {
	a := array.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	got := array.Sum(a, nil, true)
	require.Equal(t, array.Shape{1, 1}, got.Shape())
	assert.Equal(t, 21.0, got.Item())
}

func TestSumAxis(t *testing.T) {
	a := array.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	rows := array.Sum(a, axis(0), false)
	require.Equal(t, array.Shape{3}, rows.Shape())
	assert.Equal(t, []float64{5, 7, 9}, rows.Data())

	cols := array.Sum(a, axis(1), false)
	require.Equal(t, array.Shape{2}, cols.Shape())
	assert.Equal(t, []float64{6, 15}, cols.Data())
}

func TestSumAxisKeepDims(t *testing.T) {
	a := array.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	rows := array.Sum(a, axis(0), true)
	require.Equal(t, array.Shape{1, 3}, rows.Shape())
	assert.Equal(t, []float64{5, 7, 9}, rows.Data())

	cols := array.Sum(a, axis(1), true)
	require.Equal(t, array.Shape{2, 1}, cols.Shape())
	assert.Equal(t, []float64{6, 15}, cols.Data())
}

func TestSumMiddleAxis(t *testing.T) {
	// 2x3x2 with values 0..11; summing the middle axis collapses rows
	// 0+2+4, 1+3+5 per block.
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	a := array.MustFromSlice(data, array.Shape{2, 3, 2})

	got := array.Sum(a, axis(1), false)
	require.Equal(t, array.Shape{2, 2}, got.Shape())
	assert.Equal(t, []float64{6, 9, 24, 27}, got.Data())
}

func TestSumNegativeAxis(t *testing.T) {
	a := array.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	got := array.Sum(a, axis(-1), false)
	assert.Equal(t, []float64{6, 15}, got.Data())
}

func TestSumAxisOutOfRangePanics(t *testing.T) {
	a := array.Zeros(array.Shape{2, 3})
	require.Panics(t, func() { array.Sum(a, axis(2), false) })
	require.Panics(t, func() { array.Sum(a, axis(-3), false) })
}
