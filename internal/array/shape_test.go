package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/array"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, array.Shape{}.NumElements(), "scalar shape holds one element")
	assert.Equal(t, 6, array.Shape{2, 3}.NumElements())
	assert.Equal(t, 24, array.Shape{2, 3, 4}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, array.Shape{2, 3}.Validate())
	require.NoError(t, array.Shape{}.Validate())
	require.Error(t, array.Shape{2, 0}.Validate())
	require.Error(t, array.Shape{-1}.Validate())
}

func TestShapeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, array.Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{1}, array.Shape{5}.Strides())
	assert.Empty(t, array.Shape{}.Strides())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b array.Shape
		want array.Shape
	}{
		{"equal", array.Shape{3, 5}, array.Shape{3, 5}, array.Shape{3, 5}},
		{"ones expand", array.Shape{3, 1}, array.Shape{3, 5}, array.Shape{3, 5}},
		{"missing leading", array.Shape{5}, array.Shape{3, 5}, array.Shape{3, 5}},
		{"scalar", array.Shape{}, array.Shape{4, 2}, array.Shape{4, 2}},
		{"both expand", array.Shape{4, 1}, array.Shape{1, 3}, array.Shape{4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.BroadcastShapes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := array.BroadcastShapes(array.Shape{3, 4}, array.Shape{3, 5})
	require.Error(t, err)
}
