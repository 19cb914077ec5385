package checkpoint_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/checkpoint"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ember")
	model := nn.NewMLP([]int{2, 4, 2}, rand.New(rand.NewSource(7)))

	err := checkpoint.Save(path, model.Parameters(), "Sequential", map[string]string{"run": "test"})
	require.NoError(t, err)

	ckpt, err := checkpoint.Load(path)
	require.NoError(t, err)

	header := ckpt.Header()
	assert.Equal(t, checkpoint.FormatVersion, header.FormatVersion)
	assert.Equal(t, "Sequential", header.ModelType)
	assert.Equal(t, "test", header.Metadata["run"])
	require.Len(t, ckpt.Tensors(), 4)

	for i, p := range model.Parameters() {
		assert.Equal(t, p.Name(), header.Tensors[i].Name)
		assert.True(t, ckpt.Tensors()[i].Shape().Equal(p.Tensor().Shape()))
		assert.Equal(t, p.Tensor().Data(), ckpt.Tensors()[i].Data())
	}
}

func TestRestoreWritesThroughExistingBuffers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ember")
	trained := nn.NewMLP([]int{2, 4, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, checkpoint.Save(path, trained.Parameters(), "Sequential", nil))

	fresh := nn.NewMLP([]int{2, 4, 2}, rand.New(rand.NewSource(99)))
	buffers := make([]*array.Array, 0, 4)
	for _, p := range fresh.Parameters() {
		buffers = append(buffers, p.Tensor().Array())
	}

	ckpt, err := checkpoint.Load(path)
	require.NoError(t, err)
	require.NoError(t, ckpt.Restore(fresh.Parameters()))

	input := tensor.MustFromSlice([]float64{0.3, -0.7}, array.Shape{1, 2}, false)
	assert.Equal(t, trained.Forward(input).Data(), fresh.Forward(input).Data())

	for i, p := range fresh.Parameters() {
		assert.Same(t, buffers[i], p.Tensor().Array(), "restore must not replace buffers")
	}
}

func TestRestoreRejectsMismatchedModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ember")
	model := nn.NewMLP([]int{2, 4, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, checkpoint.Save(path, model.Parameters(), "Sequential", nil))

	ckpt, err := checkpoint.Load(path)
	require.NoError(t, err)

	smaller := nn.NewMLP([]int{2, 2}, rand.New(rand.NewSource(7)))
	assert.Error(t, ckpt.Restore(smaller.Parameters()))

	wrongShape := nn.NewMLP([]int{2, 3, 2}, rand.New(rand.NewSource(7)))
	assert.Error(t, ckpt.Restore(wrongShape.Parameters()))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ember")
	require.NoError(t, os.WriteFile(path, []byte("NOPE, not a checkpoint"), 0o644))

	_, err := checkpoint.Load(path)
	assert.ErrorIs(t, err, checkpoint.ErrInvalidMagic)
}

func TestLoadDetectsCorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ember")
	model := nn.NewMLP([]int{2, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, checkpoint.Save(path, model.Parameters(), "Sequential", nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = checkpoint.Load(path)
	assert.ErrorIs(t, err, checkpoint.ErrChecksumMismatch)
}
