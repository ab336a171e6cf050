package vertex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextMaskLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.txt")
	require.NoError(t, os.WriteFile(path, []byte("0, 1, 0\n1 0\n"), 0o644))

	vals, err := TextMaskLoader{}.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1, 0}, vals)
}

func TestTextMaskLoader_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,x,1"), 0o644))

	_, err := TextMaskLoader{}.Load(path)
	assert.Error(t, err)
}

func TestMaskFromValues(t *testing.T) {
	m := MaskFromValues([]float64{0, 1, 0, 2.5, -1})
	assert.Equal(t, Mask{false, true, false, true, true}, m)
	assert.Equal(t, 3, m.ExcludedCount())
}

func TestMask_WriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.txt")
	m := Mask{false, true, false}
	require.NoError(t, m.WriteText(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0,1,0\n", string(raw))
}

func TestIdentity(t *testing.T) {
	ix := Identity(4)
	assert.Equal(t, 4, ix.N())
	assert.Equal(t, 4, ix.Len())
	assert.Equal(t, []uint32{0, 1, 2, 3}, ix.Retained())
	for i := 0; i < 4; i++ {
		assert.True(t, ix.Contains(i))
	}
	assert.False(t, ix.Contains(4))
	assert.False(t, ix.Contains(-1))
}

func TestBuild_Masked(t *testing.T) {
	ix, err := Build(5, Mask{false, true, false, true, false})
	require.NoError(t, err)

	assert.Equal(t, 5, ix.N())
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []uint32{0, 2, 4}, ix.Retained())

	assert.True(t, ix.Contains(0))
	assert.False(t, ix.Contains(1))
	assert.True(t, ix.Contains(2))
	assert.False(t, ix.Contains(3))
	assert.True(t, ix.Contains(4))
}

func TestBuild_NilMask(t *testing.T) {
	ix, err := Build(3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Len())
}

func TestBuild_SizeMismatch(t *testing.T) {
	_, err := Build(5, Mask{true, false})
	assert.Error(t, err)
}

func TestProject(t *testing.T) {
	ix, err := Build(5, Mask{false, true, false, true, false})
	require.NoError(t, err)

	src := []float32{10, 11, 12, 13, 14}
	dst := ix.Project(src, nil)
	assert.Equal(t, []float32{10, 12, 14}, dst)

	// Buffer reuse keeps the projection allocation-free in steady state.
	dst2 := ix.Project(src, dst)
	assert.Equal(t, []float32{10, 12, 14}, dst2)
}
