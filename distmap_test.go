package distmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/distmap/array"
)

func writeDistFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dist.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreate_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	distFile := writeDistFile(t, dir, "0 1 2\n1 0 3\n2 3 0\n")

	artifacts, err := Create(distFile, outDir)
	require.NoError(t, err)

	require.Contains(t, artifacts, "distmat")
	require.Contains(t, artifacts, "index")
	assert.True(t, filepath.IsAbs(artifacts["distmat"]))
	assert.True(t, filepath.IsAbs(artifacts["index"]))

	dr, err := array.Open[float32](artifacts["distmat"])
	require.NoError(t, err)
	defer dr.Close()

	ir, err := array.Open[int32](artifacts["index"])
	require.NoError(t, err)
	defer ir.Close()

	assert.Equal(t, 3, dr.Rows())
	assert.Equal(t, 3, dr.Cols())

	d0, err := dr.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2}, d0)
	i0, err := ir.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, i0)

	d1, err := dr.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 3}, d1)
	i1, err := ir.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 0, 2}, i1)

	// No mask supplied: no mask artifact.
	_, err = os.Stat(filepath.Join(outDir, MaskFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestCreate_Masked(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	// 5 vertices; mask excludes 1 and 4, retaining {0, 2, 3}.
	distFile := writeDistFile(t, dir,
		"0 9 1 2 9\n"+
			"9 0 9 9 9\n"+
			"1 9 0 4 9\n"+
			"2 9 4 0 9\n"+
			"9 9 9 9 0\n")

	maskFile := filepath.Join(dir, "mask_in.txt")
	require.NoError(t, os.WriteFile(maskFile, []byte("0\n1\n0\n0\n1\n"), 0o644))

	artifacts, err := Create(distFile, outDir, WithMaskFile(maskFile))
	require.NoError(t, err)

	dr, err := array.Open[float32](artifacts["distmat"])
	require.NoError(t, err)
	defer dr.Close()

	ir, err := array.Open[int32](artifacts["index"])
	require.NoError(t, err)
	defer ir.Close()

	// Nv = N - excluded = 3, compacted with no gaps.
	assert.Equal(t, 3, dr.Rows())
	assert.Equal(t, 3, dr.Cols())

	// Retained row 0 projected onto retained columns: [0, 1, 2].
	d0, err := dr.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2}, d0)

	// Original row 2 becomes output row 1: projected [1, 0, 4].
	d1, err := dr.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 4}, d1)
	i1, err := ir.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 0, 2}, i1)

	// Mask side artifact is persisted in original vertex order.
	raw, err := os.ReadFile(filepath.Join(outDir, MaskFileName))
	require.NoError(t, err)
	assert.Equal(t, "0,1,0,0,1\n", string(raw))
}

func TestCreate_SortProperties(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	// Unsorted rows with ties.
	distFile := writeDistFile(t, dir,
		"0 5 2 5\n"+
			"5 0 7 1\n"+
			"2 7 0 3\n"+
			"5 1 3 0\n")

	artifacts, err := Create(distFile, outDir)
	require.NoError(t, err)

	dr, err := array.Open[float32](artifacts["distmat"])
	require.NoError(t, err)
	defer dr.Close()

	ir, err := array.Open[int32](artifacts["index"])
	require.NoError(t, err)
	defer ir.Close()

	original := [][]float32{
		{0, 5, 2, 5},
		{5, 0, 7, 1},
		{2, 7, 0, 3},
		{5, 1, 3, 0},
	}

	for i := 0; i < dr.Rows(); i++ {
		d, err := dr.Row(i)
		require.NoError(t, err)
		p, err := ir.Row(i)
		require.NoError(t, err)

		// Distances are non-decreasing.
		for j := 1; j < len(d); j++ {
			assert.LessOrEqual(t, d[j-1], d[j], "row %d not sorted at %d", i, j)
		}

		// The index row is a permutation of {0..Nv-1}.
		seen := make(map[int32]bool, len(p))
		for _, v := range p {
			assert.False(t, seen[v], "row %d repeats index %d", i, v)
			seen[v] = true
			assert.GreaterOrEqual(t, v, int32(0))
			assert.Less(t, v, int32(len(p)))
		}

		// Round-trip: un-permuting the sorted row reproduces the original.
		restored := make([]float32, len(d))
		for j, v := range p {
			restored[v] = d[j]
		}
		assert.Equal(t, original[i], restored, "row %d round-trip", i)
	}

	// Stable tie-breaking: row 0 has 5 at original columns 1 and 3.
	p0, err := ir.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 1, 3}, p0)
}

func TestCreate_MissingOutputDir(t *testing.T) {
	dir := t.TempDir()

	// Source file deliberately absent too: the output directory check must
	// fire before the source is even opened.
	_, err := Create(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "no_such_dir"))

	var missing *ErrOutputDirMissing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, filepath.Join(dir, "no_such_dir"), missing.Path)
}

func TestCreate_MaskSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	distFile := writeDistFile(t, dir, "0 1 2 3 4\n1 0 2 3 4\n2 1 0 3 4\n3 1 2 0 4\n4 1 2 3 0\n")

	maskFile := filepath.Join(dir, "mask_in.txt")
	require.NoError(t, os.WriteFile(maskFile, []byte("0,1,0,1"), 0o644)) // 4 != 5

	_, err := Create(distFile, outDir, WithMaskFile(maskFile))

	var mismatch *ErrMaskSizeMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 5, mismatch.Rows)
	assert.Equal(t, 4, mismatch.MaskLen)
	assert.Equal(t, distFile, mismatch.DistFile)
	assert.Equal(t, maskFile, mismatch.MaskFile)

	// Detected before any output file is created.
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_MalformedRow(t *testing.T) {
	tests := []struct {
		name    string
		content string
		row     int
	}{
		{name: "non-numeric token", content: "0 1 2\n1 zero 3\n2 3 0\n", row: 1},
		{name: "short row", content: "0 1 2\n1 0\n2 3 0\n", row: 1},
		{name: "long row", content: "0 1 2 4\n1 0 3\n2 3 0\n", row: 0},
		{name: "blank retained line", content: "0 1 2\n\n2 3 0\n", row: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			outDir := filepath.Join(dir, "out")
			require.NoError(t, os.Mkdir(outDir, 0o755))

			distFile := writeDistFile(t, dir, tt.content)

			_, err := Create(distFile, outDir)

			var malformed *ErrMalformedRow
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.row, malformed.Row)
		})
	}
}

func TestCreate_CustomDelimiter(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	distFile := writeDistFile(t, dir, "0,1,2\n1,0,3\n2,3,0\n")

	artifacts, err := Create(distFile, outDir, WithDelimiter(","))
	require.NoError(t, err)

	dr, err := array.Open[float32](artifacts["distmat"])
	require.NoError(t, err)
	defer dr.Close()
	assert.Equal(t, 3, dr.Rows())
}

func TestCreate_AllMasked(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	distFile := writeDistFile(t, dir, "0 1\n1 0\n")
	maskFile := filepath.Join(dir, "mask_in.txt")
	require.NoError(t, os.WriteFile(maskFile, []byte("1,1"), 0o644))

	_, err := Create(distFile, outDir, WithMaskFile(maskFile))
	assert.Error(t, err)
}
