package textmat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCountLines(t *testing.T) {
	path := writeFile(t, "m.txt", "0 1 2\n1 0 3\n2 3 0\n")
	n, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountLines_NoTrailingNewline(t *testing.T) {
	path := writeFile(t, "m.txt", "0 1\n1 0")
	n, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountLines_Empty(t *testing.T) {
	path := writeFile(t, "m.txt", "")
	n, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountLines_Missing(t *testing.T) {
	_, err := CountLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestCountLines_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("0 1\n1 0\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	n, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSource_Lines(t *testing.T) {
	path := writeFile(t, "m.txt", "0 1\n1 0\n")

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	var lines []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		lines = append(lines, string(line))
	}
	require.NoError(t, src.Err())
	assert.Equal(t, []string{"0 1", "1 0"}, lines)
}

func TestSource_LZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt.lz4")
	f, err := os.Create(path)
	require.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte("0 1\n1 0\n"))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	line, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, "0 1", string(line))

	n, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestParseRow(t *testing.T) {
	buf := make([]float32, 0, 3)

	row, err := ParseRow([]byte("0 1.5 2"), " ", 3, buf)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1.5, 2}, row)
}

func TestParseRow_TrailingWhitespace(t *testing.T) {
	row, err := ParseRow([]byte("0,1,2 \r\n"), ",", 3, make([]float32, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2}, row)
}

func TestParseRow_Blank(t *testing.T) {
	_, err := ParseRow([]byte("   \n"), " ", 3, make([]float32, 0, 3))
	assert.ErrorIs(t, err, ErrBlankLine)
}

func TestParseRow_FieldCount(t *testing.T) {
	_, err := ParseRow([]byte("0 1"), " ", 3, make([]float32, 0, 3))
	assert.ErrorIs(t, err, ErrFieldCount)

	_, err = ParseRow([]byte("0 1 2 3"), " ", 3, make([]float32, 0, 4))
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestParseRow_BadNumber(t *testing.T) {
	_, err := ParseRow([]byte("0 x 2"), " ", 3, make([]float32, 0, 3))
	assert.ErrorIs(t, err, ErrBadNumber)
}
