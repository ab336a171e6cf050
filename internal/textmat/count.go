package textmat

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// CountLines counts the rows of the matrix at path by streaming it in
// chunks, without buffering content. A trailing line without a terminating
// newline still counts as a row.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return 0, err
		}
		defer zr.Close()
		r = zr
	case ".lz4":
		r = lz4.NewReader(f)
	}

	buf := make([]byte, 1<<20)
	count := 0
	var lastByte byte
	seen := false

	for {
		n, err := r.Read(buf)
		if n > 0 {
			seen = true
			count += bytes.Count(buf[:n], []byte{'\n'})
			lastByte = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if seen && lastByte != '\n' {
		count++
	}
	return count, nil
}
