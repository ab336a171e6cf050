package textmat

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

const (
	// initialLineBuf is the starting scanner buffer size.
	initialLineBuf = 64 * 1024

	// maxLineBytes bounds a single row of text. A float32 row of a
	// 100k-vertex matrix is well under this.
	maxLineBytes = 1 << 30
)

// Source iterates a text matrix line by line.
type Source struct {
	f       *os.File
	decomp  io.Closer // non-nil when the source is compressed
	scanner *bufio.Scanner
}

// Open opens the matrix file at path for line iteration. Files ending in
// .gz or .lz4 are decompressed on the fly.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader = f
	var decomp io.Closer

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		r = zr
		decomp = zr
	case ".lz4":
		r = lz4.NewReader(f)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialLineBuf), maxLineBytes)

	return &Source{f: f, decomp: decomp, scanner: scanner}, nil
}

// Next returns the next line and true, or nil and false at EOF or on error.
// The returned slice is valid only until the next call to Next.
func (s *Source) Next() ([]byte, bool) {
	if !s.scanner.Scan() {
		return nil, false
	}
	return s.scanner.Bytes(), true
}

// Err returns the first error encountered during iteration, if any.
func (s *Source) Err() error {
	return s.scanner.Err()
}

// Close releases the underlying file handle.
func (s *Source) Close() error {
	var err error
	if s.decomp != nil {
		err = s.decomp.Close()
		s.decomp = nil
	}
	if s.f != nil {
		if closeErr := s.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		s.f = nil
	}
	return err
}
