package array

import (
	"fmt"

	"github.com/hupe1980/distmap/internal/mmap"
)

// Writer builds an on-disk [rows, cols] array one row at a time through a
// writable memory mapping. Rows may be written in any order the caller
// chooses, but WriteRow fills them sequentially.
//
// The caller MUST call Flush before Close on the success path; Close alone
// only releases the mapping and does not commit written pages durably.
type Writer[T Scalar] struct {
	m       *mmap.Mapping
	path    string
	rows    int
	cols    int
	dataOff int
	next    int
}

// Create allocates the file at path sized for a [rows, cols] array of T and
// maps it for writing. The header is written immediately.
func Create[T Scalar](path string, rows, cols int) (*Writer[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("array: invalid shape [%d, %d]", rows, cols)
	}

	hdr := encodeHeader(dtypeOf[T](), rows, cols)
	size := int64(len(hdr)) + int64(rows)*int64(cols)*elemSize

	m, err := mmap.Create(path, size)
	if err != nil {
		return nil, err
	}
	copy(m.Bytes(), hdr)

	return &Writer[T]{
		m:       m,
		path:    path,
		rows:    rows,
		cols:    cols,
		dataOff: len(hdr),
	}, nil
}

// WriteRow copies row into the next unused output row.
func (w *Writer[T]) WriteRow(row []T) error {
	if w.m == nil {
		return ErrClosed
	}
	if len(row) != w.cols {
		return fmt.Errorf("%w: got %d, want %d", ErrRowLength, len(row), w.cols)
	}
	if w.next >= w.rows {
		return ErrArrayFull
	}

	off := w.dataOff + w.next*w.cols*elemSize
	dst, err := typedView[T](w.m.Bytes()[off:], w.cols)
	if err != nil {
		return err
	}
	copy(dst, row)
	w.next++
	return nil
}

// Written returns the number of rows written so far.
func (w *Writer[T]) Written() int {
	return w.next
}

// Path returns the output file path.
func (w *Writer[T]) Path() string {
	return w.path
}

// Flush commits all written rows durably (msync + fsync). Mandatory before
// Close; skipping it risks truncated artifacts on process exit.
func (w *Writer[T]) Flush() error {
	if w.m == nil {
		return ErrClosed
	}
	return w.m.Flush()
}

// Close releases the mapping and the underlying file. Idempotent, safe to
// defer on error paths.
func (w *Writer[T]) Close() error {
	if w.m == nil {
		return nil
	}
	err := w.m.Close()
	w.m = nil
	return err
}
