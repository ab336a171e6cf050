package array

import (
	"fmt"

	"github.com/hupe1980/distmap/internal/mmap"
)

// Reader provides zero-copy row access to an on-disk array artifact.
//
// Row views alias the mapping and become invalid after Close.
type Reader[T Scalar] struct {
	m       *mmap.Mapping
	rows    int
	cols    int
	dataOff int
}

// Open maps the array at path read-only and validates its header against T.
func Open[T Scalar](path string) (*Reader[T], error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	h, err := parseHeader(m.Bytes())
	if err != nil {
		m.Close()
		return nil, err
	}

	if want := dtypeOf[T](); h.descr != want {
		m.Close()
		return nil, fmt.Errorf("%w: file has %s, want %s", ErrDTypeMismatch, h.descr, want)
	}

	need := int64(h.dataOff) + int64(h.rows)*int64(h.cols)*elemSize
	if int64(m.Size()) < need {
		m.Close()
		return nil, ErrTruncated
	}

	// Neighbor retrieval touches arbitrary vertices.
	_ = m.Advise(mmap.AccessRandom)

	return &Reader[T]{
		m:       m,
		rows:    h.rows,
		cols:    h.cols,
		dataOff: h.dataOff,
	}, nil
}

// Rows returns the number of rows.
func (r *Reader[T]) Rows() int { return r.rows }

// Cols returns the number of columns.
func (r *Reader[T]) Cols() int { return r.cols }

// Row returns a zero-copy view of row i.
func (r *Reader[T]) Row(i int) ([]T, error) {
	if r.m == nil {
		return nil, ErrClosed
	}
	if i < 0 || i >= r.rows {
		return nil, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, r.rows)
	}
	off := r.dataOff + i*r.cols*elemSize
	return typedView[T](r.m.Bytes()[off:], r.cols)
}

// Close releases the mapping. Row views become invalid.
func (r *Reader[T]) Close() error {
	if r.m == nil {
		return nil
	}
	err := r.m.Close()
	r.m = nil
	return err
}
