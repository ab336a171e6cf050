package mmap

import (
	"io"
	"os"
	"sync/atomic"
)

// Mapping represents a memory-mapped file.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data     []byte
	size     int
	writable bool
	closed   atomic.Bool

	// f is retained only for writable mappings so Flush can fsync file
	// metadata. Read-only mappings close the descriptor immediately; the
	// mapping itself keeps the pages alive.
	f *os.File

	// Platform-specific hooks.
	flush func([]byte) error
	unmap func([]byte) error
}

// Open maps the file at path into memory as read-only.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{data: nil, size: 0}, nil
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}

	data, flushFunc, unmapFunc, err := osMap(f, int(size), false)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  int(size),
		flush: flushFunc,
		unmap: unmapFunc,
	}, nil
}

// Create allocates (or truncates) the file at path to size bytes and maps it
// read-write. The caller must Flush before Close to commit written data.
func Create(path string, size int64) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}

	data, flushFunc, unmapFunc, err := osMap(f, int(size), true)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Mapping{
		data:     data,
		size:     int(size),
		writable: true,
		f:        f,
		flush:    flushFunc,
		unmap:    unmapFunc,
	}, nil
}

// Close unmaps the memory and, for writable mappings, closes the underlying
// file. It is idempotent. Close does NOT flush; call Flush first on the
// success path.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	var err error
	if m.unmap != nil && m.data != nil {
		err = m.unmap(m.data)
	}
	if m.f != nil {
		if closeErr := m.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		m.f = nil
	}
	return err
}

// Flush commits all written pages durably: msync on the mapped region
// followed by fsync on the file. Only valid for writable mappings.
func (m *Mapping) Flush() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if !m.writable {
		return ErrReadOnly
	}
	if m.flush != nil && m.data != nil {
		if err := m.flush(m.data); err != nil {
			return err
		}
	}
	if m.f != nil {
		return m.f.Sync()
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Writable reports whether the mapping accepts writes.
func (m *Mapping) Writable() bool {
	return m.writable
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
