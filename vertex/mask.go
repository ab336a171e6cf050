package vertex

import (
	"os"
	"strings"
)

// Mask marks excluded vertices: true = excluded.
type Mask []bool

// MaskFromValues casts a numeric vector to a Mask. Any nonzero element
// excludes the corresponding vertex.
func MaskFromValues(vals []float64) Mask {
	m := make(Mask, len(vals))
	for i, v := range vals {
		m[i] = v != 0
	}
	return m
}

// ExcludedCount returns the number of excluded vertices.
func (m Mask) ExcludedCount() int {
	n := 0
	for _, excluded := range m {
		if excluded {
			n++
		}
	}
	return n
}

// WriteText persists the mask as comma-delimited 0/1 integers in original
// vertex order. The side artifact exists for provenance and debugging; the
// sorted outputs do not depend on it.
func (m Mask) WriteText(path string) error {
	var b strings.Builder
	for i, excluded := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		if excluded {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('\n')
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
