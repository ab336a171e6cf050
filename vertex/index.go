package vertex

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index is the retained-vertex index: the ordered set of original row
// positions that survive masking, plus a bitmap for constant-time
// membership tests.
type Index struct {
	n        int
	retained []uint32
	members  *roaring.Bitmap
}

// Identity returns the index retaining all n vertices.
func Identity(n int) *Index {
	retained := make([]uint32, n)
	for i := range retained {
		retained[i] = uint32(i)
	}

	members := roaring.New()
	members.AddRange(0, uint64(n))

	return &Index{n: n, retained: retained, members: members}
}

// Build returns the index retaining the vertices not excluded by mask.
// The mask length must equal n.
func Build(n int, mask Mask) (*Index, error) {
	if mask == nil {
		return Identity(n), nil
	}
	if len(mask) != n {
		return nil, fmt.Errorf("vertex: mask has %d elements, want %d", len(mask), n)
	}

	retained := make([]uint32, 0, n-mask.ExcludedCount())
	members := roaring.New()
	for i, excluded := range mask {
		if !excluded {
			retained = append(retained, uint32(i))
			members.Add(uint32(i))
		}
	}

	return &Index{n: n, retained: retained, members: members}, nil
}

// N returns the original vertex count.
func (ix *Index) N() int { return ix.n }

// Len returns Nv, the retained-vertex count.
func (ix *Index) Len() int { return len(ix.retained) }

// Contains reports whether original row position i is retained.
func (ix *Index) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return ix.members.Contains(uint32(i))
}

// Retained returns the ordered original positions of retained vertices.
// The slice is shared; callers must not modify it.
func (ix *Index) Retained() []uint32 { return ix.retained }

// Project gathers the retained columns of src (length N) into dst, which
// is grown as needed and returned with length Nv.
func (ix *Index) Project(src []float32, dst []float32) []float32 {
	dst = dst[:0]
	for _, col := range ix.retained {
		dst = append(dst, src[col])
	}
	return dst
}
