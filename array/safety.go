package array

import (
	"fmt"
	"unsafe"
)

// The artifacts store little-endian data ('<f4', '<i4') and mapped bytes
// are reinterpreted as typed slices, so a big-endian host would silently
// corrupt every value. Fail loudly at startup instead.
func init() {
	if !isLittleEndian() {
		panic("distmap/array: big-endian systems are not supported")
	}
}

func isLittleEndian() bool {
	var test uint16 = 0x0001
	return *(*byte)(unsafe.Pointer(&test)) == 1
}

// typedView reinterprets a mapped byte region as a []T of n elements.
// The region must be elemSize-aligned; the 64-byte header padding
// guarantees this for row offsets.
func typedView[T Scalar](b []byte, n int) ([]T, error) {
	if len(b) < n*elemSize {
		return nil, ErrTruncated
	}
	ptr := uintptr(unsafe.Pointer(&b[0]))
	if ptr%elemSize != 0 {
		return nil, fmt.Errorf("array: unaligned data at 0x%x", ptr)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}
