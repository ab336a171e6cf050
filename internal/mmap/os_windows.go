//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMap(f *os.File, size int, writable bool) ([]byte, func([]byte) error, func([]byte) error, error) {
	if size == 0 {
		return nil, nil, nil, nil
	}

	protect := uint32(windows.PAGE_READONLY)
	access := uint32(windows.FILE_MAP_READ)
	if writable {
		protect = windows.PAGE_READWRITE
		access = windows.FILE_MAP_WRITE
	}

	// The view holds a reference to the mapping object, so the handle can be
	// closed right after the view is created.
	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, protect, 0, 0, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, access, 0, 0, uintptr(size))
	if err != nil {
		return nil, nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	flush := func(b []byte) error {
		return windows.FlushViewOfFile(addr, uintptr(size))
	}
	unmap := func(b []byte) error {
		return windows.UnmapViewOfFile(addr)
	}

	return data, flush, unmap, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows has no direct madvise equivalent; the page cache handles
	// sequential and random access reasonably without hints.
	_ = data
	_ = pattern
	return nil
}
