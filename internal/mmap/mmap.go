// Package mmap reserves a double-length virtual address range and maps the
// same backing storage into both halves, so a ring buffer built on top can
// treat any window of up to Size bytes as one contiguous range.
//
// Platform implementations live in build-tagged files (mmap_unix.go,
// mmap_other.go), following the split used elsewhere in srediag for
// shared-memory helpers.
package mmap

import "unsafe"

// Region is a mapped (or heap-emulated) mirrored memory range of length
// 2*Size. When Mirrored reports true both halves alias the same storage and
// a write through either half is visible through the other; when it reports
// false the caller has to maintain the second half itself.
type Region struct {
	mem  []byte
	size int
	addr unsafe.Pointer // nil for heap-backed regions
}

// Bytes returns the full double-length range. Its length is 2*Size.
func (r *Region) Bytes() []byte { return r.mem }

// Size returns the logical size of the region, half the mapped length.
func (r *Region) Size() int { return r.size }

// Mirrored reports whether the two halves alias the same backing storage.
func (r *Region) Mirrored() bool { return r.addr != nil }

// MapHeap builds a heap-backed region with the same double-length layout
// but no aliasing between the halves; the writer has to maintain the second
// half itself. It is the strategy Map falls back to on platforms without
// the double-mapping primitives, and it never fails.
func MapHeap(size int) *Region {
	return &Region{
		mem:  make([]byte, 2*size),
		size: size,
	}
}
