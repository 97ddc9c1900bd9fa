//go:build !linux && !darwin

package mmap

// Map on platforms without the double-mapping primitives falls back to a
// plain heap slice of twice the logical size. Mirrored reports false and the
// writer side is responsible for keeping the second half consistent, which
// costs at most one extra pair of contiguous copies per write while every
// read stays a single contiguous operation.
func Map(size int) (*Region, error) {
	return MapHeap(size), nil
}

// Unmap releases the heap region.
func (r *Region) Unmap() error {
	r.mem = nil
	return nil
}
