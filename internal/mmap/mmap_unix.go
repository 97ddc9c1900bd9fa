//go:build linux || darwin

package mmap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Map builds a mirrored region of the given size: a 2*size reservation with
// no access rights, then the backing storage mapped read/write at the start
// and at the midpoint. The backing file descriptor is closed once both
// mappings exist; the mappings keep the storage alive. Any failure unwinds
// the mappings created so far, nothing stays allocated on error.
//
// size must be a positive multiple of the page size; the caller validates.
func Map(size int) (*Region, error) {
	fd, err := backingFD(size)
	if err != nil {
		return nil, fmt.Errorf("create backing storage: %w", err)
	}
	// The fd is not retained, the mappings keep the storage alive.
	defer func() { _ = unix.Close(fd) }()

	base, err := unix.MmapPtr(-1, 0, nil, uintptr(2*size),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("reserve %d bytes: %w", 2*size, err)
	}
	if _, err := unix.MmapPtr(fd, 0, base, uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		_ = unix.MunmapPtr(base, uintptr(2*size))
		return nil, fmt.Errorf("map first half: %w", err)
	}
	if _, err := unix.MmapPtr(fd, 0, unsafe.Add(base, size), uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		_ = unix.MunmapPtr(base, uintptr(2*size))
		return nil, fmt.Errorf("map second half: %w", err)
	}

	return &Region{
		mem:  unsafe.Slice((*byte)(base), 2*size),
		size: size,
		addr: base,
	}, nil
}

// Unmap releases the region: second half, first half, then the full
// reservation, the reverse of the order Map built them in. After a failed
// Unmap the region state is undefined and it must not be reused.
func (r *Region) Unmap() error {
	if r.addr == nil {
		r.mem = nil
		return nil
	}
	if err := unix.MunmapPtr(unsafe.Add(r.addr, r.size), uintptr(r.size)); err != nil {
		return fmt.Errorf("unmap second half: %w", err)
	}
	if err := unix.MunmapPtr(r.addr, uintptr(r.size)); err != nil {
		return fmt.Errorf("unmap first half: %w", err)
	}
	if err := unix.MunmapPtr(r.addr, uintptr(2*r.size)); err != nil {
		return fmt.Errorf("unmap reservation: %w", err)
	}
	r.mem = nil
	r.addr = nil
	return nil
}
