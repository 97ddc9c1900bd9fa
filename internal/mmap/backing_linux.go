//go:build linux

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// backingFD creates the anonymous backing storage for a mirrored region.
// On Linux a memfd needs no filesystem path and disappears with its last
// mapping.
func backingFD(size int) (int, error) {
	fd, err := unix.MemfdCreate("mringbuf", unix.MFD_CLOEXEC)
	if err != nil {
		return -1, fmt.Errorf("memfd_create: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		_ = unix.Close(fd)
		return -1, fmt.Errorf("ftruncate to %d: %w", size, err)
	}
	return fd, nil
}
