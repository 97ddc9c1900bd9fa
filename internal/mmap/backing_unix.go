//go:build darwin

package mmap

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/disk"
	"golang.org/x/sys/unix"
)

// canCreateOn reports whether dir has at least need bytes free for backing
// storage. Anywhere the usage cannot be read the answer is yes and the
// syscall path reports the real failure.
func canCreateOn(dir string, need uint64) bool {
	stat, err := disk.Usage(dir)
	if err != nil {
		return true
	}
	return stat.Free >= need
}

// backingFD creates the anonymous backing storage for a mirrored region.
// Without memfd the closest equivalent is an unlinked temporary file: it has
// no reachable path and the storage is reclaimed when the last mapping goes
// away.
func backingFD(size int) (int, error) {
	if !canCreateOn(os.TempDir(), uint64(size)) {
		return -1, fmt.Errorf("%s: not enough free space for %d bytes", os.TempDir(), size)
	}
	f, err := os.CreateTemp("", "mringbuf-*")
	if err != nil {
		return -1, fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	if err := os.Remove(name); err != nil {
		_ = f.Close()
		return -1, fmt.Errorf("unlink %s: %w", name, err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return -1, fmt.Errorf("truncate to %d: %w", size, err)
	}
	fd, err := unix.Dup(int(f.Fd()))
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return -1, fmt.Errorf("dup backing fd: %w", err)
	}
	return fd, nil
}
