// Package diag provides health checks for services embedding mirrored ring
// buffers: a liveness check that exercises a real map/put/get/unmap cycle,
// and a readiness check on shared-memory headroom.
package diag

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"github.com/heptiolabs/healthcheck"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/srediag/mringbuf/pkg/mrb"
)

// DefaultHeadroom is the shared-memory headroom the default handler
// requires before reporting ready.
const DefaultHeadroom = 64 << 20

// NewHandler returns a healthcheck handler with the package's standard
// checks registered: a page-sized buffer round trip for liveness and
// DefaultHeadroom of shared-memory space for readiness.
func NewHandler() healthcheck.Handler {
	h := healthcheck.NewHandler()
	h.AddLivenessCheck("mrb-roundtrip", RoundTrip(os.Getpagesize()))
	h.AddReadinessCheck("shm-headroom", Headroom(DefaultHeadroom))
	return h
}

// RoundTrip returns a check that maps a buffer of the given capacity,
// pushes a probe through it and unmaps it. It catches mapping regressions
// (exhausted address space, unusable backing storage) that would otherwise
// only surface on the next real allocation.
func RoundTrip(capacity int) healthcheck.Check {
	probe := []byte("mringbuf-liveness-probe")
	return func() error {
		b, err := mrb.New(capacity)
		if err != nil {
			return err
		}
		defer func() {
			_ = b.Close() //nolint:errcheck // short-lived probe buffer
		}()
		if err := b.PutAll(probe); err != nil {
			return err
		}
		out := make([]byte, len(probe))
		if n := b.Get(out); n != len(probe) || !bytes.Equal(out, probe) {
			return fmt.Errorf("round trip mismatch: got %d of %d bytes", n, len(probe))
		}
		return nil
	}
}

// Headroom returns a check that fails when less than need bytes of backing
// headroom remain. On Linux it inspects /dev/shm free space, elsewhere
// available virtual memory.
func Headroom(need uint64) healthcheck.Check {
	return func() error {
		if runtime.GOOS == "linux" {
			stat, err := disk.Usage("/dev/shm")
			if err != nil {
				return err
			}
			if stat.Free < need {
				return fmt.Errorf("only %d bytes free on /dev/shm, need %d", stat.Free, need)
			}
			return nil
		}
		vm, err := mem.VirtualMemory()
		if err != nil {
			return err
		}
		if vm.Available < need {
			return fmt.Errorf("only %d bytes of memory available, need %d", vm.Available, need)
		}
		return nil
	}
}
