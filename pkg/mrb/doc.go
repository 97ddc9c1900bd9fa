// Package mrb implements a mirrored ("magic") ring buffer for staging
// streamed bytes.
//
// The backing storage is mapped twice into a contiguous address range of
// twice the logical capacity, so any access of up to capacity bytes starting
// anywhere in the buffer is a single contiguous memory range; the classic
// split at the wrap point never happens. On platforms without the mapping
// primitives a heap-backed fallback keeps the same behavior at the cost of
// one extra copy pair per write.
//
// A Buffer is not synchronized. It assumes one producer advancing the writer
// and one consumer advancing the reader, with any cross-thread use
// synchronized by the caller. Optional OpenTelemetry instrumentation is
// wired through Options, and a prometheus.Collector over a buffer's
// occupancy is available via NewCollector.
//
// Example usage:
//
//	b, err := mrb.New(os.Getpagesize())
//	if err != nil {
//		// ...
//	}
//	defer b.Close()
//	b.Put([]byte("hello"))
//	out := make([]byte, 5)
//	b.Get(out)
package mrb
