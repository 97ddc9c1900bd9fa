package mrb

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/srediag/mringbuf/internal/mmap"
)

// Options holds optional buffer creation parameters.
type Options struct {
	// Meter, when set, records mrb.put.bytes and mrb.get.bytes counters.
	Meter metric.Meter
	// Tracer, when set, wraps creation and teardown in spans.
	Tracer trace.Tracer
}

// Buffer is a mirrored ring buffer over a double-mapped memory region.
//
// One byte of capacity is sacrificed to tell the full state apart from the
// empty state, so Used()+Available() == Size()-1 at all times. The zero
// value is not usable; create buffers with New or NewWithOptions and release
// them with Close exactly once.
type Buffer struct {
	region *mmap.Region
	mem    []byte // len == 2*size, both halves alias when mirrored
	size   int
	reader int
	writer int

	tracer   trace.Tracer
	putBytes metric.Int64Counter
	getBytes metric.Int64Counter
}

// New creates a buffer of the given capacity, which must be a positive
// multiple of the platform page size.
func New(capacity int) (*Buffer, error) {
	return NewWithOptions(context.Background(), capacity, Options{})
}

// NewWithOptions creates a buffer with instrumentation options. Any syscall
// failure during mapping unwinds the partial mappings before returning, no
// state is left allocated on error.
func NewWithOptions(ctx context.Context, capacity int, opts Options) (*Buffer, error) {
	if opts.Tracer != nil {
		var span trace.Span
		ctx, span = opts.Tracer.Start(ctx, "mrb.New")
		defer span.End()
	}
	_ = ctx // the mapping itself has no cancellation points

	pageSize := os.Getpagesize()
	if capacity <= 0 || capacity%pageSize != 0 {
		return nil, fmt.Errorf("%w: got %d with page size %d", ErrInvalidSize, capacity, pageSize)
	}
	region, err := mmap.Map(capacity)
	if err != nil {
		return nil, fmt.Errorf("mrb: map backing region: %w", err)
	}

	b := &Buffer{
		region: region,
		mem:    region.Bytes(),
		size:   capacity,
		tracer: opts.Tracer,
	}
	if opts.Meter != nil {
		if b.putBytes, err = opts.Meter.Int64Counter("mrb.put.bytes"); err == nil {
			b.getBytes, err = opts.Meter.Int64Counter("mrb.get.bytes")
		}
		if err != nil {
			if uerr := region.Unmap(); uerr != nil {
				internalLogger.warnf("unwind unmap after counter failure: %v", uerr)
			}
			return nil, fmt.Errorf("mrb: create counters: %w", err)
		}
	}
	internalLogger.debugf("created buffer capacity=%d mirrored=%v", capacity, region.Mirrored())
	return b, nil
}

// Close unmaps the backing region. It must be called exactly once; after a
// failed Close the buffer state is undefined and it must not be reused.
func (b *Buffer) Close() error {
	if b.region == nil {
		return ErrClosed
	}
	if b.tracer != nil {
		_, span := b.tracer.Start(context.Background(), "mrb.Close")
		defer span.End()
	}
	if err := b.region.Unmap(); err != nil {
		internalLogger.errorf("unmap failed: %v", err)
		return fmt.Errorf("mrb: unmap: %w", err)
	}
	b.region = nil
	b.mem = nil
	return nil
}

// Size returns the logical capacity in bytes.
func (b *Buffer) Size() int { return b.size }

// Available returns the number of bytes that can be staged before the
// buffer is full.
func (b *Buffer) Available() int {
	if b.writer < b.reader {
		return b.reader - b.writer - 1
	}
	return b.size - (b.writer - b.reader) - 1
}

// Used returns the number of buffered bytes waiting to be consumed.
func (b *Buffer) Used() int {
	if b.writer >= b.reader {
		return b.writer - b.reader
	}
	return b.size - (b.reader - b.writer)
}

// IsEmpty reports whether no bytes are buffered.
func (b *Buffer) IsEmpty() bool { return b.reader == b.writer }

// IsFull reports whether no more bytes can be staged.
func (b *Buffer) IsFull() bool { return b.Used() == b.size-1 }

// Reset discards all buffered bytes and rewinds both cursors.
func (b *Buffer) Reset() {
	b.reader = 0
	b.writer = 0
}

// mirror replicates [off, off+n) into the opposite half when the region is
// heap-backed, so every read path stays a single contiguous copy.
func (b *Buffer) mirror(off, n int) {
	if n == 0 || b.region.Mirrored() {
		return
	}
	if end := off + n; end <= b.size {
		copy(b.mem[off+b.size:end+b.size], b.mem[off:end])
	} else {
		copy(b.mem[off+b.size:], b.mem[off:b.size])
		copy(b.mem[:end-b.size], b.mem[b.size:end])
	}
}

func (b *Buffer) countPut(n int) {
	if b.putBytes != nil && n > 0 {
		b.putBytes.Add(context.Background(), int64(n))
	}
}

func (b *Buffer) countGet(n int) {
	if b.getBytes != nil && n > 0 {
		b.getBytes.Add(context.Background(), int64(n))
	}
}
