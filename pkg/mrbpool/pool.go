// Package mrbpool pools idle ring buffers by capacity. Mapping a buffer
// costs several syscalls, so callers with a steady churn of short-lived
// buffers (one per connection, one per stream) reuse mappings instead of
// recreating them.
package mrbpool

import (
	"strconv"
	"time"

	queuepkg "github.com/Workiva/go-datastructures/queue"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/srediag/mringbuf/pkg/mrb"
)

const pollTimeout = time.Millisecond

// Pool keeps idle buffers keyed by capacity. Get and Put are safe for
// concurrent use; the buffers handed out are not, per the mrb contract.
type Pool struct {
	idle cmap.ConcurrentMap[string, *queuepkg.Queue]
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{idle: cmap.New[*queuepkg.Queue]()}
}

// Get returns an idle buffer of the given capacity, reset, or maps a fresh
// one when none is pooled.
func (p *Pool) Get(capacity int) (*mrb.Buffer, error) {
	if q, ok := p.idle.Get(strconv.Itoa(capacity)); ok {
		items, err := q.Poll(1, pollTimeout)
		if err == nil && len(items) == 1 {
			b := items[0].(*mrb.Buffer)
			b.Reset()
			return b, nil
		}
	}
	return mrb.New(capacity)
}

// Put parks a buffer for reuse. The caller must not touch it afterwards.
func (p *Pool) Put(b *mrb.Buffer) {
	key := strconv.Itoa(b.Size())
	q := p.idle.Upsert(key, nil, func(exist bool, cur, _ *queuepkg.Queue) *queuepkg.Queue {
		if exist {
			return cur
		}
		return queuepkg.New(8)
	})
	if err := q.Put(b); err != nil {
		// Queue disposed by a concurrent Close, release the mapping instead.
		_ = b.Close()
	}
}

// Close releases every pooled buffer and disposes the free lists. Buffers
// currently handed out are the caller's to close. The first unmap failure
// is reported after the sweep finishes.
func (p *Pool) Close() error {
	var firstErr error
	for item := range p.idle.IterBuffered() {
		q := item.Val
		for q.Len() > 0 {
			items, err := q.Poll(1, pollTimeout)
			if err != nil || len(items) == 0 {
				break
			}
			if cerr := items[0].(*mrb.Buffer).Close(); cerr != nil && firstErr == nil {
				firstErr = cerr
			}
		}
		q.Dispose()
		p.idle.Remove(item.Key)
	}
	return firstErr
}
