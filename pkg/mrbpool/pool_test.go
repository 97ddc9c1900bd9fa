package mrbpool

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolReusesBuffers(t *testing.T) {
	p := New()
	defer p.Close() //nolint:errcheck // test cleanup, error ignored intentionally
	page := os.Getpagesize()

	b1, err := p.Get(page)
	require.NoError(t, err)
	b1.Put([]byte("scribble"))
	p.Put(b1)

	b2, err := p.Get(page)
	require.NoError(t, err)
	assert.Same(t, b1, b2, "the parked buffer comes back")
	assert.True(t, b2.IsEmpty(), "parked buffers come back reset")
	p.Put(b2)
}

func TestPoolKeysByCapacity(t *testing.T) {
	p := New()
	defer p.Close() //nolint:errcheck // test cleanup, error ignored intentionally
	page := os.Getpagesize()

	small, err := p.Get(page)
	require.NoError(t, err)
	large, err := p.Get(2 * page)
	require.NoError(t, err)
	assert.Equal(t, page, small.Size())
	assert.Equal(t, 2*page, large.Size())

	p.Put(small)
	p.Put(large)

	got, err := p.Get(2 * page)
	require.NoError(t, err)
	assert.Same(t, large, got)
	p.Put(got)
}

func TestPoolClose(t *testing.T) {
	p := New()
	page := os.Getpagesize()

	b, err := p.Get(page)
	require.NoError(t, err)
	p.Put(b)
	require.NoError(t, p.Close())

	// A closed pool still hands out fresh buffers.
	b, err = p.Get(page)
	require.NoError(t, err)
	require.NoError(t, b.Close())
}
