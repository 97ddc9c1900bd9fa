package mrb

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsNeedle(t *testing.T) {
	b, err := New(os.Getpagesize())
	require.NoError(t, err)
	defer b.Close() //nolint:errcheck // test cleanup, error ignored intentionally

	require.NoError(t, b.PutAll([]byte("the quick brown fox")))

	idx, err := b.Search([]byte("brown"), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, idx)

	// Offsets stay relative to the reader as it advances.
	require.NoError(t, b.Skip(4))
	idx, err = b.Search([]byte("brown"), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, idx)
}

func TestSearchAcrossWrapBoundary(t *testing.T) {
	b, err := New(os.Getpagesize())
	require.NoError(t, err)
	defer b.Close() //nolint:errcheck // test cleanup, error ignored intentionally

	// Park both cursors 5 bytes before the wrap point, then stage a needle
	// that straddles it.
	junk := make([]byte, b.Size()-5)
	_, err = rand.Read(junk)
	require.NoError(t, err)
	require.NoError(t, b.PutAll(junk))
	require.Equal(t, len(junk), b.Get(make([]byte, len(junk))))

	require.NoError(t, b.PutAll([]byte("0123456789ABCDEF")))
	idx, err := b.Search([]byte("89AB"), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, idx)
}

func TestSearchStartAndLimit(t *testing.T) {
	b, err := New(os.Getpagesize())
	require.NoError(t, err)
	defer b.Close() //nolint:errcheck // test cleanup, error ignored intentionally

	require.NoError(t, b.PutAll([]byte("abcabcabc")))

	idx, err := b.Search([]byte("abc"), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	// The window past start is too short to hold the needle.
	_, err = b.Search([]byte("abc"), 7, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	// A 2-byte window hides the first 'c'...
	_, err = b.Search([]byte("c"), 0, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	// ...a 3-byte window exposes it.
	idx, err = b.Search([]byte("c"), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// Oversized limits fall back to searching the rest of the used region.
	idx, err = b.Search([]byte("c"), 3, 100000)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
}

func TestSearchInvalidArguments(t *testing.T) {
	b, err := New(os.Getpagesize())
	require.NoError(t, err)
	defer b.Close() //nolint:errcheck // test cleanup, error ignored intentionally

	require.NoError(t, b.PutAll([]byte("abc")))

	_, err = b.Search(nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = b.Search([]byte("a"), 3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = b.Search([]byte("a"), -1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// On an empty buffer every start is out of range.
	require.NoError(t, b.Skip(3))
	_, err = b.Search([]byte("a"), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
