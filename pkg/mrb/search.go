package mrb

import (
	"bytes"
	"fmt"
)

// Search scans the buffered bytes for needle, starting start bytes ahead of
// the reader, and returns the offset of the first match relative to the
// reader.
//
// limit <= 0 or limit > Used() searches the rest of the used region from
// start; otherwise the window is limit bytes, clamped to the used region so
// the scan never reads bytes the consumer already released. Thanks to the
// mirrored mapping the window is one contiguous range even when it
// straddles the wrap point.
func (b *Buffer) Search(needle []byte, start, limit int) (int, error) {
	if len(needle) == 0 {
		return 0, fmt.Errorf("%w: empty needle", ErrInvalidArgument)
	}
	used := b.Used()
	if start < 0 || start >= used {
		return 0, fmt.Errorf("%w: search start %d with %d bytes buffered", ErrInvalidArgument, start, used)
	}
	window := used - start
	if limit > 0 && limit <= used && limit < window {
		window = limit
	}
	p := (b.reader + start) % b.size
	if i := bytes.Index(b.mem[p:p+window], needle); i >= 0 {
		return start + i, nil
	}
	return 0, ErrNotFound
}
