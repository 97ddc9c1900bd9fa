package mrb

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Printf renders the format off-buffer and stages the result at the writer.
//
// Truncation contract: the text is always rendered in full (into a pooled
// scratch buffer), then at most Available() bytes of it are copied into the
// ring; the returned count is the bytes actually staged, which is less than
// the rendered length when the buffer ran out of space. The rendered tail
// beyond available space is discarded. A formatting failure stages nothing.
func (b *Buffer) Printf(format string, a ...interface{}) (int, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	if _, err := fmt.Fprintf(bb, format, a...); err != nil {
		return 0, fmt.Errorf("mrb: format: %w", err)
	}
	return b.Put(bb.B), nil
}
