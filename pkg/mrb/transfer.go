package mrb

import "fmt"

// Put copies min(len(src), Available()) bytes into the buffer at the writer
// and returns the number of bytes actually staged. A short count is not an
// error; callers wanting all-or-nothing use PutAll.
func (b *Buffer) Put(src []byte) int {
	n := len(src)
	if avail := b.Available(); n > avail {
		n = avail
	}
	copy(b.mem[b.writer:b.writer+n], src[:n])
	b.mirror(b.writer, n)
	b.writer = (b.writer + n) % b.size
	b.countPut(n)
	return n
}

// PutAll copies src only if it fits entirely. On ErrInsufficientSpace the
// buffer is left untouched.
func (b *Buffer) PutAll(src []byte) error {
	if avail := b.Available(); len(src) > avail {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientSpace, len(src), avail)
	}
	b.Put(src)
	return nil
}

// Get copies min(len(dst), Used()) bytes out of the buffer at the reader and
// returns the number of bytes actually copied. A short count is not an
// error.
func (b *Buffer) Get(dst []byte) int {
	n := len(dst)
	if used := b.Used(); n > used {
		n = used
	}
	copy(dst[:n], b.mem[b.reader:b.reader+n])
	b.reader = (b.reader + n) % b.size
	b.countGet(n)
	return n
}

// Peek copies up to len(dst) bytes starting offset bytes ahead of the
// reader, without consuming anything. It fails when offset points past the
// buffered bytes.
func (b *Buffer) Peek(dst []byte, offset int) (int, error) {
	used := b.Used()
	if offset < 0 || offset > used {
		return 0, fmt.Errorf("%w: peek offset %d with %d bytes buffered", ErrInsufficientData, offset, used)
	}
	n := len(dst)
	if rest := used - offset; n > rest {
		n = rest
	}
	p := (b.reader + offset) % b.size
	copy(dst[:n], b.mem[p:p+n])
	return n, nil
}

// Skip drops n buffered bytes without copying them out.
func (b *Buffer) Skip(n int) error {
	if used := b.Used(); n < 0 || n > used {
		return fmt.Errorf("%w: skip %d with %d bytes buffered", ErrInsufficientData, n, used)
	}
	b.reader = (b.reader + n) % b.size
	return nil
}

// Rollback moves the reader n bytes backwards, restoring previously
// consumed bytes.
//
// The bound below rejects the rollback while more than n bytes are still
// buffered ahead of the reader. It deliberately does not measure the space
// behind the reader; the check is kept exactly as the original interface
// documents it.
func (b *Buffer) Rollback(n int) error {
	if used := b.Used(); n < 0 || used > n {
		return fmt.Errorf("%w: rollback %d with %d bytes buffered", ErrInsufficientData, n, used)
	}
	b.reader = ((b.reader-n)%b.size + b.size) % b.size
	return nil
}

// GetMin is Get gated on a minimum: when fewer than min bytes are buffered
// nothing is copied and ErrInsufficientData is returned, otherwise it
// behaves exactly like Get.
func (b *Buffer) GetMin(dst []byte, min int) (int, error) {
	if used := b.Used(); used < min {
		return 0, fmt.Errorf("%w: need at least %d, have %d", ErrInsufficientData, min, used)
	}
	return b.Get(dst), nil
}
