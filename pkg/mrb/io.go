package mrb

import "io"

// FillFrom issues exactly one Read into the contiguous window at the
// writer, bounded by min(limit, Available()); limit <= 0 means Available().
// The reader's error (including io.EOF) is passed through untouched, with
// whatever bytes were delivered already staged. When the window is empty the
// descriptor is not touched and (0, nil) is returned.
//
// There is no retry loop; callers needing to fill the buffer completely
// call FillFrom repeatedly. Blocking behavior is whatever r's is.
func (b *Buffer) FillFrom(r io.Reader, limit int) (int, error) {
	n := b.Available()
	if limit > 0 && limit < n {
		n = limit
	}
	if n == 0 {
		return 0, nil
	}
	m, err := r.Read(b.mem[b.writer : b.writer+n])
	if m > 0 {
		b.mirror(b.writer, m)
		b.writer = (b.writer + m) % b.size
		b.countPut(m)
	}
	return m, err
}

// DrainTo issues exactly one Write from the contiguous window at the
// reader, bounded by min(limit, Used()); limit <= 0 means Used(). The
// writer's error is passed through untouched, with whatever bytes it
// accepted already consumed. When the window is empty the descriptor is not
// touched and (0, nil) is returned.
func (b *Buffer) DrainTo(w io.Writer, limit int) (int, error) {
	n := b.Used()
	if limit > 0 && limit < n {
		n = limit
	}
	if n == 0 {
		return 0, nil
	}
	m, err := w.Write(b.mem[b.reader : b.reader+n])
	if m > 0 {
		b.reader = (b.reader + m) % b.size
		b.countGet(m)
	}
	return m, err
}
