package mrb

import "errors"

var (
	// ErrInvalidSize reports a capacity that is zero, negative, or not a
	// multiple of the platform page size.
	ErrInvalidSize = errors.New("mrb: capacity must be a positive multiple of the page size")
	// ErrInsufficientSpace reports an all-or-nothing write that does not fit.
	ErrInsufficientSpace = errors.New("mrb: not enough space available")
	// ErrInsufficientData reports a consume-side operation that cannot meet
	// its minimum.
	ErrInsufficientData = errors.New("mrb: not enough buffered data")
	// ErrInvalidArgument reports malformed search parameters.
	ErrInvalidArgument = errors.New("mrb: invalid argument")
	// ErrNotFound reports a search miss.
	ErrNotFound = errors.New("mrb: pattern not found")
	// ErrClosed reports use of a buffer after Close.
	ErrClosed = errors.New("mrb: buffer already closed")
)
