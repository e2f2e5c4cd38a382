package ili9486

import "errors"

var (
	// ErrOutOfBounds is returned when an operation is anchored outside the
	// panel, or a window does not fit on it. Rectangles that merely extend
	// past the right or bottom edge are clipped instead.
	ErrOutOfBounds = errors.New("ili9486: coordinates out of bounds")

	// ErrBusTimeout is returned when a transfer did not complete within
	// Opts.BusTimeout. The bus is then considered wedged and every later
	// operation fails with the same error.
	ErrBusTimeout = errors.New("ili9486: bus timeout")

	// ErrNotInitialized is returned by drawing operations called before Init.
	ErrNotInitialized = errors.New("ili9486: not initialized")

	// ErrHalted is returned by operations called after Halt.
	ErrHalted = errors.New("ili9486: halted")

	// ErrShortBuffer is returned by DrawImage when the source holds fewer
	// than w*h pixels.
	ErrShortBuffer = errors.New("ili9486: image buffer too small")
)
