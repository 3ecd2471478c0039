package tilerast

import "errors"

var (
	// ErrClosed is returned by Renderer methods called after Close.
	ErrClosed = errors.New("tilerast: renderer closed")

	// ErrUnknownTriangle is returned by Discard for an id that is not
	// pending in the current frame.
	ErrUnknownTriangle = errors.New("tilerast: unknown triangle")

	// ErrInvalidSize is returned by New for a canvas that is empty or
	// larger than the guard band.
	ErrInvalidSize = errors.New("tilerast: invalid canvas size")
)
