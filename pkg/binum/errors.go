package binum

import "errors"

var (
	// ErrUnexpectedEnd reports a read that would run past the end of the buffer.
	ErrUnexpectedEnd = errors.New("read past end of buffer")

	// ErrNotRepresentable reports a widening conversion that would truncate the
	// value or reinterpret its sign.
	ErrNotRepresentable = errors.New("value not representable")

	// ErrUnsupportedDisplay reports a display mode that does not apply to the
	// value's type.
	ErrUnsupportedDisplay = errors.New("display mode unsupported for type")
)
