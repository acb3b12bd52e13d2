package binum

import (
	"fmt"
	"math"
	"math/big"
)

// Cursor pairs an immutable byte buffer with a read position.
//
// A Cursor is a plain value: reads never advance the position, and At returns
// a new cursor instead of mutating the receiver. Reading the same cursor
// twice always yields the same bytes, so a (type, display) configuration can
// be stamped onto any number of offsets without bookkeeping. Many cursors may
// share one buffer, from multiple goroutines, without coordination.
//
// The cursor borrows the buffer and must not outlive it.
type Cursor struct {
	buf []byte
	pos uint64
}

// NewCursor returns a cursor over buf at position 0. Cannot fail, even for an
// empty buffer.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// NewCursorAt returns a cursor over buf at the given position. The position
// may exceed the buffer length; bounds are checked when reading, not here.
func NewCursorAt(buf []byte, pos uint64) Cursor {
	return Cursor{buf: buf, pos: pos}
}

// At returns a cursor over the same buffer at a different position. The
// receiver is unchanged.
func (c Cursor) At(pos uint64) Cursor {
	return Cursor{buf: c.buf, pos: pos}
}

// Position returns the cursor's offset into the buffer.
func (c Cursor) Position() uint64 {
	return c.pos
}

// Len returns the length of the underlying buffer.
func (c Cursor) Len() uint64 {
	return uint64(len(c.buf))
}

// window returns n bytes at the current position without copying.
func (c Cursor) window(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid read length %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	end := c.pos + uint64(n)
	if end < c.pos || end > uint64(len(c.buf)) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnexpectedEnd, n, c.pos, len(c.buf))
	}
	return c.buf[c.pos:end], nil
}

// Bytes reads exactly n raw bytes at the current position. Reading zero bytes
// succeeds at any position, including positions past the end of the buffer.
func (c Cursor) Bytes(n int) ([]byte, error) {
	b, err := c.window(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// U8 reads one unsigned byte.
func (c Cursor) U8() (uint8, error) {
	b, err := c.window(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a 16-bit unsigned integer in the given byte order.
func (c Cursor) U16(order Endian) (uint16, error) {
	b, err := c.window(2)
	if err != nil {
		return 0, err
	}
	return order.byteOrder().Uint16(b), nil
}

// U32 reads a 32-bit unsigned integer in the given byte order.
func (c Cursor) U32(order Endian) (uint32, error) {
	b, err := c.window(4)
	if err != nil {
		return 0, err
	}
	return order.byteOrder().Uint32(b), nil
}

// U64 reads a 64-bit unsigned integer in the given byte order.
func (c Cursor) U64(order Endian) (uint64, error) {
	b, err := c.window(8)
	if err != nil {
		return 0, err
	}
	return order.byteOrder().Uint64(b), nil
}

// U128 reads a 128-bit unsigned integer in the given byte order. Go has no
// native 128-bit integer, so the value comes back as a big.Int.
func (c Cursor) U128(order Endian) (*big.Int, error) {
	b, err := c.window(16)
	if err != nil {
		return nil, err
	}
	be := b
	if order == Little {
		be = make([]byte, 16)
		for i := range be {
			be[i] = b[15-i]
		}
	}
	return new(big.Int).SetBytes(be), nil
}

// I8 reads one signed byte.
func (c Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// I16 reads a 16-bit signed integer in the given byte order.
func (c Cursor) I16(order Endian) (int16, error) {
	v, err := c.U16(order)
	return int16(v), err
}

// I32 reads a 32-bit signed integer in the given byte order.
func (c Cursor) I32(order Endian) (int32, error) {
	v, err := c.U32(order)
	return int32(v), err
}

// I64 reads a 64-bit signed integer in the given byte order.
func (c Cursor) I64(order Endian) (int64, error) {
	v, err := c.U64(order)
	return int64(v), err
}

// I128 reads a 128-bit signed integer (two's complement) in the given byte
// order.
func (c Cursor) I128(order Endian) (*big.Int, error) {
	v, err := c.U128(order)
	if err != nil {
		return nil, err
	}
	if v.Bit(127) == 1 {
		v.Sub(v, two128)
	}
	return v, nil
}

// F32 reads a 32-bit IEEE 754 float in the given byte order.
func (c Cursor) F32(order Endian) (float32, error) {
	u, err := c.U32(order)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// F64 reads a 64-bit IEEE 754 float in the given byte order.
func (c Cursor) F64(order Endian) (float64, error) {
	u, err := c.U64(order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// two128 is 1<<128, the modulus for 128-bit two's complement.
var two128 = new(big.Int).Lsh(big.NewInt(1), 128)
