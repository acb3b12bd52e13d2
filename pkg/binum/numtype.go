package binum

import (
	"fmt"
)

// Kind identifies the width and interpretation of a stored number: unsigned
// or signed integers of 8 through 128 bits, or an IEEE 754 float. The set is
// closed; width and signedness are properties of the tag, never derived from
// data.
type Kind uint8

const (
	U8 Kind = iota
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	F32
	F64
)

func (k Kind) String() string {
	switch k {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "u8":
		return U8, nil
	case "u16":
		return U16, nil
	case "u32":
		return U32, nil
	case "u64":
		return U64, nil
	case "u128":
		return U128, nil
	case "i8":
		return I8, nil
	case "i16":
		return I16, nil
	case "i32":
		return I32, nil
	case "i64":
		return I64, nil
	case "i128":
		return I128, nil
	case "f32":
		return F32, nil
	case "f64":
		return F64, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

// Kinds returns every kind, in declaration order.
func Kinds() []Kind {
	return []Kind{U8, U16, U32, U64, U128, I8, I16, I32, I64, I128, F32, F64}
}

// Size returns the number of bytes a value of this kind occupies.
func (k Kind) Size() uint64 {
	switch k {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	case U128, I128:
		return 16
	default:
		return 0
	}
}

// Bits returns the bit width of the kind.
func (k Kind) Bits() int {
	return int(k.Size()) * 8
}

// Signed reports whether the kind is a signed integer.
func (k Kind) Signed() bool {
	switch k {
	case I8, I16, I32, I64, I128:
		return true
	default:
		return false
	}
}

// Float reports whether the kind is a floating point type.
func (k Kind) Float() bool {
	return k == F32 || k == F64
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type describes how to read a number out of a buffer: a kind plus the byte
// order for multi-byte kinds. Order is ignored for u8 and i8, which have no
// byte order. A Type is a pure value, constructed per read site and never
// mutated.
type Type struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Order Endian `json:"endian" yaml:"endian"`
}

func (t Type) String() string {
	if t.Kind.Size() == 1 {
		return t.Kind.String()
	}
	return t.Kind.String() + "-" + t.Order.String()
}

// Size returns the number of bytes a value of this type occupies.
func (t Type) Size() uint64 {
	return t.Kind.Size()
}

// Read reads one value of this type at the cursor's position. The cursor is
// not advanced; bounds failures surface as ErrUnexpectedEnd.
func (t Type) Read(c Cursor) (Value, error) {
	var (
		v   any
		err error
	)
	switch t.Kind {
	case U8:
		v, err = c.U8()
	case U16:
		v, err = c.U16(t.Order)
	case U32:
		v, err = c.U32(t.Order)
	case U64:
		v, err = c.U64(t.Order)
	case U128:
		v, err = c.U128(t.Order)
	case I8:
		v, err = c.I8()
	case I16:
		v, err = c.I16(t.Order)
	case I32:
		v, err = c.I32(t.Order)
	case I64:
		v, err = c.I64(t.Order)
	case I128:
		v, err = c.I128(t.Order)
	case F32:
		v, err = c.F32(t.Order)
	case F64:
		v, err = c.F64(t.Order)
	default:
		return Value{}, fmt.Errorf("unknown kind %d", uint8(t.Kind))
	}
	if err != nil {
		return Value{}, err
	}
	return Value{Type: t, V: v}, nil
}

// Uint64 reads the value at the cursor and zero-extends it to 64 bits. Only
// u8 through u64 can be widened this way; every other kind fails with
// ErrNotRepresentable rather than truncating a 128-bit value or
// reinterpreting a sign bit.
func (t Type) Uint64(c Cursor) (uint64, error) {
	switch t.Kind {
	case U8:
		v, err := c.U8()
		return uint64(v), err
	case U16:
		v, err := c.U16(t.Order)
		return uint64(v), err
	case U32:
		v, err := c.U32(t.Order)
		return uint64(v), err
	case U64:
		return c.U64(t.Order)
	default:
		return 0, fmt.Errorf("%w: %s as u64", ErrNotRepresentable, t.Kind)
	}
}

// Int64 reads the value at the cursor and sign-extends it to 64 bits. Only i8
// through i64 can be widened; every width goes through the signed read
// primitive so negative values extend correctly.
func (t Type) Int64(c Cursor) (int64, error) {
	switch t.Kind {
	case I8:
		v, err := c.I8()
		return int64(v), err
	case I16:
		v, err := c.I16(t.Order)
		return int64(v), err
	case I32:
		v, err := c.I32(t.Order)
		return int64(v), err
	case I64:
		return c.I64(t.Order)
	default:
		return 0, fmt.Errorf("%w: %s as i64", ErrNotRepresentable, t.Kind)
	}
}
