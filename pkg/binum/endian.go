package binum

import (
	"encoding/binary"
	"fmt"
)

// Endian selects the byte order for multi-byte reads.
type Endian uint8

const (
	// Big stores the most significant byte first (0x1234 -> 12 34).
	Big Endian = iota

	// Little stores the most significant byte last (0x1234 -> 34 12).
	Little
)

func (e Endian) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	default:
		return fmt.Sprintf("endian(%d)", uint8(e))
	}
}

func (e Endian) byteOrder() binary.ByteOrder {
	if e == Little {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// MarshalText implements encoding.TextMarshaler so Endian round-trips through
// JSON and YAML as "big" or "little".
func (e Endian) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "be" and "le" are
// accepted as shorthand.
func (e *Endian) UnmarshalText(text []byte) error {
	switch string(text) {
	case "big", "be":
		*e = Big
	case "little", "le":
		*e = Little
	default:
		return fmt.Errorf("unknown endianness %q", string(text))
	}
	return nil
}
