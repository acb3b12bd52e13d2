package binum

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Mode selects the textual form a value renders to.
type Mode uint8

const (
	ModeHex Mode = iota
	ModeDecimal
	ModeOctal
	ModeBinary
	ModeScientific
)

func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "hex"
	case ModeDecimal:
		return "decimal"
	case ModeOctal:
		return "octal"
	case ModeBinary:
		return "binary"
	case ModeScientific:
		return "scientific"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "hex":
		return ModeHex, nil
	case "decimal", "dec":
		return ModeDecimal, nil
	case "octal", "oct":
		return ModeOctal, nil
	case "binary", "bin":
		return ModeBinary, nil
	case "scientific", "sci":
		return ModeScientific, nil
	default:
		return 0, fmt.Errorf("unknown display mode %q", s)
	}
}

// Modes returns every display mode, in declaration order.
func Modes() []Mode {
	return []Mode{ModeHex, ModeDecimal, ModeOctal, ModeBinary, ModeScientific}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// HexOptions configure hexadecimal rendering. Padding zero-extends the digit
// string to exactly two digits per source byte; case applies to the digits
// only, and the "0x" prefix is always lowercase.
type HexOptions struct {
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
	Prefix    bool `json:"prefix" yaml:"prefix"`
	Padded    bool `json:"padded" yaml:"padded"`
}

// DefaultHexOptions returns the default hex rendering: lowercase digits, "0x"
// prefix, padded to the source width.
func DefaultHexOptions() HexOptions {
	return HexOptions{Prefix: true, Padded: true}
}

// BinaryOptions configure binary rendering. Padding zero-extends to the bit
// width of the source type.
type BinaryOptions struct {
	Padded bool `json:"padded" yaml:"padded"`
}

// DefaultBinaryOptions returns the default binary rendering: padded to the
// source bit width.
func DefaultBinaryOptions() BinaryOptions {
	return BinaryOptions{Padded: true}
}

// ScientificOptions configure scientific notation. Uppercase selects "E" as
// the exponent marker.
type ScientificOptions struct {
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
}

// Display is a complete rendering selection: a mode plus that mode's
// options. Decimal and octal carry no options. A Display is a pure value
// with no knowledge of buffers or offsets; the same Display can be stamped
// onto any number of read values.
type Display struct {
	Mode       Mode              `json:"mode" yaml:"mode"`
	Hex        HexOptions        `json:"hex,omitempty" yaml:"hex,omitempty"`
	Binary     BinaryOptions     `json:"binary,omitempty" yaml:"binary,omitempty"`
	Scientific ScientificOptions `json:"scientific,omitempty" yaml:"scientific,omitempty"`
}

// DefaultDisplay returns a Display for the mode with that mode's default
// options.
func DefaultDisplay(m Mode) Display {
	return Display{
		Mode:   m,
		Hex:    DefaultHexOptions(),
		Binary: DefaultBinaryOptions(),
	}
}

// Render renders the value under the display selection. It is a pure
// function of its inputs. Hex, octal and binary apply to integers only and
// format the two's-complement bit pattern of signed values; applying them to
// a float fails with ErrUnsupportedDisplay. Errors are terminal; there is no
// partial output.
func (d Display) Render(v Value) (string, error) {
	switch d.Mode {
	case ModeHex:
		return renderHex(v, d.Hex)
	case ModeDecimal:
		return renderDecimal(v)
	case ModeOctal:
		return patternDigits(v, 8)
	case ModeBinary:
		return renderBinary(v, d.Binary)
	case ModeScientific:
		return renderScientific(v, d.Scientific)
	default:
		return "", fmt.Errorf("unknown display mode %d", uint8(d.Mode))
	}
}

// patternDigits renders the value's two's-complement bit pattern in the
// given base with no padding, prefix or case applied. This matches what a
// hex dump shows for the underlying bytes: i32(-1) in base 16 is "ffffffff".
func patternDigits(v Value, base int) (string, error) {
	switch n := v.V.(type) {
	case uint8:
		return strconv.FormatUint(uint64(n), base), nil
	case uint16:
		return strconv.FormatUint(uint64(n), base), nil
	case uint32:
		return strconv.FormatUint(uint64(n), base), nil
	case uint64:
		return strconv.FormatUint(n, base), nil
	case int8:
		return strconv.FormatUint(uint64(uint8(n)), base), nil
	case int16:
		return strconv.FormatUint(uint64(uint16(n)), base), nil
	case int32:
		return strconv.FormatUint(uint64(uint32(n)), base), nil
	case int64:
		return strconv.FormatUint(uint64(n), base), nil
	case *big.Int:
		u := new(big.Int).Set(n)
		if u.Sign() < 0 {
			u.Add(u, two128)
		}
		return u.Text(base), nil
	default:
		return "", fmt.Errorf("%w: %s has no base-%d form", ErrUnsupportedDisplay, v.Type.Kind, base)
	}
}

func renderHex(v Value, o HexOptions) (string, error) {
	digits, err := patternDigits(v, 16)
	if err != nil {
		return "", err
	}
	if o.Padded {
		digits = padZero(digits, int(v.Type.Size())*2)
	}
	if o.Uppercase {
		digits = strings.ToUpper(digits)
	}
	if o.Prefix {
		digits = "0x" + digits
	}
	return digits, nil
}

func renderBinary(v Value, o BinaryOptions) (string, error) {
	digits, err := patternDigits(v, 2)
	if err != nil {
		return "", err
	}
	if o.Padded {
		digits = padZero(digits, v.Type.Kind.Bits())
	}
	return digits, nil
}

// padZero left-pads s with zeros to the given width. A width at or below the
// current length, including the zero width of an unknown kind, leaves the
// unpadded rendering untouched.
func padZero(s string, width int) string {
	if width <= len(s) {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func renderDecimal(v Value) (string, error) {
	switch n := v.V.(type) {
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case *big.Int:
		return n.Text(10), nil
	case float32:
		return floatDecimal(float64(n), 32), nil
	case float64:
		return floatDecimal(n, 64), nil
	default:
		return "", fmt.Errorf("%w: cannot render %T in decimal", ErrUnsupportedDisplay, v.V)
	}
}

// floatDecimal renders the shortest round-trip decimal form without an
// exponent. Non-finite values use the bare NaN/inf tokens.
func floatDecimal(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func renderScientific(v Value, o ScientificOptions) (string, error) {
	marker := byte('e')
	if o.Uppercase {
		marker = 'E'
	}
	switch n := v.V.(type) {
	case uint8:
		return intScientific(strconv.FormatUint(uint64(n), 10), marker), nil
	case uint16:
		return intScientific(strconv.FormatUint(uint64(n), 10), marker), nil
	case uint32:
		return intScientific(strconv.FormatUint(uint64(n), 10), marker), nil
	case uint64:
		return intScientific(strconv.FormatUint(n, 10), marker), nil
	case int8:
		return intScientific(strconv.FormatInt(int64(n), 10), marker), nil
	case int16:
		return intScientific(strconv.FormatInt(int64(n), 10), marker), nil
	case int32:
		return intScientific(strconv.FormatInt(int64(n), 10), marker), nil
	case int64:
		return intScientific(strconv.FormatInt(n, 10), marker), nil
	case *big.Int:
		return intScientific(n.Text(10), marker), nil
	case float32:
		return floatScientific(float64(n), 32, marker), nil
	case float64:
		return floatScientific(n, 64, marker), nil
	default:
		return "", fmt.Errorf("%w: cannot render %T in scientific notation", ErrUnsupportedDisplay, v.V)
	}
}

// intScientific converts an exact decimal integer string to mantissa-exponent
// form: "4294967295" -> "4.294967295e9", "1500" -> "1.5e3", "0" -> "0e0".
func intScientific(dec string, marker byte) string {
	sign := ""
	if strings.HasPrefix(dec, "-") {
		sign, dec = "-", dec[1:]
	}
	exp := len(dec) - 1
	mant := dec[:1]
	if frac := strings.TrimRight(dec[1:], "0"); frac != "" {
		mant += "." + frac
	}
	return sign + mant + string(marker) + strconv.Itoa(exp)
}

// floatScientific renders shortest round-trip scientific form with a bare
// exponent: strconv's "3.14e+00" becomes "3.14e0".
func floatScientific(f float64, bits int, marker byte) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + string(marker) + exp
}
