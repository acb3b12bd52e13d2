package binum

import "fmt"

// Value is one scalar read out of a buffer, tagged with the Type that
// produced it. V holds exactly one of uint8..uint64, int8..int64 (for the
// kinds up to 64 bits), *big.Int (u128/i128, two's complement already
// applied) or float32/float64. The set is closed; render sites type-switch
// over it exhaustively.
type Value struct {
	Type Type
	V    any
}

// String renders the value in decimal, which applies to every kind.
func (v Value) String() string {
	s, err := Display{Mode: ModeDecimal}.Render(v)
	if err != nil {
		return fmt.Sprintf("%v", v.V)
	}
	return s
}

// Render renders the value under the given display selection.
func (v Value) Render(d Display) (string, error) {
	return d.Render(v)
}
