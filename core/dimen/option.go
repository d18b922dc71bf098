package dimen

import "fmt"

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
)

// DimenT is an option type for dimensions: a dimension which may be unset.
// Lookups which can legitimately come up empty (an unknown glyph, for
// example) return a DimenT rather than an error.
type DimenT struct {
	d     DU
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// Unwrap returns the dimension value of o. Unset options unwrap to 0.
func (o DimenT) Unwrap() DU {
	return o.d
}

func (o DimenT) String() string {
	if o.IsNone() {
		return "Dimen.None"
	}
	return fmt.Sprintf("%dsp", int32(o.d))
}
