// Package dimen implements dimensions and units.
//
// All spatial values of the layout engine are fixed-point integers in a
// high-precision scaled unit. Final coordinates never touch floating
// point; intermediate division truncates toward zero, which clients of
// this package rely on for bit-exact reproducibility.
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DU is a dimension unit.
// Values are in scaled big points (BP / 65536).
type DU int32

// Some pre-defined dimensions
const (
	Zero DU = 0
	SP   DU = 1       // scaled point = BP / 65536
	BP   DU = 65536   // big point (PDF) = 1/72 inch
	PX   DU = 65536   // "pixels"
	PT   DU = 65291   // printers point 1/72.27 inch
	MM   DU = 185771  // millimeters
	CM   DU = 1857710 // centimeters
	IN   DU = 4718592 // inch
)

// Infty is the largest possible dimension
const Infty = math.MaxInt32

// Stringer implementation.
func (d DU) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d DU) Points() float64 {
	return float64(d) / float64(BP)
}

// Point is a point on a page. X grows to the right, Y grows upwards.
type Point struct {
	X, Y DU
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[cminpxtsc]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true.
func ParseDimen(s string) (DU, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.Atoi(d[1])
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	return DU(n) * scale, ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b DU) DU {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b DU) DU {
	if a > b {
		return a
	}
	return b
}
