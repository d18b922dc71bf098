/*
Package node implements the typesetting node lists the grid layouter
operates on.

A List is a chain of knots: glyphs and kerns. Glyph knots are the mutable
character records of a column; the placement engine writes offsets onto
them. Kern knots carry signed advances. A kern may be marked explicit:
cleanup passes which re-distribute space must leave explicit kerns alone,
since they balance offsets written by the placement engine.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package node

import (
	"fmt"
	"strings"

	"github.com/fukeben/guji/core/dimen"
)

// KnotType classifies the knots of a list.
type KnotType int

//go:generate stringer -type=KnotType
const (
	KTGlyph KnotType = iota
	KTKern
	KTGlue
)

// Knot is a single node of a typesetting list.
type Knot interface {
	Type() KnotType // type identifier of this knot
	W() dimen.DU    // advance width of this knot
	String() string
}

// --- Glyph -----------------------------------------------------------------

// A Glyph is a positioned character within a column. Its metric fields are
// read-only for layout clients; the offset fields are written by the
// placement engine.
type Glyph struct {
	CodePoint rune
	width     dimen.DU
	height    dimen.DU
	depth     dimen.DU
	xoffset   dimen.DU
	yoffset   dimen.DU
	next      Knot
}

// NewGlyph creates a glyph knot with the given metrics.
func NewGlyph(codepoint rune, width, height, depth dimen.DU) *Glyph {
	return &Glyph{
		CodePoint: codepoint,
		width:     width,
		height:    height,
		depth:     depth,
	}
}

// Type returns KTGlyph.
func (g *Glyph) Type() KnotType {
	return KTGlyph
}

// W returns the advance width of the glyph.
func (g *Glyph) W() dimen.DU {
	return g.width
}

// H returns the extent of the glyph above the baseline.
func (g *Glyph) H() dimen.DU {
	return g.height
}

// D returns the extent of the glyph below the baseline.
func (g *Glyph) D() dimen.DU {
	return g.depth
}

// Offset returns the position offset written onto the glyph.
func (g *Glyph) Offset() dimen.Point {
	return dimen.Point{X: g.xoffset, Y: g.yoffset}
}

// SetOffset writes a position offset onto the glyph.
func (g *Glyph) SetOffset(x, y dimen.DU) {
	g.xoffset = x
	g.yoffset = y
}

// Link chains a knot after the glyph, returning that knot.
func (g *Glyph) Link(k Knot) Knot {
	g.next = k
	return k
}

// Next returns the knot chained after the glyph, or nil.
func (g *Glyph) Next() Knot {
	return g.next
}

func (g *Glyph) String() string {
	return fmt.Sprintf("[glyph %#U w=%s @(%s,%s)]", g.CodePoint, g.width, g.xoffset, g.yoffset)
}

// --- Kern ------------------------------------------------------------------

// A Kern is a signed advance between knots.
type Kern struct {
	amount   dimen.DU
	explicit bool
}

// NewKern creates a kern knot. Explicit kerns are protected: cleanup
// passes must not reset them.
func NewKern(amount dimen.DU, explicit bool) *Kern {
	return &Kern{amount: amount, explicit: explicit}
}

// Type returns KTKern.
func (k *Kern) Type() KnotType {
	return KTKern
}

// W returns the (possibly negative) advance of the kern.
func (k *Kern) W() dimen.DU {
	return k.amount
}

// IsExplicit tells whether the kern is protected from cleanup passes.
func (k *Kern) IsExplicit() bool {
	return k.explicit
}

func (k *Kern) String() string {
	if k.explicit {
		return fmt.Sprintf("[kern! %s]", k.amount)
	}
	return fmt.Sprintf("[kern %s]", k.amount)
}

// --- Glue ------------------------------------------------------------------

// A Glue is stretchable or shrinkable space between knots.
type Glue struct {
	amount  dimen.DU
	stretch dimen.DU
	shrink  dimen.DU
}

// NewGlue creates a glue knot.
func NewGlue(amount, stretch, shrink dimen.DU) *Glue {
	return &Glue{amount: amount, stretch: stretch, shrink: shrink}
}

// Type returns KTGlue.
func (g *Glue) Type() KnotType {
	return KTGlue
}

// W returns the natural advance of the glue.
func (g *Glue) W() dimen.DU {
	return g.amount
}

func (g *Glue) String() string {
	return fmt.Sprintf("[glue %s +%s -%s]", g.amount, g.stretch, g.shrink)
}

// --- List ------------------------------------------------------------------

// A List is a sequence of knots, one column's worth of material.
type List struct {
	knots []Knot
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// AppendKnot appends a knot to the list.
func (l *List) AppendKnot(k Knot) *List {
	l.knots = append(l.knots, k)
	return l
}

// Length returns the number of knots in the list.
func (l *List) Length() int {
	return len(l.knots)
}

// Knot returns the knot at position n.
func (l *List) Knot(n int) Knot {
	return l.knots[n]
}

// Advance returns the summed advance of all knots of the list.
func (l *List) Advance() dimen.DU {
	var w dimen.DU
	for _, k := range l.knots {
		w += k.W()
	}
	return w
}

// ZeroImplicitKerns is a cleanup pass: it resets the advance of every
// non-explicit kern to zero. Explicit kerns balance glyph offsets written
// by the placement engine and survive untouched.
func (l *List) ZeroImplicitKerns() {
	for i, k := range l.knots {
		if kern, ok := k.(*Kern); ok && !kern.IsExplicit() {
			l.knots[i] = NewKern(0, false)
		}
	}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteString("|")
	for _, k := range l.knots {
		b.WriteString(k.String())
	}
	b.WriteString("|")
	return b.String()
}
