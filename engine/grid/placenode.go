package grid

import (
	"github.com/fukeben/guji/core/dimen"
	"github.com/fukeben/guji/engine/node"
)

// CellOpts configures the mutating placement of a glyph node into a single
// cell. Zero values center in both axes.
type CellOpts struct {
	CellWidth  dimen.DU
	CellHeight dimen.DU
	HAlign     HAlign
	VAlign     VAlign
	FontSize   dimen.DU // nominal size, fallback width for zero-width glyphs
}

// PlaceGlyphNode writes a cell-relative offset onto a caller-owned glyph
// node and appends a balancing kern. (x, y) is the top-left corner of the
// cell, already resolved by the caller; no column or RTL logic is applied
// here. The alignment formulas are those of CellPosition, against the
// single cell of opts.
//
// A glyph whose own advance width is not positive is treated as a square
// glyph of the nominal font size. This is a best-effort approximation for
// broken or synthetic glyphs, not a guarantee.
//
// The appended kern carries the negative of the glyph's resolved width and
// is marked explicit, so cleanup passes keep it: it returns the chain's
// horizontal cursor to the column's nominal X position, leaving the next
// glyph in the column unaffected by this glyph's offset. PlaceGlyphNode is
// the only mutating operation of this package; CellPosition is its pure
// counterpart.
func PlaceGlyphNode(g *node.Glyph, x, y dimen.DU, opts CellOpts) (*node.Glyph, *node.Kern) {
	w := g.W()
	if w <= 0 {
		tracer().Debugf("glyph %#U has no width, assuming square glyph", g.CodePoint)
		w = opts.FontSize
	}
	var gx dimen.DU
	switch opts.HAlign {
	case HLeft:
		gx = x
	case HRight:
		gx = x + (opts.CellWidth+opts.FontSize)/2 - w
	default:
		gx = x + (opts.CellWidth-w)/2
	}
	var gy dimen.DU
	switch opts.VAlign {
	case VTop:
		gy = y - g.H()
	case VBottom:
		gy = y - opts.CellHeight + g.D()
	default:
		gy = y - (opts.CellHeight+g.H()+g.D())/2 + g.D()
	}
	g.SetOffset(gx, gy)
	kern := node.NewKern(-w, true)
	g.Link(kern)
	return g, kern
}
