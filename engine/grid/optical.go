package grid

import (
	"golang.org/x/image/font/sfnt"

	"github.com/fukeben/guji/core/dimen"
	"github.com/fukeben/guji/core/font"
	"github.com/fukeben/guji/core/font/otquery"
)

// VisualCenter returns the horizontal distance from a character's drawing
// origin to its optical midpoint, in scaled units at the typecase size.
//
// Decorative and punctuation glyphs (bullets, vertical bars, mid-dots) are
// visually off-center relative to their advance box in most fonts, so
// centering them by advance width looks wrong. VisualCenter uses the ink
// bounding box instead: the result is ((xmin+xmax)/2) scaled from design
// units to output units. A character without an ink box falls back to half
// its advance width. A character without any metrics at all (unknown
// glyph) yields an unset dimension; callers must supply their own
// fallback.
//
// Body text should keep using advance-width centering (CellPosition):
// CJK body glyphs are square-ish, the optical difference is imperceptible,
// and the ink-box lookup costs a glyph query per character.
func VisualCenter(codepoint rune, tc *font.TypeCase) dimen.DimenT {
	if tc == nil || tc.ScalableFontParent() == nil {
		return dimen.Dimen()
	}
	sf := tc.ScalableFontParent()
	gid := otquery.GlyphIndex(sf, codepoint)
	if gid == 0 {
		tracer().Debugf("no glyph for %#U, cannot center optically", codepoint)
		return dimen.Dimen()
	}
	metrics := otquery.GlyphMetrics(sf, gid)
	upem := sf.SFNT.UnitsPerEm()
	return dimen.SomeDimen(visualCenterOf(metrics, upem, tc.Size()))
}

// visualCenterOf is the arithmetic core of VisualCenter: the horizontal
// ink midpoint in design units, scaled to output units at the given size.
// An empty ink box falls back to half the advance width.
func visualCenterOf(m otquery.GlyphMetricsInfo, upem sfnt.Units, size dimen.DU) dimen.DU {
	if !m.BBox.Empty() {
		mid := (m.BBox.MinX + m.BBox.MaxX) / 2
		return scaleToSize(mid, upem, size)
	}
	return scaleToSize(m.Advance, upem, size) / 2
}

// scaleToSize converts font design units to scaled units at a font size.
func scaleToSize(u sfnt.Units, upem sfnt.Units, size dimen.DU) dimen.DU {
	if upem == 0 {
		return 0
	}
	return dimen.DU(int64(u) * int64(size) / int64(upem))
}
