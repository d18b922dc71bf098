package grid

import (
	"github.com/fukeben/guji/core/font"
	"github.com/fukeben/guji/engine/glyphing"
)

// MetricsOf converts a shaped glyph's design-space metrics to scaled units
// at the typecase size, ready for CellPosition and PlaceGlyphNode.
//
// Width is the font's horizontal advance for the glyph, which is
// direction-independent: a vertically shaped glyph carries its advance in
// YAdvance with XAdvance zero, while cell placement always works with the
// glyph's horizontal extent. Height and depth come from the ink bounding
// box; a glyph without ink above (or below) the baseline gets height (or
// depth) 0.
func MetricsOf(g glyphing.ShapedGlyph, tc *font.TypeCase) Metrics {
	if tc == nil || tc.ScalableFontParent() == nil {
		return Metrics{}
	}
	upem := tc.ScalableFontParent().SFNT.UnitsPerEm()
	size := tc.Size()
	m := Metrics{
		Width: scaleToSize(g.RawMetrics.Advance, upem, size),
	}
	if g.RawMetrics.BBox.MaxY > 0 {
		m.Height = scaleToSize(g.RawMetrics.BBox.MaxY, upem, size)
	}
	if g.RawMetrics.BBox.MinY < 0 {
		m.Depth = scaleToSize(-g.RawMetrics.BBox.MinY, upem, size)
	}
	return m
}
