package grid

import (
	"testing"

	"github.com/fukeben/guji/core/dimen"
	"github.com/fukeben/guji/core/font"
	"github.com/fukeben/guji/core/font/otquery"
	"github.com/fukeben/guji/engine/glyphing"
)

func TestMetricsOf(t *testing.T) {
	typecase, err := font.FallbackFont().PrepareCase(18.0)
	if err != nil {
		t.Fatal(err)
	}
	upem := typecase.ScalableFontParent().SFNT.UnitsPerEm()
	g := glyphing.ShapedGlyph{
		RawMetrics: otquery.GlyphMetricsInfo{
			Advance: upem, // one em
			BBox:    otquery.BoundingBox{MinY: -(upem / 4), MaxY: upem / 2},
		},
	}
	m := MetricsOf(g, typecase)
	if m.Width != typecase.Size() {
		t.Errorf("expected an em advance to scale to %s, have %s", typecase.Size(), m.Width)
	}
	if m.Height != typecase.Size()/2 {
		t.Errorf("expected height %s, have %s", typecase.Size()/2, m.Height)
	}
	if m.Depth != typecase.Size()/4 {
		t.Errorf("expected depth %s, have %s", typecase.Size()/4, m.Depth)
	}
}

func TestMetricsOfVerticallyShapedGlyph(t *testing.T) {
	// a vertically shaped glyph carries its advance in YAdvance with
	// XAdvance zero; the cell width must still come out positive, from the
	// font's horizontal advance
	typecase, err := font.FallbackFont().PrepareCase(18.0)
	if err != nil {
		t.Fatal(err)
	}
	upem := typecase.ScalableFontParent().SFNT.UnitsPerEm()
	g := glyphing.ShapedGlyph{
		XAdvance: 0,
		YAdvance: -dimen.DU(upem),
		RawMetrics: otquery.GlyphMetricsInfo{
			Advance: upem / 2,
		},
	}
	m := MetricsOf(g, typecase)
	if m.Width != typecase.Size()/2 {
		t.Errorf("expected width %s, have %s", typecase.Size()/2, m.Width)
	}
}

func TestMetricsOfWithoutFont(t *testing.T) {
	m := MetricsOf(glyphing.ShapedGlyph{XAdvance: 1000}, nil)
	if m != (Metrics{}) {
		t.Errorf("expected zero metrics without a typecase, have %v", m)
	}
}
