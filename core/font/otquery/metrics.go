// Package otquery provides access to font and glyph metrics.
//
// Metrics are reported in font design units (units per em). Queries never
// fail hard: a missing glyph is glyph index 0 (.notdef), a missing ink
// bounding box is the zero box. Callers are expected to have their own
// fallbacks for absent values.
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/fukeben/guji/core/font"
)

// tracer traces with key 'guji.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("guji.fonts")
}

// FontMetricsInfo contains selected metric information for a font.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units // design units per em
	Ascent, Descent sfnt.Units // ascender and descender
	MaxAdvance      sfnt.Units // maximum advance width
}

// GlyphMetricsInfo contains all the metric information for a glyph,
// in font design units.
type GlyphMetricsInfo struct {
	Advance  sfnt.Units  // advance width
	LSB, RSB sfnt.Units  // side bearings
	BBox     BoundingBox // ink bounding box
}

// BoundingBox describes the ink bounding box of a glyph, with the y-axis
// growing upwards (font design convention).
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// Empty is a predicate: has this box a zero area?
func (bbox BoundingBox) Empty() bool {
	return bbox.MaxX-bbox.MinX == 0 || bbox.MaxY-bbox.MinY == 0
}

// Dx is the horizontal extent of this box.
func (bbox BoundingBox) Dx() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Dy is the vertical extent of this box.
func (bbox BoundingBox) Dy() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

// --- Font metrics ----------------------------------------------------------

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(sf *font.ScalableFont) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if sf == nil || sf.SFNT == nil {
		return metrics
	}
	f := sf.SFNT
	metrics.UnitsPerEm = f.UnitsPerEm()
	var buf sfnt.Buffer
	// With ppem set to the units-per-em the scaling factor is 1 and all
	// values come out in design units.
	m, err := f.Metrics(&buf, fixed.Int26_6(metrics.UnitsPerEm), xfont.HintingNone)
	if err != nil {
		tracer().Errorf("cannot read metrics of font %s", sf.Fontname)
		return metrics
	}
	metrics.Ascent = sfnt.Units(m.Ascent)
	metrics.Descent = sfnt.Units(m.Descent)
	return metrics
}

// --- Glyph routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a given code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to
// any glyph in the font should be mapped to glyph index 0. The glyph at this
// location must be a special glyph representing a missing character,
// commonly known as '.notdef'.
func GlyphIndex(sf *font.ScalableFont, codepoint rune) sfnt.GlyphIndex {
	if sf == nil || sf.SFNT == nil {
		return 0
	}
	var buf sfnt.Buffer
	gid, err := sf.SFNT.GlyphIndex(&buf, codepoint)
	if err != nil {
		tracer().Debugf("no glyph for code-point %#U", codepoint)
		return 0
	}
	return gid
}

// GlyphMetrics retrieves metrics for a given glyph.
//
// The ink bounding box is taken from the font's glyph-bounds metrics; if
// that query fails, the raw glyph description is loaded and the extents of
// its outline are computed instead. A glyph without any outline (a space,
// for example) keeps the zero box.
func GlyphMetrics(sf *font.ScalableFont, gid sfnt.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	if sf == nil || sf.SFNT == nil {
		return metrics
	}
	f := sf.SFNT
	upem := fixed.Int26_6(f.UnitsPerEm())
	var buf sfnt.Buffer
	if adv, err := f.GlyphAdvance(&buf, gid, upem, xfont.HintingNone); err == nil {
		metrics.Advance = sfnt.Units(adv)
	}
	bounds, _, err := f.GlyphBounds(&buf, gid, upem, xfont.HintingNone)
	if err != nil {
		tracer().Debugf("no bounds metrics for glyph %d, reading outline", gid)
		segs, err := f.LoadGlyph(&buf, gid, upem, nil)
		if err != nil {
			tracer().Debugf("glyph %d has no outline", gid)
			return metrics
		}
		bounds = segmentExtents(segs)
	}
	// sfnt reports bounds with the y-axis growing downwards; flip to the
	// design convention.
	metrics.BBox = BoundingBox{
		MinX: sfnt.Units(bounds.Min.X),
		MaxX: sfnt.Units(bounds.Max.X),
		MinY: sfnt.Units(-bounds.Max.Y),
		MaxY: sfnt.Units(-bounds.Min.Y),
	}
	metrics.LSB = metrics.BBox.MinX
	if !metrics.BBox.Empty() {
		metrics.RSB = metrics.Advance - metrics.BBox.MaxX
	}
	return metrics
}

// segmentExtents computes the extents of a glyph outline. Off-curve control
// points are included, making the box conservative for curved glyphs.
func segmentExtents(segs sfnt.Segments) fixed.Rectangle26_6 {
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.Int26_6(1 << 30), Y: fixed.Int26_6(1 << 30)},
		Max: fixed.Point26_6{X: fixed.Int26_6(-(1 << 30)), Y: fixed.Int26_6(-(1 << 30))},
	}
	touched := false
	for _, seg := range segs {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			p := seg.Args[i]
			touched = true
			if p.X < bounds.Min.X {
				bounds.Min.X = p.X
			}
			if p.X > bounds.Max.X {
				bounds.Max.X = p.X
			}
			if p.Y < bounds.Min.Y {
				bounds.Min.Y = p.Y
			}
			if p.Y > bounds.Max.Y {
				bounds.Max.Y = p.Y
			}
		}
	}
	if !touched {
		return fixed.Rectangle26_6{}
	}
	return bounds
}
