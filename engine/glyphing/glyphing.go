// Package glyphing turns sequences of Unicode code-points into sequences
// of positioned glyphs. Glyphs are taken from a font, given in a specific
// point-size. The grid layouter consumes the resulting per-glyph metrics.
package glyphing

import (
	"fmt"
	"io"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"

	"github.com/fukeben/guji/core/dimen"
	"github.com/fukeben/guji/core/font"
	"github.com/fukeben/guji/core/font/otquery"
)

// Direction is the direction to typeset text in. The zero value is
// top-to-bottom, the writing direction of this system.
type Direction int

// Direction to typeset text in.
//
//go:generate stringer -type=Direction
const (
	TopToBottom Direction = iota
	BottomToTop
	LeftToRight
	RightToLeft
)

// Tag is a 4-letter OpenType tag.
type Tag uint32

// T creates a tag from (the first four bytes of) a string.
func T(s string) Tag {
	for len(s) < 4 {
		s += " "
	}
	return Tag(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// A ShapedGlyph lives in design space (the shaper's interface lives in
// design space as well).
type ShapedGlyph struct {
	ClusterID  int                      // position of code-point(s) for this glyph in original string
	XAdvance   dimen.DU                 // advance after glyph has been set, in design units
	YAdvance   dimen.DU                 //
	XOffset    dimen.DU                 // position of anchor dot for glyph, in design units
	YOffset    dimen.DU                 //
	RawMetrics otquery.GlyphMetricsInfo // metrics in font units
	GID        sfnt.GlyphIndex          // glyph index within font
	CodePoint  rune                     // code-point of first rune to produce this glyph
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, advance=%s)", g.GID, g.XAdvance)
}

// A Shaper creates a sequence of glyphs from a sequence of Unicode
// code-points.
//
// Clients may provide additional information in Params, as well as
// textual context ([2][]rune).
type Shaper interface {
	Shape(io.RuneReader, []ShapedGlyph, [][]rune, Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Font      *font.TypeCase  // use a font at a given point-size
	Direction Direction       // writing direction
	Script    language.Script // 4-letter ISO 15924 script identifier
	Language  language.Tag    // BCP 47 language tag
	Features  []FeatureRange  // OpenType features to apply
}

// FeatureRange tells a shaper to turn a certain OpenType feature on or off
// for a run of code-points.
type FeatureRange struct {
	Feature    Tag  // 4-letter feature tag
	Arg        int  // optional argument for this feature
	On         bool // turn it on or off?
	Start, End int  // position of code-points to apply feature for
}

// GlyphSequence contains a sequence of shaped glyphs. W is the summed
// advance along the writing direction; H and D are the ink extents above
// and below the baseline. All in design units.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph
	W, H, D dimen.DU
}

// BoundingBox returns the overall extents of the sequence.
func (seq GlyphSequence) BoundingBox() (w dimen.DU, h dimen.DU, d dimen.DU) {
	return seq.W, seq.H, seq.D
}
