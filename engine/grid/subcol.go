package grid

import (
	"github.com/fukeben/guji/core/dimen"
)

// SubColSplit resolves the horizontal offset of a glyph within a
// sub-column of a column, for columns hosting more than one character per
// row (interlinear annotation text). The placement engine delegates to it
// whenever a sub-column index > 0 is given.
type SubColSplit func(baseX, colWidth, glyphWidth dimen.DU, subCol int, align HAlign) dimen.DU

// SplitColumnOffset is the default sub-column splitter: the column is
// halved, sub-column 1 being the right half (read first) and sub-column 2
// the left half. The glyph is aligned within its half-column.
func SplitColumnOffset(baseX, colWidth, glyphWidth dimen.DU, subCol int, align HAlign) dimen.DU {
	half := colWidth / 2
	x := baseX
	if subCol == 1 {
		x += colWidth - half
	}
	switch align {
	case HLeft:
		return x
	case HRight:
		return x + half - glyphWidth
	default:
		return x + (half-glyphWidth)/2
	}
}
