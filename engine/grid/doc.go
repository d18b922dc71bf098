/*
Package grid computes character placement in a vertical, right-to-left
grid, the page model of classical CJK book typesetting.

Characters read top-to-bottom within a column and columns read
right-to-left across the page. The package maps logical (reading-order)
column indices to physical drawing positions, aligns glyphs within their
cells, and optically centers decorative glyphs using their ink bounding
box. A periodic narrower banxin column, historically reserved for the
center title strip of a double-page spread, can be interleaved among
ordinary columns without disturbing column-index arithmetic.

All arithmetic is exact fixed-point integer arithmetic over scaled units
(see package core/dimen); integer division truncates toward zero. Results
are reproducible bit for bit, there is no cumulative rounding drift along
a column.

The one mutating entry point is PlaceGlyphNode; everything else is a pure
function of its arguments.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guji.grid'.
func tracer() tracing.Trace {
	return tracing.Select("guji.grid")
}
