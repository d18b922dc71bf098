package grid

import (
	"github.com/fukeben/guji/core/dimen"
)

// ResolveColumn converts a logical (reading-order) column index to the
// physical (left-to-right) column index and its X drawing origin. It is the
// single conversion point between the two orders; all higher-level
// computations route through it (or through ResolveColumnModel) so that the
// mirroring invariant
//
//	rtlCol + col = totalCols - 1
//
// holds everywhere.
func ResolveColumn(col, totalCols int, geom ColumnGeometry, halfThickness, shiftX dimen.DU) (rtlCol int, x dimen.DU) {
	rtlCol = totalCols - 1 - col
	x = columnXUniform(rtlCol, geom) + halfThickness + shiftX
	return rtlCol, x
}

// ResolveColumnModel is the width-model aware variant of ResolveColumn.
func ResolveColumnModel(col, totalCols int, m WidthModel, halfThickness, shiftX dimen.DU) (rtlCol int, x dimen.DU) {
	rtlCol = totalCols - 1 - col
	x = m.ColumnX(rtlCol, totalCols) + halfThickness + shiftX
	return rtlCol, x
}

// ResolveRow converts a reading-order row index to a Y drawing origin.
// Rows increase downward in reading order while the output coordinate
// space has Y increasing upward, hence the negation. Vertical alignment
// math depends on this sign convention.
func ResolveRow(row int, gridHeight, shiftY dimen.DU) dimen.DU {
	return -(dimen.DU(row) * gridHeight) - shiftY
}
