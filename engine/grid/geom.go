package grid

import (
	"github.com/fukeben/guji/core/dimen"
)

// ColumnGeometry describes a page of uniform columns with an optional
// periodic banxin (gutter) column.
//
// Every Interval ordinary columns a banxin column of width BanxinWidth is
// interleaved. An Interval of 0 or less, a BanxinWidth of 0 or less, or a
// BanxinWidth equal to GridWidth all make the gutter inert: every column
// then has width GridWidth.
type ColumnGeometry struct {
	GridWidth   dimen.DU // width of an ordinary column
	BanxinWidth dimen.DU // width of the gutter column
	Interval    int      // ordinary columns between successive gutters
}

func (geom ColumnGeometry) gutterInert() bool {
	return geom.Interval <= 0 || geom.BanxinWidth <= 0 || geom.BanxinWidth == geom.GridWidth
}

// columnXUniform returns the X origin of a physical column under uniform
// geometry. Columns group into blocks of Interval+1; each full block
// contributes Interval ordinary widths plus one banxin width. A partial
// remainder contributes ordinary widths only, clamped at the gutter's left
// edge: the remainder never crosses into the gutter itself.
func columnXUniform(col int, geom ColumnGeometry) dimen.DU {
	if geom.gutterInert() {
		return dimen.DU(col) * geom.GridWidth
	}
	block := geom.Interval + 1
	full := col / block
	rem := col % block
	x := dimen.DU(full) * (dimen.DU(geom.Interval)*geom.GridWidth + geom.BanxinWidth)
	if rem < geom.Interval {
		x += dimen.DU(rem) * geom.GridWidth
	} else {
		x += dimen.DU(geom.Interval) * geom.GridWidth
	}
	return x
}

// columnWidthUniform returns the width of a physical column under uniform
// geometry.
func columnWidthUniform(col int, geom ColumnGeometry) dimen.DU {
	if geom.gutterInert() {
		return geom.GridWidth
	}
	if col%(geom.Interval+1) == geom.Interval {
		return geom.BanxinWidth
	}
	return geom.GridWidth
}

// columnXVariable returns the X origin of a physical column under a
// variable-width table: the summed width of all columns drawn left of it.
// Those are exactly the logically later-read columns. Logical column k sits
// at physical position totalCols-1-k.
func columnXVariable(physCol int, widths []dimen.DU, totalCols int) dimen.DU {
	var x dimen.DU
	for q := 0; q < physCol; q++ {
		x += columnWidthVariable(totalCols-1-q, widths)
	}
	return x
}

// columnWidthVariable returns the width of a logical column from a width
// table. Columns outside the table have width 0; this is a defined
// fallback, not an error.
func columnWidthVariable(logicalCol int, widths []dimen.DU) dimen.DU {
	if logicalCol < 0 || logicalCol >= len(widths) {
		return 0
	}
	return widths[logicalCol]
}

// --- Width model -----------------------------------------------------------

// WidthModel is the tagged choice between uniform column geometry and an
// explicit per-column width table. A supplied width table fully overrides
// the uniform geometry.
type WidthModel struct {
	geom     ColumnGeometry
	widths   []dimen.DU
	variable bool
}

// Uniform creates a width model of uniform columns with an optional
// banxin gutter.
func Uniform(geom ColumnGeometry) WidthModel {
	return WidthModel{geom: geom}
}

// Variable creates a width model from per-column widths, indexed by
// logical column (logical column 0 is the rightmost, first-read column).
func Variable(widths []dimen.DU) WidthModel {
	return WidthModel{widths: widths, variable: true}
}

// IsVariable tells whether the model carries an explicit width table.
func (m WidthModel) IsVariable() bool {
	return m.variable
}

// ColumnX returns the X origin of a physical (left-to-right) column.
func (m WidthModel) ColumnX(physCol, totalCols int) dimen.DU {
	if m.variable {
		return columnXVariable(physCol, m.widths, totalCols)
	}
	return columnXUniform(physCol, m.geom)
}

// ColumnWidth returns the width of a logical (reading-order) column.
func (m WidthModel) ColumnWidth(logicalCol, totalCols int) dimen.DU {
	if m.variable {
		return columnWidthVariable(logicalCol, m.widths)
	}
	return columnWidthUniform(totalCols-1-logicalCol, m.geom)
}
