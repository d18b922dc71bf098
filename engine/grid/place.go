package grid

import (
	"github.com/fukeben/guji/core/dimen"
)

// HAlign is the horizontal alignment of a glyph within its cell.
type HAlign int

// Horizontal alignment policies. Centering is the default.
//
//go:generate stringer -type=HAlign
const (
	HCenter HAlign = iota
	HLeft
	HRight
)

// VAlign is the vertical alignment of a glyph within its cell.
type VAlign int

// Vertical alignment policies. Centering is the default.
//
//go:generate stringer -type=VAlign
const (
	VCenter VAlign = iota
	VTop
	VBottom
)

// Metrics carries a glyph's metric data in scaled units: advance width and
// the extents above and below the baseline.
type Metrics struct {
	Width  dimen.DU
	Height dimen.DU
	Depth  dimen.DU
}

// Params collects the cell and column context for a placement.
//
// Zero values select the documented defaults: centering in both axes,
// CellWidth = column width, CellHeight = GridHeight, no shifts, no rule
// thickness, no sub-column, default sub-column splitter.
type Params struct {
	Model         WidthModel // column width model of the page
	TotalCols     int        // number of columns on the page
	GridHeight    dimen.DU   // height of a cell row
	HAlign        HAlign
	VAlign        VAlign
	CellWidth     dimen.DU    // 0 = column width; override for narrow material
	CellHeight    dimen.DU    // 0 = GridHeight
	ShiftX        dimen.DU    // page-global X shift
	ShiftY        dimen.DU    // page-global Y shift
	HalfThickness dimen.DU    // half the column rule thickness
	SubCol        int         // sub-column index, 0 = whole column
	BodyFontSize  dimen.DU    // reference size for right-alignment
	Split         SubColSplit // nil = SplitColumnOffset
}

// CellPosition computes the absolute offset at which a glyph must be drawn
// into cell (col, row) of the grid. col and row are reading-order indices;
// the returned offset is anchored so that (0,0) is the top-left cell origin
// of the page before shifts.
//
// CellPosition is pure and total for well-formed input: it performs no
// mutation and never fails, missing optional parameters default as
// documented on Params.
func CellPosition(col, row int, m Metrics, p Params) dimen.Point {
	_, baseX := ResolveColumnModel(col, p.TotalCols, p.Model, p.HalfThickness, p.ShiftX)
	colWidth := p.Model.ColumnWidth(col, p.TotalCols)
	cellWidth := p.CellWidth
	if cellWidth == 0 {
		cellWidth = colWidth
	}
	cellHeight := p.CellHeight
	if cellHeight == 0 {
		cellHeight = p.GridHeight
	}
	var x dimen.DU
	if p.SubCol > 0 {
		split := p.Split
		if split == nil {
			split = SplitColumnOffset
		}
		x = split(baseX, colWidth, m.Width, p.SubCol, p.HAlign)
	} else {
		switch p.HAlign {
		case HLeft:
			x = baseX
		case HRight:
			// right edge of a body-font-sized span centered in the column
			x = baseX + (colWidth+p.BodyFontSize)/2 - m.Width
		default:
			// the cell centered within the column, the glyph centered
			// within the cell
			x = baseX + (colWidth-cellWidth)/2 + (cellWidth-m.Width)/2
		}
	}
	yOrigin := ResolveRow(row, p.GridHeight, p.ShiftY)
	var y dimen.DU
	switch p.VAlign {
	case VTop:
		y = yOrigin - m.Height
	case VBottom:
		y = yOrigin - cellHeight + m.Depth
	default:
		// aligns the glyph's visual vertical midpoint, accounting for both
		// ascent and descent, with the cell's vertical midpoint
		y = yOrigin - (cellHeight+m.Height+m.Depth)/2 + m.Depth
	}
	tracer().Debugf("cell (%d,%d) -> (%s,%s)", col, row, x, y)
	return dimen.Point{X: x, Y: y}
}
