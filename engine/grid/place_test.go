package grid

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/fukeben/guji/core/dimen"
)

func TestCellPositionCentering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.grid")
	defer teardown()
	//
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:  1,
		GridHeight: 2000,
	}
	m := Metrics{Width: 900, Height: 1400, Depth: 200}
	pos := CellPosition(0, 0, m, p)
	if pos.X != 550 {
		t.Errorf("expected X = 550, have %s", pos.X)
	}
	if pos.Y != -1600 {
		t.Errorf("expected Y = -1600, have %s", pos.Y)
	}
	// integer division truncates toward zero, no rounding
	m.Width = 901
	pos = CellPosition(0, 0, m, p)
	if pos.X != 549 {
		t.Errorf("expected X = 549 for odd slack, have %s", pos.X)
	}
}

func TestCellPositionDepthOnly(t *testing.T) {
	// a glyph with ink only below the baseline still centers visually
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:  1,
		GridHeight: 2000,
	}
	m := Metrics{Width: 2000, Depth: 200}
	pos := CellPosition(0, 0, m, p)
	if pos.Y != -900 {
		t.Errorf("expected Y = -900, have %s", pos.Y)
	}
}

func TestVerticalCenterAccountsForDepth(t *testing.T) {
	// the glyph's visual vertical midpoint, ascent and descent included,
	// aligns with the cell's vertical midpoint; this is not a naive
	// baseline midpoint
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 1000}),
		TotalCols:  1,
		GridHeight: 1200,
	}
	m := Metrics{Width: 1000, Height: 800, Depth: 200}
	pos := CellPosition(0, 0, m, p)
	if pos.Y != -900 {
		t.Errorf("expected Y = -900, have %s", pos.Y)
	}
}

func TestCellPositionAlignments(t *testing.T) {
	p := Params{
		Model:        Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:    1,
		GridHeight:   2000,
		BodyFontSize: 1800,
	}
	m := Metrics{Width: 600, Height: 1400, Depth: 200}
	//
	p.HAlign = HLeft
	if pos := CellPosition(0, 0, m, p); pos.X != 0 {
		t.Errorf("expected left-aligned X = 0, have %s", pos.X)
	}
	p.HAlign = HRight
	if pos := CellPosition(0, 0, m, p); pos.X != 1300 {
		// right edge of a body-font-sized span centered in the column
		t.Errorf("expected right-aligned X = 1300, have %s", pos.X)
	}
	p.HAlign = HCenter
	p.VAlign = VTop
	if pos := CellPosition(0, 0, m, p); pos.Y != -1400 {
		t.Errorf("expected top-aligned Y = -1400, have %s", pos.Y)
	}
	p.VAlign = VBottom
	if pos := CellPosition(0, 0, m, p); pos.Y != -1800 {
		t.Errorf("expected bottom-aligned Y = -1800, have %s", pos.Y)
	}
}

func TestCellPositionIsPure(t *testing.T) {
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000, BanxinWidth: 900, Interval: 4}),
		TotalCols:  9,
		GridHeight: 2100,
		ShiftX:     50,
		ShiftY:     70,
	}
	m := Metrics{Width: 900, Height: 1400, Depth: 200}
	first := CellPosition(3, 5, m, p)
	second := CellPosition(3, 5, m, p)
	if first != second {
		t.Errorf("expected repeated calls to agree, have %v and %v", first, second)
	}
}

func TestCellWidthOverride(t *testing.T) {
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:  1,
		GridHeight: 2000,
		CellWidth:  1000,
	}
	m := Metrics{Width: 900}
	pos := CellPosition(0, 0, m, p)
	// the narrow cell centered within the column, the glyph within the cell
	if pos.X != 550 {
		t.Errorf("expected X = 550, have %s", pos.X)
	}
}

func TestCellHeightOverride(t *testing.T) {
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:  1,
		GridHeight: 2000,
		CellHeight: 1000,
		VAlign:     VBottom,
	}
	m := Metrics{Width: 900, Depth: 200}
	pos := CellPosition(0, 0, m, p)
	if pos.Y != -800 {
		t.Errorf("expected Y = -800, have %s", pos.Y)
	}
}

func TestSubColumnDelegation(t *testing.T) {
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:  1,
		GridHeight: 2000,
		SubCol:     1,
	}
	m := Metrics{Width: 600}
	// sub-column 1 is the right half of the column, read first
	if pos := CellPosition(0, 0, m, p); pos.X != 1200 {
		t.Errorf("expected X = 1200 in right half, have %s", pos.X)
	}
	p.SubCol = 2
	if pos := CellPosition(0, 0, m, p); pos.X != 200 {
		t.Errorf("expected X = 200 in left half, have %s", pos.X)
	}
}

func TestSubColumnCustomSplit(t *testing.T) {
	split := func(baseX, colWidth, glyphWidth dimen.DU, subCol int, align HAlign) dimen.DU {
		return baseX + dimen.DU(subCol)*100
	}
	p := Params{
		Model:      Uniform(ColumnGeometry{GridWidth: 2000}),
		TotalCols:  1,
		GridHeight: 2000,
		SubCol:     2,
		Split:      split,
	}
	if pos := CellPosition(0, 0, Metrics{Width: 600}, p); pos.X != 200 {
		t.Errorf("expected custom splitter to place at X = 200, have %s", pos.X)
	}
}

func TestResolveRow(t *testing.T) {
	if y := ResolveRow(0, 2100, 0); y != 0 {
		t.Errorf("expected row 0 at Y = 0, have %s", y)
	}
	if y := ResolveRow(3, 2100, 50); y != -6350 {
		t.Errorf("expected row 3 at Y = -6350, have %s", y)
	}
}

func TestResolveColumnShifts(t *testing.T) {
	geom := ColumnGeometry{GridWidth: 1000}
	rtlCol, x := ResolveColumn(1, 4, geom, 25, 100)
	if rtlCol != 2 {
		t.Errorf("expected physical column 2, have %d", rtlCol)
	}
	if x != 2125 {
		t.Errorf("expected X = 2125, have %s", x)
	}
}
