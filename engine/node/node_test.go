package node

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/fukeben/guji/core/dimen"
)

func TestList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.core")
	defer teardown()
	//
	l := NewList()
	l.AppendKnot(NewGlyph('史', 1000, 800, 200)).AppendKnot(NewKern(-1000, true))
	l.AppendKnot(NewGlue(500, 100, 50))
	t.Logf("list = %s", l)
	if l.Length() != 3 {
		t.Errorf("length of list should be 3, is %d", l.Length())
	}
	if l.Advance() != 500 {
		t.Errorf("advance of list should be 500, is %v", l.Advance())
	}
}

func TestGlyphOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.core")
	defer teardown()
	//
	g := NewGlyph('記', 1000, 800, 200)
	g.SetOffset(120, -340)
	if g.Offset() != (dimen.Point{X: 120, Y: -340}) {
		t.Errorf("expected offset (120,-340), is %v", g.Offset())
	}
	k := g.Link(NewKern(-g.W(), true))
	if g.Next() != k {
		t.Errorf("expected kern to be chained after glyph")
	}
}

func TestZeroImplicitKerns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.core")
	defer teardown()
	//
	l := NewList()
	l.AppendKnot(NewKern(-1000, true))
	l.AppendKnot(NewKern(300, false))
	l.ZeroImplicitKerns()
	if l.Knot(0).W() != -1000 {
		t.Errorf("explicit kern must survive cleanup, is %v", l.Knot(0).W())
	}
	if l.Knot(1).W() != 0 {
		t.Errorf("implicit kern should be zeroed, is %v", l.Knot(1).W())
	}
}
