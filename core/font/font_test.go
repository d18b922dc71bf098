package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/fukeben/guji/core"
	"github.com/fukeben/guji/core/dimen"
)

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.fonts")
	defer teardown()
	//
	n := NormalizeFontname("Noto Serif TC.otf")
	if n != "noto_serif_tc" {
		t.Errorf("expected different normalized name, got %q", n)
	}
	tn := NormalizeTypeCaseName("Noto Serif TC", 18.0)
	if tn != "noto_serif_tc-18.00" {
		t.Errorf("expected different normalized typecase name, got %q", tn)
	}
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatal("expected fallback font to be present")
	}
	tc, err := f.PrepareCase(12.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 12.0 {
		t.Errorf("expected typecase size of 12pt, is %.2f", tc.PtSize())
	}
	if tc.Size() != 12*dimen.PT {
		t.Errorf("expected typecase size of %v, is %v", 12*dimen.PT, tc.Size())
	}
}

func TestRegistryFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	tc, err := reg.TypeCase("no such font", 10.0)
	if err == nil {
		t.Error("expected error for unknown font name")
	}
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected error code EMISSING, is %d", core.Code(err))
	}
	if tc == nil {
		t.Fatal("expected a fallback typecase despite error")
	}
	if tc.ScalableFontParent().Fontname != "Go Sans" {
		t.Errorf("expected fallback typecase to be Go Sans")
	}
}

func TestRegistryCachesTypecases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guji.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	reg.StoreFont(FallbackFont())
	tc1, err := reg.TypeCase("Go Sans", 18.0)
	if err != nil {
		t.Fatal(err)
	}
	tc2, err := reg.TypeCase("Go Sans", 18.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc1 != tc2 {
		t.Errorf("expected repeated lookup to return the cached typecase")
	}
}
