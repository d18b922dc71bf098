/*
Package font is for typeface and font handling.

Nomenclature in typesetting is notoriously confused. We stick to the
following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc. An example is "Noto Serif TC regular".

* A "typecase" is a scaled font, i.e. a font in a certain size for
a certain script and language. The name is reminiscent of the wooden
boxes of typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently, actually more or less in an opposite manner.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/fukeben/guji/core"
	"github.com/fukeben/guji/core/dimen"
)

// tracer traces with key 'guji.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("guji.fonts")
}

// ScalableFont is an OpenType or TrueType font, loaded into memory.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scaled font, i.e. a font at a certain point-size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	font               font.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// LoadOpenTypeFont loads an OpenType font file into memory.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err == nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont parses font binary data in OpenType format.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase readies a font for use at a given point-size.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Infof("font size must be 5pt < size < 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: fontsize,
		DPI:  72,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.font = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the unscaled font a typecase has been
// derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the point-size of a typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Size returns the nominal size of a typecase in scaled units.
func (tc *TypeCase) Size() dimen.DU {
	return dimen.DU(tc.size * float64(dimen.PT))
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches loaded fonts and prepared typecases.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry returns a registry shared by the whole application.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
	}
	return fr
}

// StoreFont puts a font into the registry, keyed by its normalized name.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// TypeCase returns a cached typecase for a font name at a size, preparing
// one if the font is present but the typecase is not. If the font is
// unknown, a typecase of the fallback font is returned, together with an
// error carrying code EMISSING.
func (fr *Registry) TypeCase(name string, size float64) (*TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", name, size)
	fname := NormalizeFontname(name)
	tname := NormalizeTypeCaseName(name, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found typecase %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[fname]; ok {
		t, err := f.PrepareCase(size)
		tracer().Infof("font registry has font %s, caches at %.2f", fname, size)
		fr.typecases[tname] = t
		return t, err
	}
	tracer().Infof("registry does not contain font %s", name)
	err := core.Error(core.EMISSING, "font %s not found in registry", name)
	tname = NormalizeTypeCaseName("fallback", size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", tname, size)
	fr.fonts[NormalizeFontname("fallback")] = f
	fr.typecases[tname] = t
	return t, err
}

// NormalizeFontname normalizes a font name for registry lookup.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}

// NormalizeTypeCaseName normalizes a font name plus size for registry lookup.
func NormalizeTypeCaseName(fname string, size float64) string {
	fname = NormalizeFontname(fname)
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
