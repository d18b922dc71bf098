package font

import (
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/fukeben/guji/core"
)

// LocateFont searches the system font directories for a font with the
// given name and returns the path of the font file. The name may be given
// with or without a file extension.
func LocateFont(name string) (string, error) {
	pattern := name
	if !strings.ContainsRune(pattern, '.') {
		pattern += ".ttf"
	}
	path, err := findfont.Find(pattern)
	if err != nil {
		tracer().Infof("no installed font matches %q", name)
		return "", core.WrapError(err, core.EMISSING, "font %s not installed", name)
	}
	tracer().Debugf("font %q located at %s", name, path)
	return path, nil
}

// LoadInstalledFont locates a font by name among the installed system
// fonts and loads it. The loaded font is stored in the given registry,
// if reg is non-nil.
func LoadInstalledFont(name string, reg *Registry) (*ScalableFont, error) {
	path, err := LocateFont(name)
	if err != nil {
		return nil, err
	}
	f, err := LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	if reg != nil {
		reg.StoreFont(f)
	}
	return f, nil
}
