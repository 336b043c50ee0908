package settings

import (
	"io/ioutil"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/sfnt"
)

// probeFace checks whether a configured face name resolves to a font
// installed on the host system, and traces the outcome. This is purely
// advisory: the override is applied either way, and the host falls back
// to its own font mapping for unknown names.
func probeFace(name string) {
	if name == "" || name == NoOverride {
		return
	}
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		tracer().Infof("face %q not found among installed fonts", name)
		return
	}
	bytez, err := ioutil.ReadFile(fpath)
	if err != nil {
		tracer().Debugf("cannot read font file %s: %v", fpath, err)
		return
	}
	otf, err := sfnt.Parse(bytez)
	if err != nil {
		tracer().Debugf("cannot parse font file %s: %v", fpath, err)
		return
	}
	family, err := otf.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		tracer().Debugf("font file %s carries no family name", fpath)
		return
	}
	tracer().Infof("face %q resolves to installed family %q (%s)", name, family, fpath)
}
