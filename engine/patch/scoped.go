package patch

import (
	"github.com/npillmayer/fontpatch/core/gdi"
)

// ScopedFont owns a font resource for the duration of a single draw
// call. Callers must arrange for Release to run on every exit path,
// usually with defer.
type ScopedFont struct {
	handle   gdi.Font
	fonts    gdi.Fonts
	released bool
}

// Handle returns the owned font resource, or the zero handle if the
// guard owns nothing.
func (sf *ScopedFont) Handle() gdi.Font {
	if sf == nil {
		return 0
	}
	return sf.handle
}

// Release deletes the owned font resource. Releasing twice, or
// releasing a guard that owns nothing, is a no-op.
func (sf *ScopedFont) Release() {
	if sf == nil || sf.released {
		return
	}
	sf.released = true
	if sf.handle == 0 {
		return
	}
	if err := sf.fonts.DeleteFont(sf.handle); err != nil {
		tracer().Errorf("releasing font handle %d: %v", sf.handle, err)
	}
}
