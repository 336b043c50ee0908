package patch

import (
	"github.com/npillmayer/fontpatch/core/gdi"
	"github.com/npillmayer/fontpatch/core/settings"
)

// PatchFont returns a copy of d with the face name replaced by face.
// All other descriptor fields pass through untouched. The sentinel
// settings.NoOverride leaves d as it is, as does a face name that does
// not fit the descriptor's fixed-size name field; an oversized name is
// a configuration error, traced and otherwise ignored.
func PatchFont(d gdi.FontDescriptor, face string) gdi.FontDescriptor {
	if face == "" || face == settings.NoOverride {
		return d
	}
	patched := d
	if err := patched.SetFace(face); err != nil {
		tracer().Errorf("trying to change font to %q: size too long (%d)", face, gdi.FaceLen(face))
		return d
	}
	return patched
}

// Apply reads the font currently selected on dc, patches its face name
// and selects a freshly created font resource onto dc. The returned
// ScopedFont owns that resource; the caller must release it before the
// enclosing draw call returns.
//
// Apply never fails. If the host cannot create the font, the returned
// guard owns nothing and dc keeps whatever font was already selected.
func Apply(fonts gdi.Fonts, dc gdi.DC, face string) (*ScopedFont, gdi.FontDescriptor) {
	desc := dc.SelectedFont()
	patched := PatchFont(desc, face)
	handle, err := fonts.CreateFont(patched)
	if err != nil {
		tracer().Errorf("font creation failed for face %q: %v", patched.Face(), err)
		return &ScopedFont{fonts: fonts}, patched
	}
	dc.SelectFont(handle)
	return &ScopedFont{handle: handle, fonts: fonts}, patched
}
