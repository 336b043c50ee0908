package gditest

import (
	"github.com/npillmayer/fontpatch/core/gdi"
)

// DC is a scriptable device context. Exported fields set up the
// scenario; the gdi.DC methods observe and mutate it the way the host
// would.
type DC struct {
	Desc  gdi.FontDescriptor // descriptor of the currently selected font
	Back  gdi.Color          // current background color
	Fore  gdi.Color          // current text color
	Owner gdi.Window         // owning window, nil if unresolvable

	display    *Display
	current    gdi.Font
	selections []gdi.Font
	colorSets  []gdi.Color
}

// NewDC returns a device context bound to d's font ledger.
func (d *Display) NewDC() *DC {
	return &DC{display: d}
}

func (dc *DC) SelectedFont() gdi.FontDescriptor {
	return dc.Desc
}

// SelectFont selects f and, when f is live on the display, makes its
// descriptor the surface's selected one.
func (dc *DC) SelectFont(f gdi.Font) gdi.Font {
	prev := dc.current
	dc.current = f
	dc.selections = append(dc.selections, f)
	if desc, ok := dc.display.Descriptor(f); ok {
		dc.Desc = desc
	}
	return prev
}

func (dc *DC) BkColor() gdi.Color {
	return dc.Back
}

func (dc *DC) TextColor() gdi.Color {
	return dc.Fore
}

func (dc *DC) SetTextColor(c gdi.Color) gdi.Color {
	prev := dc.Fore
	dc.Fore = c
	dc.colorSets = append(dc.colorSets, c)
	return prev
}

func (dc *DC) Window() gdi.Window {
	return dc.Owner
}

// Selections returns every font handle selected onto the surface, in
// order.
func (dc *DC) Selections() []gdi.Font {
	return dc.selections
}

// TextColorSets returns every explicit text-color change, in order.
func (dc *DC) TextColorSets() []gdi.Color {
	return dc.colorSets
}

var _ gdi.DC = &DC{}
