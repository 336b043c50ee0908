package hook

import (
	"errors"
	"testing"

	"github.com/npillmayer/fontpatch/core/gdi"
	"github.com/npillmayer/fontpatch/core/gdi/gditest"
	"github.com/npillmayer/fontpatch/core/settings"
	"github.com/npillmayer/fontpatch/engine/classify"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test doubles ------------------------------------------------------------

// installer hands out canned trampolines, or refuses a named entry.
type installer struct {
	originals map[string]interface{}
	installed map[string]interface{}
	refuse    string
}

func (inst *installer) InstallHook(entry string, replacement interface{}) (interface{}, error) {
	if entry == inst.refuse {
		return nil, errors.New("hook rejected by host")
	}
	if inst.installed == nil {
		inst.installed = make(map[string]interface{})
	}
	inst.installed[entry] = replacement
	return inst.originals[entry], nil
}

// delegate records invocations of the "original" draw routines.
type delegate struct {
	calls     int
	lastColor gdi.Color
	lastFace  string
	panicking bool
}

func (d *delegate) drawText(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32) int32 {
	return d.observe(dc)
}

func (d *delegate) drawTextEx(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32,
	params *gdi.DrawTextParams) int32 {
	return d.observe(dc)
}

func (d *delegate) observe(dc gdi.DC) int32 {
	d.calls++
	d.lastColor = dc.TextColor()
	d.lastFace = dc.SelectedFont().Face()
	if d.panicking {
		panic("delegate failure")
	}
	return 7
}

// --- Test Suite Preparation --------------------------------------------------

type DispatchTestEnviron struct {
	suite.Suite
	display  *gditest.Display
	delegate *delegate
	mod      *Mod
}

// listen for 'go test' command --> run test methods
func TestDispatcher(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpatch.hook")
	defer teardown()
	suite.Run(t, new(DispatchTestEnviron))
}

// run before every test method
func (env *DispatchTestEnviron) SetupTest() {
	env.display = gditest.NewDisplay()
	env.delegate = &delegate{}
	env.mod = nil
}

// boot creates and initializes a Mod with the given settings keys.
func (env *DispatchTestEnviron) boot(conf testconfig.Conf) {
	store := settings.New(conf)
	env.mod = New(env.display, store)
	inst := &installer{originals: map[string]interface{}{
		EntryDrawText:   DrawTextFunc(env.delegate.drawText),
		EntryDrawTextEx: DrawTextExFunc(env.delegate.drawTextEx),
	}}
	env.Require().NoError(env.mod.OnInit(inst))
}

// fileViewDC returns a dark-background DC owned by a listing window.
func (env *DispatchTestEnviron) fileViewDC() *gditest.DC {
	dc := env.display.NewDC()
	dc.Back = gdi.RGB(32, 32, 32)
	dc.Fore = gdi.RGB(90, 90, 90)
	dc.Owner = &gditest.Window{Class: classify.ClassListView}
	env.Require().NoError(dc.Desc.SetFace("MS Shell Dlg"))
	return dc
}

// --- Tests --------------------------------------------------------------------

func (env *DispatchTestEnviron) TestInstallFailure() {
	store := settings.New(testconfig.Conf{})
	mod := New(env.display, store)
	err := mod.OnInit(&installer{refuse: EntryDrawText})
	env.Error(err, "expected OnInit to surface the installer failure")
}

func (env *DispatchTestEnviron) TestDarkFileViewGetsColor() {
	env.boot(testconfig.Conf{
		"font.name":        "None",
		"font.customColor": "1",
		"font.textR":       "0",
		"font.textG":       "0",
		"font.textB":       "0",
	})
	dc := env.fileViewDC()
	ret := env.mod.DrawText(dc, "report.txt", 10, &gdi.Rect{}, 0)
	env.EqualValues(7, ret, "dispatcher must return the delegate's result")
	env.Equal(1, env.delegate.calls)
	env.Equal(gdi.RGB(0, 0, 0), env.delegate.lastColor,
		"expected packed black set before delegation")
	env.Equal("MS Shell Dlg", env.delegate.lastFace,
		"sentinel face name must leave the selected font's face alone")
	env.Zero(env.display.LiveFonts(), "draw call leaked a font resource")
}

func (env *DispatchTestEnviron) TestLightBackgroundKeepsColor() {
	env.boot(testconfig.Conf{
		"font.name":        "None",
		"font.customColor": "1",
		"font.textR":       "0",
		"font.textG":       "0",
		"font.textB":       "0",
	})
	dc := env.fileViewDC()
	dc.Back = gdi.RGB(200, 200, 200) // luminance 200, light
	original := dc.Fore
	env.mod.DrawText(dc, "report.txt", 10, &gdi.Rect{}, 0)
	env.Equal(original, env.delegate.lastColor,
		"light background must keep the caller's text color")
	env.Empty(dc.TextColorSets(), "no color mutation expected")
	env.Equal("MS Shell Dlg", env.delegate.lastFace)
	env.Zero(env.display.LiveFonts())
}

func (env *DispatchTestEnviron) TestColorDisabledStillPatchesFace() {
	env.boot(testconfig.Conf{
		"font.name":        "Segoe UI",
		"font.customColor": "0",
	})
	dc := env.fileViewDC()
	original := dc.Fore
	env.mod.DrawText(dc, "report.txt", 10, &gdi.Rect{}, 0)
	env.Equal("Segoe UI", env.delegate.lastFace,
		"face name must be patched regardless of color settings")
	env.Equal(original, env.delegate.lastColor,
		"disabled color override must never touch the text color")
	env.Empty(dc.TextColorSets())
	env.Zero(env.display.LiveFonts())
}

func (env *DispatchTestEnviron) TestNonFileViewKeepsColor() {
	env.boot(testconfig.Conf{
		"font.customColor": "1",
		"font.textR":       "0", "font.textG": "0", "font.textB": "0",
	})
	dc := env.fileViewDC()
	dc.Owner = &gditest.Window{Class: "ToolbarWindow32"}
	env.mod.DrawText(dc, "Address", 7, &gdi.Rect{}, 0)
	env.Empty(dc.TextColorSets(), "non-file-view UI must keep its color")
	env.Zero(env.display.LiveFonts())
}

func (env *DispatchTestEnviron) TestExtendedEntryPoint() {
	env.boot(testconfig.Conf{
		"font.name":        "Segoe UI",
		"font.customColor": "1",
		"font.textR":       "0", "font.textG": "0", "font.textB": "0",
	})
	dc := env.fileViewDC()
	params := &gdi.DrawTextParams{TabLength: 4}
	ret := env.mod.DrawTextEx(dc, "report.txt", 10, &gdi.Rect{}, 0, params)
	env.EqualValues(7, ret)
	env.Equal("Segoe UI", env.delegate.lastFace)
	env.Equal(gdi.RGB(0, 0, 0), env.delegate.lastColor)
	env.Zero(env.display.LiveFonts())
}

func (env *DispatchTestEnviron) TestHandleBalanceUnderTraffic() {
	env.boot(testconfig.Conf{"font.name": "Segoe UI"})
	dc := env.fileViewDC()
	for i := 0; i < 500; i++ {
		env.mod.DrawText(dc, "entry", 5, &gdi.Rect{}, 0)
	}
	env.Equal(env.display.CreatedFonts(), env.display.DeletedFonts(),
		"every created font resource must be released")
	env.Equal(500, env.display.CreatedFonts())
	env.Zero(env.display.LiveFonts())
}

func (env *DispatchTestEnviron) TestDelegatePanicReleasesFont() {
	env.boot(testconfig.Conf{"font.name": "Segoe UI"})
	env.delegate.panicking = true
	dc := env.fileViewDC()
	env.Panics(func() {
		env.mod.DrawText(dc, "entry", 5, &gdi.Rect{}, 0)
	})
	env.Zero(env.display.LiveFonts(),
		"font resource must be released even on exceptional exit")
}

func (env *DispatchTestEnviron) TestCreateFailureStillDelegates() {
	env.boot(testconfig.Conf{"font.name": "Segoe UI"})
	env.display.FailCreate = true
	dc := env.fileViewDC()
	ret := env.mod.DrawText(dc, "entry", 5, &gdi.Rect{}, 0)
	env.EqualValues(7, ret, "delegate must run despite font-creation failure")
	env.Equal(1, env.delegate.calls)
	env.Equal("MS Shell Dlg", env.delegate.lastFace,
		"surface keeps its previous font when creation fails")
	env.Zero(env.display.LiveFonts())
}

func (env *DispatchTestEnviron) TestSettingsChangeAppliesToNextCall() {
	env.boot(testconfig.Conf{"font.name": "None", "font.customColor": "0"})
	dc := env.fileViewDC()
	env.mod.DrawText(dc, "entry", 5, &gdi.Rect{}, 0)
	env.Equal("MS Shell Dlg", env.delegate.lastFace)
	//
	env.mod.OnSettingsChanged(testconfig.Conf{"font.name": "Segoe UI"})
	env.mod.DrawText(dc, "entry", 5, &gdi.Rect{}, 0)
	env.Equal("Segoe UI", env.delegate.lastFace)
	env.Zero(env.display.LiveFonts())
}
