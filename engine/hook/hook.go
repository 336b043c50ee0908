package hook

import (
	"github.com/npillmayer/fontpatch/core"
	"github.com/npillmayer/fontpatch/core/gdi"
	"github.com/npillmayer/fontpatch/core/settings"
	"github.com/npillmayer/fontpatch/engine/classify"
	"github.com/npillmayer/fontpatch/engine/patch"
	"github.com/npillmayer/schuko"
)

// DrawTextFunc is the signature of the host's plain text-draw entry
// point.
type DrawTextFunc func(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32) int32

// DrawTextExFunc is the signature of the extended entry point. The
// extra parameter block does not participate in font or color logic.
type DrawTextExFunc func(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32,
	params *gdi.DrawTextParams) int32

// Names of the hooked entry points, as exported by the host's drawing
// library.
const (
	EntryDrawText   = "DrawTextW"
	EntryDrawTextEx = "DrawTextExW"
)

// An Installer intercepts a named exported routine, making replacement
// run in its place, and returns a trampoline to the original
// implementation. It is provided by the host's mod-loading framework.
type Installer interface {
	InstallHook(entry string, replacement interface{}) (original interface{}, err error)
}

// Mod wires the settings store, the classifier and the font patcher
// into the host's text-draw entry points.
type Mod struct {
	store      *settings.Store
	classifier *classify.Classifier
	fonts      gdi.Fonts
	drawText   DrawTextFunc
	drawTextEx DrawTextExFunc
}

// New creates a module instance drawing its configuration from store
// and its font resources from fonts. The classifier starts with the
// observed shell defaults; see UseClassifier.
func New(fonts gdi.Fonts, store *settings.Store) *Mod {
	return &Mod{
		fonts:      fonts,
		store:      store,
		classifier: classify.New(),
	}
}

// UseClassifier replaces the view classifier. Call before OnInit.
func (m *Mod) UseClassifier(cl *classify.Classifier) {
	m.classifier = cl
}

// OnInit installs both draw hooks through inst and keeps the returned
// trampolines. An installer failure is the one error this module ever
// surfaces to the host.
func (m *Mod) OnInit(inst Installer) error {
	orig, err := inst.InstallHook(EntryDrawText, DrawTextFunc(m.DrawText))
	if err != nil {
		return core.WrapError(err, core.EHOOK, "cannot hook %s", EntryDrawText)
	}
	drawText, ok := orig.(DrawTextFunc)
	if !ok {
		return core.Error(core.EHOOK, "installer returned no usable %s trampoline", EntryDrawText)
	}
	orig, err = inst.InstallHook(EntryDrawTextEx, DrawTextExFunc(m.DrawTextEx))
	if err != nil {
		return core.WrapError(err, core.EHOOK, "cannot hook %s", EntryDrawTextEx)
	}
	drawTextEx, ok := orig.(DrawTextExFunc)
	if !ok {
		return core.Error(core.EHOOK, "installer returned no usable %s trampoline", EntryDrawTextEx)
	}
	m.drawText = drawText
	m.drawTextEx = drawTextEx
	tracer().Infof("hooks installed for %s and %s", EntryDrawText, EntryDrawTextEx)
	return nil
}

// OnSettingsChanged reloads the settings snapshot from conf. Draw
// calls already in flight keep the snapshot they started with.
func (m *Mod) OnSettingsChanged(conf schuko.Configuration) {
	m.store.Reload(conf)
}

// OnUninit notes the shutdown. Hook teardown is the host's business.
func (m *Mod) OnUninit() {
	tracer().Infof("uninit")
}

// DrawText replaces the host's plain text-draw routine.
func (m *Mod) DrawText(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32) int32 {
	scoped := m.decorate(dc)
	defer scoped.Release()
	return m.drawText(dc, text, count, rect, format)
}

// DrawTextEx replaces the host's extended text-draw routine.
func (m *Mod) DrawTextEx(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32,
	params *gdi.DrawTextParams) int32 {
	scoped := m.decorate(dc)
	defer scoped.Release()
	return m.drawTextEx(dc, text, count, rect, format, params)
}

// decorate applies the font and color overrides to dc and returns the
// font resource scoped to the current call. It never fails; every
// anomaly degrades to leaving dc the way the caller set it up.
func (m *Mod) decorate(dc gdi.DC) *patch.ScopedFont {
	scoped, _ := patch.Apply(m.fonts, dc, m.store.FaceNameOverride())
	if m.store.ColorOverrideEnabled() &&
		!m.classifier.IsLightBackground(dc) &&
		m.classifier.IsTargetFileView(dc) {
		dc.SetTextColor(m.store.OverrideColor())
	}
	return scoped
}
