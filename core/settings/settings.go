package settings

import (
	"sync/atomic"

	"github.com/npillmayer/fontpatch/core/gdi"
	"github.com/npillmayer/schuko"
)

// NoOverride is the sentinel face name meaning "leave the host's font
// alone".
const NoOverride = "None"

// Configuration keys recognized by the store.
const (
	keyFaceName    = "font.name"
	keyCustomColor = "font.customColor"
	keyTextRed     = "font.textR"
	keyTextGreen   = "font.textG"
	keyTextBlue    = "font.textB"
)

// Values is one complete settings snapshot. Snapshots are immutable
// once stored.
type Values struct {
	FaceName     string
	ColorEnabled bool
	R, G, B      int
}

func defaults() *Values {
	return &Values{
		FaceName:     NoOverride,
		ColorEnabled: true,
		R:            255,
		G:            255,
		B:            255,
	}
}

// Store holds the current settings snapshot. Reads are lock-free; the
// snapshot is replaced wholesale on every reload.
type Store struct {
	current atomic.Pointer[Values]
}

// New creates a store and performs an initial reload from conf.
func New(conf schuko.Configuration) *Store {
	s := &Store{}
	s.current.Store(defaults())
	s.Reload(conf)
	return s
}

// Reload re-reads all recognized keys from conf and swaps in a new
// snapshot. A missing or misbehaving configuration collaborator leaves
// the previous snapshot in place; a reload must never take down the
// host process.
func (s *Store) Reload(conf schuko.Configuration) {
	if conf == nil {
		tracer().Errorf("settings reload without configuration, keeping previous values")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("settings collaborator failed during reload: %v", r)
		}
	}()
	v := defaults()
	if name := conf.GetString(keyFaceName); name != "" {
		v.FaceName = name
	}
	if conf.IsSet(keyCustomColor) {
		v.ColorEnabled = conf.GetInt(keyCustomColor) == 1
	}
	if conf.IsSet(keyTextRed) {
		v.R = conf.GetInt(keyTextRed)
	}
	if conf.IsSet(keyTextGreen) {
		v.G = conf.GetInt(keyTextGreen)
	}
	if conf.IsSet(keyTextBlue) {
		v.B = conf.GetInt(keyTextBlue)
	}
	s.current.Store(v)
	tracer().Infof("settings reloaded: face=%q customColor=%v color=%s",
		v.FaceName, v.ColorEnabled, gdi.RGB(v.R, v.G, v.B))
	probeFace(v.FaceName)
}

func (s *Store) snapshot() *Values {
	return s.current.Load()
}

// FaceNameOverride returns the configured face name, or NoOverride.
func (s *Store) FaceNameOverride() string {
	return s.snapshot().FaceName
}

// ColorOverrideEnabled reports whether text colors should be replaced.
func (s *Store) ColorOverrideEnabled() bool {
	return s.snapshot().ColorEnabled
}

// OverrideColor returns the configured text color, channels masked to
// 8 bits and packed into the host's color layout.
func (s *Store) OverrideColor() gdi.Color {
	v := s.snapshot()
	return gdi.RGB(v.R, v.G, v.B)
}
