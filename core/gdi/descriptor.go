package gdi

import (
	"unicode/utf16"

	"github.com/npillmayer/fontpatch/core"
)

// MaxFaceLen is the capacity of a descriptor's face-name field in
// UTF-16 code units, excluding the terminating NUL.
const MaxFaceLen = 31

// FontDescriptor is the host's fixed-layout description of a logical
// font. The face name lives in a fixed-size, NUL-padded UTF-16 field;
// all other attributes are opaque to this module and must survive a
// face-name patch byte-for-byte.
type FontDescriptor struct {
	Height         int32
	Width          int32
	Escapement     int32
	Orientation    int32
	Weight         int32
	Italic         uint8
	Underline      uint8
	StrikeOut      uint8
	CharSet        uint8
	OutPrecision   uint8
	ClipPrecision  uint8
	Quality        uint8
	PitchAndFamily uint8
	FaceName       [MaxFaceLen + 1]uint16
}

// Face returns the descriptor's face name, decoded up to the first NUL.
func (fd FontDescriptor) Face() string {
	end := 0
	for end < len(fd.FaceName) && fd.FaceName[end] != 0 {
		end++
	}
	return string(utf16.Decode(fd.FaceName[:end]))
}

// FaceLen returns the length of name in UTF-16 code units, i.e. the
// number of face-name cells it would occupy.
func FaceLen(name string) int {
	return len(utf16.Encode([]rune(name)))
}

// SetFace replaces the descriptor's face name. The name field is
// zero-filled across its full capacity before the name is copied in.
// A name longer than MaxFaceLen code units does not fit and yields an
// error, leaving the descriptor unchanged.
func (fd *FontDescriptor) SetFace(name string) error {
	units := utf16.Encode([]rune(name))
	if len(units) > MaxFaceLen {
		return core.Error(core.EINVALID, "face name %q too long (%d units)", name, len(units))
	}
	fd.FaceName = [MaxFaceLen + 1]uint16{}
	copy(fd.FaceName[:], units)
	return nil
}
