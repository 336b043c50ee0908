package gdi

import "fmt"

// Color is a packed RGB triple in the host's native color layout,
// 0x00BBGGRR, with the red channel in the least significant byte.
type Color uint32

// RGB packs three color channels into a Color. Channels are masked to
// 8 bits rather than validated, so out-of-range values wrap silently.
func RGB(r, g, b int) Color {
	return Color(uint32(r&0xff) | uint32(g&0xff)<<8 | uint32(b&0xff)<<16)
}

// Red returns the red channel of c.
func (c Color) Red() uint8 { return uint8(c & 0xff) }

// Green returns the green channel of c.
func (c Color) Green() uint8 { return uint8((c >> 8) & 0xff) }

// Blue returns the blue channel of c.
func (c Color) Blue() uint8 { return uint8((c >> 16) & 0xff) }

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}
