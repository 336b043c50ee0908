package gdi

// Font is an opaque handle to a font resource owned by the host's
// drawing subsystem. The zero value means "no resource".
type Font uintptr

// DC is a device context: the drawing surface the host hands to its
// text-draw routines. Implementations are black boxes provided by the
// host integration (or by gditest for simulation).
type DC interface {
	// SelectedFont returns the descriptor of the font currently
	// selected onto the surface.
	SelectedFont() FontDescriptor
	// SelectFont selects f onto the surface and returns the font that
	// was selected before.
	SelectFont(f Font) Font
	// BkColor returns the surface's current background color.
	BkColor() Color
	// TextColor returns the surface's current text color.
	TextColor() Color
	// SetTextColor sets the text color and returns the previous one.
	SetTextColor(c Color) Color
	// Window resolves the window owning the surface, or nil if none
	// can be resolved.
	Window() Window
}

// Window is a window of the host's UI, reachable from a drawing
// surface.
type Window interface {
	// ClassName returns the window's registered class name. The host
	// may fail the lookup.
	ClassName() (string, error)
	// Parent returns the parent window, or nil for a top-level window.
	Parent() Window
}

// Fonts creates and destroys font resources. Every resource obtained
// from CreateFont must be handed back to DeleteFont exactly once; the
// host puts a hard quota on live handles.
type Fonts interface {
	CreateFont(desc FontDescriptor) (Font, error)
	DeleteFont(f Font) error
}

// Rect is the clipping rectangle of a draw call. It passes through the
// interception layer untouched.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// DrawTextParams is the parameter block of the extended text-draw entry
// point. None of its fields participate in font or color logic.
type DrawTextParams struct {
	TabLength   int32
	LeftMargin  int32
	RightMargin int32
	LengthDrawn uint32
}
