package gditest

import (
	"sync"

	"github.com/npillmayer/fontpatch/core"
	"github.com/npillmayer/fontpatch/core/gdi"
)

// Display implements gdi.Fonts and keeps a ledger of every font
// resource ever created or deleted through it.
type Display struct {
	// FailCreate makes CreateFont report failure, for exercising the
	// degraded path where a draw call proceeds without a new font.
	FailCreate bool

	mu      sync.Mutex
	next    gdi.Font
	live    map[gdi.Font]gdi.FontDescriptor
	created int
	deleted int
}

// NewDisplay returns an empty display. Handles start at 1; 0 stays
// reserved for "no resource".
func NewDisplay() *Display {
	return &Display{
		next: 1,
		live: make(map[gdi.Font]gdi.FontDescriptor),
	}
}

// CreateFont hands out a fresh handle for desc.
func (d *Display) CreateFont(desc gdi.FontDescriptor) (gdi.Font, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.FailCreate {
		return 0, core.Error(core.EINTERNAL, "font creation disabled")
	}
	h := d.next
	d.next++
	d.live[h] = desc
	d.created++
	return h, nil
}

// DeleteFont releases a handle. Deleting an unknown or already freed
// handle is an error, as it would be on the real host.
func (d *Display) DeleteFont(f gdi.Font) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.live[f]; !ok {
		return core.Error(core.EMISSING, "no live font resource for handle %d", f)
	}
	delete(d.live, f)
	d.deleted++
	return nil
}

// CreatedFonts returns how many font resources have been created.
func (d *Display) CreatedFonts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created
}

// DeletedFonts returns how many font resources have been released.
func (d *Display) DeletedFonts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleted
}

// LiveFonts returns the number of currently live font resources. A
// non-zero value after all draw calls have returned is a leak.
func (d *Display) LiveFonts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live)
}

// Descriptor returns the descriptor a live handle was created from.
func (d *Display) Descriptor(f gdi.Font) (gdi.FontDescriptor, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	desc, ok := d.live[f]
	return desc, ok
}

var _ gdi.Fonts = &Display{}
