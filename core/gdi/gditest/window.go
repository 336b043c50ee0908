package gditest

import (
	"github.com/npillmayer/fontpatch/core/gdi"
)

// Window is a fake UI window. Windows link upward only; that is all
// the classifier ever walks.
type Window struct {
	Class    string
	Up       *Window // parent window, nil for top-level
	ClassErr error   // when set, ClassName fails with this error
}

func (w *Window) ClassName() (string, error) {
	if w.ClassErr != nil {
		return "", w.ClassErr
	}
	return w.Class, nil
}

func (w *Window) Parent() gdi.Window {
	if w.Up == nil {
		return nil
	}
	return w.Up
}

var _ gdi.Window = &Window{}
