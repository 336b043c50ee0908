package classify

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/fontpatch/core/gdi"
)

// Window classes observed to host the shell's file listings. They are
// empirical, not contractual; Classifier keeps them configurable.
const (
	ClassDirectUI  = "DirectUIHWND"
	ClassListView  = "SysListView32"
	ClassShellView = "SHELLDLL_DefView"
)

// DefaultMaxWalk is how many ancestor windows are inspected when the
// owning window itself is not a listing control.
const DefaultMaxWalk = 3

// lightThreshold separates light from dark backgrounds on the 0–255
// luminance scale.
const lightThreshold = 128

// Luminance computes the perceived brightness of c on a 0–255 scale.
// Channels are weighted per ITU-R BT.601; green dominates human
// luminance perception.
func Luminance(c gdi.Color) int {
	return (int(c.Red())*299 + int(c.Green())*587 + int(c.Blue())*114) / 1000
}

// A Classifier decides whether a draw surface belongs to a file/folder
// listing view of the host's shell UI.
type Classifier struct {
	targets   *hashset.Set // classes of windows directly hosting listings
	container string       // shell view container class, matched on ancestors
	maxWalk   int          // ancestor levels to inspect
}

// New returns a classifier with the observed shell defaults.
func New() *Classifier {
	return NewWith([]string{ClassDirectUI, ClassListView}, ClassShellView, DefaultMaxWalk)
}

// NewWith returns a classifier with explicit target classes, container
// class and walk depth, for hosts whose window hierarchy differs from
// the observed default.
func NewWith(targetClasses []string, containerClass string, maxWalk int) *Classifier {
	targets := hashset.New()
	for _, class := range targetClasses {
		targets.Add(class)
	}
	return &Classifier{
		targets:   targets,
		container: containerClass,
		maxWalk:   maxWalk,
	}
}

// IsLightBackground reports whether the surface's current background
// is visually light.
func (cl *Classifier) IsLightBackground(dc gdi.DC) bool {
	return Luminance(dc.BkColor()) > lightThreshold
}

// IsTargetFileView reports whether dc belongs to a file/folder listing
// view. The owning window's class is matched against the target
// classes; failing that, up to maxWalk ancestors are matched against
// the container class. A surface with no resolvable owning window is
// never a target, and a failed class-name lookup makes that window
// non-matching without aborting the walk.
func (cl *Classifier) IsTargetFileView(dc gdi.DC) bool {
	w := dc.Window()
	if w == nil {
		return false
	}
	if name, err := w.ClassName(); err == nil {
		if cl.targets.Contains(name) {
			return true
		}
	} else {
		tracer().Debugf("class name lookup failed for owning window: %v", err)
	}
	ancestor := w
	for i := 0; i < cl.maxWalk; i++ {
		ancestor = ancestor.Parent()
		if ancestor == nil {
			break
		}
		name, err := ancestor.ClassName()
		if err != nil {
			tracer().Debugf("class name lookup failed at ancestor %d: %v", i+1, err)
			continue
		}
		if name == cl.container {
			return true
		}
	}
	return false
}
