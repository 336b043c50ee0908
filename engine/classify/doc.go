/*
Package classify decides whether a draw surface should receive the
color override.

Two questions are answered per call: is the surface's background
visually light (light surfaces — context menus, tooltips — keep their
original text color), and does the surface belong to a file/folder
listing view rather than to unrelated UI such as address bars or
toolbars. The second answer comes from the window-class hierarchy,
which is the only discriminator the host offers.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontpatch.classify'.
func tracer() tracing.Trace {
	return tracing.Select("fontpatch.classify")
}
