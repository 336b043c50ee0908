/*
Package hook intercepts the host's two text-draw entry points and
applies the configured font and color overrides per call.

The dispatcher never suppresses a draw call. Whatever goes wrong while
patching or classifying, the original routine always runs with the
caller's unmodified parameters, because a skipped draw visibly corrupts
the host's UI. The one hard guarantee is resource balance: the font
created at the top of a call is released before that call returns, on
every path.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hook

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontpatch.hook'.
func tracer() tracing.Trace {
	return tracing.Select("fontpatch.hook")
}
