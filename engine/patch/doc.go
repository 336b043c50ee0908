/*
Package patch rewrites the face name of a font descriptor and manages
the per-call lifetime of the font resource created from it.

Every intercepted draw call creates one font resource. The host caps
the number of live handles, and continuous repaint traffic multiplies a
single missed release into handle exhaustion within minutes. ScopedFont
is the guard for that: one resource, owned by one call, released on
every exit path.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontpatch.patch'.
func tracer() tracing.Trace {
	return tracing.Select("fontpatch.patch")
}
