/*
Package settings holds the user-configured override values: a font face
name, a color-override switch and three color channels.

Values are kept as one immutable snapshot behind an atomic pointer.
Reload builds a complete new snapshot and swaps it in wholesale; draw
calls already in flight simply keep reading the old one. There is no
partial update and no locking on the read side.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package settings

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontpatch.settings'.
func tracer() tracing.Trace {
	return tracing.Select("fontpatch.settings")
}
