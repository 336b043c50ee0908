/*
Package gdi holds the value types and black-box interfaces for the
host's drawing subsystem.

The hot path of this module runs inside intercepted draw calls of a
foreign process. Everything the interception logic needs from the host
— device contexts, windows, font resources — is consumed through the
narrow interfaces of this package, never through OS calls directly.
Concrete bindings live with the host integration; an in-memory fake for
tests and simulation lives in gdi/gditest.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gdi
