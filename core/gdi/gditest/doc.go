/*
Package gditest provides an in-memory stand-in for the host's drawing
subsystem: a display that tracks the lifetime of every font resource,
scriptable device contexts, and window trees with controllable class
names.

The display's create/delete ledger reproduces externally auditing the
host's handle table — the way leaks are actually hunted on the real
host — so tests can assert that every draw call releases exactly the
resources it created.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gditest
