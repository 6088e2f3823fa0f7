//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !zos && !windows

package rawmode

import "io"

type attrs = struct{}

// defaultBackend switches modes by writing control sequences to w, since
// there is no attribute structure to read back on these platforms.
func defaultBackend(w io.Writer) Backend {
	return NewSequenceBackend(w)
}
