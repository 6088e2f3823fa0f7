//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package rawmode

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type attrs = unix.Termios

// makeRaw sets terminal attributes equivalent to cfmakeraw as described in
// termios(3).
func makeRaw(termios *unix.Termios) {
	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK |
		unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG |
		unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
}

// TermiosBackend controls a terminal through its termios structure.
type TermiosBackend struct {
	fd int
}

// NewTermiosBackend returns a Backend for the terminal open on fd.
func NewTermiosBackend(fd int) *TermiosBackend {
	return &TermiosBackend{fd: fd}
}

func (b *TermiosBackend) Capture() (*State, error) {
	termios, err := unix.IoctlGetTermios(b.fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	return &State{attrs: *termios}, nil
}

func (b *TermiosBackend) DeriveRaw(s *State) *State {
	raw := &State{attrs: s.attrs, raw: true}
	makeRaw(&raw.attrs)
	return raw
}

func (b *TermiosBackend) Apply(s *State) error {
	termios := s.attrs
	return unix.IoctlSetTermios(b.fd, ioctlSetTermios, &termios)
}

func (b *TermiosBackend) Restore(s *State) error {
	return b.Apply(s)
}

// defaultBackend controls w's own terminal when it has one, and the
// process's stdout otherwise.
func defaultBackend(w io.Writer) Backend {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if fd := int(f.Fd()); term.IsTerminal(fd) {
			return NewTermiosBackend(fd)
		}
	}
	return NewTermiosBackend(int(os.Stdout.Fd()))
}
