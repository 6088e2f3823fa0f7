//go:build windows

package rawmode

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
)

type attrs = uint32

// ConsoleBackend controls a Windows console through its input mode word.
type ConsoleBackend struct {
	h windows.Handle
}

// NewConsoleBackend returns a Backend for the console input handle h.
func NewConsoleBackend(h windows.Handle) *ConsoleBackend {
	return &ConsoleBackend{h: h}
}

func (b *ConsoleBackend) Capture() (*State, error) {
	var mode uint32
	if err := windows.GetConsoleMode(b.h, &mode); err != nil {
		return nil, err
	}
	return &State{attrs: mode}, nil
}

func (b *ConsoleBackend) DeriveRaw(s *State) *State {
	mode := s.attrs &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT |
		windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_OUTPUT)
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	return &State{attrs: mode, raw: true}
}

func (b *ConsoleBackend) Apply(s *State) error {
	return windows.SetConsoleMode(b.h, s.attrs)
}

func (b *ConsoleBackend) Restore(s *State) error {
	return b.Apply(s)
}

// defaultBackend ignores w: console modes live on the input handle.
func defaultBackend(_ io.Writer) Backend {
	return NewConsoleBackend(windows.Handle(os.Stdin.Fd()))
}
