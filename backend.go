package rawmode

import (
	"log"
	"os"
)

// Logger receives restoration failures, which have no caller to return to.
var Logger = log.New(os.Stderr, "rawmode: ", 0)

// State is a snapshot of a terminal's attributes. A State is never modified
// after it has been captured.
type State struct {
	attrs attrs
	raw   bool
}

// Backend reads and writes terminal attributes.
type Backend interface {
	// Capture reads the current attributes.
	Capture() (*State, error)
	// DeriveRaw returns the raw-mode variant of s without touching the
	// terminal.
	DeriveRaw(s *State) *State
	// Apply writes s to the terminal. It either fully succeeds or leaves
	// the terminal unchanged.
	Apply(s *State) error
	// Restore writes a previously captured state back.
	Restore(s *State) error
}
