package rawmode

import "io"

// Sequences are the control sequences a SequenceBackend writes to switch
// the terminal into raw mode and back.
type Sequences struct {
	Enter []byte
	Exit  []byte
}

// DefaultSequences is CSI r to enter raw mode and CSI R to leave it. The
// exit bytes are unconfirmed; pass Sequences to NewSequenceBackendWith when
// the terminal documents its own pair.
var DefaultSequences = Sequences{
	Enter: controlSequence('r'),
	Exit:  controlSequence('R'),
}

// SequenceBackend switches modes by writing control sequences to the output
// channel. It cannot read the terminal's state back, so captured states only
// record whether they are raw.
type SequenceBackend struct {
	w   io.Writer
	seq Sequences
}

// NewSequenceBackend returns a SequenceBackend writing DefaultSequences to w.
func NewSequenceBackend(w io.Writer) *SequenceBackend {
	return NewSequenceBackendWith(w, DefaultSequences)
}

// NewSequenceBackendWith returns a SequenceBackend writing seq to w.
func NewSequenceBackendWith(w io.Writer, seq Sequences) *SequenceBackend {
	return &SequenceBackend{w: w, seq: seq}
}

func (b *SequenceBackend) Capture() (*State, error) {
	return &State{}, nil
}

func (b *SequenceBackend) DeriveRaw(s *State) *State {
	return &State{attrs: s.attrs, raw: true}
}

func (b *SequenceBackend) Apply(s *State) error {
	seq := b.seq.Exit
	if s.raw {
		seq = b.seq.Enter
	}
	if _, err := b.w.Write(seq); err != nil {
		return err
	}
	if f, ok := b.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (b *SequenceBackend) Restore(s *State) error {
	return b.Apply(s)
}
