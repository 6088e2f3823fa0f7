package rawmode

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// RawTerminal wraps an output channel whose terminal is in raw mode. It
// restores the terminal's previous attributes when released with Restore or
// Close. Nothing restores it otherwise: dropping a RawTerminal leaves the
// terminal raw.
type RawTerminal[W io.Writer] struct {
	output  W
	backend Backend
	prev    *State
	once    sync.Once
}

// IntoRawMode puts the terminal behind w into raw mode. Raw mode means input
// is neither echoed, line-buffered nor turned into signals, so it can be read
// one byte at a time; output is not post-processed either.
//
// On error the terminal is left exactly as it was. On success the caller
// must release the returned RawTerminal, normally with defer rt.Restore().
func IntoRawMode[W io.Writer](w W) (*RawTerminal[W], error) {
	return IntoRawModeUsing(w, defaultBackend(w))
}

// IntoRawModeUsing is IntoRawMode using b to control the terminal.
func IntoRawModeUsing[W io.Writer](w W, b Backend) (*RawTerminal[W], error) {
	prev, err := b.Capture()
	if err != nil {
		return nil, &AttrError{Kind: ErrReadFailed, Err: err}
	}
	if err := b.Apply(b.DeriveRaw(prev)); err != nil {
		return nil, &AttrError{Kind: ErrWriteFailed, Err: err}
	}
	return &RawTerminal[W]{output: w, backend: b, prev: prev}, nil
}

// WithRawMode runs f with the terminal behind w in raw mode. The previous
// attributes are restored when f returns or panics.
func WithRawMode[W io.Writer](w W, f func(rt *RawTerminal[W]) error) error {
	return WithRawModeUsing(w, defaultBackend(w), f)
}

// WithRawModeUsing is WithRawMode using b to control the terminal.
func WithRawModeUsing[W io.Writer](w W, b Backend, f func(rt *RawTerminal[W]) error) error {
	rt, err := IntoRawModeUsing(w, b)
	if err != nil {
		return err
	}
	defer rt.Restore()
	return f(rt)
}

// Write writes p to the wrapped channel unchanged.
func (rt *RawTerminal[W]) Write(p []byte) (int, error) {
	return rt.output.Write(p)
}

// Flush flushes the wrapped channel if it has a Flush method.
func (rt *RawTerminal[W]) Flush() error {
	if f, ok := any(rt.output).(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Output returns the wrapped channel. It remains owned by rt.
func (rt *RawTerminal[W]) Output() W {
	return rt.output
}

// Restore writes back the attributes captured by IntoRawMode. Only the first
// call has any effect. A failure is reported to Logger; there is nothing a
// caller could do about it during teardown.
func (rt *RawTerminal[W]) Restore() {
	rt.once.Do(func() {
		if err := rt.backend.Restore(rt.prev); err != nil {
			Logger.Printf("restoring terminal attributes: %v", err)
		}
	})
}

// Close calls Restore and always returns nil.
func (rt *RawTerminal[W]) Close() error {
	rt.Restore()
	return nil
}
