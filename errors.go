package rawmode

import (
	"errors"
	"fmt"
)

var (
	// ErrReadFailed is reported when the terminal's attributes could not be
	// read. No state was changed.
	ErrReadFailed = errors.New("unable to get terminal attributes")
	// ErrWriteFailed is reported when raw attributes could not be applied.
	// The terminal keeps the attributes it had before the call.
	ErrWriteFailed = errors.New("unable to set terminal attributes")
)

// AttrError is returned by IntoRawMode. Kind is ErrReadFailed or
// ErrWriteFailed; Err is the underlying cause.
type AttrError struct {
	Kind error
	Err  error
}

func (e *AttrError) Error() string {
	if e.Err == nil {
		return "rawmode: " + e.Kind.Error()
	}
	return fmt.Sprintf("rawmode: %s: %s", e.Kind, e.Err)
}

// Unwrap lets errors.Is match both the kind and the cause.
func (e *AttrError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
