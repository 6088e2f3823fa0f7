// Package rawmode switches a terminal into raw mode and restores the
// previous configuration when the session ends.
//
// A session starts with IntoRawMode, which captures the terminal's current
// attributes, applies the cfmakeraw(3) variant and returns a RawTerminal
// wrapping the caller's writer. Releasing the RawTerminal (Restore, Close, or
// the end of a WithRawMode callback) writes the captured attributes back.
//
//	rt, err := rawmode.IntoRawMode(os.Stdout)
//	if err != nil {
//		return err
//	}
//	defer rt.Restore()
//
// Restoration happens only on release. A RawTerminal that is dropped without
// Restore or Close leaves the terminal in raw mode, even after it has been
// garbage collected.
//
// The terminal's attribute state belongs to the process, not to any one
// RawTerminal. Nothing serializes access to it: if two sessions overlap
// (nested without care, or started from different goroutines) each restores
// the state it captured, in release order, and the last restoration wins.
// Callers that nest sessions must release them in LIFO order.
package rawmode
