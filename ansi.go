package rawmode

const (
	esc = 0x1b
	csi = 0x5b
)

// controlSequence returns ESC [ followed by final.
func controlSequence(final ...byte) []byte {
	return append([]byte{esc, csi}, final...)
}
