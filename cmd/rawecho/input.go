package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	ETX = 0x03 // Ctrl-C
	EOT = 0x04 // Ctrl-D
	DEL = 0x7f
)

type EchoOptions struct {
	Quit rune
	Hex  bool
}

// Describe returns a printable name for c: caret notation for control
// characters, the character itself otherwise.
func Describe(c rune) string {
	switch {
	case c == DEL:
		return "^?"
	case c < 0x20:
		return "^" + string(c+'@')
	case c == ' ':
		return "SPC"
	case c == utf8.RuneError:
		return "invalid"
	}
	return string(c)
}

func writeKey(w io.Writer, c rune, raw []byte, hex bool) error {
	var line strings.Builder
	line.WriteString(Describe(c))
	if hex {
		fmt.Fprintf(&line, "\t% x", raw)
	}
	// Output post-processing is off in raw mode, so lines need an explicit
	// carriage return.
	line.WriteString("\r\n")
	_, err := io.WriteString(w, line.String())
	return err
}

// Echo reads keys from r and writes one line per key to w until the quit
// key, Ctrl-C, Ctrl-D or the end of input.
func Echo(r io.Reader, w io.Writer, options EchoOptions) error {
	reader := bufio.NewReader(r)
	buf := make([]byte, 0, utf8.UTFMax)
	for {
		b, err := reader.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		buf = append(buf, b)
		for len(buf) > 0 && utf8.FullRune(buf) {
			c, size := utf8.DecodeRune(buf)
			Logger.Printf("Received input % x", buf[:size])
			if err := writeKey(w, c, buf[:size], options.Hex); err != nil {
				return err
			}
			buf = append(buf[:0], buf[size:]...)
			if c == options.Quit || c == ETX || c == EOT {
				return nil
			}
		}
	}
}
