// Command rawecho puts the terminal into raw mode and prints every key it
// reads, which makes it easy to see what a terminal actually sends.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/katsuya94/go-rawmode"
)

var Logger *log.Logger

var ErrNotATerminal = errors.New("not a terminal")

// checkTerminal reports which of files, if any, is not a terminal. Input is
// read from one and raw mode is applied through another, so both must be.
func checkTerminal(files ...*os.File) error {
	for _, f := range files {
		if !term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("%s: %w", f.Name(), ErrNotATerminal)
		}
	}
	return nil
}

func Run() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if config.LogFile == "" {
		Logger = log.New(io.Discard, "", 0)
	} else {
		file, err := os.OpenFile(
			config.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		defer file.Close()
		Logger = log.New(file, "", log.Ldate|log.Ltime|log.Lshortfile)
		rawmode.Logger = log.New(file, "rawmode: ", log.Ldate|log.Ltime)
	}

	if err := checkTerminal(os.Stdin, os.Stdout); err != nil {
		return err
	}
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		fmt.Printf("rawecho (%dx%d)\n", width, height)
	} else {
		Logger.Print("Unable to get terminal size: ", err)
	}
	fmt.Printf("Press %s, Ctrl-C or Ctrl-D to quit.\n", config.QuitKey)

	quitKey, _ := utf8.DecodeRuneInString(config.QuitKey)
	options := EchoOptions{Quit: quitKey, Hex: config.Hex}

	return rawmode.WithRawMode(os.Stdout, func(rt *rawmode.RawTerminal[*os.File]) error {
		Logger.Print("Entered raw mode")
		defer Logger.Print("Leaving raw mode")

		// ISIG is off, so only signals from outside the terminal arrive here.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, quitSignals...)
		defer signal.Stop(quit)

		done := make(chan error, 1)
		go func() {
			done <- Echo(os.Stdin, rt, options)
		}()

		select {
		case err := <-done:
			return err
		case sig := <-quit:
			Logger.Print("Received ", sig)
			return nil
		}
	})
}

func main() {
	err := Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
