//go:build !unix && !windows && !plan9

package main

import "os"

// Only os.Interrupt is defined on every remaining platform.
var quitSignals = []os.Signal{os.Interrupt}
