//go:build unix || windows

package main

import (
	"os"
	"syscall"
)

var quitSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
