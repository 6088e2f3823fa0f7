package main

import (
	"os"
	"syscall"
)

var quitSignals = []os.Signal{syscall.Note("hangup")}
