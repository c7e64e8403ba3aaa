package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// ansiEmergencyReset restores the terminal to a usable state without a
// screen handle: mouse tracking off, cursor shown, alternate screen exited,
// attributes cleared. Best-effort; used only when no reset func is set.
var ansiEmergencyReset = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l\x1b[?25h\x1b[?1049l\x1b[0m")

// resetFunc holds the screen restore callback installed by the entrypoint.
// Kept as an atomic value so crashing goroutines can read it safely.
var resetFunc atomic.Value // func()

// SetResetFunc installs the terminal restore callback invoked before a crash
// report is printed. The entrypoint sets this once the screen is initialized
// so core stays independent of the screen backend.
func SetResetFunc(fn func()) {
	resetFunc.Store(fn)
}

// HandleCrash is the unified panic handler: restore the terminal first, then
// print the panic and stack trace where they will actually be visible
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := resetFunc.Load().(func()); ok && fn != nil {
		fn()
	} else {
		os.Stdout.Write(ansiEmergencyReset)
	}
	os.Stdout.Sync()

	// \r\n everywhere: stdout may still be in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mfolio crashed: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so the terminal is restored on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
