package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is injected at startup so core stays independent of the
// terminal package. Defaults to a plain stderr dump.
var crashHandler atomic.Value // func(any)

// SetCrashHandler installs the process-wide panic handler used by Go.
// Main injects a handler that restores the terminal before printing.
func SetCrashHandler(fn func(r any)) {
	if fn != nil {
		crashHandler.Store(fn)
	}
}

// HandleCrash invokes the installed panic handler, or the default dump
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if fn, ok := crashHandler.Load().(func(any)); ok {
		fn(r)
		return
	}
	fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
