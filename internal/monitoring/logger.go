package monitoring

import (
	"fmt"
	"log"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// Printf writes user-facing course output (dimension reports, pixel dumps,
// skipped-lesson notices). It defaults to fmt.Printf on stdout so the lines
// are not prefixed with log timestamps.
var Printf func(format string, v ...interface{}) = func(format string, v ...interface{}) {
	fmt.Printf(format, v...)
}

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetPrinter replaces the course output printer. Passing nil mutes it.
func SetPrinter(f func(format string, v ...interface{})) {
	if f == nil {
		Printf = func(string, ...interface{}) {}
		return
	}
	Printf = f
}
