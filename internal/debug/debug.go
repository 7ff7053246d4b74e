// Package debug is the ambient conditional logger used by config, relay,
// plugin, timeparse and cmd/mostr (for example, time-parse failures and
// relay write failures log through it). The core packages (event, task,
// store, timeline, view) do not log: duplicate events are dropped
// silently, and refused commands and unknown property names are reported
// only through their boolean results.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu sync.Mutex
	enabled bool
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	enabled = os.Getenv("MOSTR_DEBUG") != ""
}

// Enabled reports whether debug logging is currently switched on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled turns debug logging on or off at runtime (wired to a cobra
// --debug flag in cmd/mostr).
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// UseRotatingFile redirects debug output to a size- and age-rotated log
// file instead of stderr.
func UseRotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int) {
	mu.Lock()
	defer mu.Unlock()
	var w io.Writer = &lumberjack.Logger{
		Filename: path,
		MaxSize: maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge: maxAgeDays,
		Compress: true,
	}
	logger = log.New(w, "", log.LstdFlags)
}

// Logf logs a formatted debug message if debug logging is enabled. It is
// a no-op otherwise — call sites never need to check Enabled themselves.
func Logf(format string, args ...interface{}) {
	mu.Lock()
	on := enabled
	l := logger
	mu.Unlock()
	if !on {
		return
	}
	l.Output(2, fmt.Sprintf(format, args...))
}
