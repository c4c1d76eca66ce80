// Package debug provides optional file-based debug logging.
//
// A terminal app owns the screen, so logging to stdout would corrupt the
// display. When the PETREL_DEBUG environment variable names a file path,
// messages append there; otherwise every call is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// Log appends a timestamped message to the debug log, if enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !checked {
		checked = true
		if path := os.Getenv("PETREL_DEBUG"); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				logFile = f
			}
		}
	}
	if logFile == nil {
		return
	}

	fmt.Fprintf(logFile, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	logFile.Sync()
}

// Close closes the log file if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = false
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
