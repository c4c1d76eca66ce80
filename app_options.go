package petrel

import (
	"fmt"
	"time"
)

// AppOption configures an App at construction.
type AppOption func(*App) error

// WithRoot sets the initial widget tree.
func WithRoot(root *Widget) AppOption {
	return func(a *App) error {
		a.root = root
		return nil
	}
}

// WithFrameRate sets the target frames per second of the loop.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps <= 0 {
			return fmt.Errorf("frame rate must be positive, got %d", fps)
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithInputLatency sets how long the input goroutine waits for bytes per
// poll. Lower values reduce input lag at the cost of wakeups.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("input latency must be positive, got %v", d)
		}
		a.inputLatency = d
		return nil
	}
}

// WithEventQueueSize sets the capacity of the loop's event queue.
func WithEventQueueSize(n int) AppOption {
	return func(a *App) error {
		if n <= 0 {
			return fmt.Errorf("event queue size must be positive, got %d", n)
		}
		a.queueSize = n
		return nil
	}
}

// WithoutMouse disables mouse reporting.
func WithoutMouse() AppOption {
	return func(a *App) error {
		a.mouseEnabled = false
		return nil
	}
}

// WithoutAltScreen keeps the app on the main screen buffer instead of
// switching to the alternate one.
func WithoutAltScreen() AppOption {
	return func(a *App) error {
		a.altScreen = false
		return nil
	}
}
