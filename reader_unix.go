//go:build unix

package petrel

import (
	"time"

	"golang.org/x/sys/unix"
)

// readerWindowSize returns the terminal size for resize events, falling
// back to 80x24 when the ioctl fails.
func readerWindowSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// waitReadable blocks until fd has input or the timeout expires. A negative
// timeout blocks indefinitely. EINTR reports as a quiet timeout so signal
// handlers can run.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		val := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &val
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
