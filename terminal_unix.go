//go:build unix

package petrel

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// rawModeState holds the termios settings saved before entering raw mode.
type rawModeState struct {
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode: no echo, no line buffering,
// no signal generation from the tty, and a blocking single-byte read.
func enableRawMode(fd int) (*rawModeState, error) {
	if fd < 0 {
		return nil, fmt.Errorf("enable raw mode: not a terminal")
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}
	saved := *termios

	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, fmt.Errorf("set termios: %w", err)
	}

	return &rawModeState{termios: saved}, nil
}

// disableRawMode restores the settings saved by enableRawMode.
func disableRawMode(fd int, state *rawModeState) error {
	if fd < 0 || state == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	return nil
}

// getTerminalSize queries the kernel for the window size in cells.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("get winsize: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
