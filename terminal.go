package petrel

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorCapability is the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone is a monochrome terminal.
	ColorNone ColorCapability = iota
	// Color16 is basic 16-color ANSI support.
	Color16
	// Color256 is the ANSI 256 palette.
	Color256
	// ColorTrue is 24-bit RGB.
	ColorTrue
)

// Capabilities describes what the terminal supports.
type Capabilities struct {
	Colors    ColorCapability
	TrueColor bool
	Unicode   bool
	AltScreen bool
}

// Terminal abstracts the output side of a terminal: geometry, cell flushing,
// cursor and screen-mode control. Implementations exist for ANSI terminals
// and for tests (MockTerminal).
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush writes cell changes, expected in row-major order.
	Flush(changes []CellChange)

	// Clear clears the screen.
	Clear()

	// SetCursor moves the cursor (0-indexed).
	SetCursor(x, y int)

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// EnterRawMode switches to character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the mode saved by EnterRawMode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen()

	// ExitAltScreen restores the main screen buffer.
	ExitAltScreen()

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// DisableMouse turns mouse reporting back off.
	DisableMouse()

	// Caps returns the detected capabilities.
	Caps() Capabilities
}

// ANSITerminal implements Terminal with ANSI escape sequences.
type ANSITerminal struct {
	out       io.Writer
	caps      Capabilities
	esc       *escBuilder
	lastBrush Brush
	inFd      int
	outFd     int
	rawState  *rawModeState
}

// NewANSITerminal creates a terminal writing to out and controlling the
// input file's mode. Capabilities are detected from the environment.
func NewANSITerminal(out io.Writer, in io.Reader) (*ANSITerminal, error) {
	t := &ANSITerminal{
		out:   out,
		caps:  detectCapabilities(),
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t, nil
}

// detectCapabilities probes the environment for color and screen support.
// PETREL_TRUECOLOR=1 forces 24-bit color on terminals that advertise badly.
func detectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:    Color16,
		Unicode:   true,
		AltScreen: true,
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return caps
	}

	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "256color") {
		caps.Colors = Color256
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" || os.Getenv("PETREL_TRUECOLOR") == "1" {
		caps.Colors = ColorTrue
		caps.TrueColor = true
	}
	if termEnv == "dumb" {
		caps.Colors = ColorNone
		caps.AltScreen = false
	}
	return caps
}

// Size returns the terminal dimensions, defaulting to 80x24 when unknown.
func (t *ANSITerminal) Size() (width, height int) {
	if t.outFd >= 0 {
		if w, h, err := getTerminalSize(t.outFd); err == nil {
			return w, h
		}
	}
	return 80, 24
}

// Flush writes the cell changes, coalescing cursor moves for runs of
// adjacent cells and emitting brush changes only when the brush differs
// from the previous cell's.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	lastX, lastY := -1, -1

	for _, ch := range changes {
		// Continuation cells are the shadow of the preceding wide rune;
		// emitting them would walk the cursor backwards.
		if ch.Cell.IsContinuation() {
			continue
		}

		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}

		if !ch.Cell.Brush.Equal(t.lastBrush) {
			t.esc.SetBrush(ch.Cell.Brush, t.caps)
			t.lastBrush = ch.Cell.Brush
		}

		if ch.Cell.Rune != 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}

		lastX = ch.X
		if ch.Cell.Width > 1 {
			lastX = ch.X + int(ch.Cell.Width) - 1
		}
		lastY = ch.Y
	}

	t.out.Write(t.esc.Bytes())
}

// Clear clears the screen and scrollback and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetBrush()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.esc.ClearScrollback()
	t.esc.MoveTo(0, 0)
	t.out.Write(t.esc.Bytes())
	t.lastBrush = NewBrush()
}

// SetCursor moves the cursor (0-indexed).
func (t *ANSITerminal) SetCursor(x, y int) {
	t.esc.Reset()
	t.esc.MoveTo(x, y)
	t.out.Write(t.esc.Bytes())
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

// EnterRawMode switches the input to raw mode, saving the previous state.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.out.Write(t.esc.Bytes())
}

// ExitAltScreen restores the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	t.out.Write(t.esc.Bytes())
}

// EnableMouse turns on mouse reporting.
func (t *ANSITerminal) EnableMouse() {
	t.esc.Reset()
	t.esc.EnableMouse()
	t.out.Write(t.esc.Bytes())
}

// DisableMouse turns mouse reporting back off.
func (t *ANSITerminal) DisableMouse() {
	t.esc.Reset()
	t.esc.DisableMouse()
	t.out.Write(t.esc.Bytes())
}

// Caps returns the detected capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}
