package petrel

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder assembles ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the assembled sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// WriteRune appends a raw character.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// MoveTo moves the cursor to (x, y), 0-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the visible screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// ClearScrollback clears the scrollback buffer as well; keeps resizes clean.
func (e *escBuilder) ClearScrollback() {
	e.writeCSI()
	e.buf = append(e.buf, '3', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// EnableMouse turns on button tracking with SGR coordinate encoding.
func (e *escBuilder) EnableMouse() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '0', 'h')
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '6', 'h')
}

// DisableMouse turns mouse tracking back off.
func (e *escBuilder) DisableMouse() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '6', 'l')
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '0', 'l')
}

// ResetBrush resets all attributes to terminal defaults.
func (e *escBuilder) ResetBrush() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetBrush emits the SGR sequence for the brush, degrading colors to what
// the terminal supports. It always begins from a reset so stale attributes
// never leak between runs.
func (e *escBuilder) SetBrush(b Brush, caps Capabilities) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	if b.HasTrait(TraitBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if b.HasTrait(TraitDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if b.HasTrait(TraitItalic) {
		e.buf = append(e.buf, ';', '3')
	}
	if b.HasTrait(TraitUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if b.HasTrait(TraitBlink) {
		e.buf = append(e.buf, ';', '5')
	}
	if b.HasTrait(TraitInverse) {
		e.buf = append(e.buf, ';', '7')
	}
	if b.HasTrait(TraitStrikethrough) {
		e.buf = append(e.buf, ';', '9')
	}

	e.appendColor(b.Fg, true, caps)
	e.appendColor(b.Bg, false, caps)

	e.buf = append(e.buf, 'm')
}

// appendColor emits the parameter block for one color; fg selects the
// foreground (38/30) vs background (48/40) code families.
func (e *escBuilder) appendColor(c Color, fg bool, caps Capabilities) {
	if c.IsDefault() {
		return
	}

	if c.Type() == ColorRGB && !caps.TrueColor {
		// Terminal can't do 24-bit; fall back to the nearest palette entry.
		c = c.Quantize256()
	}

	switch c.Type() {
	case ColorRGB:
		r, g, b := c.RGB255()
		e.buf = append(e.buf, ';')
		if fg {
			e.writeInt(38)
		} else {
			e.writeInt(48)
		}
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8:
			e.buf = append(e.buf, ';')
			if fg {
				e.writeInt(30 + idx)
			} else {
				e.writeInt(40 + idx)
			}
		case idx < 16:
			e.buf = append(e.buf, ';')
			if fg {
				e.writeInt(90 + idx - 8)
			} else {
				e.writeInt(100 + idx - 8)
			}
		default:
			e.buf = append(e.buf, ';')
			if fg {
				e.writeInt(38)
			} else {
				e.writeInt(48)
			}
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(idx)
		}
	}
}
