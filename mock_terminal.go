package petrel

import (
	"strings"
)

// MockTerminal is an in-memory Terminal for tests. It applies flushed cells
// to its own grid and records mode transitions so tests can assert on them.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	mouseEnabled  bool
	caps          Capabilities
	flushCount    int
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal of the given dimensions with full
// capabilities.
func NewMockTerminal(width, height int) *MockTerminal {
	cells := make([]Cell, width*height)
	blank := NewCell(' ', NewBrush())
	for i := range cells {
		cells[i] = blank
	}

	return &MockTerminal{
		width:  width,
		height: height,
		cells:  cells,
		caps: Capabilities{
			Colors:    ColorTrue,
			TrueColor: true,
			Unicode:   true,
			AltScreen: true,
		},
	}
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// Flush applies the cell changes to the grid.
func (m *MockTerminal) Flush(changes []CellChange) {
	m.flushCount++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

// Clear resets the grid to blank cells.
func (m *MockTerminal) Clear() {
	blank := NewCell(' ', NewBrush())
	for i := range m.cells {
		m.cells[i] = blank
	}
	m.cursorX = 0
	m.cursorY = 0
}

// SetCursor records the cursor position.
func (m *MockTerminal) SetCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
}

// HideCursor marks the cursor hidden.
func (m *MockTerminal) HideCursor() { m.cursorHidden = true }

// ShowCursor marks the cursor visible.
func (m *MockTerminal) ShowCursor() { m.cursorHidden = false }

// EnterRawMode records the mode switch.
func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	return nil
}

// ExitRawMode records the mode switch.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

// EnterAltScreen records the screen switch.
func (m *MockTerminal) EnterAltScreen() { m.inAltScreen = true }

// ExitAltScreen records the screen switch.
func (m *MockTerminal) ExitAltScreen() { m.inAltScreen = false }

// EnableMouse records mouse reporting as on.
func (m *MockTerminal) EnableMouse() { m.mouseEnabled = true }

// DisableMouse records mouse reporting as off.
func (m *MockTerminal) DisableMouse() { m.mouseEnabled = false }

// Caps returns the mock capabilities.
func (m *MockTerminal) Caps() Capabilities { return m.caps }

// SetCaps overrides the capabilities for a test.
func (m *MockTerminal) SetCaps(caps Capabilities) { m.caps = caps }

// Resize changes the terminal dimensions, preserving overlapping content.
func (m *MockTerminal) Resize(width, height int) {
	cells := make([]Cell, width*height)
	blank := NewCell(' ', NewBrush())
	for i := range cells {
		cells[i] = blank
	}

	for y := 0; y < min(height, m.height); y++ {
		for x := 0; x < min(width, m.width); x++ {
			cells[y*width+x] = m.cells[y*m.width+x]
		}
	}

	m.width = width
	m.height = height
	m.cells = cells
}

// CellAt returns the cell at (x, y), or the zero Cell out of bounds.
func (m *MockTerminal) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Cursor returns the recorded cursor position.
func (m *MockTerminal) Cursor() (x, y int) { return m.cursorX, m.cursorY }

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool { return m.cursorHidden }

// IsInRawMode reports whether raw mode is active.
func (m *MockTerminal) IsInRawMode() bool { return m.inRawMode }

// IsInAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool { return m.inAltScreen }

// IsMouseEnabled reports whether mouse reporting is on.
func (m *MockTerminal) IsMouseEnabled() bool { return m.mouseEnabled }

// FlushCount returns the number of Flush calls.
func (m *MockTerminal) FlushCount() int { return m.flushCount }

// String renders the grid as text, one line per row. Continuation cells are
// skipped so wide characters print once.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			cell := m.cells[y*m.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// Row returns one row of the grid with trailing spaces removed.
func (m *MockTerminal) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < m.width; x++ {
		cell := m.cells[y*m.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Rune)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
