package petrel

import "github.com/mattn/go-runewidth"

// Cell is a single character cell in the terminal grid. Wide characters
// (CJK, emoji) occupy two cells: the first holds the rune, the second is a
// zero-width continuation.
type Cell struct {
	Rune  rune
	Brush Brush
	Width uint8 // Display width (1 or 2; 0 for continuation cells)
}

// NewCell creates a Cell with automatic width detection.
func NewCell(r rune, brush Brush) Cell {
	return Cell{
		Rune:  r,
		Brush: brush,
		Width: uint8(RuneWidth(r)),
	}
}

// continuationCell returns the placeholder occupying the second column of a
// wide character.
func continuationCell(brush Brush) Cell {
	return Cell{Brush: brush, Width: 0}
}

// IsContinuation reports whether this cell is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equal reports whether both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// RuneWidth returns the display width of a rune in cells.
func RuneWidth(r rune) int {
	if r < 32 {
		// Control characters still need a cell to show up as something.
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 1
	}
	return w
}

// StringWidth returns the display width of a string in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateString shortens s to fit within width cells, appending tail if
// anything was cut.
func TruncateString(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}
