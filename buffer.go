package petrel

// Buffer is a double-buffered 2D grid of cells. Writes go to the back
// buffer; Diff compares it to the front buffer and Swap promotes it once the
// changes have been flushed.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

// CellChange is a single cell that differs between the front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a buffer of the given dimensions, initialized to blank
// cells with the default brush.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)

	size := width * height
	front := make([]Cell, size)
	back := make([]Cell, size)
	blank := NewCell(' ', NewBrush())
	for i := range front {
		front[i] = blank
		back[i] = blank
	}

	return &Buffer{front: front, back: back, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// Rect returns the buffer bounds as a Rect at the origin.
func (b *Buffer) Rect() Rect { return NewRect(0, 0, b.width, b.height) }

// idx converts coordinates to a flat index, or -1 when out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back-buffer cell at (x, y), or the zero Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

// SetCell writes a cell into the back buffer. Out-of-bounds writes are
// dropped silently; clipping is the painter's job, this is the last line of
// defense.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.back[i] = c
}

// SetRune writes a rune with the given brush at (x, y), placing a
// continuation cell after wide characters. Returns the number of columns
// consumed.
func (b *Buffer) SetRune(x, y int, r rune, brush Brush) int {
	c := NewCell(r, brush)
	b.SetCell(x, y, c)
	if c.Width > 1 {
		b.SetCell(x+1, y, continuationCell(brush))
	}
	return int(c.Width)
}

// SetText writes a string starting at (x, y), clipped to the buffer width.
// Returns the number of columns consumed.
func (b *Buffer) SetText(x, y int, text string, brush Brush) int {
	cx := x
	for _, r := range text {
		if cx >= b.width {
			break
		}
		cx += b.SetRune(cx, y, r, brush)
	}
	return cx - x
}

// Fill sets every cell within rect (clipped to the buffer) to the given rune
// and brush.
func (b *Buffer) Fill(rect Rect, r rune, brush Brush) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetCell(x, y, NewCell(r, brush))
		}
	}
}

// Clear resets the back buffer to blank cells.
func (b *Buffer) Clear() {
	blank := NewCell(' ', NewBrush())
	for i := range b.back {
		b.back[i] = blank
	}
}

// Diff returns the cells that differ between the back and front buffers, in
// row-major order.
func (b *Buffer) Diff() []CellChange {
	var changes []CellChange
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if !b.back[i].Equal(b.front[i]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[i]})
			}
		}
	}
	return changes
}

// Swap promotes the back buffer to front. The new back buffer starts as a
// copy of the front so unchanged cells survive partial redraws.
func (b *Buffer) Swap() {
	b.front, b.back = b.back, b.front
	copy(b.back, b.front)
}

// Resize replaces both buffers with blank grids of the new dimensions.
// Content is not preserved; callers repaint after resizing.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)

	size := width * height
	b.front = make([]Cell, size)
	b.back = make([]Cell, size)
	blank := NewCell(' ', NewBrush())
	for i := range b.front {
		b.front[i] = blank
		b.back[i] = blank
	}
	b.width = width
	b.height = height
}
