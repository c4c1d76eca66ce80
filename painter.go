package petrel

// Painter draws into a buffer on behalf of one widget. Coordinates are
// relative to the widget's content area and everything outside it is
// clipped, so a widget cannot scribble over its siblings.
type Painter struct {
	buf   *Buffer
	clip  Rect // Absolute content area, already intersected with the buffer.
	brush Brush
}

// newPainter creates a painter clipped to w's content area.
func newPainter(buf *Buffer, w *Widget) *Painter {
	return &Painter{
		buf:   buf,
		clip:  w.ContentRect().Intersect(buf.Rect()),
		brush: w.Brush(),
	}
}

// Size returns the drawable area in cells.
func (p *Painter) Size() (width, height int) {
	return p.clip.Width, p.clip.Height
}

// Brush returns the widget's effective brush.
func (p *Painter) Brush() Brush {
	return p.brush
}

// Put draws one rune at (x, y) with the widget's brush.
func (p *Painter) Put(x, y int, r rune) {
	p.PutBrush(x, y, r, p.brush)
}

// PutBrush draws one rune at (x, y) with an explicit brush. Wide runes
// whose second column would cross the clip edge are dropped.
func (p *Painter) PutBrush(x, y int, r rune, brush Brush) {
	ax, ay := p.clip.X+x, p.clip.Y+y
	if !p.clip.Contains(ax, ay) {
		return
	}
	if RuneWidth(r) > 1 && !p.clip.Contains(ax+1, ay) {
		return
	}
	p.buf.SetRune(ax, ay, r, brush)
}

// Text draws a string starting at (x, y) with the widget's brush, clipped
// to the content area. Returns the number of columns consumed.
func (p *Painter) Text(x, y int, text string) int {
	return p.TextBrush(x, y, text, p.brush)
}

// TextBrush draws a string with an explicit brush.
func (p *Painter) TextBrush(x, y int, text string, brush Brush) int {
	cx := x
	for _, r := range text {
		w := RuneWidth(r)
		if cx+w > p.clip.Width {
			break
		}
		p.PutBrush(cx, y, r, brush)
		cx += w
	}
	return cx - x
}

// Fill floods the whole content area with the rune.
func (p *Painter) Fill(r rune) {
	p.FillRect(NewRect(0, 0, p.clip.Width, p.clip.Height), r)
}

// FillRect fills a sub-rectangle of the content area with the rune.
func (p *Painter) FillRect(rect Rect, r rune) {
	abs := rect.Translate(p.clip.X, p.clip.Y).Intersect(p.clip)
	p.buf.Fill(abs, r, p.brush)
}

// Clear fills the content area with spaces.
func (p *Painter) Clear() {
	p.Fill(' ')
}

// Box-drawing runes for widget borders.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// drawBorder outlines rect in the buffer. Rectangles thinner than two cells
// on either axis have no room for a frame and are skipped.
func drawBorder(buf *Buffer, rect Rect, brush Brush) {
	rect = rect.Intersect(buf.Rect())
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	for x := rect.X + 1; x < rect.Right()-1; x++ {
		buf.SetCell(x, rect.Y, NewCell(borderHorizontal, brush))
		buf.SetCell(x, rect.Bottom()-1, NewCell(borderHorizontal, brush))
	}
	for y := rect.Y + 1; y < rect.Bottom()-1; y++ {
		buf.SetCell(rect.X, y, NewCell(borderVertical, brush))
		buf.SetCell(rect.Right()-1, y, NewCell(borderVertical, brush))
	}
	buf.SetCell(rect.X, rect.Y, NewCell(borderTopLeft, brush))
	buf.SetCell(rect.Right()-1, rect.Y, NewCell(borderTopRight, brush))
	buf.SetCell(rect.X, rect.Bottom()-1, NewCell(borderBottomLeft, brush))
	buf.SetCell(rect.Right()-1, rect.Bottom()-1, NewCell(borderBottomRight, brush))
}
