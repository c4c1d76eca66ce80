package petrel

// TextBox is an editable text area. It takes focus, accepts printable
// input, and wraps its contents to the widget's width. The cell at the
// cursor renders inverted while the box has focus.
type TextBox struct {
	*Widget
	runes  []rune
	cursor int // Index into runes, may equal len(runes).
}

// NewTextBox creates a text box. The default policies expand on both axes
// so a box competes for surplus space; options may override them.
func NewTextBox(text string, opts ...Option) *TextBox {
	t := &TextBox{runes: []rune(text)}
	t.cursor = len(t.runes)
	base := []Option{
		WithHorizontalPolicy(ExpandingPolicy(0)),
		WithVerticalPolicy(ExpandingPolicy(0)),
		WithFocusable(),
		OnPaint(func(w *Widget, p *Painter) { t.paint(p) }),
		OnKey(func(w *Widget, ev KeyEvent) bool { return t.handleKey(ev) }),
	}
	t.Widget = NewWidget(append(base, opts...)...)
	return t
}

// Text returns the box's contents.
func (t *TextBox) Text() string { return string(t.runes) }

// SetText replaces the contents and moves the cursor to the end.
func (t *TextBox) SetText(text string) {
	t.runes = []rune(text)
	t.cursor = len(t.runes)
	t.MarkDirty()
}

// Cursor returns the cursor's rune index.
func (t *TextBox) Cursor() int { return t.cursor }

// Insert places a rune at the cursor.
func (t *TextBox) Insert(r rune) {
	t.runes = append(t.runes[:t.cursor], append([]rune{r}, t.runes[t.cursor:]...)...)
	t.cursor++
	t.MarkDirty()
}

// DeleteBackward removes the rune before the cursor.
func (t *TextBox) DeleteBackward() {
	if t.cursor == 0 {
		return
	}
	t.runes = append(t.runes[:t.cursor-1], t.runes[t.cursor:]...)
	t.cursor--
	t.MarkDirty()
}

// DeleteForward removes the rune under the cursor.
func (t *TextBox) DeleteForward() {
	if t.cursor >= len(t.runes) {
		return
	}
	t.runes = append(t.runes[:t.cursor], t.runes[t.cursor+1:]...)
	t.MarkDirty()
}

func (t *TextBox) handleKey(ev KeyEvent) bool {
	switch {
	case ev.IsRune():
		t.Insert(ev.Rune)
	case ev.Is(KeyEnter):
		t.Insert('\n')
	case ev.Is(KeyBackspace):
		t.DeleteBackward()
	case ev.Is(KeyDelete):
		t.DeleteForward()
	case ev.Is(KeyLeft):
		if t.cursor > 0 {
			t.cursor--
			t.MarkDirty()
		}
	case ev.Is(KeyRight):
		if t.cursor < len(t.runes) {
			t.cursor++
			t.MarkDirty()
		}
	case ev.Is(KeyHome):
		t.cursor = t.lineStart(t.cursor)
		t.MarkDirty()
	case ev.Is(KeyEnd):
		t.cursor = t.lineEnd(t.cursor)
		t.MarkDirty()
	case ev.Is(KeyUp), ev.Is(KeyDown):
		// Vertical movement works on the wrapped layout, which only exists
		// at paint time; fold it into the line-based approximation.
		if ev.Is(KeyUp) {
			t.cursor = t.lineStart(t.cursor)
			if t.cursor > 0 {
				t.cursor = t.lineStart(t.cursor - 1)
			}
		} else {
			end := t.lineEnd(t.cursor)
			if end < len(t.runes) {
				t.cursor = end + 1
			}
		}
		t.MarkDirty()
	default:
		return false
	}
	return true
}

// lineStart returns the index of the first rune on the line containing i.
func (t *TextBox) lineStart(i int) int {
	for i > 0 && t.runes[i-1] != '\n' {
		i--
	}
	return i
}

// lineEnd returns the index one past the last rune on the line containing i.
func (t *TextBox) lineEnd(i int) int {
	for i < len(t.runes) && t.runes[i] != '\n' {
		i++
	}
	return i
}

// paint wraps the contents to the box's width and draws the cursor cell
// inverted when focused.
func (t *TextBox) paint(p *Painter) {
	width, height := p.Size()
	if width <= 0 || height <= 0 {
		return
	}

	x, y := 0, 0
	cursorX, cursorY := -1, -1

	place := func(i int) {
		if i == t.cursor {
			cursorX, cursorY = x, y
		}
	}

	for i, r := range t.runes {
		place(i)
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		w := RuneWidth(r)
		if x+w > width {
			x, y = 0, y+1
		}
		if y >= height {
			break
		}
		p.Put(x, y, r)
		x += w
	}
	place(len(t.runes))

	if t.Focused() && cursorY >= 0 && cursorY < height {
		r := ' '
		if i := t.cursor; i < len(t.runes) && t.runes[i] != '\n' {
			r = t.runes[i]
		}
		p.PutBrush(cursorX, cursorY, r, p.Brush().Inverse())
	}
}
