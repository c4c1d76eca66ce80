package petrel

import "testing"

func TestTextBoxEditing(t *testing.T) {
	tb := NewTextBox("")

	for _, r := range "hey" {
		tb.handleKey(KeyEvent{Key: KeyRune, Rune: r})
	}
	if got := tb.Text(); got != "hey" {
		t.Errorf("Text() = %q, want %q", got, "hey")
	}

	tb.handleKey(KeyEvent{Key: KeyBackspace})
	if got := tb.Text(); got != "he" {
		t.Errorf("after backspace Text() = %q, want %q", got, "he")
	}

	tb.handleKey(KeyEvent{Key: KeyLeft})
	tb.handleKey(KeyEvent{Key: KeyRune, Rune: 'x'})
	if got := tb.Text(); got != "hxe" {
		t.Errorf("insert at cursor gave %q, want %q", got, "hxe")
	}

	tb.handleKey(KeyEvent{Key: KeyDelete})
	if got := tb.Text(); got != "hx" {
		t.Errorf("delete forward gave %q, want %q", got, "hx")
	}
}

func TestTextBoxCursorBounds(t *testing.T) {
	tb := NewTextBox("ab")

	tb.handleKey(KeyEvent{Key: KeyRight})
	if got := tb.Cursor(); got != 2 {
		t.Errorf("cursor should stay at end, got %d", got)
	}

	tb.handleKey(KeyEvent{Key: KeyHome})
	if got := tb.Cursor(); got != 0 {
		t.Errorf("Home should move to line start, got %d", got)
	}
	tb.handleKey(KeyEvent{Key: KeyLeft})
	if got := tb.Cursor(); got != 0 {
		t.Errorf("cursor should stay at start, got %d", got)
	}
	tb.handleKey(KeyEvent{Key: KeyEnd})
	if got := tb.Cursor(); got != 2 {
		t.Errorf("End should move to line end, got %d", got)
	}
}

func TestTextBoxLineMovement(t *testing.T) {
	tb := NewTextBox("one\ntwo")

	tb.handleKey(KeyEvent{Key: KeyHome})
	if got := tb.Cursor(); got != 4 {
		t.Errorf("Home on second line should land at 4, got %d", got)
	}
	tb.handleKey(KeyEvent{Key: KeyUp})
	if got := tb.Cursor(); got != 0 {
		t.Errorf("Up should reach the first line start, got %d", got)
	}
	tb.handleKey(KeyEvent{Key: KeyDown})
	if got := tb.Cursor(); got != 4 {
		t.Errorf("Down should reach the second line start, got %d", got)
	}
}

func TestTextBoxIgnoresUnknownKeys(t *testing.T) {
	tb := NewTextBox("a")
	if tb.handleKey(KeyEvent{Key: KeyF5}) {
		t.Error("unhandled keys should propagate")
	}
	if got := tb.Text(); got != "a" {
		t.Errorf("text changed to %q", got)
	}
}

func TestTextBoxPaintWrapsAndShowsCursor(t *testing.T) {
	term := NewMockTerminal(4, 3)
	buf := NewBuffer(4, 3)

	tb := NewTextBox("abcdef")
	root := NewWidget(WithChildren(tb.Widget))
	fm := NewFocusManager(root)
	fm.Focus(tb.Widget)

	term.Flush(Render(buf, root))
	buf.Swap()

	if got := term.Row(0); got != "abcd" {
		t.Errorf("Row(0) = %q, want %q", got, "abcd")
	}
	if got := term.Row(1); got != "ef" {
		t.Errorf("Row(1) = %q, want %q", got, "ef")
	}
	// Cursor sits one past the text, rendered as an inverted space.
	cursor := term.CellAt(2, 1)
	if !cursor.Brush.HasTrait(TraitInverse) {
		t.Error("focused cursor cell should render inverted")
	}
}
