package petrel

import "testing"

func TestBufferStartsBlank(t *testing.T) {
	b := NewBuffer(10, 4)

	if w, h := b.Size(); w != 10 || h != 4 {
		t.Errorf("Size() = %dx%d, want 10x4", w, h)
	}
	if len(b.Diff()) != 0 {
		t.Errorf("new buffer should have no diff, got %d changes", len(b.Diff()))
	}
	if got := b.Cell(3, 2).Rune; got != ' ' {
		t.Errorf("Cell(3,2).Rune = %q, want space", got)
	}
}

func TestBufferSetCellAndDiff(t *testing.T) {
	b := NewBuffer(10, 4)
	b.SetCell(2, 1, NewCell('A', NewBrush()))

	changes := b.Diff()
	if len(changes) != 1 {
		t.Fatalf("Diff() returned %d changes, want 1", len(changes))
	}
	if changes[0].X != 2 || changes[0].Y != 1 || changes[0].Cell.Rune != 'A' {
		t.Errorf("Diff()[0] = (%d,%d,%q), want (2,1,'A')",
			changes[0].X, changes[0].Y, changes[0].Cell.Rune)
	}

	b.Swap()
	if len(b.Diff()) != 0 {
		t.Errorf("diff after Swap should be empty, got %d changes", len(b.Diff()))
	}
}

func TestBufferOutOfBoundsDropped(t *testing.T) {
	b := NewBuffer(4, 2)
	b.SetCell(-1, 0, NewCell('X', NewBrush()))
	b.SetCell(4, 0, NewCell('X', NewBrush()))
	b.SetCell(0, 2, NewCell('X', NewBrush()))

	if len(b.Diff()) != 0 {
		t.Errorf("out of bounds writes should be dropped, got %d changes", len(b.Diff()))
	}
}

func TestBufferSetTextClipped(t *testing.T) {
	b := NewBuffer(5, 1)
	n := b.SetText(2, 0, "hello", NewBrush())

	if n != 3 {
		t.Errorf("SetText consumed %d columns, want 3", n)
	}
	if got := b.Cell(2, 0).Rune; got != 'h' {
		t.Errorf("Cell(2,0) = %q, want 'h'", got)
	}
	if got := b.Cell(4, 0).Rune; got != 'l' {
		t.Errorf("Cell(4,0) = %q, want 'l'", got)
	}
}

func TestBufferWideRuneContinuation(t *testing.T) {
	b := NewBuffer(6, 1)
	n := b.SetRune(1, 0, '世', NewBrush())

	if n != 2 {
		t.Errorf("SetRune('世') consumed %d columns, want 2", n)
	}
	if got := b.Cell(1, 0); got.Rune != '世' || got.Width != 2 {
		t.Errorf("Cell(1,0) = {%q width %d}, want wide '世'", got.Rune, got.Width)
	}
	if !b.Cell(2, 0).IsContinuation() {
		t.Error("Cell(2,0) should be a continuation cell")
	}
}

func TestBufferFillRespectsRect(t *testing.T) {
	b := NewBuffer(6, 4)
	b.Fill(NewRect(1, 1, 2, 2), '#', NewBrush())

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			got := b.Cell(x, y).Rune
			if inside && got != '#' {
				t.Errorf("Cell(%d,%d) = %q, want '#'", x, y, got)
			}
			if !inside && got != ' ' {
				t.Errorf("Cell(%d,%d) = %q, want space", x, y, got)
			}
		}
	}
}

func TestBufferResizeBlanks(t *testing.T) {
	b := NewBuffer(4, 2)
	b.SetCell(0, 0, NewCell('A', NewBrush()))
	b.Resize(8, 3)

	if w, h := b.Size(); w != 8 || h != 3 {
		t.Errorf("Size() after resize = %dx%d, want 8x3", w, h)
	}
	if got := b.Cell(0, 0).Rune; got != ' ' {
		t.Errorf("resize should blank content, Cell(0,0) = %q", got)
	}
	if len(b.Diff()) != 0 {
		t.Errorf("resized buffer should have no diff, got %d", len(b.Diff()))
	}
}
