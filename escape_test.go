package petrel

import "testing"

func TestEscMoveTo(t *testing.T) {
	e := newEscBuilder(64)
	e.MoveTo(0, 0)
	if got := string(e.Bytes()); got != "\x1b[1;1H" {
		t.Errorf("MoveTo(0,0) = %q, want %q", got, "\x1b[1;1H")
	}

	e.Reset()
	e.MoveTo(9, 4)
	if got := string(e.Bytes()); got != "\x1b[5;10H" {
		t.Errorf("MoveTo(9,4) = %q, want %q", got, "\x1b[5;10H")
	}
}

func TestEscSetBrushTraitsAndANSIColors(t *testing.T) {
	caps := Capabilities{Colors: Color256}
	e := newEscBuilder(64)
	e.SetBrush(NewBrush().Bold().Underline().Foreground(Red).Background(BrightBlue), caps)

	want := "\x1b[0;1;4;31;104m"
	if got := string(e.Bytes()); got != want {
		t.Errorf("SetBrush = %q, want %q", got, want)
	}
}

func TestEscSetBrushDefaultIsBareReset(t *testing.T) {
	e := newEscBuilder(16)
	e.SetBrush(NewBrush(), Capabilities{Colors: Color16})
	if got := string(e.Bytes()); got != "\x1b[0m" {
		t.Errorf("default brush = %q, want %q", got, "\x1b[0m")
	}
}

func TestEscTrueColorPassthrough(t *testing.T) {
	caps := Capabilities{Colors: ColorTrue, TrueColor: true}
	e := newEscBuilder(64)
	e.SetBrush(NewBrush().Foreground(RGB(10, 20, 30)), caps)

	want := "\x1b[0;38;2;10;20;30m"
	if got := string(e.Bytes()); got != want {
		t.Errorf("true color brush = %q, want %q", got, want)
	}
}

func TestEscRGBQuantizedWithoutTrueColor(t *testing.T) {
	caps := Capabilities{Colors: Color256}
	e := newEscBuilder(64)
	e.SetBrush(NewBrush().Foreground(RGB(0, 0, 0)), caps)

	// Black lands on cube entry 16.
	want := "\x1b[0;38;5;16m"
	if got := string(e.Bytes()); got != want {
		t.Errorf("quantized brush = %q, want %q", got, want)
	}
}
