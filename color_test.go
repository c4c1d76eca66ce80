package petrel

import "testing"

func TestHexParsing(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#ff0000", 255, 0, 0},
		{"#00ff7f", 0, 255, 127},
		{"1e90ff", 30, 144, 255},
		{"#f00", 255, 0, 0},
		{"#abc", 170, 187, 204},
	}
	for _, tt := range tests {
		c, err := Hex(tt.in)
		if err != nil {
			t.Errorf("Hex(%q) returned error: %v", tt.in, err)
			continue
		}
		r, g, b := c.RGB255()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Hex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#gg0000", "#12345", "red"} {
		if _, err := Hex(in); err == nil {
			t.Errorf("Hex(%q) should fail", in)
		}
	}
}

func TestColorTypes(t *testing.T) {
	if !DefaultColor().IsDefault() {
		t.Error("DefaultColor should report IsDefault")
	}
	if Cyan.Type() != ColorANSI {
		t.Errorf("Cyan.Type() = %v, want ColorANSI", Cyan.Type())
	}
	if got := Cyan.ANSI(); got != 6 {
		t.Errorf("Cyan.ANSI() = %d, want 6", got)
	}
	if RGB(1, 2, 3).Type() != ColorRGB {
		t.Error("RGB should report ColorRGB")
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB(255, 0, 0)
	b := RGB(0, 0, 255)

	if got := a.Blend(b, 0); !got.Equal(a) {
		t.Errorf("Blend(t=0) = %v, want first color", got)
	}
	if got := a.Blend(b, 1); !got.Equal(b) {
		t.Errorf("Blend(t=1) = %v, want second color", got)
	}
	if got := a.Blend(DefaultColor(), 0.5); !got.Equal(a) {
		t.Errorf("blending toward default should pass through, got %v", got)
	}

	mid := a.Blend(b, 0.5)
	if mid.Type() != ColorRGB {
		t.Fatalf("Blend midpoint type = %v, want ColorRGB", mid.Type())
	}
}

func TestQuantize256(t *testing.T) {
	// Cube corners land exactly on palette entries.
	if got := RGB(0, 0, 0).Quantize256(); got.ANSI() != 16 {
		t.Errorf("Quantize256(black) = %d, want 16", got.ANSI())
	}
	if got := RGB(255, 255, 255).Quantize256(); got.ANSI() != 231 {
		t.Errorf("Quantize256(white) = %d, want 231", got.ANSI())
	}
	// ANSI colors pass through untouched.
	if got := Green.Quantize256(); !got.Equal(Green) {
		t.Errorf("Quantize256 should pass ANSI colors through, got %v", got)
	}
}
