package petrel

// Trait is a bitfield of text attributes.
type Trait uint8

const (
	// TraitNone is the empty trait set.
	TraitNone Trait = 0
	// TraitBold renders text bold/bright.
	TraitBold Trait = 1 << iota
	// TraitDim renders text faint.
	TraitDim
	// TraitItalic renders text italic.
	TraitItalic
	// TraitUnderline underlines text.
	TraitUnderline
	// TraitBlink renders blinking text (rarely supported).
	TraitBlink
	// TraitInverse swaps foreground and background.
	TraitInverse
	// TraitStrikethrough draws a line through text.
	TraitStrikethrough
)

// Brush combines traits with foreground and background colors. The zero
// value paints with the terminal defaults and no traits. Brush methods are
// copy-on-write: each returns a modified copy.
type Brush struct {
	Fg     Color
	Bg     Color
	Traits Trait
}

// NewBrush returns a Brush with default colors and no traits.
func NewBrush() Brush {
	return Brush{}
}

// Foreground returns a copy with the given foreground color.
func (b Brush) Foreground(c Color) Brush {
	b.Fg = c
	return b
}

// Background returns a copy with the given background color.
func (b Brush) Background(c Color) Brush {
	b.Bg = c
	return b
}

// Bold returns a copy with the bold trait set.
func (b Brush) Bold() Brush {
	b.Traits |= TraitBold
	return b
}

// Dim returns a copy with the dim trait set.
func (b Brush) Dim() Brush {
	b.Traits |= TraitDim
	return b
}

// Italic returns a copy with the italic trait set.
func (b Brush) Italic() Brush {
	b.Traits |= TraitItalic
	return b
}

// Underline returns a copy with the underline trait set.
func (b Brush) Underline() Brush {
	b.Traits |= TraitUnderline
	return b
}

// Inverse returns a copy with the inverse trait set.
func (b Brush) Inverse() Brush {
	b.Traits |= TraitInverse
	return b
}

// Strikethrough returns a copy with the strikethrough trait set.
func (b Brush) Strikethrough() Brush {
	b.Traits |= TraitStrikethrough
	return b
}

// HasTrait reports whether all the given traits are set.
func (b Brush) HasTrait(t Trait) bool {
	return b.Traits&t == t
}

// Equal reports whether both brushes are identical.
func (b Brush) Equal(other Brush) bool {
	return b == other
}

// Over returns b with any default colors filled in from under. Widgets use
// this to inherit their parent's colors while keeping their own overrides.
func (b Brush) Over(under Brush) Brush {
	if b.Fg.IsDefault() {
		b.Fg = under.Fg
	}
	if b.Bg.IsDefault() {
		b.Bg = under.Bg
	}
	b.Traits |= under.Traits
	return b
}
