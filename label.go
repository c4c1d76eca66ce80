package petrel

// TextAlign positions text within a label's content area.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Label is a single line of read-only text. Its width hint follows the
// text, so a Preferred policy sizes the label to its content.
type Label struct {
	*Widget
	text  string
	align TextAlign
}

// NewLabel creates a label. Options apply to the underlying widget and may
// override the default policies (Preferred width at the text's width, fixed
// height of one row).
func NewLabel(text string, opts ...Option) *Label {
	l := &Label{text: text}
	base := []Option{
		WithHorizontalPolicy(PreferredPolicy(StringWidth(text))),
		WithVerticalPolicy(FixedPolicy(1)),
		OnPaint(func(w *Widget, p *Painter) { l.paint(p) }),
	}
	l.Widget = NewWidget(append(base, opts...)...)
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and refreshes the width hint.
func (l *Label) SetText(text string) {
	l.text = text
	l.SetHorizontalPolicy(l.hPolicy.WithHint(StringWidth(text)))
}

// SetAlign changes the text alignment.
func (l *Label) SetAlign(align TextAlign) {
	l.align = align
	l.MarkDirty()
}

func (l *Label) paint(p *Painter) {
	width, _ := p.Size()
	text := TruncateString(l.text, width, "…")

	x := 0
	switch l.align {
	case AlignCenter:
		x = (width - StringWidth(text)) / 2
	case AlignRight:
		x = width - StringWidth(text)
	}
	p.Text(max(x, 0), 0, text)
}
