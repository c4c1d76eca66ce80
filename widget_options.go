package petrel

// Option configures a Widget at construction.
type Option func(*Widget)

// WithName sets a name for debugging and tests.
func WithName(name string) Option {
	return func(w *Widget) {
		w.name = name
	}
}

// WithHorizontalPolicy sets the width policy.
func WithHorizontalPolicy(p SizePolicy) Option {
	return func(w *Widget) {
		w.hPolicy = p
	}
}

// WithVerticalPolicy sets the height policy.
func WithVerticalPolicy(p SizePolicy) Option {
	return func(w *Widget) {
		w.vPolicy = p
	}
}

// WithPolicies sets both axis policies at once.
func WithPolicies(horizontal, vertical SizePolicy) Option {
	return func(w *Widget) {
		w.hPolicy = horizontal
		w.vPolicy = vertical
	}
}

// WithFixedSize locks the widget to exactly width by height cells.
func WithFixedSize(width, height int) Option {
	return func(w *Widget) {
		w.hPolicy = FixedPolicy(width)
		w.vPolicy = FixedPolicy(height)
	}
}

// WithDirection sets the axis along which children are laid out.
func WithDirection(d Direction) Option {
	return func(w *Widget) {
		w.direction = d
	}
}

// WithPadding sets uniform padding inside the widget's border.
func WithPadding(cells int) Option {
	return func(w *Widget) {
		w.padding = EdgeAll(cells)
	}
}

// WithPaddingEdges sets per-side padding.
func WithPaddingEdges(e Edges) Option {
	return func(w *Widget) {
		w.padding = e
	}
}

// WithBrush sets the widget's brush.
func WithBrush(b Brush) Option {
	return func(w *Widget) {
		w.brush = b
	}
}

// WithBorder draws a single-line border around the widget. The border
// consumes one cell on each side of the content area.
func WithBorder() Option {
	return func(w *Widget) {
		w.bordered = true
	}
}

// WithFocusable allows the widget to take keyboard focus.
func WithFocusable() Option {
	return func(w *Widget) {
		w.focusable = true
	}
}

// WithChildren appends children in order.
func WithChildren(children ...*Widget) Option {
	return func(w *Widget) {
		for _, c := range children {
			c.parent = w
			w.children = append(w.children, c)
		}
	}
}

// OnPaint sets the paint handler, called with a painter clipped to the
// widget's content area.
func OnPaint(fn func(*Widget, *Painter)) Option {
	return func(w *Widget) {
		w.onPaint = fn
	}
}

// OnKey sets the key handler. Returning true consumes the event.
func OnKey(fn func(*Widget, KeyEvent) bool) Option {
	return func(w *Widget) {
		w.onKey = fn
	}
}

// OnMouse sets the mouse handler. Returning true consumes the event.
func OnMouse(fn func(*Widget, MouseEvent) bool) Option {
	return func(w *Widget) {
		w.onMouse = fn
	}
}

// OnResize sets the handler called when a layout pass changes the widget's
// size.
func OnResize(fn func(*Widget, Size)) Option {
	return func(w *Widget) {
		w.onResize = fn
	}
}

// OnFocus sets the handler called when the widget gains focus.
func OnFocus(fn func(*Widget)) Option {
	return func(w *Widget) {
		w.onFocus = fn
	}
}

// OnBlur sets the handler called when the widget loses focus.
func OnBlur(fn func(*Widget)) Option {
	return func(w *Widget) {
		w.onBlur = fn
	}
}

// OnTick sets the handler called on animator frames.
func OnTick(fn func(*Widget, TickEvent)) Option {
	return func(w *Widget) {
		w.onTick = fn
	}
}
