package petrel

import (
	"github.com/petrelkit/petrel/internal/layout"
)

// Direction is the axis along which a container lays out its children.
type Direction int

const (
	// Horizontal places children left to right.
	Horizontal Direction = iota
	// Vertical places children top to bottom.
	Vertical
)

// Widget is a node in the user interface tree. Leaves paint content;
// containers own children and distribute space between them along their
// direction, driven by each child's size policies.
//
// A Widget holds one policy per axis. The policy on the container's
// direction decides how much of the container's extent the child receives;
// the cross-axis policy clamps the child to the container's cross extent.
type Widget struct {
	name     string
	parent   *Widget
	children []*Widget

	hPolicy   SizePolicy
	vPolicy   SizePolicy
	direction Direction
	padding   Edges

	geometry Rect
	brush    Brush
	bordered bool

	focusable bool
	focused   bool
	disabled  bool

	dirty bool

	onPaint  func(*Widget, *Painter)
	onKey    func(*Widget, KeyEvent) bool
	onMouse  func(*Widget, MouseEvent) bool
	onResize func(*Widget, Size)
	onFocus  func(*Widget)
	onBlur   func(*Widget)
	onTick   func(*Widget, TickEvent)
}

// NewWidget creates a widget with the given options. The default policies
// are Preferred with a zero hint on both axes.
func NewWidget(opts ...Option) *Widget {
	w := &Widget{
		hPolicy: PreferredPolicy(0),
		vPolicy: PreferredPolicy(0),
		dirty:   true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the widget's name, if one was set.
func (w *Widget) Name() string { return w.name }

// Parent returns the widget's parent, or nil at the root.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the widget's children. The slice is owned by the widget.
func (w *Widget) Children() []*Widget { return w.children }

// Root returns the topmost ancestor.
func (w *Widget) Root() *Widget {
	r := w
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AddChild appends child to the widget's children, reparenting it if
// needed, and invalidates the layout.
func (w *Widget) AddChild(child *Widget) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = w
	w.children = append(w.children, child)
	w.MarkDirty()
}

// RemoveChild detaches child from the widget. It is a no-op when child is
// not one of the widget's children.
func (w *Widget) RemoveChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.parent = nil
			w.MarkDirty()
			return
		}
	}
}

// Direction returns the layout axis for children.
func (w *Widget) Direction() Direction { return w.direction }

// SetDirection changes the layout axis for children.
func (w *Widget) SetDirection(d Direction) {
	w.direction = d
	w.MarkDirty()
}

// HorizontalPolicy returns the width policy.
func (w *Widget) HorizontalPolicy() SizePolicy { return w.hPolicy }

// VerticalPolicy returns the height policy.
func (w *Widget) VerticalPolicy() SizePolicy { return w.vPolicy }

// SetHorizontalPolicy replaces the width policy and invalidates the layout.
func (w *Widget) SetHorizontalPolicy(p SizePolicy) {
	w.hPolicy = p
	w.MarkDirty()
}

// SetVerticalPolicy replaces the height policy and invalidates the layout.
func (w *Widget) SetVerticalPolicy(p SizePolicy) {
	w.vPolicy = p
	w.MarkDirty()
}

// policyFor returns the policy governing the given axis.
func (w *Widget) policyFor(d Direction) layout.Policy {
	if d == Horizontal {
		return w.hPolicy
	}
	return w.vPolicy
}

// Geometry returns the widget's current screen rectangle, set by the last
// layout pass. Coordinates are absolute.
func (w *Widget) Geometry() Rect { return w.geometry }

// setGeometry records the rectangle assigned by a layout pass and notifies
// the resize handler when the size changed.
func (w *Widget) setGeometry(r Rect) {
	resized := r.Width != w.geometry.Width || r.Height != w.geometry.Height
	w.geometry = r
	if resized && w.onResize != nil {
		w.onResize(w, Size{Width: r.Width, Height: r.Height})
	}
}

// ContentRect returns the geometry inset by the border and padding. This is
// the area a painter may draw in.
func (w *Widget) ContentRect() Rect {
	r := w.geometry
	if w.bordered {
		r = r.Inset(EdgeAll(1))
	}
	return r.Inset(w.padding)
}

// Brush returns the widget's brush with any default colors inherited from
// its ancestors.
func (w *Widget) Brush() Brush {
	b := w.brush
	for p := w.parent; p != nil; p = p.parent {
		b = b.Over(p.brush)
	}
	return b
}

// SetBrush replaces the widget's own brush.
func (w *Widget) SetBrush(b Brush) {
	w.brush = b
	w.MarkDirty()
}

// Bordered reports whether the widget draws a border around its content.
func (w *Widget) Bordered() bool { return w.bordered }

// Focusable reports whether the widget can take keyboard focus.
func (w *Widget) Focusable() bool { return w.focusable }

// Enabled reports whether the widget participates in layout and input.
func (w *Widget) Enabled() bool { return !w.disabled }

// SetEnabled enables or disables the widget. A disabled widget receives no
// space from its container and is skipped by painting, hit testing and
// focus traversal.
func (w *Widget) SetEnabled(enabled bool) {
	if w.Enabled() == enabled {
		return
	}
	w.disabled = !enabled
	w.MarkDirty()
}

// Focused reports whether the widget currently has focus.
func (w *Widget) Focused() bool { return w.focused }

// MarkDirty flags the tree as needing relayout and repaint. The flag lives
// on the root so the application loop finds it with one check.
func (w *Widget) MarkDirty() {
	w.Root().dirty = true
}

// consumeDirty returns the root's dirty flag and clears it.
func (w *Widget) consumeDirty() bool {
	r := w.Root()
	d := r.dirty
	r.dirty = false
	return d
}

// Walk visits the widget and its descendants depth first, parents before
// children. Returning false from fn stops the walk.
func (w *Widget) Walk(fn func(*Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, c := range w.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// WidgetAt returns the deepest descendant whose geometry contains (x, y),
// or nil when the point is outside the widget.
func (w *Widget) WidgetAt(x, y int) *Widget {
	if !w.geometry.Contains(x, y) {
		return nil
	}
	// Later children paint over earlier ones, so search them in reverse.
	for i := len(w.children) - 1; i >= 0; i-- {
		if hit := w.children[i].WidgetAt(x, y); hit != nil {
			return hit
		}
	}
	return w
}

// HandleKey offers the event to the widget's key handler.
func (w *Widget) HandleKey(ev KeyEvent) bool {
	return w.onKey != nil && w.onKey(w, ev)
}

// HandleMouse offers the event to the widget's mouse handler.
func (w *Widget) HandleMouse(ev MouseEvent) bool {
	return w.onMouse != nil && w.onMouse(w, ev)
}

// HandleTick delivers an animation tick.
func (w *Widget) HandleTick(ev TickEvent) {
	if w.onTick != nil {
		w.onTick(w, ev)
	}
}

func (w *Widget) setFocused(focused bool) {
	if w.focused == focused {
		return
	}
	w.focused = focused
	if focused {
		if w.onFocus != nil {
			w.onFocus(w)
		}
	} else if w.onBlur != nil {
		w.onBlur(w)
	}
	w.MarkDirty()
}
