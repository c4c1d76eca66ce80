package petrel

import (
	"github.com/petrelkit/petrel/internal/layout"
)

// LayoutTree assigns geometry to root and every descendant. The root gets
// the full area; each container then negotiates its direction axis between
// its children and clamps them on the cross axis.
func LayoutTree(root *Widget, area Rect) {
	root.setGeometry(area)
	layoutChildren(root)
}

// layoutChildren positions w's children inside its content rectangle and
// recurses. Children that negotiate to zero length get an empty rectangle
// at the running position so hit testing skips them.
func layoutChildren(w *Widget) {
	if len(w.children) == 0 {
		return
	}

	content := w.ContentRect()
	if content.IsEmpty() {
		for _, c := range w.children {
			c.setGeometry(NewRect(content.X, content.Y, 0, 0))
			layoutChildren(c)
		}
		return
	}

	d := w.direction
	extent, cross := content.Width, content.Height
	if d == Vertical {
		extent, cross = content.Height, content.Width
	}

	// Disabled children take no space; only the rest negotiate.
	active := make([]*Widget, 0, len(w.children))
	for _, c := range w.children {
		if c.Enabled() {
			active = append(active, c)
		}
	}

	lengths := layout.Negotiate(active, extent, func(c *Widget) layout.Policy {
		return c.policyFor(d)
	})

	pos := content.X
	if d == Vertical {
		pos = content.Y
	}

	next := 0
	for _, c := range w.children {
		length := 0
		if c.Enabled() {
			length = lengths[next]
			next++
		}

		// The cross axis is not negotiated: the child takes as much of it
		// as its policy allows.
		crossLen := min(c.crossPolicy(d).Clamp(cross), cross)
		if length == 0 {
			crossLen = 0
		}

		var r Rect
		if d == Horizontal {
			r = NewRect(pos, content.Y, length, crossLen)
		} else {
			r = NewRect(content.X, pos, crossLen, length)
		}
		c.setGeometry(r)
		pos += length

		layoutChildren(c)
	}
}

// crossPolicy returns the policy for the axis perpendicular to d.
func (w *Widget) crossPolicy(d Direction) layout.Policy {
	if d == Horizontal {
		return w.vPolicy
	}
	return w.hPolicy
}
