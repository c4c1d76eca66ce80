package petrel

import "github.com/petrelkit/petrel/internal/debug"

// FocusManager tracks which widget has keyboard focus. The traversal order
// is the depth-first order of the widget tree, rebuilt from the root on
// demand so structural changes never leave the manager pointing at a
// detached widget.
type FocusManager struct {
	root    *Widget
	focused *Widget
}

// NewFocusManager creates a manager over the given tree.
func NewFocusManager(root *Widget) *FocusManager {
	return &FocusManager{root: root}
}

// SetRoot points the manager at a new tree and drops focus if the focused
// widget is not in it.
func (f *FocusManager) SetRoot(root *Widget) {
	f.root = root
	if f.focused != nil && f.focused.Root() != root {
		f.focused.setFocused(false)
		f.focused = nil
	}
}

// order returns the focusable widgets in traversal order.
func (f *FocusManager) order() []*Widget {
	var ws []*Widget
	if f.root == nil {
		return ws
	}
	f.root.Walk(func(w *Widget) bool {
		if w.focusable && w.Enabled() {
			ws = append(ws, w)
		}
		return true
	})
	return ws
}

// Focused returns the widget with focus, or nil.
func (f *FocusManager) Focused() *Widget {
	return f.focused
}

// Focus moves focus to w. It is a no-op when w is not focusable or not in
// the tree.
func (f *FocusManager) Focus(w *Widget) {
	if w == nil || !w.focusable || !w.Enabled() || w.Root() != f.root {
		return
	}
	if f.focused == w {
		return
	}
	debug.Log("FocusManager.Focus: %q -> %q", name(f.focused), name(w))
	if f.focused != nil {
		f.focused.setFocused(false)
	}
	f.focused = w
	w.setFocused(true)
}

// Next moves focus to the next focusable widget, wrapping at the end. With
// no current focus it picks the first one.
func (f *FocusManager) Next() {
	f.step(1)
}

// Prev moves focus to the previous focusable widget, wrapping at the start.
func (f *FocusManager) Prev() {
	f.step(-1)
}

func (f *FocusManager) step(delta int) {
	ws := f.order()
	if len(ws) == 0 {
		return
	}

	idx := -1
	for i, w := range ws {
		if w == f.focused {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Current focus left the tree or never existed.
		if delta > 0 {
			f.Focus(ws[0])
		} else {
			f.Focus(ws[len(ws)-1])
		}
		return
	}
	f.Focus(ws[(idx+delta+len(ws))%len(ws)])
}

func name(w *Widget) string {
	if w == nil {
		return "<none>"
	}
	if w.name != "" {
		return w.name
	}
	return "<unnamed>"
}
