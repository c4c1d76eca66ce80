package petrel

// paintTree paints w and its descendants into the buffer, parents first so
// children draw on top.
func paintTree(buf *Buffer, w *Widget) {
	if !w.Enabled() || w.geometry.IsEmpty() {
		return
	}

	buf.Fill(w.geometry.Intersect(buf.Rect()), ' ', w.Brush())
	if w.bordered {
		drawBorder(buf, w.geometry, w.Brush())
	}
	if w.onPaint != nil {
		w.onPaint(w, newPainter(buf, w))
	}

	for _, c := range w.children {
		paintTree(buf, c)
	}
}

// Render lays out and paints the tree into the buffer, then returns the
// cells that changed since the last frame. The caller flushes them to a
// terminal and must call buf.Swap afterwards.
func Render(buf *Buffer, root *Widget) []CellChange {
	LayoutTree(root, buf.Rect())
	buf.Clear()
	paintTree(buf, root)
	return buf.Diff()
}
