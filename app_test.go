package petrel

import (
	"testing"
	"time"
)

// stubReader is an EventReader that never produces events.
type stubReader struct{}

func (stubReader) PollEvent(time.Duration) (Event, bool) { return nil, false }
func (stubReader) Close() error                          { return nil }

func newTestApp(t *testing.T, root *Widget) (*App, *MockTerminal) {
	t.Helper()
	term := NewMockTerminal(20, 6)
	app, err := NewAppWithTerminal(term, stubReader{}, WithRoot(root))
	if err != nil {
		t.Fatalf("NewAppWithTerminal: %v", err)
	}
	return app, term
}

func TestAppSetsUpTerminal(t *testing.T) {
	app, term := newTestApp(t, NewWidget())

	if !term.IsInRawMode() {
		t.Error("app should enter raw mode")
	}
	if !term.IsInAltScreen() {
		t.Error("app should enter the alternate screen")
	}
	if !term.IsCursorHidden() {
		t.Error("app should hide the cursor")
	}
	if w, h := app.Buffer().Size(); w != 20 || h != 6 {
		t.Errorf("buffer sized %dx%d, want terminal size 20x6", w, h)
	}
}

func TestAppRestoreTerminal(t *testing.T) {
	app, term := newTestApp(t, NewWidget())
	app.restoreTerminal()

	if term.IsInRawMode() {
		t.Error("restore should leave raw mode")
	}
	if term.IsInAltScreen() {
		t.Error("restore should leave the alternate screen")
	}
	if term.IsCursorHidden() {
		t.Error("restore should show the cursor")
	}
}

func TestAppGlobalKeyHandlerRunsFirst(t *testing.T) {
	widgetSaw := false
	w := NewWidget(WithFocusable(), OnKey(func(*Widget, KeyEvent) bool {
		widgetSaw = true
		return true
	}))
	app, _ := newTestApp(t, NewWidget(WithChildren(w)))

	app.SetGlobalKeyHandler(func(ev KeyEvent) bool { return ev.Char() == 'q' })

	app.dispatchKey(KeyEvent{Key: KeyRune, Rune: 'q'})
	if widgetSaw {
		t.Error("consumed global key must not reach widgets")
	}

	app.dispatchKey(KeyEvent{Key: KeyRune, Rune: 'a'})
	if !widgetSaw {
		t.Error("unconsumed keys should reach the focused widget")
	}
}

func TestAppKeyBubblesToAncestors(t *testing.T) {
	var order []string
	leaf := NewWidget(WithFocusable(), OnKey(func(*Widget, KeyEvent) bool {
		order = append(order, "leaf")
		return false
	}))
	parent := NewWidget(WithChildren(leaf), OnKey(func(*Widget, KeyEvent) bool {
		order = append(order, "parent")
		return true
	}))
	app, _ := newTestApp(t, NewWidget(WithChildren(parent)))

	app.dispatchKey(KeyEvent{Key: KeyRune, Rune: 'a'})

	if len(order) != 2 || order[0] != "leaf" || order[1] != "parent" {
		t.Errorf("dispatch order = %v, want [leaf parent]", order)
	}
}

func TestAppTabMovesFocus(t *testing.T) {
	a := NewWidget(WithName("a"), WithFocusable())
	b := NewWidget(WithName("b"), WithFocusable())
	app, _ := newTestApp(t, NewWidget(WithChildren(a, b)))

	if app.Focused() != a {
		t.Fatalf("initial focus = %v, want a", name(app.Focused()))
	}
	app.dispatchKey(KeyEvent{Key: KeyTab})
	if app.Focused() != b {
		t.Errorf("Tab should advance focus, got %v", name(app.Focused()))
	}
	app.dispatchKey(KeyEvent{Key: KeyBacktab})
	if app.Focused() != a {
		t.Errorf("Backtab should go back, got %v", name(app.Focused()))
	}
}

func TestAppMousePressFocusesAndDispatches(t *testing.T) {
	var clicks int
	left := NewWidget(WithFocusable(), WithHorizontalPolicy(FixedPolicy(10)),
		OnMouse(func(_ *Widget, ev MouseEvent) bool {
			clicks++
			return true
		}))
	right := NewWidget(WithFocusable(), WithHorizontalPolicy(ExpandingPolicy(0)))
	root := NewWidget(WithDirection(Horizontal), WithChildren(left, right))
	app, _ := newTestApp(t, root)

	LayoutTree(root, app.Buffer().Rect())
	app.Focus(right)

	app.dispatchMouse(MouseEvent{Button: MouseLeft, Action: MousePress, X: 3, Y: 2})

	if clicks != 1 {
		t.Errorf("mouse handler ran %d times, want 1", clicks)
	}
	if app.Focused() != left {
		t.Errorf("press should focus the hit widget, got %v", name(app.Focused()))
	}
}

func TestAppResizeForcesFullRedraw(t *testing.T) {
	label := NewLabel("hi")
	app, term := newTestApp(t, NewWidget(WithChildren(label.Widget)))

	app.render()
	app.handleResize(ResizeEvent{Width: 12, Height: 4})

	if w, h := app.Buffer().Size(); w != 12 || h != 4 {
		t.Errorf("buffer resized to %dx%d, want 12x4", w, h)
	}
	if !app.root.consumeDirty() {
		t.Error("resize should mark the tree dirty")
	}

	term.Resize(12, 4)
	app.render()
	if got := term.Row(0); got != "hi" {
		t.Errorf("Row(0) after resize = %q, want %q", got, "hi")
	}
}

func TestAppQueueUpdateRunsOnLoop(t *testing.T) {
	app, _ := newTestApp(t, NewWidget())

	ran := false
	app.QueueUpdate(func() { ran = true })

	select {
	case fn := <-app.eventQueue:
		fn()
	default:
		t.Fatal("QueueUpdate should enqueue the handler")
	}
	if !ran {
		t.Error("queued handler did not run")
	}
}

func TestAppStopIdempotent(t *testing.T) {
	app, _ := newTestApp(t, NewWidget())
	app.Stop()
	app.Stop() // must not panic

	select {
	case <-app.stopCh:
	default:
		t.Error("Stop should close the stop channel")
	}
	if !app.stopped.Load() {
		t.Error("Stop should mark the app stopped")
	}
}

func TestAppStopFromAnotherGoroutine(t *testing.T) {
	app, _ := newTestApp(t, NewWidget())

	go app.Stop()
	<-app.stopCh

	// The loop's exit flag must be visible to the loop goroutine once the
	// stop channel closes.
	if !app.stopped.Load() {
		t.Error("stopped flag not visible after Stop from another goroutine")
	}
}

func TestAnimatorAdvance(t *testing.T) {
	var ticks []TickEvent
	w := NewWidget(OnTick(func(_ *Widget, ev TickEvent) {
		ticks = append(ticks, ev)
	}))

	a := NewAnimator()
	a.Animate(w, 10*time.Millisecond)

	now := time.Now()
	if a.Advance(now) {
		t.Error("Advance before the interval should not fire")
	}
	if !a.Advance(now.Add(15 * time.Millisecond)) {
		t.Error("Advance past the interval should fire")
	}
	if len(ticks) != 1 {
		t.Fatalf("got %d ticks, want 1", len(ticks))
	}
	if ticks[0].Delta < 10*time.Millisecond {
		t.Errorf("Delta = %v, want at least the interval", ticks[0].Delta)
	}

	a.Stop(w)
	if a.Advance(now.Add(time.Hour)) {
		t.Error("stopped widget must not tick")
	}
}
