package petrel

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/petrelkit/petrel/internal/debug"
)

// App owns the pieces of a running application: the terminal, the cell
// buffer, the event reader, the focus manager, the animator, and the widget
// tree. There is no package-level singleton; everything flows through an
// explicit App.
type App struct {
	terminal Terminal
	buffer   *Buffer
	reader   EventReader
	focus    *FocusManager
	animator *Animator
	root     *Widget

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	stopped    atomic.Bool

	globalKey func(KeyEvent) bool

	inputLatency  time.Duration
	frameDuration time.Duration
	queueSize     int
	mouseEnabled  bool
	altScreen     bool
	fullRedraw    bool
}

// NewApp creates an application over the real terminal: raw mode, alternate
// screen, hidden cursor. Callers must Stop the app (or let Run return) so
// the terminal is restored.
func NewApp(opts ...AppOption) (*App, error) {
	terminal, err := NewANSITerminal(os.Stdout, os.Stdin)
	if err != nil {
		return nil, err
	}

	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		return nil, err
	}

	return newApp(terminal, reader, opts...)
}

// NewAppWithTerminal creates an application over a caller-supplied terminal
// and reader. Tests pair this with MockTerminal.
func NewAppWithTerminal(terminal Terminal, reader EventReader, opts ...AppOption) (*App, error) {
	return newApp(terminal, reader, opts...)
}

func newApp(terminal Terminal, reader EventReader, opts ...AppOption) (*App, error) {
	app := &App{
		terminal:      terminal,
		reader:        reader,
		animator:      NewAnimator(),
		stopCh:        make(chan struct{}),
		inputLatency:  50 * time.Millisecond,
		frameDuration: 16 * time.Millisecond,
		queueSize:     256,
		mouseEnabled:  true,
		altScreen:     true,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if err := terminal.EnterRawMode(); err != nil {
		return nil, err
	}
	if app.altScreen && terminal.Caps().AltScreen {
		terminal.EnterAltScreen()
	}
	if app.mouseEnabled {
		terminal.EnableMouse()
	}
	terminal.HideCursor()

	w, h := terminal.Size()
	app.buffer = NewBuffer(w, h)
	app.eventQueue = make(chan func(), app.queueSize)

	if app.root != nil {
		app.focus = NewFocusManager(app.root)
		app.focusFirst()
	}

	return app, nil
}

// SetRoot replaces the widget tree.
func (a *App) SetRoot(root *Widget) {
	a.root = root
	a.focus = NewFocusManager(root)
	a.focusFirst()
	a.fullRedraw = true
	if root != nil {
		root.MarkDirty()
	}
}

func (a *App) focusFirst() {
	if a.focus != nil && a.focus.Focused() == nil {
		a.focus.Next()
	}
}

// Root returns the widget tree root.
func (a *App) Root() *Widget { return a.root }

// Terminal returns the underlying terminal.
func (a *App) Terminal() Terminal { return a.terminal }

// Buffer returns the cell buffer.
func (a *App) Buffer() *Buffer { return a.buffer }

// Size returns the current terminal size.
func (a *App) Size() (width, height int) { return a.terminal.Size() }

// Animator returns the app's animator. Register widgets on it before or
// during Run.
func (a *App) Animator() *Animator { return a.animator }

// SetGlobalKeyHandler installs a handler that sees key events before focus
// dispatch. Returning true consumes the event. App-level bindings like quit
// go here.
func (a *App) SetGlobalKeyHandler(fn func(KeyEvent) bool) {
	a.globalKey = fn
}

// FocusNext moves focus to the next focusable widget.
func (a *App) FocusNext() {
	if a.focus != nil {
		a.focus.Next()
	}
}

// FocusPrev moves focus to the previous focusable widget.
func (a *App) FocusPrev() {
	if a.focus != nil {
		a.focus.Prev()
	}
}

// Focused returns the widget with keyboard focus, or nil.
func (a *App) Focused() *Widget {
	if a.focus == nil {
		return nil
	}
	return a.focus.Focused()
}

// Focus moves focus to w.
func (a *App) Focus(w *Widget) {
	if a.focus != nil {
		a.focus.Focus(w)
	}
}

// dispatchKey routes a key event: the global handler first, then the
// focused widget and its ancestors until one consumes it. Tab traversal is
// the fallback when nobody does.
func (a *App) dispatchKey(ev KeyEvent) {
	if a.globalKey != nil && a.globalKey(ev) {
		return
	}

	for w := a.Focused(); w != nil; w = w.parent {
		if w.HandleKey(ev) {
			return
		}
	}

	switch {
	case ev.Is(KeyTab):
		a.FocusNext()
	case ev.Is(KeyBacktab), ev.Is(KeyTab, ModShift):
		a.FocusPrev()
	}
}

// dispatchMouse routes a mouse event to the deepest widget under the
// pointer and its ancestors. A press on a focusable widget moves focus.
func (a *App) dispatchMouse(ev MouseEvent) {
	if a.root == nil {
		return
	}
	hit := a.root.WidgetAt(ev.X, ev.Y)
	if hit == nil {
		return
	}

	if ev.Action == MousePress {
		for w := hit; w != nil; w = w.parent {
			if w.focusable {
				a.Focus(w)
				break
			}
		}
	}

	for w := hit; w != nil; w = w.parent {
		if w.HandleMouse(ev) {
			return
		}
	}
}

// handleResize resizes the buffer and forces a full relayout and redraw.
func (a *App) handleResize(ev ResizeEvent) {
	debug.Log("App.handleResize: %dx%d", ev.Width, ev.Height)
	a.buffer.Resize(ev.Width, ev.Height)
	a.terminal.Clear()
	a.fullRedraw = true
	if a.root != nil {
		a.root.MarkDirty()
	}
}

// render lays out and paints the tree, flushing the difference to the
// terminal. A full redraw after resize flushes every cell.
func (a *App) render() {
	if a.root == nil {
		return
	}

	LayoutTree(a.root, a.buffer.Rect())
	a.buffer.Clear()
	paintTree(a.buffer, a.root)

	if a.fullRedraw {
		a.fullRedraw = false
		changes := make([]CellChange, 0, a.buffer.Width()*a.buffer.Height())
		for y := 0; y < a.buffer.Height(); y++ {
			for x := 0; x < a.buffer.Width(); x++ {
				changes = append(changes, CellChange{X: x, Y: y, Cell: a.buffer.Cell(x, y)})
			}
		}
		a.terminal.Flush(changes)
	} else {
		a.terminal.Flush(a.buffer.Diff())
	}
	a.buffer.Swap()
}
