package petrel

import (
	"os"
	"os/signal"
	"time"
)

// Run starts the event loop and blocks until Stop is called or SIGINT
// arrives. Frames relayout and repaint only when something marked the tree
// dirty.
func (a *App) Run() error {
	defer a.restoreTerminal()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			a.Stop()
		case <-a.stopCh:
		}
		signal.Stop(sigCh)
	}()

	go a.readInput()

	a.fullRedraw = true
	a.render()

	for !a.stopped.Load() {
		frameStart := time.Now()

		// Drain queued handlers for up to half the frame, leaving the rest
		// for layout and paint.
		deadline := frameStart.Add(a.frameDuration / 2)
	drain:
		for time.Now().Before(deadline) {
			select {
			case handler := <-a.eventQueue:
				handler()
			case <-a.stopCh:
				return nil
			default:
				break drain
			}
		}

		if a.animator.Advance(frameStart) && a.root != nil {
			a.root.MarkDirty()
		}

		if a.root != nil && a.root.consumeDirty() {
			a.render()
		}

		if elapsed := time.Since(frameStart); elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			}
		}
	}

	return nil
}

// Stop signals the loop to exit. Idempotent and safe from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		close(a.stopCh)
	})
}

// QueueUpdate runs fn on the loop. Safe from any goroutine; background work
// mutating the widget tree must go through here.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	}
}

// readInput polls the reader and forwards events to the loop.
func (a *App) readInput() {
	for {
		select {
		case <-a.stopCh:
			return
		default:
		}

		ev, ok := a.reader.PollEvent(a.inputLatency)
		if !ok {
			continue
		}

		switch ev := ev.(type) {
		case KeyEvent:
			a.QueueUpdate(func() { a.dispatchKey(ev) })
		case MouseEvent:
			a.QueueUpdate(func() { a.dispatchMouse(ev) })
		case ResizeEvent:
			a.QueueUpdate(func() { a.handleResize(ev) })
		case QuitEvent:
			a.Stop()
			return
		}
	}
}

// restoreTerminal undoes the terminal modes set at construction.
func (a *App) restoreTerminal() {
	a.reader.Close()
	if a.mouseEnabled {
		a.terminal.DisableMouse()
	}
	a.terminal.ShowCursor()
	if a.altScreen && a.terminal.Caps().AltScreen {
		a.terminal.ExitAltScreen()
	}
	a.terminal.ExitRawMode()
}
