package petrel

import (
	"time"
)

// Animator delivers periodic TickEvents to registered widgets. It is
// frame-driven: the application loop calls Advance once per frame and the
// animator fires the widgets whose interval has elapsed. No goroutines, so
// widget handlers always run on the loop.
type Animator struct {
	entries map[*Widget]*animEntry
}

type animEntry struct {
	interval time.Duration
	last     time.Time
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{entries: make(map[*Widget]*animEntry)}
}

// Animate registers w for ticks every interval. Re-registering replaces the
// interval and restarts the clock.
func (a *Animator) Animate(w *Widget, interval time.Duration) {
	if w == nil || interval <= 0 {
		return
	}
	a.entries[w] = &animEntry{interval: interval, last: time.Now()}
}

// Stop removes w from the animator.
func (a *Animator) Stop(w *Widget) {
	delete(a.entries, w)
}

// Advance fires ticks for every widget whose interval has elapsed at now.
// Reports whether any handler ran.
func (a *Animator) Advance(now time.Time) bool {
	fired := false
	for w, e := range a.entries {
		if now.Sub(e.last) < e.interval {
			continue
		}
		w.HandleTick(TickEvent{Now: now, Delta: now.Sub(e.last)})
		e.last = now
		fired = true
	}
	return fired
}

// NextDeadline returns the earliest time a registered widget is due, and
// false when nothing is animated.
func (a *Animator) NextDeadline() (time.Time, bool) {
	var deadline time.Time
	found := false
	for _, e := range a.entries {
		due := e.last.Add(e.interval)
		if !found || due.Before(deadline) {
			deadline = due
			found = true
		}
	}
	return deadline, found
}
