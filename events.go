package petrel

import "time"

// Event is the interface shared by all input and lifecycle events. The
// marker method keeps the set closed; handle events with a type switch.
type Event interface {
	isEvent()
}

// KeyEvent is a keyboard press.
type KeyEvent struct {
	// Key is KeyRune for printable characters, otherwise a special key.
	Key Key

	// Rune holds the character for KeyRune events.
	Rune rune

	// Mod holds the modifier flags.
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune reports whether this is a printable character.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Char returns the rune for KeyRune events, 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// Is reports whether the event matches the key and, when given, exactly the
// combined modifiers.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var want Modifier
	for _, m := range mods {
		want |= m
	}
	return e.Mod == want
}

// ResizeEvent reports a new terminal size in cells.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// MouseButton identifies the button in a MouseEvent.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseNone
)

// MouseAction is the kind of mouse transition.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
)

// MouseEvent is a mouse press, release, or drag at a cell position.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   int
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// TickEvent is delivered to animated widgets on each animator frame.
type TickEvent struct {
	// Now is when the tick fired.
	Now time.Time

	// Delta is the time since the previous tick.
	Delta time.Duration
}

func (TickEvent) isEvent() {}

// QuitEvent asks the application loop to stop.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}
