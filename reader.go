package petrel

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// EventReader supplies events to a polling loop.
type EventReader interface {
	// PollEvent returns the next event, waiting up to timeout. A zero
	// timeout is a non-blocking check; a negative timeout blocks.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases the reader's resources.
	Close() error
}

// stdinReader reads from a raw-mode terminal fd.
type stdinReader struct {
	fd      int
	buf     []byte
	partial []byte
	pending []Event
	sigCh   chan os.Signal
}

// NewEventReader creates an EventReader over the given terminal input. The
// terminal should already be in raw mode. Resize signals surface as
// ResizeEvents.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

// PollEvent returns the next event, draining parsed events before reading
// more bytes. Resize signals take priority over pending input.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	select {
	case <-r.sigCh:
		w, h := readerWindowSize(r.fd)
		return ResizeEvent{Width: w, Height: h}, true
	default:
	}

	if ev, ok := r.popPending(); ok {
		return ev, true
	}

	ready, err := waitReadable(r.fd, timeout)
	if err != nil || !ready {
		return nil, false
	}

	n, err := syscall.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	data := r.buf[:n]
	if len(r.partial) > 0 {
		data = append(r.partial, data...)
		r.partial = nil
	}

	events, tail := decodeInput(data)
	if len(tail) > 0 {
		r.partial = append([]byte(nil), tail...)
	}
	r.pending = events

	return r.popPending()
}

func (r *stdinReader) popPending() (Event, bool) {
	if len(r.pending) == 0 {
		return nil, false
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, true
}

// Close stops signal delivery.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	close(r.sigCh)
	return nil
}
