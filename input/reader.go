package input

import (
	"sync"

	"github.com/Tokenzrey/dinosaurus/terminal"
)

// Reader pumps terminal events into a buffered action channel
// Decoding happens on the pump goroutine; the frame loop drains the
// channel at the top of every tick
type Reader struct {
	screen   *terminal.Screen
	actions  chan Action
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewReader wraps a screen's event stream
func NewReader(screen *terminal.Screen) *Reader {
	return &Reader{
		screen:  screen,
		actions: make(chan Action, 32),
		stopCh:  make(chan struct{}),
	}
}

// Actions returns the channel the pump fills
func (r *Reader) Actions() <-chan Action {
	return r.actions
}

// Start launches the pump goroutine
func (r *Reader) Start() {
	go r.pump()
}

// Stop wakes the pump and ends it
func (r *Reader) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		r.screen.PostInterrupt()
	})
}

func (r *Reader) pump() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-r.stopCh:
			return
		default:
		}
		action, ok := Translate(ev)
		if !ok {
			continue
		}
		select {
		case r.actions <- action:
		default:
			// Full buffer: drop instead of stalling the event pump
		}
	}
}
