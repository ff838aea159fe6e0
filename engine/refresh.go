package engine

import (
	"sync"
	"time"

	"github.com/Tokenzrey/dinosaurus/constants"
)

// TickerSource drives frames from a wall-clock ticker
// beforeFrame runs on the Run goroutine ahead of every beat and is
// where input dispatch belongs, keeping all game mutation on one
// goroutine
type TickerSource struct {
	interval    time.Duration
	beforeFrame func()
	epoch       time.Time

	mu      sync.Mutex
	pending func(float64)

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewTickerSource creates a source beating hz times per second
func NewTickerSource(hz int, beforeFrame func()) *TickerSource {
	if hz <= 0 {
		hz = constants.DefaultRefreshHz
	}
	return &TickerSource{
		interval:    time.Second / time.Duration(hz),
		beforeFrame: beforeFrame,
		epoch:       time.Now(),
		stopCh:      make(chan struct{}),
	}
}

// RequestFrame schedules cb for the next beat, replacing any
// callback already waiting
func (t *TickerSource) RequestFrame(cb func(tsMS float64)) {
	t.mu.Lock()
	t.pending = cb
	t.mu.Unlock()
}

// Run beats until Stop, firing at most one callback per beat
// It blocks and is meant to own the calling goroutine
func (t *TickerSource) Run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			if t.beforeFrame != nil {
				t.beforeFrame()
			}
			t.mu.Lock()
			cb := t.pending
			t.pending = nil
			t.mu.Unlock()
			if cb != nil {
				cb(t.now())
			}
		}
	}
}

// Stop ends Run
func (t *TickerSource) Stop() {
	t.stopOnce.Do(func() { close(t.stopCh) })
}

// now returns milliseconds since the source was created
func (t *TickerSource) now() float64 {
	return float64(time.Since(t.epoch)) / float64(time.Millisecond)
}

// ManualSource fires frames only when told, for tests and tooling
type ManualSource struct {
	pending func(float64)
}

// RequestFrame stores cb until the next Fire
func (m *ManualSource) RequestFrame(cb func(tsMS float64)) {
	m.pending = cb
}

// Fire delivers the pending callback at the given timestamp
func (m *ManualSource) Fire(tsMS float64) {
	cb := m.pending
	m.pending = nil
	if cb != nil {
		cb(tsMS)
	}
}

// Pending reports whether a frame is scheduled
func (m *ManualSource) Pending() bool {
	return m.pending != nil
}
