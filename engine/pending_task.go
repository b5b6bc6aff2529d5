package engine

import (
	"sync"
	"time"
)

// Dispatch hands a callback to the goroutine that owns the state it touches
type Dispatch func(func())

// Direct runs callbacks on the calling goroutine
func Direct(f func()) { f() }

// PendingTask is a single-slot delayed callback
// Scheduling replaces whatever was pending; a superseded or cancelled callback never runs,
// even when its timer already fired and the callback is still queued for dispatch
type PendingTask struct {
	mu       sync.Mutex
	clock    Clock
	dispatch Dispatch
	timer    Timer
	gen      uint64
}

// NewPendingTask creates an empty task slot
// A nil dispatch runs callbacks directly on the timer's goroutine
func NewPendingTask(clock Clock, dispatch Dispatch) *PendingTask {
	if dispatch == nil {
		dispatch = Direct
	}
	return &PendingTask{clock: clock, dispatch: dispatch}
}

// Schedule cancels any pending callback and arms f to run after d
func (p *PendingTask) Schedule(d time.Duration, f func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.timer = p.clock.AfterFunc(d, func() {
		p.dispatch(func() { p.fire(gen, f) })
	})
}

// Cancel drops the pending callback, if any
func (p *PendingTask) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
}

// Pending reports whether a callback is armed
func (p *PendingTask) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timer != nil
}

func (p *PendingTask) fire(gen uint64, f func()) {
	p.mu.Lock()
	if gen != p.gen || p.timer == nil {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.mu.Unlock()

	f()
}
