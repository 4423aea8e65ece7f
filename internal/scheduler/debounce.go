// Package scheduler holds the timer abstraction behind draft autosave.
package scheduler

import (
	"sync"
	"time"
)

// Debouncer runs at most one pending task. Scheduling a new task cancels the
// previous one, so only the last call in a burst fires.
type Debouncer interface {
	Schedule(delay time.Duration, task func())
	Cancel()
	Pending() bool
}

// TimerDebouncer is a Debouncer backed by time.AfterFunc.
type TimerDebouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewTimerDebouncer() *TimerDebouncer {
	return &TimerDebouncer{}
}

func (d *TimerDebouncer) Schedule(delay time.Duration, task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		// A Stop that raced with expiry leaves a stale callback behind.
		if gen != d.gen || d.timer == nil {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		task()
	})
}

func (d *TimerDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *TimerDebouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// ManualDebouncer never fires on its own; Fire runs the pending task. It backs
// tests and the CLI, where time is driven by the caller.
type ManualDebouncer struct {
	mu        sync.Mutex
	task      func()
	delay     time.Duration
	scheduled int
}

func NewManualDebouncer() *ManualDebouncer {
	return &ManualDebouncer{}
}

func (d *ManualDebouncer) Schedule(delay time.Duration, task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.task = task
	d.delay = delay
	d.scheduled++
}

func (d *ManualDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.task = nil
}

func (d *ManualDebouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.task != nil
}

// Delay is the delay of the last Schedule call.
func (d *ManualDebouncer) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// Scheduled counts Schedule calls since creation.
func (d *ManualDebouncer) Scheduled() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scheduled
}

// Fire runs the pending task, if any, and reports whether one ran.
func (d *ManualDebouncer) Fire() bool {
	d.mu.Lock()
	task := d.task
	d.task = nil
	d.mu.Unlock()
	if task == nil {
		return false
	}
	task()
	return true
}
