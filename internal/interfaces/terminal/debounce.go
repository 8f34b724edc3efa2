package terminal

import (
	"sync"
	"time"
)

// DefaultDelay is the pause after the last keystroke before a query runs.
const DefaultDelay = 300 * time.Millisecond

// Debouncer runs only the most recent of a burst of scheduled calls.
// Trigger, Cancel and Flush are meant to be called from one goroutine.
type Debouncer struct {
	delay time.Duration

	running sync.WaitGroup

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	gen     uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, cancelling whatever was pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// Cancel drops the pending call and waits for a call already started by
// the timer. It reports whether a call was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	had := d.pending != nil
	d.stopLocked()
	d.gen++
	d.mu.Unlock()

	d.running.Wait()
	return had
}

// Flush runs the pending call immediately, if any, and waits for a call
// already started by the timer.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.stopLocked()
	d.gen++
	d.mu.Unlock()

	d.running.Wait()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.running.Add(1)
	d.mu.Unlock()

	defer d.running.Done()
	fn()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
