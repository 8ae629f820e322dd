package workers

import (
	"sync"
	"time"
)

// Debouncer calls fn once window has elapsed since the last Trigger.
type Debouncer struct {
	clock  Clock
	window time.Duration
	fn     func()

	mu    sync.Mutex
	timer Timer
	gen   uint64
	wg    sync.WaitGroup
}

// NewDebouncer creates an idle Debouncer.
func NewDebouncer(clock Clock, window time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		clock:  clock,
		window: window,
		fn:     fn,
	}
}

// Trigger (re)arms the quiescence window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

// Pending reports whether a call to fn is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop drops any armed call. A call already running finishes.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Wait blocks until no call to fn is in progress.
func (d *Debouncer) Wait() {
	d.wg.Wait()
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.wg.Add(1)
	d.mu.Unlock()

	defer d.wg.Done()
	d.fn()
}
