// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"time"
)

// Periodic runs fn every interval on a [Clock]. The next run is armed only
// after the current one returns, so runs never overlap.
type Periodic struct {
	clock    Clock
	interval time.Duration
	fn       func()

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	running bool
	wg      sync.WaitGroup
}

// NewPeriodic creates a stopped Periodic.
func NewPeriodic(clock Clock, interval time.Duration, fn func()) *Periodic {
	return &Periodic{
		clock:    clock,
		interval: interval,
		fn:       fn,
	}
}

// Start arms the first run, immediately when immediate is set and after one
// interval otherwise. Starting an already running Periodic restarts its
// schedule.
func (p *Periodic) Start(immediate bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	p.running = true

	delay := p.interval
	if immediate {
		delay = 0
	}
	p.armLocked(p.gen, delay)
}

// Stop cancels future runs. A run already in progress finishes but does not
// re-arm.
func (p *Periodic) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.running = false
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Wait blocks until no run is in progress.
func (p *Periodic) Wait() {
	p.wg.Wait()
}

// Running reports whether the Periodic is started.
func (p *Periodic) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Periodic) armLocked(gen uint64, delay time.Duration) {
	p.timer = p.clock.AfterFunc(delay, func() { p.fire(gen) })
}

func (p *Periodic) fire(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.wg.Add(1)
	p.mu.Unlock()

	p.fn()
	p.wg.Done()

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen == p.gen {
		p.armLocked(gen, p.interval)
	}
}
