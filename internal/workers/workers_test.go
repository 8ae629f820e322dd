// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Stop and Wait were called.
type mockWorker struct {
	stopCount int
	waitCount int
	order     *[]int
	id        int
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Wait() {
	m.waitCount++
}

func TestWorkers_Stop_AllWorkersInOrder(t *testing.T) {
	var order []int
	w1 := &mockWorker{id: 1, order: &order}
	w2 := &mockWorker{id: 2, order: &order}
	w3 := &mockWorker{id: 3, order: &order}

	ws := New(w1, w2, w3)
	ws.Stop()
	ws.Wait()

	assert.Equal(t, []int{1, 2, 3}, order)
	for _, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.stopCount)
		assert.Equal(t, 1, w.waitCount)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Stop()
	ws.Wait()
}

func TestManualClock_AdvanceFiresInDeadlineOrder(t *testing.T) {
	c := NewManualClock(epoch)
	var fired []string

	c.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })

	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, epoch.Add(2*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Zero(t, c.Pending())
}

func TestManualClock_CallbackSeesItsDeadline(t *testing.T) {
	c := NewManualClock(epoch)
	var at time.Time
	c.AfterFunc(time.Second, func() { at = c.Now() })

	c.Advance(10 * time.Second)

	assert.Equal(t, epoch.Add(time.Second), at)
	assert.Equal(t, epoch.Add(10*time.Second), c.Now())
}

func TestManualClock_Stop(t *testing.T) {
	c := NewManualClock(epoch)
	called := false
	timer := c.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, called)
}

func TestPeriodic_RunsEveryInterval(t *testing.T) {
	c := NewManualClock(epoch)
	runs := 0
	p := NewPeriodic(c, 2*time.Second, func() { runs++ })

	p.Start(false)
	c.Advance(time.Second)
	assert.Zero(t, runs)

	c.Advance(time.Second)
	assert.Equal(t, 1, runs)

	c.Advance(6 * time.Second)
	assert.Equal(t, 4, runs)
	assert.True(t, p.Running())
}

func TestPeriodic_ImmediateStart(t *testing.T) {
	c := NewManualClock(epoch)
	runs := 0
	p := NewPeriodic(c, 30*time.Second, func() { runs++ })

	p.Start(true)
	c.Advance(0)

	assert.Equal(t, 1, runs)
}

func TestPeriodic_StopCancelsFutureRuns(t *testing.T) {
	c := NewManualClock(epoch)
	runs := 0
	p := NewPeriodic(c, time.Second, func() { runs++ })

	p.Start(false)
	c.Advance(time.Second)
	p.Stop()
	c.Advance(10 * time.Second)

	assert.Equal(t, 1, runs)
	assert.False(t, p.Running())
	assert.Zero(t, c.Pending())
}

func TestPeriodic_StopFromInsideRun(t *testing.T) {
	c := NewManualClock(epoch)
	runs := 0
	var p *Periodic
	p = NewPeriodic(c, time.Second, func() {
		runs++
		p.Stop()
	})

	p.Start(false)
	c.Advance(5 * time.Second)

	assert.Equal(t, 1, runs)
	assert.Zero(t, c.Pending())
}

func TestPeriodic_RestartDuringRunKeepsSingleSchedule(t *testing.T) {
	c := NewManualClock(epoch)
	runs := 0
	var p *Periodic
	p = NewPeriodic(c, time.Second, func() {
		runs++
		if runs == 1 {
			p.Start(false)
		}
	})

	p.Start(false)
	c.Advance(time.Second)
	require.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, c.Pending())
}

func TestDebouncer_CollapsesBursts(t *testing.T) {
	c := NewManualClock(epoch)
	calls := 0
	d := NewDebouncer(c, 2*time.Second, func() { calls++ })

	d.Trigger()
	c.Advance(time.Second)
	d.Trigger()
	c.Advance(time.Second)
	d.Trigger()
	assert.True(t, d.Pending())

	c.Advance(1999 * time.Millisecond)
	assert.Zero(t, calls)

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_Stop(t *testing.T) {
	c := NewManualClock(epoch)
	calls := 0
	d := NewDebouncer(c, time.Second, func() { calls++ })

	d.Trigger()
	d.Stop()
	c.Advance(time.Minute)
	d.Wait()

	assert.Zero(t, calls)

	d.Trigger()
	c.Advance(time.Second)
	assert.Equal(t, 1, calls)
}

func TestRealClock_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	RealClock().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
}
