// Package workers provides the timer primitives used by the sync scheduler:
// a [Clock] abstraction, a non-overlapping [Periodic] activity, a
// [Debouncer] for quiescence windows and a [Workers] aggregate that stops
// them together.
package workers

import "time"

// Worker is the interface implemented by every background activity owned by
// the scheduler.
//
// Stop cancels future runs without waiting for a run already in progress.
// Wait blocks until no run is in progress. Splitting the two lets a caller
// stop workers while holding a lock that a running activity may need.
type Worker interface {
	Stop()
	Wait()
}

// Timer is a pending one-shot callback scheduled on a [Clock].
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer (false if it already fired or was stopped).
	Stop() bool
}

// Clock is the time source of the scheduler. Production code uses
// [RealClock]; tests drive a [ManualClock].
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}
