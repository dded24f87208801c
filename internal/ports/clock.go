package ports

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. Reports whether it was still pending.
	Stop() bool
}

// Port: a boundary for wall-clock time and deferred callbacks, so
// time-driven behavior (alert expiry) can be simulated in tests.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules f to run after d on the clock's own goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}
