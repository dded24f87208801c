package clock

import (
	"sort"
	"sync"
	"time"

	"solar-chrome-service/internal/ports"
)

// MockClock is a manual clock for tests. Time only moves when Advance
// is called; due callbacks fire on the calling goroutine.
type MockClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

type mockTimer struct {
	clock   *MockClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func NewMockClock(start time.Time) *MockClock { return &MockClock{now: start} }

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *MockClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTimer{clock: m, at: m.now.Add(d), f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d and runs callbacks that became
// due, in due order. Callbacks run without the clock lock held so they
// may schedule or stop other timers.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)

	due := make([]*mockTimer, 0, len(m.timers))
	rest := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped && !t.at.After(m.now) {
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	m.timers = rest
	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	m.mu.Unlock()

	for _, t := range due {
		m.mu.Lock()
		run := !t.stopped && !t.fired
		t.fired = true
		m.mu.Unlock()

		if run {
			t.f()
		}
	}
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
