// Package clock defines the periodic timer sources that drive a typing session.
package clock

import "time"

// Timer is a running periodic timer.
type Timer interface {
	// Stop cancels every pending tick. It is safe to call more than once.
	Stop()
}

// Source starts periodic timers. Callbacks run on the owner's execution context.
type Source interface {
	Every(period time.Duration, fn func()) Timer
}

// Manual is a Source advanced explicitly, for tests and headless drivers.
type Manual struct {
	timers []*manualTimer
}

type manualTimer struct {
	period  time.Duration
	elapsed time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// NewManual returns an idle manual source.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Source.
func (m *Manual) Every(period time.Duration, fn func()) Timer {
	t := &manualTimer{period: period, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d and fires due callbacks in order.
// A callback that stops its own timer or another one prevents later firings.
func (m *Manual) Advance(d time.Duration) {
	timers := append([]*manualTimer(nil), m.timers...)
	for _, t := range timers {
		if t.stopped || t.period <= 0 {
			continue
		}
		t.elapsed += d
		for t.elapsed >= t.period && !t.stopped {
			t.elapsed -= t.period
			t.fn()
		}
	}
	m.prune()
}

// Active returns the number of timers that have not been stopped.
func (m *Manual) Active() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) prune() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	m.timers = kept
}
