package tui

import (
	"testing"
	"time"
)

func TestTickSourceDropsStoppedTimers(t *testing.T) {
	src := newTickSource()
	calls := 0
	timer := src.Every(time.Second, func() { calls++ })
	if src.drain() == nil {
		t.Fatalf("expected a scheduled tick")
	}
	if src.drain() != nil {
		t.Fatalf("drain must empty the queue")
	}

	src.handle(tickMsg{id: 1})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if src.drain() == nil {
		t.Fatalf("expected live timer to be re-armed")
	}

	timer.Stop()
	src.handle(tickMsg{id: 1})
	if calls != 1 {
		t.Fatalf("stopped timer fired")
	}
	if src.running() != 0 || src.drain() != nil {
		t.Fatalf("stopped timer must not be re-armed")
	}
}

func TestTickSourceStopInsideCallback(t *testing.T) {
	src := newTickSource()
	var timer interface{ Stop() }
	timer = src.Every(time.Second, func() { timer.Stop() })
	src.drain()
	src.handle(tickMsg{id: 1})
	if src.running() != 0 || src.drain() != nil {
		t.Fatalf("timer stopped in its callback must not be re-armed")
	}
}

func TestTickSourceDistinctIDs(t *testing.T) {
	src := newTickSource()
	first := src.Every(time.Second, func() {})
	first.Stop()
	fired := false
	src.Every(time.Second, func() { fired = true })
	src.handle(tickMsg{id: 1})
	if fired {
		t.Fatalf("tick for the old id reached the new timer")
	}
	src.handle(tickMsg{id: 2})
	if !fired {
		t.Fatalf("expected new timer to fire")
	}
}
