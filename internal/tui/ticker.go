package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/swifttype/internal/clock"
)

// tickMsg is delivered by tea.Tick for the timer with the given id.
type tickMsg struct {
	id int
	at time.Time
}

// tickSource is a clock.Source backed by tea.Tick. Callbacks run inside
// Update, so they share the engine's goroutine.
type tickSource struct {
	nextID  int
	live    map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	id     int
	period time.Duration
	fn     func()
	src    *tickSource
}

func newTickSource() *tickSource {
	return &tickSource{live: map[int]*teaTimer{}}
}

// Every implements clock.Source.
func (s *tickSource) Every(period time.Duration, fn func()) clock.Timer {
	s.nextID++
	t := &teaTimer{id: s.nextID, period: period, fn: fn, src: s}
	s.live[t.id] = t
	s.pending = append(s.pending, t.schedule())
	return t
}

func (t *teaTimer) Stop() {
	delete(t.src.live, t.id)
}

func (t *teaTimer) schedule() tea.Cmd {
	id := t.id
	return tea.Tick(t.period, func(at time.Time) tea.Msg {
		return tickMsg{id: id, at: at}
	})
}

// handle runs the callback for a live timer and re-arms it. Ticks for
// stopped timers are dropped.
func (s *tickSource) handle(msg tickMsg) {
	t, ok := s.live[msg.id]
	if !ok {
		return
	}
	t.fn()
	if _, still := s.live[msg.id]; still {
		s.pending = append(s.pending, t.schedule())
	}
}

// drain returns the commands queued since the last call.
func (s *tickSource) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *tickSource) running() int {
	return len(s.live)
}
