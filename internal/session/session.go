// Package session implements the typing test state machine and its scoring.
//
// A Session is a plain value. Every stimulus is an Event and Apply returns the
// next Session without side effects. Engine wraps a Session with the resources
// a live test needs: the text pool, the chooser and the countdown timer.
package session

import (
	"math"

	"github.com/verte-zerg/swifttype/internal/model"
)

// Status is the lifecycle state of a Session.
type Status int

// Session states. Finished is terminal.
const (
	Idle Status = iota
	Active
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

const initialAccuracy = 100

// Session is one timed attempt against one target text.
type Session struct {
	Lang     model.Language
	Mode     model.Mode
	Duration model.Duration
	Target   string
	Input    string

	Status        Status
	TimeRemaining int

	Mistakes   int
	Accuracy   int
	WPM        int
	TotalChars int
}

// New returns an Idle session for target.
func New(lang model.Language, mode model.Mode, duration model.Duration, target string) Session {
	return Session{
		Lang:          lang,
		Mode:          mode,
		Duration:      duration,
		Target:        target,
		Status:        Idle,
		TimeRemaining: duration.Seconds(),
		Accuracy:      initialAccuracy,
	}
}

// Event is a stimulus applied to a Session.
type Event interface {
	apply(Session) Session
}

// InputChanged carries the full current input.
type InputChanged struct {
	Input string
}

// TimerTicked is one elapsed second.
type TimerTicked struct{}

// Started requests the Idle to Active transition.
type Started struct{}

// Stopped ends the session.
type Stopped struct{}

func (e InputChanged) apply(s Session) Session { return s.WithInput(e.Input) }
func (TimerTicked) apply(s Session) Session    { return s.Tick() }
func (Started) apply(s Session) Session        { return s.Start() }
func (Stopped) apply(s Session) Session        { return s.Finish() }

// Apply returns the session that results from ev.
func Apply(s Session, ev Event) Session {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

// Start moves an Idle session to Active. Any other state is returned unchanged.
func (s Session) Start() Session {
	if s.Status != Idle {
		return s
	}
	s.Status = Active
	return s
}

// Finish marks the session Finished.
func (s Session) Finish() Session {
	s.Status = Finished
	return s
}

// Tick counts down one second while Active and finishes the session at zero.
func (s Session) Tick() Session {
	if s.Status != Active {
		return s
	}
	if s.TimeRemaining > 0 {
		s.TimeRemaining--
	}
	if s.TimeRemaining == 0 {
		s.Status = Finished
	}
	return s
}

// WithInput rescores the session against input. Finished sessions are unchanged.
func (s Session) WithInput(input string) Session {
	if s.Status == Finished {
		return s
	}
	if s.Status == Idle && input != "" {
		s = s.Start()
	}

	target := []rune(s.Target)
	typed := []rune(input)

	s.Mistakes = countMistakes(target, typed)
	s.TotalChars = len(typed)
	if s.TotalChars > 0 {
		s.Accuracy = accuracyPercent(s.TotalChars, s.Mistakes)
	}
	if elapsed := s.Elapsed(); elapsed > 0 {
		s.WPM = wordsPerMinute(s.TotalChars, elapsed)
	}
	s.Input = input

	if s.TotalChars == len(target) {
		s.Status = Finished
	}
	return s
}

// Elapsed returns the whole seconds counted down so far.
func (s Session) Elapsed() int {
	return s.Duration.Seconds() - s.TimeRemaining
}

// Completed reports whether the whole target has been typed.
func (s Session) Completed() bool {
	return len([]rune(s.Input)) >= len([]rune(s.Target))
}

// countMistakes counts typed positions that differ from the target.
// Positions past the end of target always count.
func countMistakes(target, typed []rune) int {
	mistakes := 0
	for i, r := range typed {
		if i >= len(target) || r != target[i] {
			mistakes++
		}
	}
	return mistakes
}

func accuracyPercent(total, mistakes int) int {
	acc := float64(total-mistakes) / float64(total) * 100
	return int(math.Round(math.Max(0, acc)))
}

// wordsPerMinute uses the five characters per word convention.
func wordsPerMinute(chars, elapsedSeconds int) int {
	words := float64(chars) / 5
	minutes := float64(elapsedSeconds) / 60
	return int(math.Round(words / minutes))
}
