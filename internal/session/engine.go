package session

import (
	"fmt"
	"time"

	"github.com/verte-zerg/swifttype/internal/clock"
	"github.com/verte-zerg/swifttype/internal/generator"
	"github.com/verte-zerg/swifttype/internal/model"
	"github.com/verte-zerg/swifttype/internal/texts"
)

// TickPeriod is the countdown resolution.
const TickPeriod = time.Second

// TransitionFunc observes status changes. It runs after the new state is stored.
type TransitionFunc func(from, to Status, s Session)

// Engine drives a Session from input and timer stimuli.
// It is not safe for concurrent use; all calls, ticks included, must come
// from one goroutine.
type Engine struct {
	pool    texts.Provider
	chooser generator.Chooser
	timers  clock.Source

	timer   clock.Timer
	session Session

	onTransition TransitionFunc
}

// NewEngine builds an engine. Call Reset before feeding input.
func NewEngine(pool texts.Provider, chooser generator.Chooser, timers clock.Source) *Engine {
	return &Engine{
		pool:    pool,
		chooser: chooser,
		timers:  timers,
		session: Session{Status: Finished},
	}
}

// OnTransition registers fn to be called on every status change.
func (e *Engine) OnTransition(fn TransitionFunc) {
	e.onTransition = fn
}

// Session returns the current session value.
func (e *Engine) Session() Session {
	return e.session
}

// Snapshot returns the current view model.
func (e *Engine) Snapshot() Snapshot {
	return e.session.Snapshot()
}

// Reset draws a new target for (lang, mode) and starts over in Idle.
// On error the current session and its timer are left untouched.
func (e *Engine) Reset(lang model.Language, mode model.Mode, duration model.Duration) error {
	if !duration.Valid() {
		return fmt.Errorf("%w: %d", model.ErrInvalidDuration, int(duration))
	}
	pool, err := e.pool.Texts(lang, mode)
	if err != nil {
		return fmt.Errorf("failed to load %s %s texts: %w", lang, mode, err)
	}
	if len(pool) == 0 {
		return fmt.Errorf("failed to load %s %s texts: %w", lang, mode, texts.ErrEmptyPool)
	}
	target := e.chooser.Choose(pool)
	if target == "" {
		return fmt.Errorf("failed to pick %s %s text: %w", lang, mode, texts.ErrEmptyPool)
	}

	e.releaseTimer()
	from := e.session.Status
	e.session = New(lang, mode, duration, target)
	e.notify(from)
	return nil
}

// Reconfigure resets with the given settings. It is Reset under the name the
// UI uses for language, mode and duration switches.
func (e *Engine) Reconfigure(lang model.Language, mode model.Mode, duration model.Duration) error {
	return e.Reset(lang, mode, duration)
}

// Restart draws a new target with the current settings.
func (e *Engine) Restart() error {
	return e.Reset(e.session.Lang, e.session.Mode, e.session.Duration)
}

// OnInputChanged applies the full current input.
func (e *Engine) OnInputChanged(input string) {
	e.apply(InputChanged{Input: input})
}

// OnTimerTick applies one elapsed second.
func (e *Engine) OnTimerTick() {
	e.apply(TimerTicked{})
}

// Start activates an Idle session and starts the countdown.
func (e *Engine) Start() {
	e.apply(Started{})
}

// Finish ends the session and cancels the countdown.
func (e *Engine) Finish() {
	e.apply(Stopped{})
}

// TimerRunning reports whether the engine currently holds a timer.
func (e *Engine) TimerRunning() bool {
	return e.timer != nil
}

func (e *Engine) apply(ev Event) {
	from := e.session.Status
	e.session = Apply(e.session, ev)
	e.syncTimer()
	e.notify(from)
}

// syncTimer holds a timer exactly while the session is Active.
func (e *Engine) syncTimer() {
	switch {
	case e.session.Status == Active && e.timer == nil:
		e.timer = e.timers.Every(TickPeriod, e.OnTimerTick)
	case e.session.Status != Active:
		e.releaseTimer()
	}
}

func (e *Engine) releaseTimer() {
	if e.timer == nil {
		return
	}
	e.timer.Stop()
	e.timer = nil
}

func (e *Engine) notify(from Status) {
	if e.onTransition == nil || from == e.session.Status {
		return
	}
	e.onTransition(from, e.session.Status, e.session)
}
