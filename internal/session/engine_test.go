package session

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/swifttype/internal/clock"
	"github.com/verte-zerg/swifttype/internal/model"
	"github.com/verte-zerg/swifttype/internal/texts"
)

type firstChooser struct {
	calls int
}

func (c *firstChooser) Choose(texts []string) string {
	c.calls++
	return texts[0]
}

func newTestEngine(t *testing.T, target string, duration model.Duration) (*Engine, *clock.Manual) {
	t.Helper()
	pool := texts.Pools{
		{Lang: model.English, Mode: model.Sentence}:  {target},
		{Lang: model.English, Mode: model.Paragraph}: {target + " " + target},
		{Lang: model.Bengali, Mode: model.Sentence}:  {"বই মানুষের শ্রেষ্ঠ বন্ধু।"},
	}
	src := clock.NewManual()
	e := NewEngine(pool, &firstChooser{}, src)
	if err := e.Reset(model.English, model.Sentence, duration); err != nil {
		t.Fatalf("reset: %v", err)
	}
	return e, src
}

func TestResetInitializesIdleSession(t *testing.T) {
	e, src := newTestEngine(t, "cat", 60)
	s := e.Session()
	if s.Status != Idle {
		t.Fatalf("expected idle, got %s", s.Status)
	}
	if s.TimeRemaining != 60 || s.Accuracy != 100 || s.WPM != 0 || s.Mistakes != 0 || s.TotalChars != 0 {
		t.Fatalf("unexpected initial session: %+v", s)
	}
	if s.Target != "cat" || s.Input != "" {
		t.Fatalf("unexpected target/input: %q/%q", s.Target, s.Input)
	}
	if src.Active() != 0 || e.TimerRunning() {
		t.Fatalf("expected no timer while idle")
	}
}

func TestFirstInputStartsTimer(t *testing.T) {
	e, src := newTestEngine(t, "catalog", 30)
	e.OnInputChanged("")
	if e.Session().Status != Idle || src.Active() != 0 {
		t.Fatalf("empty input must not start the session")
	}
	e.OnInputChanged("c")
	if e.Session().Status != Active {
		t.Fatalf("expected active after first char, got %s", e.Session().Status)
	}
	if src.Active() != 1 {
		t.Fatalf("expected one running timer, got %d", src.Active())
	}
	src.Advance(3 * time.Second)
	if got := e.Session().TimeRemaining; got != 27 {
		t.Fatalf("expected 27s remaining, got %d", got)
	}
}

func TestScenarioExactMatchFinishes(t *testing.T) {
	e, src := newTestEngine(t, "cat", 60)
	e.OnInputChanged("cat")
	s := e.Session()
	if s.Mistakes != 0 || s.Accuracy != 100 || s.Status != Finished {
		t.Fatalf("unexpected session: %+v", s)
	}
	if src.Active() != 0 {
		t.Fatalf("expected timer released on finish")
	}
}

func TestScenarioMismatchesScoreAccuracy(t *testing.T) {
	e, _ := newTestEngine(t, "cat", 60)
	e.OnInputChanged("cop")
	s := e.Session()
	if s.Mistakes != 2 {
		t.Fatalf("expected 2 mistakes, got %d", s.Mistakes)
	}
	if s.Accuracy != 33 {
		t.Fatalf("expected 33%% accuracy, got %d", s.Accuracy)
	}
	if s.Status != Finished {
		t.Fatalf("expected auto-finish at target length, got %s", s.Status)
	}
}

func TestScenarioWPMFromElapsedTime(t *testing.T) {
	target := strings.Repeat("a", 400)
	e, src := newTestEngine(t, target, 60)
	e.OnInputChanged("a")
	src.Advance(30 * time.Second)
	e.OnInputChanged(strings.Repeat("a", 150))
	s := e.Session()
	if s.TimeRemaining != 30 {
		t.Fatalf("expected 30s remaining, got %d", s.TimeRemaining)
	}
	if s.WPM != 60 {
		t.Fatalf("expected 60 WPM, got %d", s.WPM)
	}
}

func TestWPMHeldBeforeFirstSecond(t *testing.T) {
	e, _ := newTestEngine(t, "catalog", 60)
	e.OnInputChanged("cat")
	if got := e.Session().WPM; got != 0 {
		t.Fatalf("expected WPM to stay 0 with no elapsed time, got %d", got)
	}
}

func TestScenarioReconfigureCancelsTimer(t *testing.T) {
	e, src := newTestEngine(t, "catalog", 60)
	e.OnInputChanged("ca")
	src.Advance(5 * time.Second)
	if e.Session().TimeRemaining != 55 {
		t.Fatalf("expected 55s remaining, got %d", e.Session().TimeRemaining)
	}

	if err := e.Reconfigure(model.English, model.Sentence, 15); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	s := e.Session()
	if s.Status != Idle || s.TimeRemaining != 15 || s.Input != "" {
		t.Fatalf("expected fresh idle session, got %+v", s)
	}
	if src.Active() != 0 {
		t.Fatalf("expected old timer to be cancelled, %d still active", src.Active())
	}
	src.Advance(10 * time.Second)
	if got := e.Session().TimeRemaining; got != 15 {
		t.Fatalf("stale timer decremented new session: %d", got)
	}
}

func TestTimerDrivenFinish(t *testing.T) {
	e, src := newTestEngine(t, "catalog", 15)
	e.Start()
	for i := 0; i < 15; i++ {
		src.Advance(time.Second)
	}
	s := e.Session()
	if s.Status != Finished || s.TimeRemaining != 0 {
		t.Fatalf("expected finished at 0, got %s at %d", s.Status, s.TimeRemaining)
	}
	if src.Active() != 0 {
		t.Fatalf("expected timer released after time out")
	}
}

func TestFinishedIgnoresFurtherEvents(t *testing.T) {
	e, src := newTestEngine(t, "cat", 30)
	e.OnInputChanged("c")
	src.Advance(2 * time.Second)
	e.OnInputChanged("cot")
	before := e.Session()
	if before.Status != Finished {
		t.Fatalf("expected finished, got %s", before.Status)
	}

	e.OnInputChanged("cotton")
	e.OnInputChanged("")
	e.OnTimerTick()
	e.Start()
	e.Finish()
	src.Advance(10 * time.Second)
	if after := e.Session(); after != before {
		t.Fatalf("finished session mutated:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestStartAndFinishAreIdempotent(t *testing.T) {
	e, src := newTestEngine(t, "catalog", 30)
	e.Start()
	e.Start()
	if src.Active() != 1 {
		t.Fatalf("expected a single timer, got %d", src.Active())
	}
	e.Finish()
	e.Finish()
	if e.Session().Status != Finished || src.Active() != 0 {
		t.Fatalf("expected finished without timers")
	}
}

func TestAutoFinishExactness(t *testing.T) {
	target := "hello"
	e, _ := newTestEngine(t, target, 60)
	for i := 1; i < len(target); i++ {
		e.OnInputChanged(strings.Repeat("x", i))
		if e.Session().Status == Finished {
			t.Fatalf("finished early at length %d", i)
		}
	}
	e.OnInputChanged("xxxxx")
	if e.Session().Status != Finished {
		t.Fatalf("expected finish at target length even with mistakes")
	}
}

func TestOverTypingCountsAsMistakes(t *testing.T) {
	s := New(model.English, model.Sentence, 60, "ab").Start()
	s = s.WithInput("abcd")
	if s.Mistakes != 2 {
		t.Fatalf("expected extra runes to count as mistakes, got %d", s.Mistakes)
	}
	if s.Status == Finished {
		t.Fatalf("auto-finish fires only at equal length")
	}
	if s.Accuracy != 50 {
		t.Fatalf("expected 50%% accuracy, got %d", s.Accuracy)
	}
}

func TestAccuracyBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	alphabet := []rune("abc দ")
	target := "abc দabc দabc"
	s := New(model.English, model.Sentence, 60, target).Start()
	for i := 0; i < 500; i++ {
		n := rnd.Intn(len([]rune(target)) + 4)
		in := make([]rune, n)
		for j := range in {
			in[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		next := s.WithInput(string(in))
		if next.Accuracy < 0 || next.Accuracy > 100 {
			t.Fatalf("accuracy out of bounds: %d for %q", next.Accuracy, string(in))
		}
	}
}

func TestMistakesMonotonicUnderAppend(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	target := "the quick brown fox"
	s := New(model.English, model.Sentence, 60, target).Start()
	input := ""
	prev := 0
	for i := 0; i < len(target)-1; i++ {
		if rnd.Intn(3) == 0 {
			input += "#"
		} else {
			input += string(target[i])
		}
		s = s.WithInput(input)
		if s.Mistakes < prev {
			t.Fatalf("mistakes decreased from %d to %d at %q", prev, s.Mistakes, input)
		}
		prev = s.Mistakes
	}
}

func TestEmptyInputKeepsAccuracy(t *testing.T) {
	s := New(model.English, model.Sentence, 60, "abc").Start()
	s = s.WithInput("x")
	if s.Accuracy != 0 {
		t.Fatalf("expected 0%% accuracy, got %d", s.Accuracy)
	}
	s = s.WithInput("")
	if s.Accuracy != 0 || s.TotalChars != 0 || s.Mistakes != 0 {
		t.Fatalf("expected accuracy held with counters cleared, got %+v", s)
	}
}

func TestBengaliComparesRunes(t *testing.T) {
	e, _ := newTestEngine(t, "cat", 60)
	if err := e.Reset(model.Bengali, model.Sentence, 30); err != nil {
		t.Fatalf("reset: %v", err)
	}
	e.OnInputChanged("বই")
	s := e.Session()
	if s.TotalChars != 2 || s.Mistakes != 0 {
		t.Fatalf("expected 2 correct runes, got %+v", s)
	}
}

func TestResetErrorsLeaveSessionAlone(t *testing.T) {
	e, src := newTestEngine(t, "catalog", 30)
	e.OnInputChanged("c")
	before := e.Session()

	err := e.Reset(model.Bengali, model.Paragraph, 30)
	if !errors.Is(err, texts.ErrUnknownPool) {
		t.Fatalf("expected unknown pool error, got %v", err)
	}
	err = e.Reset(model.English, model.Sentence, 45)
	if !errors.Is(err, model.ErrInvalidDuration) {
		t.Fatalf("expected invalid duration error, got %v", err)
	}
	if e.Session() != before || src.Active() != 1 {
		t.Fatalf("failed reset must not touch the running session")
	}
}

func TestResetEmptyPoolFailsFast(t *testing.T) {
	pool := texts.Pools{{Lang: model.English, Mode: model.Sentence}: {}}
	e := NewEngine(pool, &firstChooser{}, clock.NewManual())
	err := e.Reset(model.English, model.Sentence, 60)
	if !errors.Is(err, texts.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestResetUsesChooser(t *testing.T) {
	pool := texts.Pools{{Lang: model.English, Mode: model.Sentence}: {"one", "two"}}
	chooser := &firstChooser{}
	e := NewEngine(pool, chooser, clock.NewManual())
	if err := e.Restart(); err == nil {
		t.Fatalf("restart without settings must fail")
	}
	if err := e.Reset(model.English, model.Sentence, 60); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := e.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if chooser.calls != 2 {
		t.Fatalf("expected chooser to run once per reset, got %d", chooser.calls)
	}
	if e.Session().Target != "one" {
		t.Fatalf("unexpected target %q", e.Session().Target)
	}
}

func TestOnTransitionReportsChanges(t *testing.T) {
	e, src := newTestEngine(t, "cat", 30)
	var seen []string
	e.OnTransition(func(from, to Status, _ Session) {
		seen = append(seen, from.String()+">"+to.String())
	})
	e.OnInputChanged("c")
	e.OnInputChanged("ca")
	src.Advance(time.Second)
	e.OnInputChanged("cat")
	if err := e.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	want := "idle>active,active>finished,finished>idle"
	if got := strings.Join(seen, ","); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
