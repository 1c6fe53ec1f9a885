package statsui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/swifttype/internal/model"
	"github.com/verte-zerg/swifttype/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if cerr := st.Close(); cerr != nil {
			t.Fatalf("close store: %v", cerr)
		}
	})
	return st
}

func seed(t *testing.T, st *store.Store) {
	t.Helper()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []model.SessionStats{
		{UUID: "a", Lang: model.English, Mode: model.Sentence, Duration: 30, TargetLen: 20, TotalChars: 20, Mistakes: 2, WPM: 40, Accuracy: 90, ElapsedSecs: 6, Completed: true},
		{UUID: "b", Lang: model.Bengali, Mode: model.Paragraph, Duration: 60, TargetLen: 80, TotalChars: 50, Mistakes: 5, WPM: 25, Accuracy: 90, ElapsedSecs: 60},
	}
	for i, r := range rows {
		r.StartedAt = base.Add(time.Duration(i) * time.Hour)
		r.EndedAt = r.StartedAt.Add(time.Minute)
		chars := []model.CharStats{{Char: "x", Correct: 3, Incorrect: 1}}
		if _, err := st.InsertSession(context.Background(), r, chars); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
}

func sized(m *Model) {
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
}

func TestOverviewShowsSummary(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)
	m := NewModel(st, model.StatsConfig{CurveWindow: 2})
	sized(m)
	view := m.View()
	for _, want := range []string{"Overview", "Avg WPM", "32.5", "Best WPM", "Learning Curves"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in overview:\n%s", want, view)
		}
	}
}

func TestTabsCycle(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)
	m := NewModel(st, model.StatsConfig{CurveWindow: 2})
	sized(m)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabHistory {
		t.Fatalf("expected history tab, got %d", m.activeTab)
	}
	view := m.View()
	if !strings.Contains(view, "bengali") || !strings.Contains(view, "english") {
		t.Fatalf("expected both sessions in history:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabChars {
		t.Fatalf("expected characters tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "75.00%") {
		t.Fatalf("expected char accuracy in characters tab:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabOverview {
		t.Fatalf("expected wrap to overview, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabChars {
		t.Fatalf("expected wrap to characters, got %d", m.activeTab)
	}
}

func TestLanguageFilterCycle(t *testing.T) {
	st := openTestStore(t)
	seed(t, st)
	m := NewModel(st, model.StatsConfig{CurveWindow: 2})
	sized(m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	if m.cfg.Lang != model.English || len(m.report.Sessions) != 1 {
		t.Fatalf("expected english filter with 1 session, got %q/%d", m.cfg.Lang, len(m.report.Sessions))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	if m.cfg.Lang != model.Bengali || len(m.report.Sessions) != 1 {
		t.Fatalf("expected bengali filter with 1 session")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	if m.cfg.Lang != "" || len(m.report.Sessions) != 2 {
		t.Fatalf("expected filter cleared")
	}
}

func TestCurveWindowBounds(t *testing.T) {
	if got := prevCurveWindow(1); got != 1 {
		t.Fatalf("expected floor at 1, got %d", got)
	}
	if got := nextCurveWindow(maxCurveWindow); got != maxCurveWindow {
		t.Fatalf("expected cap at %d, got %d", maxCurveWindow, got)
	}
	if got := nextCurveWindow(0); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestEmptyStore(t *testing.T) {
	m := NewModel(openTestStore(t), model.StatsConfig{CurveWindow: 5})
	sized(m)
	if !strings.Contains(m.View(), "No sessions found.") {
		t.Fatalf("expected empty message:\n%s", m.View())
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateLine("abc", 6); got != "abc" {
		t.Fatalf("short line changed: %q", got)
	}
}
