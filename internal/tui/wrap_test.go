package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/swifttype/internal/model"
	"github.com/verte-zerg/swifttype/internal/session"
)

func charsFor(target, input string) []session.Char {
	s := session.New(model.English, model.Sentence, 60, target)
	if input != "" {
		s = s.Start().WithInput(input)
	}
	return s.Snapshot().Chars
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes(charsFor("ab", "a"), 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	runes := buildStyledRunes(charsFor("a", "a"), -1)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := buildStyledRunes(charsFor("ab", "ax"), -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected the target rune in incorrect style")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := buildStyledRunes(charsFor("one two", "o"), 1)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped rune in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesIdleHasNoCurrentWord(t *testing.T) {
	runes := buildStyledRunes(charsFor("one", ""), -1)
	for i, r := range runes {
		if r.s != pendingStyle.Render(string("one"[i])) {
			t.Fatalf("rune %d: expected pending style", i)
		}
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := buildStyledRunes(charsFor("a b", "ax"), 2)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected mistyped space to still break lines")
	}
}

func TestWrapStyledRunesBreaksOnSpaces(t *testing.T) {
	runes := []styledRune{}
	for _, r := range "aa bb cc" {
		runes = append(runes, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	got := wrapStyledRunes(runes, 5)
	want := "aa \nbb cc"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapStyledRunesHardBreaksLongWord(t *testing.T) {
	runes := []styledRune{}
	for _, r := range "abcdef" {
		runes = append(runes, styledRune{s: string(r), width: 1})
	}
	got := wrapStyledRunes(runes, 4)
	if lines := strings.Split(got, "\n"); len(lines) != 2 || lines[0] != "abcd" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesBengaliWidth(t *testing.T) {
	runes := buildStyledRunes(charsFor("আমি ভাত খাই", ""), -1)
	got := wrapStyledRunes(runes, 6)
	for _, line := range strings.Split(got, "\n") {
		if line == "" {
			t.Fatalf("unexpected empty line in %q", got)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected bengali text to wrap, got %q", got)
	}
}
