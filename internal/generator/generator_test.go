package generator

import "testing"

func TestChooseReturnsElement(t *testing.T) {
	gen := NewWithSeed(1)
	texts := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got := gen.Choose(texts)
		seen[got] = true
	}
	for _, text := range texts {
		if !seen[text] {
			t.Fatalf("expected %q to be chosen at least once", text)
		}
	}
}

func TestChooseSingle(t *testing.T) {
	if got := NewWithSeed(7).Choose([]string{"only"}); got != "only" {
		t.Fatalf("expected only, got %q", got)
	}
}

func TestChooseWeightedFavorsWeakText(t *testing.T) {
	gen := NewWithSeed(42)
	texts := []string{"aaaa", "zzzz"}
	weak := map[rune]struct{}{'z': {}}
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[gen.ChooseWeighted(texts, weak, 10)]++
	}
	if counts["zzzz"] <= counts["aaaa"]*5 {
		t.Fatalf("expected weak text to dominate, got %v", counts)
	}
}

func TestWeakFocusFallsBackToUniform(t *testing.T) {
	w := NewWeakFocus(NewWithSeed(3), nil, 2)
	texts := []string{"x", "y"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[w.Choose(texts)] = true
	}
	if !seen["x"] || !seen["y"] {
		t.Fatalf("expected uniform choice across texts, got %v", seen)
	}
	w.SetWeak(map[rune]struct{}{'y': {}})
	if w.weakSet == nil {
		t.Fatalf("expected weak set to be replaced")
	}
}
