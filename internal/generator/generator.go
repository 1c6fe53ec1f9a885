// Package generator picks target texts for typing tests.
package generator

import (
	"math/rand"
	"time"
)

// Chooser returns one element of a non-empty slice.
type Chooser interface {
	Choose(texts []string) string
}

// Generator produces randomized choices.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Choose selects a text uniformly.
func (g *Generator) Choose(texts []string) string {
	return texts[g.rnd.Intn(len(texts))]
}

// ChooseWeighted selects a text with a bias toward texts holding weak characters.
// Each text weighs 1 + weakCount*factor.
func (g *Generator) ChooseWeighted(texts []string, weakSet map[rune]struct{}, factor float64) string {
	weights := make([]float64, len(texts))
	total := 0.0
	for i, text := range texts {
		weakCount := 0
		for _, r := range text {
			if _, ok := weakSet[r]; ok {
				weakCount++
			}
		}
		w := 1.0 + float64(weakCount)*factor
		weights[i] = w
		total += w
	}

	r := g.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return texts[i]
		}
	}
	return texts[len(texts)-1]
}

// WeakFocus is a Chooser that prefers texts exercising weak characters.
type WeakFocus struct {
	gen     *Generator
	weakSet map[rune]struct{}
	factor  float64
}

// NewWeakFocus wraps gen. An empty weak set chooses uniformly.
func NewWeakFocus(gen *Generator, weakSet map[rune]struct{}, factor float64) *WeakFocus {
	return &WeakFocus{gen: gen, weakSet: weakSet, factor: factor}
}

// SetWeak replaces the weak character set.
func (w *WeakFocus) SetWeak(weakSet map[rune]struct{}) {
	w.weakSet = weakSet
}

// Choose implements Chooser.
func (w *WeakFocus) Choose(texts []string) string {
	if len(w.weakSet) == 0 || w.factor <= 0 {
		return w.gen.Choose(texts)
	}
	return w.gen.ChooseWeighted(texts, w.weakSet, w.factor)
}
