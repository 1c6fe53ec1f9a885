package stats

import (
	"sort"
	"unicode"

	"github.com/verte-zerg/swifttype/internal/model"
)

// SelectWeakChars selects the lowest-accuracy characters from aggregates.
// Characters typed fewer than minSamples times are ignored.
func SelectWeakChars(aggs []model.CharAggregate, top, minSamples int) map[rune]struct{} {
	weakSet := map[rune]struct{}{}
	candidates := make([]model.CharAggregate, 0, len(aggs))
	for _, agg := range aggs {
		runes := []rune(agg.Char)
		if len(runes) == 0 || unicode.IsSpace(runes[0]) {
			continue
		}
		if agg.Correct+agg.Incorrect < minSamples {
			continue
		}
		candidates = append(candidates, agg)
	}
	if len(candidates) == 0 {
		return weakSet
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := charAccuracy(candidates[i])
		aj := charAccuracy(candidates[j])
		if ai == aj {
			return candidates[i].Char < candidates[j].Char
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		weakSet[[]rune(candidates[i].Char)[0]] = struct{}{}
	}
	return weakSet
}

func charAccuracy(agg model.CharAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
