package texts

import (
	"unicode"

	"github.com/verte-zerg/swifttype/internal/model"
)

// FilterFunc returns true when a text should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for text pools.
func FilterForLang(lang model.Language) FilterFunc {
	switch lang {
	case model.English:
		return filterEnglishASCII
	case model.Bengali:
		return filterBengali
	default:
		return func(string) bool { return true }
	}
}

// FilterTexts keeps the texts accepted by keep.
func FilterTexts(in []string, keep FilterFunc) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func filterEnglishASCII(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < ' ' || ch > '~' {
			return false
		}
	}
	return true
}

func filterBengali(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Bengali, r) {
			return true
		}
	}
	return false
}
