package texts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a text pack of the form:
//
//	english:
//	  sentence:
//	    - "..."
//	bengali:
//	  paragraph:
//	    - "..."
func LoadYAML(path string) (Pools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text pack: %w", err)
	}
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode text pack: %w", err)
	}
	pools := Pools{}
	for langName, modes := range raw {
		for modeName, entries := range modes {
			key, err := ParseKey(langName + "-" + modeName)
			if err != nil {
				return nil, fmt.Errorf("failed to decode text pack: %w", err)
			}
			cleaned := make([]string, 0, len(entries))
			for _, e := range entries {
				e = strings.Join(strings.Fields(e), " ")
				if e != "" {
					cleaned = append(cleaned, e)
				}
			}
			pools[key] = FilterTexts(cleaned, FilterForLang(key.Lang))
		}
	}
	return pools, nil
}
