// Package texts provides the target text pools for typing tests.
package texts

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/verte-zerg/swifttype/internal/model"
)

var (
	// ErrEmptyPool is returned when a pool exists but holds no texts.
	ErrEmptyPool = errors.New("text pool is empty")
	// ErrUnknownPool is returned when no pool is registered for a key.
	ErrUnknownPool = errors.New("unknown text pool")
)

// Provider returns candidate target texts for a language and mode.
type Provider interface {
	Texts(lang model.Language, mode model.Mode) ([]string, error)
}

// Key identifies a pool.
type Key struct {
	Lang model.Language
	Mode model.Mode
}

func (k Key) String() string {
	return string(k.Lang) + "-" + string(k.Mode)
}

// Pools is a map-backed Provider.
type Pools map[Key][]string

// Texts implements Provider.
func (p Pools) Texts(lang model.Language, mode model.Mode) ([]string, error) {
	key := Key{Lang: lang, Mode: mode}
	texts, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPool, key)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPool, key)
	}
	return texts, nil
}

// Keys returns the pool keys sorted by language then mode.
func (p Pools) Keys() []Key {
	keys := make([]Key, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lang == keys[j].Lang {
			return keys[i].Mode > keys[j].Mode
		}
		return keys[i].Lang > keys[j].Lang
	})
	return keys
}

// Overlay returns base with every pool in extra replacing the matching base pool.
func Overlay(base, extra Pools) Pools {
	out := make(Pools, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// ParseKey parses a "<lang>-<mode>" file stem.
func ParseKey(stem string) (Key, error) {
	langPart, modePart, ok := strings.Cut(stem, "-")
	if !ok {
		return Key{}, fmt.Errorf("pool name %q must look like <lang>-<mode>", stem)
	}
	lang, err := model.ParseLanguage(langPart)
	if err != nil {
		return Key{}, err
	}
	mode, err := model.ParseMode(modePart)
	if err != nil {
		return Key{}, err
	}
	return Key{Lang: lang, Mode: mode}, nil
}

// LoadDir reads every <lang>-<mode>.txt file in dir. A missing dir yields no pools.
func LoadDir(dir string) (Pools, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Pools{}, nil
		}
		return nil, fmt.Errorf("failed to read texts directory: %w", err)
	}
	pools := Pools{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		key, err := ParseKey(strings.TrimSuffix(name, ".txt"))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		lines, err := LoadLines(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		pools[key] = FilterTexts(lines, FilterForLang(key.Lang))
	}
	return pools, nil
}

// LoadLines reads one text per line from the provided file path.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only text file.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
