// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidLanguage is returned for an unknown language name.
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrInvalidMode is returned for an unknown text mode.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrInvalidDuration is returned for a duration outside the allowed set.
	ErrInvalidDuration = errors.New("invalid duration")
)

// Language selects the text pool language.
type Language string

// Supported languages.
const (
	English Language = "english"
	Bengali Language = "bengali"
)

// Languages lists every supported language in display order.
var Languages = []Language{English, Bengali}

// ParseLanguage accepts full names and short codes.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "bengali", "bangla", "bn":
		return Bengali, nil
	}
	return "", fmt.Errorf("%w %q (want english or bengali)", ErrInvalidLanguage, s)
}

// Next returns the language after l, wrapping around.
func (l Language) Next() Language {
	if l == English {
		return Bengali
	}
	return English
}

// Label returns the name shown in the UI.
func (l Language) Label() string {
	if l == Bengali {
		return "বাংলা"
	}
	return "English"
}

// Mode selects between short sentences and long paragraphs.
type Mode string

// Supported modes.
const (
	Sentence  Mode = "sentence"
	Paragraph Mode = "paragraph"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{Sentence, Paragraph}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sentence", "sentences":
		return Sentence, nil
	case "paragraph", "paragraphs":
		return Paragraph, nil
	}
	return "", fmt.Errorf("%w %q (want sentence or paragraph)", ErrInvalidMode, s)
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	if m == Sentence {
		return Paragraph
	}
	return Sentence
}

// Duration is a test length in whole seconds.
type Duration int

// Durations is the fixed set of allowed test lengths.
var Durations = []Duration{15, 30, 60, 120}

// ParseDuration accepts "60" or "60s".
func ParseDuration(s string) (Duration, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidDuration, s)
	}
	d := Duration(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w %q (want one of %s)", ErrInvalidDuration, s, durationList())
	}
	return d, nil
}

// Valid reports whether d is one of the allowed durations.
func (d Duration) Valid() bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

// Next returns the next allowed duration, wrapping around.
func (d Duration) Next() Duration {
	for i, v := range Durations {
		if v == d {
			return Durations[(i+1)%len(Durations)]
		}
	}
	return Durations[0]
}

// Seconds returns d as an int.
func (d Duration) Seconds() int {
	return int(d)
}

func (d Duration) String() string {
	return strconv.Itoa(int(d)) + "s"
}

func durationList() string {
	parts := make([]string, len(Durations))
	for i, d := range Durations {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ", ")
}

// Config defines practice settings.
type Config struct {
	Lang       Language
	Mode       Mode
	Duration   Duration
	TextsDir   string
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
	WeakWindow int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang        Language
	Mode        Mode
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionStats captures a finished typing test.
type SessionStats struct {
	UUID        string
	StartedAt   time.Time
	EndedAt     time.Time
	Lang        Language
	Mode        Mode
	Duration    Duration
	TargetLen   int
	TotalChars  int
	Mistakes    int
	WPM         int
	Accuracy    int
	ElapsedSecs int
	Completed   bool
}

// Correct returns the number of correctly typed characters.
func (s SessionStats) Correct() int {
	return s.TotalChars - s.Mistakes
}

// CharStats stores per-character stats for a session.
type CharStats struct {
	Char      string
	Correct   int
	Incorrect int
}

// Aggregated per-char stats for selection or reporting.

// CharAggregate aggregates character stats across sessions.
type CharAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	UUID       string
	EndedAt    time.Time
	Lang       Language
	Mode       Mode
	Duration   Duration
	TotalChars int
	Mistakes   int
	WPM        int
	Accuracy   int
	Completed  bool
}
