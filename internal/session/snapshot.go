package session

import (
	"sort"
	"time"

	"github.com/verte-zerg/swifttype/internal/model"
)

// CharStatus is the match state of one target character.
type CharStatus int

// Character match states.
const (
	Pending CharStatus = iota
	Correct
	Incorrect
)

// Char is one target rune with its match state.
type Char struct {
	Rune   rune
	Status CharStatus
}

// Snapshot is the read-only view of a session consumed by renderers.
type Snapshot struct {
	Status        Status
	Lang          model.Language
	Mode          model.Mode
	Duration      model.Duration
	TimeRemaining int
	WPM           int
	Accuracy      int
	Mistakes      int
	TotalChars    int
	Target        string
	Input         string
	Chars         []Char
	// Cursor is the index of the next target rune, or -1 once the target is covered.
	Cursor int
}

// Correct returns the number of correctly typed characters.
func (s Snapshot) Correct() int {
	return s.TotalChars - s.Mistakes
}

// Snapshot builds the view model for s.
func (s Session) Snapshot() Snapshot {
	target := []rune(s.Target)
	typed := []rune(s.Input)
	chars := make([]Char, len(target))
	for i, r := range target {
		status := Pending
		if i < len(typed) {
			if typed[i] == r {
				status = Correct
			} else {
				status = Incorrect
			}
		}
		chars[i] = Char{Rune: r, Status: status}
	}
	cursor := -1
	if len(typed) < len(target) {
		cursor = len(typed)
	}
	return Snapshot{
		Status:        s.Status,
		Lang:          s.Lang,
		Mode:          s.Mode,
		Duration:      s.Duration,
		TimeRemaining: s.TimeRemaining,
		WPM:           s.WPM,
		Accuracy:      s.Accuracy,
		Mistakes:      s.Mistakes,
		TotalChars:    s.TotalChars,
		Target:        s.Target,
		Input:         s.Input,
		Chars:         chars,
		Cursor:        cursor,
	}
}

// CharStats tallies typed positions per expected non-space rune, sorted by rune.
func (s Session) CharStats() []model.CharStats {
	target := []rune(s.Target)
	typed := []rune(s.Input)
	byChar := map[rune]*model.CharStats{}
	for i, r := range typed {
		if i >= len(target) {
			break
		}
		expected := target[i]
		if expected == ' ' {
			continue
		}
		entry, ok := byChar[expected]
		if !ok {
			entry = &model.CharStats{Char: string(expected)}
			byChar[expected] = entry
		}
		if r == expected {
			entry.Correct++
		} else {
			entry.Incorrect++
		}
	}
	out := make([]model.CharStats, 0, len(byChar))
	for _, entry := range byChar {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// Result converts a session into a storable record.
func (s Session) Result(id string, startedAt, endedAt time.Time) model.SessionStats {
	return model.SessionStats{
		UUID:        id,
		StartedAt:   startedAt,
		EndedAt:     endedAt,
		Lang:        s.Lang,
		Mode:        s.Mode,
		Duration:    s.Duration,
		TargetLen:   len([]rune(s.Target)),
		TotalChars:  s.TotalChars,
		Mistakes:    s.Mistakes,
		WPM:         s.WPM,
		Accuracy:    s.Accuracy,
		ElapsedSecs: s.Elapsed(),
		Completed:   s.Completed(),
	}
}
