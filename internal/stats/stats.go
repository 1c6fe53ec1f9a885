// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/swifttype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a list of stored sessions.
type Summary struct {
	Sessions    int
	Completed   int
	AvgWPM      float64
	BestWPM     int
	AvgAccuracy float64
	TotalChars  int
	Mistakes    int
}

// Summarize computes averages over sessions.
func Summarize(sessions []model.SessionAggregate) Summary {
	var sum Summary
	if len(sessions) == 0 {
		return sum
	}
	var totalWPM, totalAcc int
	for _, s := range sessions {
		totalWPM += s.WPM
		totalAcc += s.Accuracy
		if s.WPM > sum.BestWPM {
			sum.BestWPM = s.WPM
		}
		if s.Completed {
			sum.Completed++
		}
		sum.TotalChars += s.TotalChars
		sum.Mistakes += s.Mistakes
	}
	sum.Sessions = len(sessions)
	sum.AvgWPM = float64(totalWPM) / float64(len(sessions))
	sum.AvgAccuracy = float64(totalAcc) / float64(len(sessions))
	return sum
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Resample squeezes or stretches values to width points by nearest index.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	if width == 1 {
		return values[len(values)-1:]
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(width-1)]
	}
	return out
}

// RenderSummary prints a summary for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	sum := Summarize(sessions)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d (%d completed)", sum.Sessions, sum.Completed),
		fmt.Sprintf("Avg WPM: %.1f", sum.AvgWPM),
		fmt.Sprintf("Best WPM: %d", sum.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.1f%%", sum.AvgAccuracy),
		fmt.Sprintf("Characters: %s typed, %s mistakes", humanize.Comma(int64(sum.TotalChars)), humanize.Comma(int64(sum.Mistakes))),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints WPM and accuracy sparklines smoothed over window sessions.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	wpms, accs := Series(sessions)
	wpms = Resample(MovingAverage(wpms, window), width)
	accs = Resample(MovingAverage(accs, window), width)
	if _, err := fmt.Fprintf(w, "Learning Curves (window %d)\n", window); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "WPM      [%s] %.1f\n", Sparkline(wpms), wpms[len(wpms)-1]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy [%s] %.1f%%\n\n", Sparkline(accs), accs[len(accs)-1]); err != nil {
		return err
	}
	return nil
}

// Series extracts WPM and accuracy values in session order.
func Series(sessions []model.SessionAggregate) (wpms, accs []float64) {
	wpms = make([]float64, len(sessions))
	accs = make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i] = float64(s.WPM)
		accs[i] = float64(s.Accuracy)
	}
	return wpms, accs
}

// HistoryRows formats the newest sessions first, at most limit rows (0 = all).
func HistoryRows(sessions []model.SessionAggregate, now time.Time, limit int) [][]string {
	rows := make([][]string, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		if limit > 0 && len(rows) >= limit {
			break
		}
		s := sessions[i]
		done := ""
		if s.Completed {
			done = "✓"
		}
		rows = append(rows, []string{
			humanize.RelTime(s.EndedAt, now, "ago", "from now"),
			string(s.Lang),
			string(s.Mode),
			s.Duration.String(),
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%d%%", s.Accuracy),
			fmt.Sprintf("%d", s.Mistakes),
			done,
		})
	}
	return rows
}

// HistoryHeaders are the column titles for HistoryRows.
var HistoryHeaders = []string{"When", "Lang", "Mode", "Time", "WPM", "Acc", "Miss", "Done"}

// RenderHistory prints the most recent sessions as a table.
func RenderHistory(w io.Writer, sessions []model.SessionAggregate, now time.Time, limit int) error {
	if len(sessions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recent Sessions"); err != nil {
		return err
	}
	rightAlign := map[int]bool{3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(HistoryHeaders, HistoryRows(sessions, now, limit), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// CharRow is one per-character table row.
type CharRow struct {
	Char      string
	Accuracy  float64
	Correct   int
	Incorrect int
}

// CharRows converts aggregates into rows sorted by lowest accuracy.
func CharRows(aggs []model.CharAggregate) []CharRow {
	rows := make([]CharRow, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, CharRow{
			Char:      agg.Char,
			Accuracy:  charAccuracy(agg),
			Correct:   agg.Correct,
			Incorrect: agg.Incorrect,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Accuracy == rows[j].Accuracy {
			return rows[i].Char < rows[j].Char
		}
		return rows[i].Accuracy < rows[j].Accuracy
	})
	return rows
}

// RenderCharTable prints per-character aggregates.
func RenderCharTable(w io.Writer, aggs []model.CharAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No character stats found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Character (Windowed)"); err != nil {
		return err
	}

	headers := []string{"Char", "Accuracy", "Correct", "Incorrect"}
	rows := CharRows(aggs)
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Char,
			fmt.Sprintf("%.2f%%", r.Accuracy*100),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Incorrect),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
