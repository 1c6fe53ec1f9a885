// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/verte-zerg/swifttype/internal/generator"
	"github.com/verte-zerg/swifttype/internal/model"
	"github.com/verte-zerg/swifttype/internal/session"
	statsPkg "github.com/verte-zerg/swifttype/internal/stats"
	"github.com/verte-zerg/swifttype/internal/store"
	"github.com/verte-zerg/swifttype/internal/texts"
)

const minWeakSamples = 3

// Model implements the Bubble Tea typing UI.
type Model struct {
	config model.Config
	store  *store.Store
	focus  *generator.WeakFocus
	engine *session.Engine
	ticks  *tickSource
	keys   keyMap
	help   help.Model
	now    func() time.Time

	width  int
	height int

	input     []rune
	startedAt time.Time
	errMsg    string

	lastWPM int
	lastAcc int
	hasLast bool

	allCount  int
	allWPMSum int
	allAccSum int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	promptStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#4F46E5")).Bold(true).Padding(0, 1)
	activeOptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#818CF8")).Bold(true).Underline(true)
	inactiveOptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle        = lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	resultBoxStyle = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4F46E5"))
)

var (
	amber   = lipgloss.Color("#D97706")
	indigo  = lipgloss.Color("#818CF8")
	emerald = lipgloss.Color("#10B981")
	rose    = lipgloss.Color("#F43F5E")
)

// NewModel constructs a typing TUI model and draws the first target text.
// st may be nil, in which case results are not saved.
func NewModel(cfg model.Config, pool texts.Provider, chooser generator.Chooser, st *store.Store) (*Model, error) {
	m := &Model{
		config: cfg,
		store:  st,
		ticks:  newTickSource(),
		keys:   newKeyMap(),
		help:   help.New(),
		now:    time.Now,
	}
	if wf, ok := chooser.(*generator.WeakFocus); ok {
		m.focus = wf
	}
	m.engine = session.NewEngine(pool, chooser, m.ticks)
	m.engine.OnTransition(m.onTransition)
	if err := m.engine.Reset(cfg.Lang, cfg.Mode, cfg.Duration); err != nil {
		return nil, err
	}
	m.loadFooterStats()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.ticks.handle(msg)
		return m, m.ticks.drain()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		return m, m.ticks.drain()
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	cfg := m.config
	finished := m.engine.Session().Status == session.Finished
	switch {
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Mode):
		m.reconfigure(cfg.Lang, cfg.Mode.Next(), cfg.Duration)
	case key.Matches(msg, m.keys.Language):
		m.reconfigure(cfg.Lang.Next(), cfg.Mode, cfg.Duration)
	case key.Matches(msg, m.keys.Duration):
		m.reconfigure(cfg.Lang, cfg.Mode, cfg.Duration.Next())
	case key.Matches(msg, m.keys.TryAgain):
		if finished {
			m.restart()
		}
	case key.Matches(msg, m.keys.DeleteWord):
		m.setInput(deleteLastWord(m.input))
	default:
		switch msg.Type {
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.setInput(m.input[:len(m.input)-1])
			}
		case tea.KeySpace:
			m.appendRunes([]rune{' '})
		case tea.KeyRunes:
			if msg.Paste || msg.Alt {
				return
			}
			m.appendRunes(msg.Runes)
		}
	}
}

// appendRunes feeds runes one at a time so a burst of keys cannot skip past
// the end of the target.
func (m *Model) appendRunes(runes []rune) {
	for _, r := range runes {
		next := make([]rune, 0, len(m.input)+1)
		next = append(next, m.input...)
		next = append(next, r)
		m.setInput(next)
	}
}

// setInput hands the full input to the engine and mirrors what it accepted.
func (m *Model) setInput(next []rune) {
	if m.engine.Session().Status == session.Finished {
		return
	}
	m.engine.OnInputChanged(string(next))
	m.input = []rune(m.engine.Session().Input)
}

func deleteLastWord(input []rune) []rune {
	end := len(input)
	for end > 0 && input[end-1] == ' ' {
		end--
	}
	for end > 0 && input[end-1] != ' ' {
		end--
	}
	return input[:end]
}

func (m *Model) reconfigure(lang model.Language, mode model.Mode, duration model.Duration) {
	if err := m.engine.Reconfigure(lang, mode, duration); err != nil {
		m.errMsg = err.Error()
		return
	}
	langChanged := lang != m.config.Lang
	m.config.Lang = lang
	m.config.Mode = mode
	m.config.Duration = duration
	m.clearAttempt()
	if langChanged {
		m.loadFooterStats()
		if m.focus != nil {
			m.refreshWeakSet()
		}
	}
}

func (m *Model) restart() {
	if err := m.engine.Restart(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.clearAttempt()
}

func (m *Model) clearAttempt() {
	m.input = nil
	m.startedAt = time.Time{}
	m.errMsg = ""
}

func (m *Model) onTransition(from, to session.Status, s session.Session) {
	switch {
	case from == session.Idle && to == session.Active:
		m.startedAt = m.now()
	case to == session.Finished:
		m.finishSession(s)
	}
}

func (m *Model) finishSession(s session.Session) {
	if s.TotalChars == 0 {
		return
	}
	endedAt := m.now()
	startedAt := m.startedAt
	if startedAt.IsZero() {
		startedAt = endedAt.Add(-time.Duration(s.Elapsed()) * time.Second)
	}
	result := s.Result(uuid.NewString(), startedAt, endedAt)

	m.lastWPM = result.WPM
	m.lastAcc = result.Accuracy
	m.hasLast = true
	m.allCount++
	m.allWPMSum += result.WPM
	m.allAccSum += result.Accuracy

	if m.store == nil {
		return
	}
	ctx := context.Background()
	if _, err := m.store.InsertSession(ctx, result, s.CharStats()); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
	if m.focus != nil {
		m.refreshWeakSet()
	}
}

func (m *Model) loadFooterStats() {
	m.hasLast = false
	m.allCount, m.allWPMSum, m.allAccSum = 0, 0, 0
	if m.store == nil {
		return
	}
	sessions, err := m.store.ListSessions(context.Background(), model.StatsConfig{Lang: m.config.Lang})
	if err != nil {
		logErrf("failed to load session stats: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	last := sessions[len(sessions)-1]
	m.lastWPM = last.WPM
	m.lastAcc = last.Accuracy
	m.hasLast = true
	for _, s := range sessions {
		m.allCount++
		m.allWPMSum += s.WPM
		m.allAccSum += s.Accuracy
	}
}

func (m *Model) refreshWeakSet() {
	if m.store == nil {
		return
	}
	aggs, err := m.store.GetWeakChars(context.Background(), m.config.WeakWindow, m.config.Lang)
	if err != nil {
		logErrf("failed to load weak chars: %v\n", err)
		return
	}
	m.focus.SetWeak(statsPkg.SelectWeakChars(aggs, m.config.WeakTop, minWeakSamples))
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	var body string
	if snap.Status == session.Finished {
		body = m.renderResults(snap)
	} else {
		body = m.renderTest(snap)
	}
	helpLine := m.renderHelp(snap)
	footer := m.renderFooter(snap)
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{body, helpLine, footer}, "\n")
	}
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 2
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	helpPlaced := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	footerPlaced := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return placed + "\n" + helpPlaced + "\n" + footerPlaced
}

func (m *Model) renderTest(snap session.Snapshot) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Time Left", fmt.Sprintf("%ds", snap.TimeRemaining), amber),
		statCard("WPM", fmt.Sprintf("%d", snap.WPM), indigo),
		statCard("Accuracy", fmt.Sprintf("%d%%", snap.Accuracy), emerald),
		statCard("Mistakes", fmt.Sprintf("%d", snap.Mistakes), rose),
	)

	cursor := -1
	if snap.Status == session.Active {
		cursor = snap.Cursor
	}
	styled := buildStyledRunes(snap.Chars, cursor)
	text := renderStyledRunes(styled)
	if m.width > 0 {
		contentWidth := int(float64(m.width) * 0.70)
		if contentWidth < 1 {
			contentWidth = 1
		}
		text = lipgloss.NewStyle().Width(contentWidth).Render(wrapStyledRunes(styled, contentWidth))
	}

	parts := []string{m.renderHeader(), "", cards, "", text, ""}
	if snap.Status == session.Idle && snap.Input == "" {
		parts = append(parts, promptStyle.Render("Start typing to begin"))
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderHeader() string {
	langs := make([]string, 0, len(model.Languages))
	for _, l := range model.Languages {
		langs = append(langs, option(l.Label(), l == m.config.Lang))
	}
	modes := make([]string, 0, len(model.Modes))
	for _, md := range model.Modes {
		modes = append(modes, option(string(md), md == m.config.Mode))
	}
	durations := make([]string, 0, len(model.Durations))
	for _, d := range model.Durations {
		durations = append(durations, option(d.String(), d == m.config.Duration))
	}
	return strings.Join([]string{
		titleStyle.Render("SwiftType"),
		strings.Join(langs, " "),
		strings.Join(modes, " "),
		strings.Join(durations, " "),
	}, "   ")
}

func option(label string, active bool) string {
	if active {
		return activeOptStyle.Render(label)
	}
	return inactiveOptStyle.Render(label)
}

func statCard(label, value string, color lipgloss.Color) string {
	valueStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardLabelStyle.Render(strings.ToUpper(label)),
		valueStyle.Render(value),
	))
}

func (m *Model) renderResults(snap session.Snapshot) string {
	speed := lipgloss.JoinVertical(lipgloss.Center,
		cardLabelStyle.Render("SPEED"),
		lipgloss.NewStyle().Foreground(indigo).Bold(true).Render(fmt.Sprintf("%d WPM", snap.WPM)),
	)
	acc := lipgloss.JoinVertical(lipgloss.Center,
		cardLabelStyle.Render("ACCURACY"),
		lipgloss.NewStyle().Foreground(emerald).Bold(true).Render(fmt.Sprintf("%d%%", snap.Accuracy)),
	)
	headline := lipgloss.JoinHorizontal(lipgloss.Top, speed, "      ", acc)

	rows := [][2]string{
		{"Total Characters", fmt.Sprintf("%d", snap.TotalChars)},
		{"Correct Characters", fmt.Sprintf("%d", snap.Correct())},
		{"Incorrect Characters", fmt.Sprintf("%d", snap.Mistakes)},
		{"Test Duration", snap.Duration.String()},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, resultRow(r[0], r[1], 32))
	}
	box := resultBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("Test Completed!"),
		cardLabelStyle.Render("Here's how you performed."),
		"",
		headline,
		"",
		strings.Join(lines, "\n"),
	))
	return lipgloss.JoinVertical(lipgloss.Center, m.renderHeader(), "", box)
}

func resultRow(label, value string, width int) string {
	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + lipgloss.NewStyle().Bold(true).Render(value)
}

func (m *Model) renderHelp(snap session.Snapshot) string {
	if snap.Status == session.Finished {
		return m.help.View(finishedHelp{m.keys})
	}
	return m.help.View(m.keys)
}

func (m *Model) renderFooter(snap session.Snapshot) string {
	if len(snap.Chars) == 0 {
		return ""
	}
	progress := int(float64(len([]rune(snap.Input))) / float64(len(snap.Chars)) * 100)
	if progress > 100 {
		progress = 100
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %d WPM · %d%%", m.lastWPM, m.lastAcc))
	}
	if m.allCount > 0 {
		avgWPM := float64(m.allWPMSum) / float64(m.allCount)
		avgAcc := float64(m.allAccSum) / float64(m.allCount)
		segments = append(segments, fmt.Sprintf("Avg %.1f WPM · %.1f%% over %d", avgWPM, avgAcc, m.allCount))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
