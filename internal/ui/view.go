package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dyele/internal/daily"
	"dyele/internal/game"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayResults
	overlayHistory
	overlayIntro
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the single bubbletea model for the whole game screen.
type Model struct {
	ctrl  Controller
	theme Theme
	keys  keyMap
	help  help.Model
	input textinput.Model

	snap    Snapshot
	overlay overlay

	history       []game.HistoryEntry
	historyCursor int

	errText    string
	helperText string
	shareText  string
	banner     string

	width int
}

func New(ctrl Controller, names []string) Model {
	input := textinput.New()
	input.Placeholder = "Type a dye name…"
	input.Prompt = "> "
	input.CharLimit = 48
	input.SetSuggestions(names)
	input.ShowSuggestions = true
	input.Focus()

	m := Model{
		ctrl:  ctrl,
		theme: DefaultTheme(),
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: input,
		snap:  ctrl.Snapshot(),
	}
	if !ctrl.IntroDismissed() {
		m.overlay = overlayIntro
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// The rollover is idempotent: once the day key advances the
		// controller swaps in the new puzzle and later ticks are no-ops.
		if err := m.ctrl.Rollover(); err != nil {
			m.errText = err.Error()
		}
		m.snap = m.ctrl.Snapshot()
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}
		return m.updateGame(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Share):
		m.applyShare(m.ctrl.Share())
		return m, nil
	case key.Matches(msg, m.keys.History):
		return m.openHistory()
	case key.Matches(msg, m.keys.Practice):
		if err := m.ctrl.TogglePractice(m.snap.Mode != game.ModePractice); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.resetMessages()
		if m.snap.Mode != game.ModePractice {
			m.helperText = "Practice mode: guesses here never touch the daily puzzle."
		}
		m.snap = m.ctrl.Snapshot()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		if err := m.ctrl.ResetGame(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.resetMessages()
		if m.snap.Mode == game.ModePractice {
			m.helperText = "Practice reset. A new dye has been chosen."
		}
		m.snap = m.ctrl.Snapshot()
		return m, nil
	case key.Matches(msg, m.keys.Results):
		if m.snap.Status.Terminal() {
			m.ctrl.ReopenResults()
			m.snap = m.ctrl.Snapshot()
			m.overlay = overlayResults
		}
		return m, nil
	case key.Matches(msg, m.keys.Intro):
		m.overlay = overlayIntro
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.resetMessages()
	if err := m.ctrl.SubmitGuess(m.input.Value()); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.input.Reset()
	m.snap = m.ctrl.Snapshot()
	if m.ctrl.ConsumeWin() {
		m.banner = "🎉 Nailed it!"
	}
	if m.snap.Status.Terminal() {
		m.overlay = overlayResults
	}
	return m, nil
}

func (m Model) openHistory() (tea.Model, tea.Cmd) {
	entries, err := m.ctrl.History()
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.history = entries
	m.historyCursor = 0
	m.overlay = overlayHistory
	return m, nil
}

func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		if m.overlay == overlayResults {
			if err := m.ctrl.DismissResults(); err != nil {
				m.errText = err.Error()
			}
			m.snap = m.ctrl.Snapshot()
		}
		m.overlay = overlayNone
		m.shareText = ""
		return m, nil
	}

	switch m.overlay {
	case overlayResults:
		if key.Matches(msg, m.keys.Share) {
			m.applyShare(m.ctrl.Share())
		}
	case overlayHistory:
		switch msg.String() {
		case "up", "k":
			if m.historyCursor > 0 {
				m.historyCursor--
			}
		case "down", "j":
			if m.historyCursor < len(m.history)-1 {
				m.historyCursor++
			}
		case "enter":
			if len(m.history) > 0 {
				m.applyShare(m.ctrl.ShareHistory(m.history[m.historyCursor]))
			}
		}
	case overlayIntro:
		if msg.String() == "d" {
			dismissed := !m.ctrl.IntroDismissed()
			if err := m.ctrl.SetIntroDismissed(dismissed); err != nil {
				m.errText = err.Error()
			}
		}
	}
	return m, nil
}

func (m *Model) applyShare(res ShareResult) {
	if res.Copied {
		m.shareText = "Results copied to clipboard."
		return
	}
	// Clipboard is best effort: fall back to showing the text.
	m.shareText = "Copy your results:\n" + res.Message
}

func (m *Model) resetMessages() {
	m.errText = ""
	m.helperText = ""
	m.shareText = ""
	m.banner = ""
}

func (m Model) View() string {
	switch m.overlay {
	case overlayResults:
		return m.viewResults()
	case overlayHistory:
		return m.viewHistory()
	case overlayIntro:
		return m.viewIntro()
	}
	return m.viewGame()
}

func (m Model) viewGame() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("DYELE"))
	b.WriteString("\n")
	b.WriteString(m.theme.Tagline.Render("Guess the mystery food dye. Match the attribute tiles to uncover the daily formula."))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render(m.modeLine()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(m.theme.Error.Render(m.errText))
		b.WriteString("\n")
	}
	if m.helperText != "" {
		b.WriteString(m.theme.Helper.Render(m.helperText))
		b.WriteString("\n")
	}
	if m.banner != "" {
		b.WriteString(m.theme.Banner.Render(m.banner))
		b.WriteString("\n")
	}
	if m.shareText != "" {
		b.WriteString(m.theme.Helper.Render(m.shareText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.strikes())
	b.WriteString("\n\n")

	for _, row := range m.snap.Guesses {
		b.WriteString(m.renderGuessRow(row))
		b.WriteString("\n")
	}
	if len(m.snap.Guesses) == 0 {
		b.WriteString(m.theme.Muted.Render("No guesses yet. You have four tries."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) modeLine() string {
	if m.snap.Mode == game.ModePractice {
		return "Practice round"
	}
	return "Daily puzzle · " + m.snap.DayKey
}

func (m Model) strikes() string {
	var parts []string
	for i := 0; i < game.MaxAttempts; i++ {
		if i < m.snap.Remaining {
			parts = append(parts, m.theme.Strike.Render("●"))
		} else {
			parts = append(parts, m.theme.StrikeUsed.Render("○"))
		}
	}
	label := fmt.Sprintf(" %d of %d guesses left", m.snap.Remaining, game.MaxAttempts)
	return strings.Join(parts, " ") + m.theme.Muted.Render(label)
}

func (m Model) footer() string {
	if m.snap.Mode == game.ModePractice {
		return m.theme.Muted.Render("ctrl+r rerolls a new dye · ctrl+p returns to the daily puzzle")
	}
	return m.theme.Muted.Render("Next puzzle in " + daily.FormatCountdown(m.snap.Countdown))
}

func (m Model) renderGuessRow(row GuessRow) string {
	tiles := make([]string, 0, len(row.Feedback)+1)
	header := fmt.Sprintf("#%d %s", row.Index, row.Name)
	if row.ColorHex != "" {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(row.ColorHex)).Render("  ")
		header = swatch + " " + header
	}
	tiles = append(tiles, lipgloss.NewStyle().Width(24).Render(header))
	for _, fb := range row.Feedback {
		meta, ok := attributeMeta(fb.Key)
		if !ok {
			continue
		}
		tiles = append(tiles, m.tile(meta.Label, fb.Value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tiles...)
}

func attributeMeta(key game.AttributeKey) (game.AttributeMeta, bool) {
	for _, a := range game.Attributes {
		if a.Key == key {
			return a, true
		}
	}
	return game.AttributeMeta{}, false
}

func (m Model) tile(label string, v game.Feedback) string {
	text := label + " " + feedbackGlyph(v)
	switch v {
	case game.FeedbackMatch:
		return m.theme.TileMatch.Render(text)
	case game.FeedbackNoMatch:
		return m.theme.TileMiss.Render(text)
	default:
		return m.theme.TilePartial.Render(text)
	}
}

func feedbackGlyph(v game.Feedback) string {
	switch v {
	case game.FeedbackMatch:
		return "✓"
	case game.FeedbackHigher, game.FeedbackStricter:
		return "↑"
	case game.FeedbackLower, game.FeedbackLooser:
		return "↓"
	case game.FeedbackPartial:
		return "≈"
	default:
		return "✕"
	}
}

func (m Model) viewResults() string {
	var b strings.Builder
	title := "So close!"
	if m.snap.Status == game.StatusWon {
		title = "You got it!"
	}
	b.WriteString(m.theme.OverlayT.Render(title))
	b.WriteString("\n\n")
	if m.snap.Status == game.StatusWon {
		b.WriteString(fmt.Sprintf("Solved in %d/%d guesses.\n", m.snap.Attempts, game.MaxAttempts))
	} else {
		b.WriteString(fmt.Sprintf("Out of guesses after %d/%d.\n", m.snap.Attempts, game.MaxAttempts))
	}
	if t := m.snap.Target; t != nil {
		b.WriteString("\n")
		name := t.Name
		if t.CodeName != "" {
			name += " (" + t.CodeName + ")"
		}
		if t.ColorHex != "" {
			name = lipgloss.NewStyle().Background(lipgloss.Color(t.ColorHex)).Render("  ") + " " + name
		}
		b.WriteString(m.theme.Label.Render("The dye was "+name) + "\n")
		for _, fact := range t.Facts {
			b.WriteString(m.theme.Muted.Render("· "+fact) + "\n")
		}
	}
	if m.banner != "" {
		b.WriteString("\n" + m.theme.Banner.Render(m.banner) + "\n")
	}
	if m.shareText != "" {
		b.WriteString("\n" + m.theme.Helper.Render(m.shareText) + "\n")
	}
	b.WriteString("\n" + m.theme.Muted.Render("ctrl+s share · esc close"))
	return m.theme.Overlay.Render(b.String())
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayT.Render("History"))
	b.WriteString("\n\n")
	if len(m.history) == 0 {
		b.WriteString(m.theme.Muted.Render("Nothing here yet. Finish a puzzle first."))
	}
	for i, e := range m.history {
		cursor := "  "
		if i == m.historyCursor {
			cursor = "> "
		}
		label := e.DayKey
		if e.Practice {
			label = "Practice"
		}
		status := "✗"
		if e.Status == game.StatusWon {
			status = "✓"
		}
		b.WriteString(fmt.Sprintf("%s%s %s %d/%d\n", cursor, status, label, e.Attempts, game.MaxAttempts))
		if i == m.historyCursor {
			for _, line := range strings.Split(e.ShareGrid, "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	if m.shareText != "" {
		b.WriteString("\n" + m.theme.Helper.Render(m.shareText) + "\n")
	}
	b.WriteString("\n" + m.theme.Muted.Render("↑/↓ browse · enter copy · esc close"))
	return m.theme.Overlay.Render(b.String())
}

func (m Model) viewIntro() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayT.Render("How it works"))
	b.WriteString("\n\n")
	b.WriteString("A mystery food dye is chosen every day. Guess dyes by name and\n")
	b.WriteString("read the tiles: " + m.theme.TileMatch.Render("green ✓") + " matches, " +
		m.theme.TilePartial.Render("yellow ↑↓≈") + " points toward the\n")
	b.WriteString("target, " + m.theme.TileMiss.Render("gray ✕") + " misses. You get four guesses.\n\n")
	b.WriteString("The color tile stays out of shared results, so spoilers stay off\n")
	b.WriteString("your group chats.\n\n")
	mark := "[ ]"
	if m.ctrl.IntroDismissed() {
		mark = "[x]"
	}
	b.WriteString(m.theme.Muted.Render(mark+" d toggles \"don't show this again\"") + "\n")
	b.WriteString(m.theme.Muted.Render("esc close"))
	return m.theme.Overlay.Render(b.String())
}
