package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Tagline  lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Helper   lipgloss.Style
	Banner   lipgloss.Style
	Panel    lipgloss.Style
	Overlay  lipgloss.Style
	OverlayT lipgloss.Style

	TileMatch   lipgloss.Style
	TilePartial lipgloss.Style
	TileMiss    lipgloss.Style
	Strike      lipgloss.Style
	StrikeUsed  lipgloss.Style
}

func DefaultTheme() Theme {
	ink := lipgloss.Color("#1A1B26")
	parchment := lipgloss.Color("#F5ECD7")
	green := lipgloss.Color("#3FB950")
	yellow := lipgloss.Color("#D29922")
	gray := lipgloss.Color("#6E7681")
	red := lipgloss.Color("#F85149")
	border := lipgloss.Color("#8B949E")

	tile := lipgloss.NewStyle().Padding(0, 1).Foreground(ink).Bold(true)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(parchment).Background(ink).Padding(0, 2),
		Tagline:  lipgloss.NewStyle().Faint(true).Italic(true),
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(gray),
		Error:    lipgloss.NewStyle().Foreground(red).Bold(true),
		Helper:   lipgloss.NewStyle().Foreground(yellow),
		Banner:   lipgloss.NewStyle().Foreground(green).Bold(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Overlay:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(border).Padding(1, 2),
		OverlayT: lipgloss.NewStyle().Bold(true).Underline(true),

		TileMatch:   tile.Background(green),
		TilePartial: tile.Background(yellow),
		TileMiss:    tile.Background(gray),
		Strike:      lipgloss.NewStyle().Foreground(green),
		StrikeUsed:  lipgloss.NewStyle().Foreground(gray),
	}
}
