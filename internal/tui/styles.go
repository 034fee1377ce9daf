package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/franciscofloresen/cloudops-portfolio/internal/terminal"
)

var (
	slate  = lipgloss.Color("252")
	muted  = lipgloss.Color("245")
	green  = lipgloss.Color("77")
	mint   = lipgloss.Color("115")
	cyan   = lipgloss.Color("44")
	yellow = lipgloss.Color("221")
	blue   = lipgloss.Color("75")
	border = lipgloss.Color("238")
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
	titleStyle  = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	cursorStyle = lipgloss.NewStyle().Background(cyan)
	helpStyle   = lipgloss.NewStyle().Foreground(border)
)

// Window buttons, left to right.
var dotStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	lipgloss.NewStyle().Foreground(yellow),
	lipgloss.NewStyle().Foreground(green),
}

var lineStyles = map[string]lipgloss.Style{
	terminal.StyleCommand:  lipgloss.NewStyle().Foreground(slate),
	terminal.StyleMuted:    lipgloss.NewStyle().Foreground(muted),
	terminal.StyleSuccess:  lipgloss.NewStyle().Foreground(green),
	terminal.StyleAdded:    lipgloss.NewStyle().Foreground(mint),
	terminal.StyleAccent:   lipgloss.NewStyle().Foreground(cyan),
	terminal.StyleWarn:     lipgloss.NewStyle().Foreground(yellow),
	terminal.StyleInfo:     lipgloss.NewStyle().Foreground(blue),
	terminal.StyleGreeting: lipgloss.NewStyle().Foreground(green).Bold(true),
	terminal.StyleStatus: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(border),
}

// styleFor maps a style tag to its look; unknown tags render plain.
func styleFor(tag string) lipgloss.Style {
	if s, ok := lineStyles[tag]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(slate)
}
