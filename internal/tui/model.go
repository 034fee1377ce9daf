// Package tui shows a terminal session in a bubbletea program. The viewport
// follows the newest line on every change.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/franciscofloresen/cloudops-portfolio/internal/terminal"
)

const (
	blinkInterval = 400 * time.Millisecond
	defaultWidth  = 72
	defaultHeight = 14
	// chromeHeight is the frame border, title bar and help line.
	chromeHeight = 5
)

// Source is the part of a session the model reads from.
type Source interface {
	Snapshot() terminal.Snapshot
}

type changedMsg struct{ closed bool }

type blinkMsg struct{}

type Model struct {
	source  Source
	changes <-chan struct{}
	cancel  context.CancelFunc
	title   string

	viewport viewport.Model
	snap     terminal.Snapshot
	cursorOn bool
	closed   bool
}

// New builds a model that re-renders whenever changes fires and calls
// cancel when the user quits.
func New(source Source, changes <-chan struct{}, cancel context.CancelFunc, title string) Model {
	vp := viewport.New(defaultWidth, defaultHeight)
	return Model{
		source:   source,
		changes:  changes,
		cancel:   cancel,
		title:    title,
		viewport: vp,
		cursorOn: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), blink())
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-ch
		return changedMsg{closed: !ok}
	}
}

func blink() tea.Cmd {
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg { return blinkMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-2, 10)
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.refresh()
		return m, nil

	case changedMsg:
		m.snap = m.source.Snapshot()
		m.refresh()
		if msg.closed {
			m.closed = true
			return m, nil
		}
		return m, waitForChange(m.changes)

	case blinkMsg:
		m.cursorOn = !m.cursorOn
		m.refresh()
		return m, blink()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the log and pins the viewport to its last line.
func (m *Model) refresh() {
	m.viewport.SetContent(Render(m.snap, m.cursorOn, m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	dots := make([]string, len(dotStyles))
	for i, s := range dotStyles {
		dots[i] = s.Render("●")
	}
	bar := strings.Join(dots, " ") + titleStyle.Render(m.title)
	status := m.snap.Phase.String()
	help := helpStyle.Render(status + " • q to quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, bar, m.viewport.View())),
		help,
	)
}

// Render draws committed lines followed by the active input line.
func Render(snap terminal.Snapshot, cursorOn bool, width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}
	for _, line := range snap.Lines {
		b.WriteString(wrap.Render(styleFor(line.Style).Render(line.Text)))
		b.WriteByte('\n')
	}
	cursor := " "
	if cursorOn {
		cursor = cursorStyle.Render(" ")
	}
	b.WriteString(promptStyle.Render(">") + " " + promptStyle.UnsetBold().Render(snap.Typing) + cursor)
	return b.String()
}
