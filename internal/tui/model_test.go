package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscofloresen/cloudops-portfolio/internal/terminal"
)

type fakeSource struct{ snap terminal.Snapshot }

func (f *fakeSource) Snapshot() terminal.Snapshot { return f.snap }

func manyLines(n int) []terminal.Line {
	lines := make([]terminal.Line, n)
	for i := range lines {
		lines[i] = terminal.Line{Text: fmt.Sprintf("line %02d", i), Style: terminal.StyleMuted}
	}
	return lines
}

func TestModel_FollowsNewestLine(t *testing.T) {
	src := &fakeSource{}
	changes := make(chan struct{}, 1)
	m := New(src, changes, nil, "francisco@cloud-ops:~")

	src.snap = terminal.Snapshot{Phase: terminal.PhaseRunningPreamble, Lines: manyLines(40), Typing: "terra"}
	next, cmd := m.Update(changedMsg{})
	require.NotNil(t, cmd)
	m = next.(Model)

	assert.True(t, m.viewport.AtBottom())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "line 39")
	assert.NotContains(t, view, "line 00")
	assert.Contains(t, view, "> terra")
	assert.Contains(t, view, "running-preamble")
}

func TestModel_StopsWaitingWhenClosed(t *testing.T) {
	src := &fakeSource{snap: terminal.Snapshot{Phase: terminal.PhaseDone}}
	m := New(src, nil, nil, "")

	next, cmd := m.Update(changedMsg{closed: true})
	assert.Nil(t, cmd)
	assert.True(t, next.(Model).closed)
}

func TestModel_QuitCancelsSession(t *testing.T) {
	canceled := false
	m := New(&fakeSource{}, nil, func() { canceled = true }, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, canceled)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CursorBlinks(t *testing.T) {
	m := New(&fakeSource{}, nil, nil, "")
	next, cmd := m.Update(blinkMsg{})
	assert.NotNil(t, cmd)
	assert.False(t, next.(Model).cursorOn)
}

func TestModel_Resize(t *testing.T) {
	src := &fakeSource{snap: terminal.Snapshot{Lines: manyLines(30)}}
	m := New(src, nil, nil, "")
	next, _ := m.Update(changedMsg{})
	next, _ = next.(Model).Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = next.(Model)

	assert.Equal(t, 98, m.viewport.Width)
	assert.Equal(t, 15, m.viewport.Height)
	assert.True(t, m.viewport.AtBottom())
}

func TestRender_OrdersLinesBeforePrompt(t *testing.T) {
	snap := terminal.Snapshot{
		Lines: []terminal.Line{
			{Text: "> whoami", Style: terminal.StyleCommand},
			{Text: "francisco", Style: "unknown-tag"},
		},
		Typing: "ls",
	}
	out := ansi.Strip(Render(snap, false, 0))
	assert.Equal(t, "> whoami\nfrancisco\n> ls ", out)
}
