package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-sand/internal/core"
	"mad-sand/internal/session"
	_ "mad-sand/internal/sims/fall"
)

func newModel(t *testing.T, kind string, rows, cols uint32) Model {
	t.Helper()
	grid := core.Kinds()[kind](core.Size{Rows: rows, Cols: cols, Levels: 2})
	s := session.New(kind, grid, log.New(io.Discard))
	return New(s, 10*time.Millisecond, 0.5, 1)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestCursorMovesAndClamps(t *testing.T) {
	m := newModel(t, "fall", 3, 3)
	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("l"))
	row, col := m.Cursor()
	assert.Equal(t, uint32(2), row)
	assert.Equal(t, uint32(1), col)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	row, col = m.Cursor()
	assert.Equal(t, uint32(1), row)
	assert.Equal(t, uint32(0), col)
}

func TestToggleCellAndStep(t *testing.T) {
	m := newModel(t, "fall", 3, 3)
	m = press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	g := m.session.Grid()
	assert.True(t, g.Has(core.At(0, 1)))

	m = press(t, m, runes("s"))
	assert.True(t, g.Has(core.At(1, 1)))
	assert.Equal(t, 1, m.session.Steps())

	m = press(t, m, runes("x"))
	assert.True(t, g.Has(core.At(0, 1)))
	assert.Equal(t, 2, g.Len())
}

func TestTickStepsOnlyWhileRunning(t *testing.T) {
	m := newModel(t, "fall", 4, 1)
	m = press(t, m, runes("x"))

	m = press(t, m, tickMsg(time.Now()))
	assert.True(t, m.session.Grid().Has(core.At(0, 0)))

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.session.Running())
	m = press(t, m, tickMsg(time.Now()), tickMsg(time.Now()))
	assert.True(t, m.session.Grid().Has(core.At(2, 0)))

	next, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticks keep rescheduling")
	m = next.(Model)

	m = press(t, m, runes("c"))
	assert.False(t, m.session.Running())
	assert.Zero(t, m.session.Grid().Len())
}

func TestQuit(t *testing.T) {
	m := newModel(t, "fall", 2, 2)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestScatterBumpsSeed(t *testing.T) {
	m := newModel(t, "fall", 6, 6)
	m = press(t, m, runes("r"))
	first := m.session.Grid().Len()
	assert.Positive(t, first)
	assert.Equal(t, int64(2), m.seed)
	assert.Contains(t, m.status, "scattered")
}

func TestLevelKeys(t *testing.T) {
	m := newModel(t, "fall3d", 3, 3)
	m = press(t, m, runes("]"))
	assert.Equal(t, int32(1), m.session.Level())
	m = press(t, m, runes("]"), runes("x"))
	assert.True(t, m.session.Grid().Has(core.At3(0, 0, 1)))
	m = press(t, m, runes("["), runes("["))
	assert.Equal(t, int32(0), m.session.Level())
}

func TestView(t *testing.T) {
	m := newModel(t, "fall", 2, 3)
	m = press(t, m, runes("l"), runes("l"), runes("x"))
	view := m.View()

	assert.Contains(t, view, "mad-sand: fall")
	assert.Contains(t, view, glyphFull)
	assert.Contains(t, view, "Cells 1")
	assert.Contains(t, view, "q quit")
	assert.Contains(t, view, "···", "empty cells are drawn")
	assert.Equal(t, 5, strings.Count(view, "·"))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "·", Glyph(0, 2))
	assert.Equal(t, glyphFull, Glyph(3, 2))
	assert.Equal(t, "░", Glyph(1, 3))
	assert.Equal(t, "█", Glyph(200, 3))
}
