// Package tui drives a session from the terminal with bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mad-sand/internal/core"
	"mad-sand/internal/session"
)

var (
	colorSand   = lipgloss.Color("179")
	colorDim    = lipgloss.Color("240")
	colorCyan   = lipgloss.Color("36")
	colorRed    = lipgloss.Color("167")
	colorCursor = lipgloss.Color("36")
)

var (
	cellStyle   = lipgloss.NewStyle().Foreground(colorSand)
	emptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
	cursorStyle = lipgloss.NewStyle().Reverse(true).Foreground(colorCursor)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

// shades maps the number of occupied levels at a position to a glyph.
var shades = []string{"·", "░", "▒", "▓", "█"}

const (
	glyphFull = "█"
	helpText  = "s step  space run/pause  c clear  ←↑↓→/hjkl move  enter/x toggle  [ ] level  r scatter  q quit"
)

type tickMsg time.Time

// Model is the bubbletea model for the terminal sandbox.
type Model struct {
	session *session.Session
	delay   time.Duration
	density float64
	seed    int64

	raster *core.ByteGrid
	row    uint32
	col    uint32

	status string
	failed bool
}

// New creates a model driving s, stepping every delay while running.
// Scatter uses density and seed, bumping the seed each time.
func New(s *session.Session, delay time.Duration, density float64, seed int64) Model {
	if delay <= 0 {
		delay = core.DefaultDelay
	}
	if density <= 0 {
		density = 0.2
	}
	return Model{
		session: s,
		delay:   delay,
		density: density,
		seed:    seed,
		raster:  core.NewByteGrid(0, 0),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.delay)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if _, err := m.session.Tick(); err != nil {
			m.setError(err)
		}
		return m, tick(m.delay)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.session.Grid()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s":
		if err := m.session.Step(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("stepped")
		}
	case " ", "space":
		if m.session.Toggle() {
			m.setStatus("running")
		} else {
			m.setStatus("paused")
		}
	case "c":
		m.session.Clear()
		m.setStatus("cleared")
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row+1 < g.Rows() {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col+1 < g.Cols() {
			m.col++
		}
	case "enter", "x":
		m.session.Flip(m.row, m.col)
	case "[":
		m.session.SetLevel(m.session.Level() - 1)
		m.setStatus(fmt.Sprintf("level %d", m.session.Level()))
	case "]":
		m.session.SetLevel(m.session.Level() + 1)
		m.setStatus(fmt.Sprintf("level %d", m.session.Level()))
	case "r":
		n := m.session.Scatter(m.density, m.seed)
		m.seed++
		m.setStatus(fmt.Sprintf("scattered %d cells", n))
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) clampCursor() {
	g := m.session.Grid()
	if g.Rows() > 0 && m.row >= g.Rows() {
		m.row = g.Rows() - 1
	}
	if g.Cols() > 0 && m.col >= g.Cols() {
		m.col = g.Cols() - 1
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.failed = true
}

// Cursor returns the cursor position.
func (m Model) Cursor() (uint32, uint32) { return m.row, m.col }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mad-sand: " + m.session.Kind()))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(m.renderGrid()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderGrid() string {
	core.Rasterize(m.session.Grid(), m.raster)
	var b strings.Builder
	for y := 0; y < m.raster.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.raster.W; x++ {
			glyph := Glyph(m.raster.At(x, y), m.session.Grid().Dims())
			switch {
			case uint32(y) == m.row && uint32(x) == m.col:
				b.WriteString(cursorStyle.Render(glyph))
			case m.raster.At(x, y) > 0:
				b.WriteString(cellStyle.Render(glyph))
			default:
				b.WriteString(emptyStyle.Render(glyph))
			}
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	snap := m.session.Parameters()
	var parts []string
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			parts = append(parts, fmt.Sprintf("%s %s", p.Label, p.Value))
		}
	}
	line := strings.Join(parts, " | ")
	if m.status == "" {
		return line
	}
	if m.failed {
		return line + "  " + errorStyle.Render(m.status)
	}
	return line + "  " + helpStyle.Render(m.status)
}

// Glyph returns the character drawn for a position holding n occupied
// levels.
func Glyph(n uint8, dims int) string {
	if n == 0 {
		return shades[0]
	}
	if dims == 2 {
		return glyphFull
	}
	if int(n) >= len(shades) {
		return shades[len(shades)-1]
	}
	return shades[n]
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(s *session.Session, delay time.Duration, density float64, seed int64, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(s, delay, density, seed), opts...).Run()
	return err
}
