// Package session holds the driver-side state around a grid: step counting,
// run/pause, pointer tools and seeding. Every front end (window, terminal,
// headless runner) drives the automaton through a Session, one call at a
// time.
package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"mad-sand/internal/config"
	"mad-sand/internal/core"
	"mad-sand/internal/pattern"
)

// Tool is the pointer action currently held down.
type Tool int

const (
	ToolNone Tool = iota
	ToolPaint
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolErase:
		return "erase"
	default:
		return "none"
	}
}

type leveled interface {
	Levels() uint32
}

// Session wraps a grid for interactive or batch use.
type Session struct {
	kind   string
	grid   core.Grid
	logger *log.Logger

	steps   int
	running bool
	level   int32

	tool     Tool
	pointer  core.Cell
	hasPoint bool
}

// New wraps grid. A nil logger falls back to log.Default().
func New(kind string, grid core.Grid, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{kind: kind, grid: grid, logger: logger.With("kind", kind)}
}

// FromConfig builds the grid registered under cfg.Kind, then loads the
// configured pattern and random scatter.
func FromConfig(cfg config.Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, ok := core.Kinds()[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalid, cfg.Kind)
	}
	s := New(cfg.Kind, factory(cfg.Size()), logger)
	if cfg.Pattern != "" {
		p, err := pattern.Load(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		if _, err := s.Stamp(p, 0, 0); err != nil {
			return nil, err
		}
	}
	if cfg.Density > 0 {
		s.Scatter(cfg.Density, cfg.Seed)
	}
	s.logger.Debug("session ready", "rows", cfg.Rows, "cols", cfg.Cols, "cells", s.grid.Len())
	return s, nil
}

// Grid returns the wrapped grid.
func (s *Session) Grid() core.Grid { return s.grid }

// Kind returns the registry name the grid was built from.
func (s *Session) Kind() string { return s.kind }

// Steps returns the number of steps taken since the last Clear.
func (s *Session) Steps() int { return s.steps }

// Running reports whether Tick advances the grid.
func (s *Session) Running() bool { return s.running }

// Step advances the grid once regardless of the run state.
func (s *Session) Step() error {
	if err := s.grid.Step(); err != nil {
		if errors.Is(err, core.ErrNoLogic) {
			s.logger.Warn("step skipped", "err", err)
		}
		return err
	}
	s.steps++
	return nil
}

// Tick re-applies a held pointer tool and then steps when running. It
// reports whether a step was taken.
func (s *Session) Tick() (bool, error) {
	if s.tool != ToolNone && s.hasPoint {
		s.apply(s.pointer.Row, s.pointer.Col)
	}
	if !s.running {
		return false, nil
	}
	if err := s.Step(); err != nil {
		return false, err
	}
	return true, nil
}

// Toggle flips between running and paused and returns the new state.
func (s *Session) Toggle() bool {
	s.running = !s.running
	s.logger.Debug("motion toggled", "running", s.running)
	return s.running
}

// Pause stops automatic stepping.
func (s *Session) Pause() { s.running = false }

// Resume starts automatic stepping.
func (s *Session) Resume() { s.running = true }

// Clear stops motion, empties the grid and resets the step counter.
func (s *Session) Clear() {
	s.Pause()
	s.grid.Clear()
	s.steps = 0
	s.logger.Info("grid cleared")
}

// Level returns the level painted cells are placed on.
func (s *Session) Level() int32 { return s.level }

// SetLevel selects the edit level, clamped to the grid's level bound. It
// reports whether the level changed; 2D grids always stay on level 0.
func (s *Session) SetLevel(level int32) bool {
	g, ok := s.grid.(leveled)
	if !ok || g.Levels() == 0 {
		return false
	}
	if level < 0 {
		level = 0
	}
	if top := int32(g.Levels()) - 1; level > top {
		level = top
	}
	if level == s.level {
		return false
	}
	s.level = level
	return true
}

func (s *Session) inBounds(row, col uint32) bool {
	return row < s.grid.Rows() && col < s.grid.Cols()
}

// Paint occupies (row, col) on the edit level. Positions outside the grid
// are rejected. It reports whether the cell was newly occupied.
func (s *Session) Paint(row, col uint32) bool {
	if !s.inBounds(row, col) {
		return false
	}
	c := core.At3(row, col, s.level)
	if s.grid.Has(c) {
		return false
	}
	s.grid.Add(c)
	return true
}

// Erase frees (row, col) on the edit level. It reports whether a cell was
// removed.
func (s *Session) Erase(row, col uint32) bool {
	if !s.inBounds(row, col) {
		return false
	}
	return s.grid.Remove(core.At3(row, col, s.level))
}

// Flip paints an empty position or erases an occupied one.
func (s *Session) Flip(row, col uint32) bool {
	if !s.inBounds(row, col) {
		return false
	}
	if s.grid.Has(core.At3(row, col, s.level)) {
		return s.Erase(row, col)
	}
	return s.Paint(row, col)
}

// Press starts holding tool at (row, col). Presses outside the grid are
// ignored.
func (s *Session) Press(tool Tool, row, col uint32) bool {
	if tool == ToolNone || !s.inBounds(row, col) {
		return false
	}
	s.tool = tool
	s.apply(row, col)
	return true
}

// Drag moves the held tool to (row, col).
func (s *Session) Drag(row, col uint32) bool {
	if s.tool == ToolNone || !s.inBounds(row, col) {
		return false
	}
	return s.apply(row, col)
}

// Release stops holding tool. Releasing a tool that is not held is a no-op.
func (s *Session) Release(tool Tool) bool {
	if s.tool == ToolNone || s.tool != tool {
		return false
	}
	s.tool = ToolNone
	s.hasPoint = false
	return true
}

// Tool returns the held tool.
func (s *Session) Tool() Tool { return s.tool }

func (s *Session) apply(row, col uint32) bool {
	s.pointer = core.At(row, col)
	s.hasPoint = true
	switch s.tool {
	case ToolPaint:
		return s.Paint(row, col)
	case ToolErase:
		return s.Erase(row, col)
	}
	return false
}

// Resize changes the grid bounds; cells outside the new bounds are dropped.
func (s *Session) Resize(rows, cols uint32) {
	before := s.grid.Len()
	s.grid.SetRows(rows)
	s.grid.SetCols(cols)
	s.logger.Info("grid resized", "rows", rows, "cols", cols, "pruned", before-s.grid.Len())
}

// Scatter seeds the grid randomly and returns the number of cells added.
func (s *Session) Scatter(density float64, seed int64) int {
	n := core.NewRNG(seed).Scatter(s.grid, density)
	s.logger.Debug("scattered cells", "added", n, "density", density, "seed", seed)
	return n
}

// Stamp applies p at (rowOff, colOff).
func (s *Session) Stamp(p *pattern.Pattern, rowOff, colOff uint32) (int, error) {
	n, err := p.Apply(s.grid, rowOff, colOff)
	if err != nil {
		return 0, err
	}
	s.logger.Info("pattern applied", "name", p.Name, "added", n)
	return n, nil
}

// Parameters returns the values shown by front ends.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := "paused"
	if s.running {
		state = "running"
	}
	grid := []core.Parameter{
		intParam("rows", "Rows", int(s.grid.Rows())),
		intParam("cols", "Cols", int(s.grid.Cols())),
	}
	if g, ok := s.grid.(leveled); ok {
		grid = append(grid,
			intParam("levels", "Levels", int(g.Levels())),
			intParam("level", "Edit level", int(s.level)),
		)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: grid},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: state},
				intParam("steps", "Steps", s.steps),
				intParam("cells", "Cells", s.grid.Len()),
				{Key: "tool", Label: "Tool", Type: core.ParamTypeString, Value: s.tool.String()},
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "cols", Label: "Cols", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	}
	if g, ok := s.grid.(leveled); ok && g.Levels() > 0 {
		controls = append(controls, core.ParameterControl{
			Key: "level", Label: "Edit level", Type: core.ParamTypeInt, Step: 1,
			Min: 0, HasMin: true, Max: float64(g.Levels() - 1), HasMax: true,
		})
	}
	return controls
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "rows":
		if value <= 0 {
			return false
		}
		s.Resize(uint32(value), s.grid.Cols())
		return true
	case "cols":
		if value <= 0 {
			return false
		}
		s.Resize(s.grid.Rows(), uint32(value))
		return true
	case "level":
		return s.SetLevel(int32(value))
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
