//go:build ebiten

package app

import (
	"image/color"

	"mad-sand/internal/config"
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/session"
	"mad-sand/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth     = 220
	minHUDHeight = 320
)

var (
	sandColor  = color.RGBA{R: 230, G: 196, B: 120, A: 255}
	emptyColor = color.RGBA{R: 12, G: 12, B: 16, A: 255}
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	logger  *log.Logger
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	step    *core.FixedStep

	cellWidth int
	borders   bool
	editable  bool
}

// New constructs a Game for s using the view settings in cfg.
func New(s *session.Session, cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	levels := 1
	if lg, ok := s.Grid().(interface{ Levels() uint32 }); ok && lg.Levels() > 0 {
		levels = int(lg.Levels())
	}
	cw := cfg.CellWidth
	if cw <= 0 {
		cw = 1
	}
	return &Game{
		session:   s,
		logger:    logger,
		painter:   render.NewGridPainter(render.DepthPalette(sandColor, emptyColor, levels)),
		overlay:   ui.NewOverlay(cw),
		hud:       ui.NewHUD(s, "mad-sand: "+s.Kind(), hudWidth),
		step:      core.NewFixedStep(cfg.Delay),
		cellWidth: cw,
		borders:   cfg.Borders,
		editable:  cfg.Editable,
	}
}

// Update handles per-frame input and advances the session on the step clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Toggle()
		g.step.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.session.Step(); err != nil {
			g.logger.Error("step failed", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.borders = !g.borders
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.session.SetLevel(g.session.Level() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.session.SetLevel(g.session.Level() + 1)
	}

	grid := g.session.Grid()
	g.overlay.Update(grid.Rows(), grid.Cols())
	consumed := g.hud.Update(g.gridWidth())
	if g.editable && !consumed {
		g.handlePointer()
	}

	if g.step.ShouldStep() {
		if _, err := g.session.Tick(); err != nil {
			g.logger.Error("tick failed", "err", err)
		}
	}
	return nil
}

func (g *Game) handlePointer() {
	row, col, ok := g.overlay.Hovered()
	for _, b := range []struct {
		button ebiten.MouseButton
		tool   session.Tool
	}{
		{ebiten.MouseButtonLeft, session.ToolPaint},
		{ebiten.MouseButtonRight, session.ToolErase},
	} {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.button) && ok:
			g.session.Press(b.tool, row, col)
		case inpututil.IsMouseButtonJustReleased(b.button):
			g.session.Release(b.tool)
		case ebiten.IsMouseButtonPressed(b.button) && ok && g.session.Tool() == b.tool:
			g.session.Drag(row, col)
		}
	}
	switch g.session.Tool() {
	case session.ToolErase:
		g.overlay.SetTint(color.RGBA{R: 255, G: 110, B: 90, A: 220})
	case session.ToolPaint:
		g.overlay.SetTint(sandColor)
	default:
		g.overlay.SetTint(color.RGBA{R: 120, G: 200, B: 255, A: 200})
	}
}

// Draw renders the grid, the pointer highlight and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(emptyColor)
	grid := g.session.Grid()
	g.painter.Blit(screen, grid, g.cellWidth)
	if g.borders {
		g.painter.DrawBorders(screen, grid.Rows(), grid.Cols(), g.cellWidth, g.cellWidth >= 4)
	}
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.gridWidth(), h)
}

func (g *Game) gridWidth() int {
	return int(g.session.Grid().Cols()) * g.cellWidth
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h := int(g.session.Grid().Rows()) * g.cellWidth
	if h < minHUDHeight {
		h = minHUDHeight
	}
	return g.gridWidth() + g.hud.Width(), h
}
