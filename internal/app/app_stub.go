//go:build !ebiten

package app

import (
	"errors"

	"mad-sand/internal/config"
	"mad-sand/internal/session"

	"github.com/charmbracelet/log"
)

// ErrNoGUI reports that the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("app: GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns nil in the headless build.
func New(*session.Session, config.Config, *log.Logger) *Game { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
