//go:build ebiten

package cli

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"mad-sand/internal/app"
	"mad-sand/internal/config"
	"mad-sand/internal/session"
)

func runGUI(cmd *cobra.Command, cfg config.Config) error {
	logger := loggerFromContext(cmd.Context())
	s, err := session.FromConfig(cfg, logger)
	if err != nil {
		return err
	}
	game := app.New(s, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-sand: " + s.Kind())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
