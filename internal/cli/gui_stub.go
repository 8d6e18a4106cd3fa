//go:build !ebiten

package cli

import (
	"github.com/spf13/cobra"

	"mad-sand/internal/app"
	"mad-sand/internal/config"
)

func runGUI(*cobra.Command, config.Config) error {
	return app.ErrNoGUI
}
