package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"mad-sand/internal/config"
	"mad-sand/internal/session"
	"mad-sand/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the automaton interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			s, err := newTUISession(cfg)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("starting terminal view", "kind", s.Kind())
			return tui.Run(s, cfg.Delay, cfg.Density, cfg.Seed,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}

// newTUISession builds a session whose logs are discarded; the terminal
// belongs to the alt-screen view while it runs. Errors are still returned.
func newTUISession(cfg config.Config) (*session.Session, error) {
	return session.FromConfig(cfg, log.NewWithOptions(io.Discard, log.Options{}))
}
