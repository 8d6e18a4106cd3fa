// Package cli implements the ca command-line interface.
//
// The root command carries the shared grid configuration as persistent
// flags, optionally layered over a TOML file given with --config. Commands:
//   - run: step headlessly and print the final grid or save it as a pattern
//   - tui: interactive terminal view
//   - gui: window view (requires the ebiten build tag)
//   - kinds: list registered automaton kinds
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"mad-sand/internal/config"
	_ "mad-sand/internal/sims/fall"
)

// options holds the root flags shared by every subcommand.
type options struct {
	verbose    bool
	configPath string
	flags      config.Config
}

// Execute runs the CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{flags: config.DefaultConfig()}

	root := &cobra.Command{
		Use:           "ca",
		Short:         "Falling-sand cellular automaton",
		Long:          `ca runs a falling-sand cellular automaton on a bounded 2D or 3D grid, headless, in the terminal or in a window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&opts.configPath, "config", "", "TOML config file")
	opts.flags.Bind(pf)

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newGUICmd(opts))
	root.AddCommand(newKindsCmd())
	return root
}

// resolve builds the effective config: defaults, then the --config file,
// then any flag set explicitly on the command line.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	base := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		base = loaded
		loggerFromContext(cmd.Context()).Debug("config loaded", "path", o.configPath)
	}
	cfg := config.Merge(base, o.flags, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
