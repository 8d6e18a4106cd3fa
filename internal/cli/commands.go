package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mad-sand/internal/core"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the automaton in a window",
		Long: `Gui opens a window showing the grid with a parameter panel. Left mouse
paints, right mouse erases, space toggles motion, S steps, C clears, B toggles
borders, [ and ] change the edit level, Q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runGUI(cmd, cfg)
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered automaton kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.KindNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
