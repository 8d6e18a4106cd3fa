package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mad-sand/internal/core"
	"mad-sand/internal/pattern"
	"mad-sand/internal/session"
	"mad-sand/internal/tui"
)

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

func newRunCmd(opts *options) *cobra.Command {
	var (
		steps int
		out   string
		quiet bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the automaton headlessly and print the result",
		Long: `Run builds the configured grid, advances it --steps times and prints the
final state. With --out the final state is also saved as a YAML pattern.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative, got %d", steps)
			}
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			s, err := session.FromConfig(cfg, logger)
			if err != nil {
				return err
			}
			for i := 0; i < steps; i++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if err := s.Step(); err != nil {
					return err
				}
			}
			logger.Info("run finished", "steps", s.Steps(), "cells", s.Grid().Len())
			if out != "" {
				if err := pattern.FromGrid(s.Kind(), s.Grid()).Save(out); err != nil {
					return err
				}
				logger.Info("pattern saved", "path", out)
			}
			if quiet {
				return nil
			}
			return printGrid(cmd.OutOrStdout(), s.Grid())
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of steps to take")
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the final grid as a YAML pattern")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the final grid")
	return cmd
}

// renderASCII draws grid one glyph per position, top row first.
func renderASCII(grid core.Grid) string {
	raster := core.NewByteGrid(0, 0)
	core.Rasterize(grid, raster)
	var b strings.Builder
	for y := 0; y < raster.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < raster.W; x++ {
			b.WriteString(tui.Glyph(raster.At(x, y), grid.Dims()))
		}
	}
	return b.String()
}

func printGrid(w io.Writer, grid core.Grid) error {
	_, err := fmt.Fprintln(w, frameStyle.Render(renderASCII(grid)))
	return err
}
