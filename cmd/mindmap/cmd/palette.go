package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mindmap/internal/adapters/tui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Open the MindMap OS command palette",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPalette(cmd.Context())
	},
}

func runPalette(ctx context.Context) error {
	ws, ed := newWorkspace(true)

	var opts []tui.Option
	if ed != nil {
		opts = append(opts, tui.WithEditor(ed))
	}
	if index != nil {
		opts = append(opts, tui.WithCatalog())
	}

	p := tea.NewProgram(tui.NewApp(ctx, ws, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("palette failed: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
