package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mindmap/internal/application/workspace"
	"mindmap/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List typed notes from the catalog",
	Long: `List the typed notes recorded in the note catalog, optionally only
those of one kind.

Examples:
  mindmap list
  mindmap list task`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := domain.KindUnknown
		if len(args) == 1 {
			kind = domain.ParseKind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unknown kind %q", args[0])
			}
		}

		ws, _ := newWorkspace(false)
		result, err := ws.ListNotes(cmd.Context(), kind)
		if errors.Is(err, workspace.ErrNoIndex) {
			return err
		}
		if err != nil {
			return reported{err}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, n := range result.Notes {
			status := n.Status
			if status == "" {
				status = "-"
			}
			if n.Done {
				status += " (done)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.Kind, status, n.Path)
		}
		return w.Flush()
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the note catalog from the vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, _ := newWorkspace(false)
		if _, err := ws.SyncIndex(cmd.Context()); err != nil {
			if errors.Is(err, workspace.ErrNoIndex) {
				return err
			}
			return reported{err}
		}
		return index.MarkBuilt()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(syncCmd)
}
