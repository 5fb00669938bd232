package cmd

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the MindMap OS starter structure",
	Long: `Create the MindMap OS folders, templates and seed notes in the vault.

Only missing folders and files are created; existing notes are never
touched, so init can be run again at any time.

Examples:
  mindmap init
  mindmap init --vault ~/Notes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, _ := newWorkspace(false)
		if _, err := ws.Scaffold(cmd.Context()); err != nil {
			return reported{err}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
