package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindmap/internal/application/commands"
	"mindmap/internal/frontmatter"
)

var setCmd = &cobra.Command{
	Use:   "set <path> <key=value>...",
	Short: "Set frontmatter fields on a note",
	Long: `Merge key=value pairs into the YAML frontmatter of a note. Values are
read as YAML scalars, so true, false and numbers keep their type.

Nothing happens when the path is missing, a folder, or not a markdown note.

Examples:
  mindmap set "03 SaveBox/Active/📌Task - Draft copy.md" status=Paused
  mindmap set "03 SaveBox/Active/🎯Goal - Launch v1.md" done=true priority=2`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make([]frontmatter.Field, 0, len(args)-1)
		for _, arg := range args[1:] {
			field, err := frontmatter.ParseAssignment(arg)
			if err != nil {
				return err
			}
			fields = append(fields, field)
		}

		ws, _ := newWorkspace(false)
		result, err := ws.PatchFrontmatter(cmd.Context(), args[0], fields...)
		return reportPatch(cmd, result, err)
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <path>",
	Short: "Mark a note done",
	Long:  `Set "done: true" and "status: Done" in the frontmatter of a note.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, _ := newWorkspace(false)
		result, err := ws.MarkDone(cmd.Context(), args[0])
		return reportPatch(cmd, result, err)
	},
}

func reportPatch(cmd *cobra.Command, result *commands.PatchFrontmatterResult, err error) error {
	if err != nil {
		return reported{err}
	}
	if !result.Applied {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(doneCmd)
}
