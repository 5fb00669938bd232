package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mindmap/internal/adapters/notice"
	"mindmap/internal/adapters/obsidian"
	"mindmap/internal/adapters/tui"
	"mindmap/internal/application"
	"mindmap/internal/domain"
)

var copyURI bool

var newCmd = &cobra.Command{
	Use:   "new <kind> [title...]",
	Short: "Create a typed note from its template",
	Long: `Create a task, project, goal, habit, area or note in the active folder.

The note is named "<emoji><Kind> - <title>.md" and filled from the
"<Kind> Template" in the templates folder. Without a title a prompt asks
for one. An existing note is never overwritten; a numbered name is used
instead.

Examples:
  mindmap new task "Draft copy"
  mindmap new project Landing Page
  mindmap new goal`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := domain.ParseKind(args[0])
		if !kind.Valid() {
			return fmt.Errorf("unknown kind %q (expected %s)", args[0], strings.Join(kindNames(), ", "))
		}
		return createNote(cmd, kind, args[1:])
	},
}

func kindNames() []string {
	var names []string
	for _, k := range domain.Kinds() {
		names = append(names, k.String())
	}
	return names
}

// kindCommand returns the shortcut command for kind, e.g. "mindmap task"
func kindCommand(kind domain.NoteKind) *cobra.Command {
	c := &cobra.Command{
		Use:   kind.String() + " [title...]",
		Short: fmt.Sprintf("Create a %s %s note", kind.Emoji(), kind.Label()),
		RunE: func(cmd *cobra.Command, args []string) error {
			return createNote(cmd, kind, args)
		},
	}
	c.Flags().BoolVar(&copyURI, "copy", false, "copy the obsidian:// link of the note to the clipboard")
	return c
}

func createNote(cmd *cobra.Command, kind domain.NoteKind, words []string) error {
	if len(words) == 0 {
		return promptNote(cmd, kind)
	}

	ws, _ := newWorkspace(false)
	result, err := ws.CreateNote(cmd.Context(), kind, strings.Join(words, " "))
	if errors.Is(err, application.ErrEmptyTitle) {
		return nil
	}
	if err != nil {
		return reported{err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	return copyLink(result.Path)
}

// promptNote asks for the title in a prompt and creates the note
func promptNote(cmd *cobra.Command, kind domain.NoteKind) error {
	ws, ed := newWorkspace(true)
	var opts []tui.Option
	if ed != nil {
		opts = append(opts, tui.WithEditor(ed))
	}

	app := tui.NewPromptApp(cmd.Context(), ws, kind, opts...)
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	path, message, err := app.Result()
	printer := notice.NewPrinter(cmd.ErrOrStderr(), quiet)
	if err != nil {
		printer.NotifyError(fmt.Sprintf("MindMap OS: %v", err))
		return reported{err}
	}
	if path == "" {
		// dismissed
		return nil
	}

	printer.Notify(message)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return copyLink(path)
}

func copyLink(path string) error {
	if !copyURI {
		return nil
	}
	uri, err := obsidian.NewOpener(vault.Root()).BuildURI(path)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(uri); err != nil {
		return fmt.Errorf("failed to copy link: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolVar(&copyURI, "copy", false, "copy the obsidian:// link of the note to the clipboard")

	for _, k := range domain.Kinds() {
		rootCmd.AddCommand(kindCommand(k))
	}
}
