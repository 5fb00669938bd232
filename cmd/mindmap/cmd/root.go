package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mindmap/internal/adapters/editor"
	"mindmap/internal/adapters/filesystem"
	"mindmap/internal/adapters/notice"
	"mindmap/internal/adapters/obsidian"
	"mindmap/internal/adapters/sqlite"
	"mindmap/internal/application/commands"
	"mindmap/internal/application/workspace"
	"mindmap/internal/config"
	"mindmap/internal/ports"
)

var (
	vaultPath  string
	configPath string
	debug      bool
	quiet      bool
	noOpen     bool

	cfg    *config.Config
	vault  *filesystem.Vault
	index  *sqlite.Index
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mindmap",
	Short: "Scaffold and template notes in a MindMap OS vault",
	Long: `mindmap manages an Obsidian vault organized with MindMap OS.

It creates the starter structure, typed notes (tasks, projects, goals,
habits, areas and notes) from templates, and the daily, weekly, monthly,
quarterly and yearly notes.

Run without a command to open the command palette.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPalette(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	err := run(context.Background())
	if err != nil {
		var r reported
		if !errors.As(err, &r) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// run executes the command tree and closes the note index on every
// outcome. Post-run hooks do not run after a failed RunE.
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if index != nil {
		if cerr := index.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close note index: %w", cerr)
		}
		index = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", "", "path to the vault (default from config or $"+config.EnvVault+")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file (default $"+config.EnvConfig+" or "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress success notices")
	rootCmd.PersistentFlags().BoolVar(&noOpen, "no-open", false, "do not open created notes")
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if vaultPath != "" {
		cfg.Vault.Path = vaultPath
	}

	level := cfg.App.LogLevel
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	root, err := filesystem.ExpandPath(cfg.Vault.Path)
	if err != nil {
		return err
	}
	if cmd.Name() == "init" {
		if err := os.MkdirAll(root, 0o755); err != nil {
			return fmt.Errorf("failed to create vault: %w", err)
		}
	}

	vault, err = filesystem.NewVault(root)
	if err != nil {
		return err
	}
	logger.Debug("vault opened", slog.String("path", vault.Root()))

	openIndex(cmd.Context())
	return nil
}

// openIndex opens the note catalog and rebuilds it when it is stale. A
// catalog that cannot be opened is logged and left out.
func openIndex(ctx context.Context) {
	idx := sqlite.NewIndex()
	if err := idx.Open(vault.Root(), cfg.Vault.IndexPath); err != nil {
		logger.Warn("note index unavailable", slog.String("error", err.Error()))
		return
	}
	index = idx

	if !index.NeedsFullRebuild() {
		return
	}
	result, err := commands.NewSyncIndexCommand(vault, index).Execute(ctx)
	if err != nil {
		logger.Warn("index rebuild failed", slog.String("error", err.Error()))
		return
	}
	if err := index.MarkBuilt(); err != nil {
		logger.Warn("index mark failed", slog.String("error", err.Error()))
	}
	logger.Debug("index rebuilt", slog.Int("indexed", result.Indexed), slog.String("db", index.Path()))
}

// newWorkspace builds the workspace for a command. Interactive commands
// get no notifier since the terminal belongs to the palette, and open
// notes in the editor themselves; the editor opener is returned for that.
func newWorkspace(interactive bool) (*workspace.Workspace, ports.EditorOpener) {
	opts := []workspace.Option{workspace.WithLogger(logger)}
	if index != nil {
		opts = append(opts, workspace.WithIndex(index))
	}
	if !interactive {
		opts = append(opts, workspace.WithNotifier(notice.NewPrinter(os.Stderr, quiet)))
	}

	var ed ports.EditorOpener
	switch openWith() {
	case config.OpenWithObsidian:
		opts = append(opts, workspace.WithOpener(obsidian.NewOpener(vault.Root())))
	case config.OpenWithEditor:
		if interactive {
			ed = editor.NewOpener(vault.Root())
		} else {
			opts = append(opts, workspace.WithOpener(editor.NewOpener(vault.Root())))
		}
	}

	return workspace.New(vault, cfg.Layout.ToDomain(), opts...), ed
}

func openWith() string {
	if noOpen {
		return config.OpenWithNone
	}
	return cfg.App.OpenWith
}

// reported marks an error the workspace already showed as a notice
type reported struct{ error }

func (r reported) Unwrap() error { return r.error }
