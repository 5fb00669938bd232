package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mark3labs/mcp-go/server"

	"mindmap/internal/adapters/filesystem"
	mcpadapter "mindmap/internal/adapters/mcp"
	"mindmap/internal/adapters/obsidian"
	"mindmap/internal/adapters/sqlite"
	"mindmap/internal/application/commands"
	"mindmap/internal/application/workspace"
	"mindmap/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	vaultFlag := flag.String("vault", "", "path to the vault (default from config or $"+config.EnvVault+")")
	openFlag := flag.Bool("open", false, "open created notes in Obsidian")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *vaultFlag != "" {
		cfg.Vault.Path = *vaultFlag
	}

	// stdout carries the protocol
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	vault, err := filesystem.NewVault(cfg.Vault.Path)
	if err != nil {
		logger.Error("failed to open vault", slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := []workspace.Option{workspace.WithLogger(logger)}
	if *openFlag {
		opts = append(opts, workspace.WithOpener(obsidian.NewOpener(vault.Root())))
	}

	index := sqlite.NewIndex()
	if err := index.Open(vault.Root(), cfg.Vault.IndexPath); err != nil {
		logger.Warn("note index unavailable", slog.String("error", err.Error()))
	} else {
		defer index.Close()
		if index.NeedsFullRebuild() {
			if _, err := commands.NewSyncIndexCommand(vault, index).Execute(context.Background()); err != nil {
				logger.Warn("index rebuild failed", slog.String("error", err.Error()))
			} else if err := index.MarkBuilt(); err != nil {
				logger.Warn("index mark failed", slog.String("error", err.Error()))
			}
		}
		opts = append(opts, workspace.WithIndex(index))
	}

	ws := workspace.New(vault, cfg.Layout.ToDomain(), opts...)

	mcpServer := server.NewMCPServer(
		"mindmap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)
	mcpadapter.RegisterTools(mcpServer, ws)

	logger.Info("serving", slog.String("vault", vault.Root()))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("mindmap-mcp stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
