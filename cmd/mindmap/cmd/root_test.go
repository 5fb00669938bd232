package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_ClosesIndexWhenCommandFails(t *testing.T) {
	t.Setenv("MINDMAP_VAULT", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	vaultDir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "index.db")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfgYAML := "app:\n  open_with: none\nvault:\n  path: " + vaultDir + "\n  index_path: " + dbPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"--config", cfgPath, "list", "nope"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("run error = %v, want unknown kind", err)
	}
	if _, statErr := os.Stat(dbPath); statErr != nil {
		t.Fatalf("index was never opened: %v", statErr)
	}
	if index != nil {
		t.Error("index still open after a failed command")
	}
}
