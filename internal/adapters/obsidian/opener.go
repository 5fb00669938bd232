package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"mindmap/internal/domain"
)

// Opener implements ports.FileOpener by handing an obsidian:// URI to the
// desktop
type Opener struct {
	vaultName string
	launch    func(uri string) error
}

// NewOpener creates a new Obsidian opener for the vault at vaultPath. The
// vault name Obsidian knows it by is the directory name.
func NewOpener(vaultPath string) *Opener {
	return &Opener{
		vaultName: filepath.Base(filepath.Clean(vaultPath)),
		launch:    openURI,
	}
}

// OpenFile opens a vault-relative note in Obsidian
func (o *Opener) OpenFile(path string) error {
	uri, err := o.BuildURI(path)
	if err != nil {
		return err
	}
	return o.launch(uri)
}

// BuildURI constructs the obsidian:// URI for a vault-relative path
func (o *Opener) BuildURI(path string) (string, error) {
	rel := domain.NormalizePath(path)
	if rel == "" {
		return "", fmt.Errorf("no file to open")
	}
	for _, segment := range strings.Split(rel, "/") {
		if segment == ".." {
			return "", fmt.Errorf("file is outside the vault: %s", path)
		}
	}

	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		escape(o.vaultName),
		escape(rel),
	)

	return uri, nil
}

// escape query-escapes s with %20 for spaces, which Obsidian expects
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
