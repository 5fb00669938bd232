package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestVault(t *testing.T) (*Vault, string) {
	t.Helper()
	dir := t.TempDir()
	v, err := NewVault(dir)
	if err != nil {
		t.Fatalf("NewVault: %v", err)
	}
	return v, v.Root()
}

func TestNewVault_RejectsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewVault(f); err == nil {
		t.Error("expected error for file root")
	}
	if _, err := NewVault(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestVault_Stat(t *testing.T) {
	v, root := newTestVault(t)
	if err := os.MkdirAll(filepath.Join(root, "03 SaveBox", "Active"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Welcome.md"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	entry, err := v.Stat("03 SaveBox/Active")
	if err != nil || entry == nil || !entry.IsFolder {
		t.Errorf("Stat(folder) = %+v, %v", entry, err)
	}
	entry, err = v.Stat("Welcome.md")
	if err != nil || entry == nil || entry.IsFolder {
		t.Errorf("Stat(file) = %+v, %v", entry, err)
	}
	entry, err = v.Stat("missing.md")
	if err != nil || entry != nil {
		t.Errorf("Stat(missing) = %+v, %v, want nil, nil", entry, err)
	}
	entry, err = v.Stat("Welcome.md/sub")
	if err != nil || entry != nil {
		t.Errorf("Stat(below a file) = %+v, %v, want nil, nil", entry, err)
	}
}

func TestVault_CreateAndModify(t *testing.T) {
	v, root := newTestVault(t)

	if err := v.CreateFolder("02 Execution"); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if err := v.CreateFolder("02 Execution"); err == nil {
		t.Error("second CreateFolder should fail")
	}

	const path = "02 Execution/Oct 18, 2026.md"
	if err := v.CreateFile(path, "one"); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if err := v.CreateFile(path, "two"); err == nil {
		t.Error("CreateFile over an existing file should fail")
	}

	if err := v.ModifyFile(path, "three"); err != nil {
		t.Fatalf("ModifyFile: %v", err)
	}
	got, err := v.ReadFile(path)
	if err != nil || got != "three" {
		t.Errorf("ReadFile() = %q, %v", got, err)
	}

	entries, _ := os.ReadDir(filepath.Join(root, "02 Execution"))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestVault_ModifyMissingFails(t *testing.T) {
	v, _ := newTestVault(t)
	if err := v.ModifyFile("nope.md", "x"); err == nil {
		t.Error("expected error modifying a missing file")
	}
}

func TestVault_RejectsTraversal(t *testing.T) {
	v, _ := newTestVault(t)

	for _, p := range []string{"../escape.md", "a/../../escape.md"} {
		if err := v.CreateFile(p, "x"); err == nil {
			t.Errorf("CreateFile(%q) should be rejected", p)
		}
		if _, err := v.Stat(p); err == nil {
			t.Errorf("Stat(%q) should be rejected", p)
		}
	}
}

func TestVault_List(t *testing.T) {
	v, root := newTestVault(t)
	files := []string{
		"Welcome.md",
		"03 SaveBox/Active/📌Task - Ship.md",
		".obsidian/workspace.md",
		"03 SaveBox/Attachment/img.png",
	}
	for _, f := range files {
		abs := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := v.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"03 SaveBox/Active/📌Task - Ship.md", "Welcome.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/vault", filepath.Join(home, "vault")},
		{"~", home},
		{"/abs/vault", "/abs/vault"},
		{"~other/vault", "~other/vault"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
