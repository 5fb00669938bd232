package memory

import (
	"errors"
	"testing"
)

func TestVault_CreateRequiresParent(t *testing.T) {
	v := NewVault()

	if err := v.CreateFile("a/b.md", "x"); !errors.Is(err, ErrNoParent) {
		t.Fatalf("CreateFile without parent: got %v, want ErrNoParent", err)
	}
	if err := v.CreateFolder("a"); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if err := v.CreateFile("a/b.md", "x"); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if err := v.CreateFile("a/b.md", "y"); !errors.Is(err, ErrExists) {
		t.Errorf("second CreateFile: got %v, want ErrExists", err)
	}
}

func TestVault_StatAndRead(t *testing.T) {
	v := NewVault()
	v.Put("Notes/x.md", "hello")

	entry, err := v.Stat("Notes/x.md")
	if err != nil || entry == nil || entry.IsFolder {
		t.Fatalf("Stat(file) = %+v, %v", entry, err)
	}
	entry, _ = v.Stat("Notes")
	if entry == nil || !entry.IsFolder {
		t.Fatalf("Stat(folder) = %+v", entry)
	}
	entry, _ = v.Stat("missing.md")
	if entry != nil {
		t.Errorf("Stat(missing) = %+v, want nil", entry)
	}

	got, err := v.ReadFile("Notes/x.md")
	if err != nil || got != "hello" {
		t.Errorf("ReadFile() = %q, %v", got, err)
	}
	if _, err := v.ReadFile("Notes"); !errors.Is(err, ErrNotAFile) {
		t.Errorf("ReadFile(folder) error = %v, want ErrNotAFile", err)
	}
}

func TestVault_FailOn(t *testing.T) {
	v := NewVault()
	boom := errors.New("permission denied")
	v.FailOn = func(op Op, path string) error {
		if op == OpCreateFolder {
			return boom
		}
		return nil
	}

	if err := v.CreateFolder("a"); !errors.Is(err, boom) {
		t.Errorf("CreateFolder error = %v, want injected error", err)
	}
	if len(v.Folders()) != 0 {
		t.Errorf("folder created despite failure: %v", v.Folders())
	}
}

func TestVault_List(t *testing.T) {
	v := NewVault()
	v.Put("a/one.md", "")
	v.Put("a/b/two.md", "")
	v.Put("a/img.png", "")
	v.Put("c/three.md", "")

	got, _ := v.List("a")
	want := []string{"a/b/two.md", "a/one.md"}
	if len(got) != len(want) {
		t.Fatalf("List(a) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List(a)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	all, _ := v.List("")
	if len(all) != 3 {
		t.Errorf("List(root) = %v, want 3 notes", all)
	}
}
