package editor

import (
	"path/filepath"
	"testing"
)

func TestCommand_UsesEditorEnv(t *testing.T) {
	o := NewOpener("/vault")
	o.lookup = func(key string) string {
		if key == "EDITOR" {
			return "myeditor"
		}
		return ""
	}

	cmd, err := o.Command("03 SaveBox/Active/📌Task - Ship.md")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}

	want := filepath.Join("/vault", "03 SaveBox", "Active", "📌Task - Ship.md")
	if len(cmd.Args) != 2 || cmd.Args[0] != "myeditor" || cmd.Args[1] != want {
		t.Errorf("Args = %v, want [myeditor %s]", cmd.Args, want)
	}
}

func TestCommand_FallsBackToVisual(t *testing.T) {
	o := NewOpener("/vault")
	o.lookup = func(key string) string {
		if key == "VISUAL" {
			return "visual-editor"
		}
		return ""
	}

	cmd, err := o.Command("Welcome.md")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if cmd.Args[0] != "visual-editor" {
		t.Errorf("editor = %q, want visual-editor", cmd.Args[0])
	}
}
