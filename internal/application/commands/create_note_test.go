package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mindmap/internal/adapters/memory"
	"mindmap/internal/application"
	"mindmap/internal/domain"
)

func TestCreateNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.NoteKind
		wantErr bool
	}{
		{"task", domain.KindTask, false},
		{"area", domain.KindArea, false},
		{"unknown kind", domain.KindUnknown, true},
		{"out of range kind", domain.NoteKind(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateNoteCommand{Kind: tt.kind, Title: "x"}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, application.ErrInvalidKind) {
				t.Errorf("expected ErrInvalidKind, got %v", err)
			}
		})
	}
}

func TestCreateNoteCommand_DefaultBody(t *testing.T) {
	v := memory.NewVault()
	cmd := NewCreateNoteCommand(v, fixedClock(2026, time.October, 18), domain.DefaultLayout(), domain.KindTask, "My/Task:Name?")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	wantPath := "03 SaveBox/Active/📌Task - MyTaskName.md"
	if result.Path != wantPath {
		t.Errorf("Path = %q, want %q", result.Path, wantPath)
	}
	if result.Core != "MyTaskName" {
		t.Errorf("Core = %q, want MyTaskName", result.Core)
	}
	if result.Message != "Task created: MyTaskName" {
		t.Errorf("Message = %q", result.Message)
	}

	want := "---\nstatus: Active\ndone: false\n---\n\n" +
		"# 📌Task - MyTaskName\n\n" +
		"- [ ] 📌Task - MyTaskName\n\n" +
		"> created 2026-10-18\n"
	if got := v.Files()[wantPath]; got != want {
		t.Errorf("content =\n%q\nwant\n%q", got, want)
	}
}

func TestCreateNoteCommand_UniqueSuffix(t *testing.T) {
	v := memory.NewVault()
	clock := fixedClock(2026, time.October, 18)
	layout := domain.DefaultLayout()

	want := []string{
		"03 SaveBox/Active/🚀Project - Launch.md",
		"03 SaveBox/Active/🚀Project - Launch (1).md",
		"03 SaveBox/Active/🚀Project - Launch (2).md",
	}

	for i, w := range want {
		result, err := NewCreateNoteCommand(v, clock, layout, domain.KindProject, "Launch").Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute #%d: %v", i, err)
		}
		if result.Path != w {
			t.Errorf("Execute #%d Path = %q, want %q", i, result.Path, w)
		}
	}

	// The first note is never overwritten
	first := v.Files()[want[0]]
	if !strings.Contains(first, "# 🚀Project - Launch") {
		t.Errorf("first note changed: %q", first)
	}
}

func TestCreateNoteCommand_EmptyTitleIsUntitled(t *testing.T) {
	v := memory.NewVault()
	result, err := NewCreateNoteCommand(v, fixedClock(2026, time.October, 18), domain.DefaultLayout(), domain.KindNote, `  ?*  `).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Path != "03 SaveBox/Active/✏️Note - Untitled.md" {
		t.Errorf("Path = %q", result.Path)
	}
}

func TestCreateNoteCommand_VaultTemplate(t *testing.T) {
	v := memory.NewVault()
	v.Put("03 SaveBox/Templates/Goal Template.md",
		"kind={{kind}} emoji={{emoji}} core={{core}} week={{isoWeek}} q={{quarter}} due={{dueDate}}")

	result, err := NewCreateNoteCommand(v, fixedClock(2026, time.October, 18), domain.DefaultLayout(), domain.KindGoal, "Run 10k").
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "kind=Goal emoji=🎯 core=Run 10k week=42 q=4 due={{dueDate}}"
	if got := v.Files()[result.Path]; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestCreateNoteCommand_LegacyTemplate(t *testing.T) {
	v := memory.NewVault()
	v.Put("99 Templates/Habit.md", "legacy {{title}}")

	result, err := NewCreateNoteCommand(v, fixedClock(2026, time.October, 18), domain.DefaultLayout(), domain.KindHabit, "Stretch").
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := v.Files()[result.Path]; got != "legacy 🔄Habit - Stretch" {
		t.Errorf("content = %q", got)
	}
}

func TestCreateNoteCommand_FolderTemplateFallsBack(t *testing.T) {
	v := memory.NewVault()
	v.PutFolder("03 SaveBox/Templates/Task Template.md")

	result, err := NewCreateNoteCommand(v, fixedClock(2026, time.October, 18), domain.DefaultLayout(), domain.KindTask, "Ship").
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := v.Files()[result.Path]; !strings.HasPrefix(got, "---\nstatus: Active\ndone: false\n---") {
		t.Errorf("expected default body, got %q", got)
	}
}

func TestCreateNoteCommand_FolderFailureLeavesNoFile(t *testing.T) {
	v := memory.NewVault()
	boom := errors.New("read-only vault")
	v.FailOn = func(op memory.Op, path string) error {
		if op == memory.OpCreateFolder {
			return boom
		}
		return nil
	}

	_, err := NewCreateNoteCommand(v, fixedClock(2026, time.October, 18), domain.DefaultLayout(), domain.KindTask, "Ship").
		Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Execute error = %v, want host error", err)
	}
	if len(v.Files()) != 0 {
		t.Errorf("files created despite failure: %v", v.Files())
	}
}
