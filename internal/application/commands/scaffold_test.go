package commands

import (
	"context"
	"reflect"
	"testing"

	"mindmap/internal/adapters/memory"
	"mindmap/internal/domain"
)

func TestScaffoldCommand_Idempotent(t *testing.T) {
	v := memory.NewVault()
	layout := domain.DefaultLayout()

	first, err := NewScaffoldCommand(v, layout).Execute(context.Background())
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.FoldersCreated == 0 || first.FilesCreated != len(layout.ScaffoldFiles()) {
		t.Errorf("first run created %d folders, %d files", first.FoldersCreated, first.FilesCreated)
	}

	foldersAfterFirst := v.Folders()
	filesAfterFirst := v.Files()

	second, err := NewScaffoldCommand(v, layout).Execute(context.Background())
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if second.FoldersCreated != 0 || second.FilesCreated != 0 {
		t.Errorf("second run created %d folders, %d files, want 0", second.FoldersCreated, second.FilesCreated)
	}
	if !reflect.DeepEqual(v.Folders(), foldersAfterFirst) {
		t.Error("folders changed on second run")
	}
	if !reflect.DeepEqual(v.Files(), filesAfterFirst) {
		t.Error("files changed on second run")
	}
}

func TestScaffoldCommand_KeepsUserEdits(t *testing.T) {
	v := memory.NewVault()
	v.Put("99 System/Home.md", "my home")
	v.Put("03 SaveBox/Templates/Task Template.md", "my task template")

	result, err := NewScaffoldCommand(v, domain.DefaultLayout()).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	files := v.Files()
	if files["99 System/Home.md"] != "my home" {
		t.Errorf("Home.md overwritten: %q", files["99 System/Home.md"])
	}
	if files["03 SaveBox/Templates/Task Template.md"] != "my task template" {
		t.Error("task template overwritten")
	}
	if result.FilesCreated != len(domain.DefaultLayout().ScaffoldFiles())-2 {
		t.Errorf("FilesCreated = %d", result.FilesCreated)
	}
}

func TestScaffoldCommand_CreatesLayout(t *testing.T) {
	v := memory.NewVault()
	layout := domain.DefaultLayout()

	if _, err := NewScaffoldCommand(v, layout).Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, folder := range []string{
		"01 Definition",
		"02 Execution/1 Daily",
		"02 Execution/5 Yearly",
		"03 SaveBox/Active",
		"03 SaveBox/Archive",
		"03 SaveBox/Attachment",
		"03 SaveBox/Scripts",
		"03 SaveBox/Templates",
		"04 Output",
		"99 System",
	} {
		entry, _ := v.Stat(folder)
		if entry == nil || !entry.IsFolder {
			t.Errorf("missing folder %s", folder)
		}
	}
}

func TestScaffoldCommand_Validate(t *testing.T) {
	layout := domain.DefaultLayout()
	layout.ActiveFolder = "/"
	if err := NewScaffoldCommand(memory.NewVault(), layout).Validate(); err == nil {
		t.Error("expected error for empty layout folder")
	}
}
