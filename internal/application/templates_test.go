package application

import (
	"testing"

	"mindmap/internal/adapters/memory"
	"mindmap/internal/domain"
)

func TestReadTemplate(t *testing.T) {
	layout := domain.DefaultLayout()

	tests := []struct {
		name   string
		setup  func(v *memory.Vault)
		wantOK bool
		want   string
	}{
		{
			name:   "nothing in the vault",
			setup:  func(v *memory.Vault) {},
			wantOK: false,
		},
		{
			name: "primary template",
			setup: func(v *memory.Vault) {
				v.Put("03 SaveBox/Templates/Task Template.md", "primary")
				v.Put("99 Templates/Task.md", "legacy")
			},
			wantOK: true,
			want:   "primary",
		},
		{
			name: "legacy fallback",
			setup: func(v *memory.Vault) {
				v.Put("99 Templates/Task.md", "legacy")
			},
			wantOK: true,
			want:   "legacy",
		},
		{
			name: "folder at primary path means no template",
			setup: func(v *memory.Vault) {
				v.PutFolder("03 SaveBox/Templates/Task Template.md")
				v.Put("99 Templates/Task.md", "legacy")
			},
			wantOK: false,
		},
		{
			name: "folder at legacy path means no template",
			setup: func(v *memory.Vault) {
				v.PutFolder("99 Templates/Task.md")
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := memory.NewVault()
			tt.setup(v)

			got, ok, err := ReadTemplate(v, layout, "Task")
			if err != nil {
				t.Fatalf("ReadTemplate: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTemplate_FallsBack(t *testing.T) {
	v := memory.NewVault()
	v.PutFolder("03 SaveBox/Templates/Goal Template.md")

	got, err := ResolveTemplate(v, domain.DefaultLayout(), "Goal", domain.DefaultNoteBody)
	if err != nil {
		t.Fatalf("ResolveTemplate: %v", err)
	}
	if got != domain.DefaultNoteBody {
		t.Errorf("body = %q, want default body", got)
	}
}
