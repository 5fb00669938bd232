package workspace

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mindmap/internal/adapters/memory"
	"mindmap/internal/application"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

type recordingNotifier struct {
	notices []string
	errors  []string
}

func (n *recordingNotifier) Notify(msg string)      { n.notices = append(n.notices, msg) }
func (n *recordingNotifier) NotifyError(msg string) { n.errors = append(n.errors, msg) }

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) OpenFile(path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

type memIndex struct {
	records map[string]ports.NoteRecord
}

func (i *memIndex) Upsert(rec ports.NoteRecord) error {
	if i.records == nil {
		i.records = make(map[string]ports.NoteRecord)
	}
	i.records[rec.Path] = rec
	return nil
}
func (i *memIndex) Delete(path string) error { delete(i.records, path); return nil }
func (i *memIndex) List(kind domain.NoteKind) ([]ports.NoteRecord, error) {
	var out []ports.NoteRecord
	for _, r := range i.records {
		if kind == domain.KindUnknown || r.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}
func (i *memIndex) Paths() (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for p := range i.records {
		out[p] = struct{}{}
	}
	return out, nil
}
func (i *memIndex) Close() error { return nil }

var testNow = time.Date(2026, time.October, 18, 8, 0, 0, 0, time.Local)

func newTestWorkspace(v *memory.Vault) (*Workspace, *recordingNotifier, *recordingOpener, *memIndex) {
	notifier := &recordingNotifier{}
	opener := &recordingOpener{}
	index := &memIndex{}
	ws := New(v, domain.DefaultLayout(),
		WithClock(ports.ClockFunc(func() time.Time { return testNow })),
		WithNotifier(notifier),
		WithOpener(opener),
		WithIndex(index),
	)
	return ws, notifier, opener, index
}

func TestWorkspace_CreateNote(t *testing.T) {
	v := memory.NewVault()
	ws, notifier, opener, index := newTestWorkspace(v)

	result, err := ws.CreateNote(context.Background(), domain.KindTask, "Ship it")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	if len(notifier.notices) != 1 || notifier.notices[0] != "Task created: Ship it" {
		t.Errorf("notices = %v", notifier.notices)
	}
	if len(opener.opened) != 1 || opener.opened[0] != result.Path {
		t.Errorf("opened = %v, want [%s]", opener.opened, result.Path)
	}

	rec, ok := index.records[result.Path]
	if !ok {
		t.Fatal("note not recorded in index")
	}
	if rec.Kind != domain.KindTask || rec.Status != "Active" || !rec.Created.Equal(testNow) {
		t.Errorf("record = %+v", rec)
	}
}

func TestWorkspace_BlankTitleNotStarted(t *testing.T) {
	v := memory.NewVault()
	ws, notifier, opener, _ := newTestWorkspace(v)

	_, err := ws.CreateNote(context.Background(), domain.KindGoal, "   ")
	if !errors.Is(err, application.ErrEmptyTitle) {
		t.Fatalf("CreateNote error = %v, want ErrEmptyTitle", err)
	}
	if len(v.Mutations()) != 0 {
		t.Errorf("vault mutated: %v", v.Mutations())
	}
	if len(notifier.notices)+len(notifier.errors) != 0 {
		t.Errorf("unexpected notices: %v %v", notifier.notices, notifier.errors)
	}
	if len(opener.opened) != 0 {
		t.Errorf("unexpected open: %v", opener.opened)
	}
}

func TestWorkspace_FailureShowsErrorNotice(t *testing.T) {
	v := memory.NewVault()
	v.FailOn = func(op memory.Op, path string) error { return errors.New("disk full") }
	ws, notifier, opener, _ := newTestWorkspace(v)

	if _, err := ws.CreateNote(context.Background(), domain.KindTask, "Ship"); err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.errors) != 1 || !strings.Contains(notifier.errors[0], "disk full") {
		t.Errorf("error notices = %v", notifier.errors)
	}
	if len(notifier.notices) != 0 {
		t.Errorf("success notice shown on failure: %v", notifier.notices)
	}
	if len(opener.opened) != 0 {
		t.Errorf("opened on failure: %v", opener.opened)
	}
}

func TestWorkspace_OpenFailureKeepsNote(t *testing.T) {
	v := memory.NewVault()
	ws, notifier, opener, _ := newTestWorkspace(v)
	opener.err = errors.New("no obsidian")

	result, err := ws.OpenToday(context.Background())
	if err != nil {
		t.Fatalf("OpenToday: %v", err)
	}
	if _, ok := v.Files()[result.Path]; !ok {
		t.Error("daily note missing after open failure")
	}
	if len(notifier.errors) != 1 {
		t.Errorf("error notices = %v", notifier.errors)
	}
}

func TestWorkspace_MarkDoneUpdatesIndex(t *testing.T) {
	v := memory.NewVault()
	ws, _, _, index := newTestWorkspace(v)

	created, err := ws.CreateNote(context.Background(), domain.KindProject, "Site")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := ws.MarkDone(context.Background(), created.Path); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}

	rec := index.records[created.Path]
	if !rec.Done || rec.Status != "Done" {
		t.Errorf("record after MarkDone = %+v", rec)
	}
}

func TestWorkspace_CatalogNeedsIndex(t *testing.T) {
	ws := New(memory.NewVault(), domain.DefaultLayout())

	if _, err := ws.ListNotes(context.Background(), domain.KindUnknown); !errors.Is(err, ErrNoIndex) {
		t.Errorf("ListNotes error = %v, want ErrNoIndex", err)
	}
	if _, err := ws.SyncIndex(context.Background()); !errors.Is(err, ErrNoIndex) {
		t.Errorf("SyncIndex error = %v, want ErrNoIndex", err)
	}
}

func TestWorkspace_ScaffoldThenSync(t *testing.T) {
	v := memory.NewVault()
	ws, _, _, index := newTestWorkspace(v)

	if _, err := ws.Scaffold(context.Background()); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	result, err := ws.SyncIndex(context.Background())
	if err != nil {
		t.Fatalf("SyncIndex: %v", err)
	}

	// Four seed notes live in the active folder
	if result.Indexed != 4 {
		t.Errorf("Indexed = %d, want 4", result.Indexed)
	}
	if _, ok := index.records["03 SaveBox/Active/📌Task - Draft copy.md"]; !ok {
		t.Error("seed task not indexed")
	}
}

func TestWorkspace_Open(t *testing.T) {
	ws, _, opener, _ := newTestWorkspace(memory.NewVault())
	if err := ws.Open("03 SaveBox/Active/x.md"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "03 SaveBox/Active/x.md" {
		t.Errorf("opened = %v", opener.opened)
	}

	bare := New(memory.NewVault(), domain.DefaultLayout())
	if err := bare.Open("x.md"); !errors.Is(err, ErrNoOpener) {
		t.Errorf("Open without opener = %v, want ErrNoOpener", err)
	}
}
