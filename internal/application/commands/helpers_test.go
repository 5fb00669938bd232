package commands

import (
	"sort"
	"time"

	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

func fixedClock(year int, month time.Month, day int) ports.Clock {
	return ports.ClockFunc(func() time.Time {
		return time.Date(year, month, day, 9, 30, 0, 0, time.Local)
	})
}

// recordingIndex is an in-memory ports.NoteIndex
type recordingIndex struct {
	records map[string]ports.NoteRecord
}

func newRecordingIndex() *recordingIndex {
	return &recordingIndex{records: make(map[string]ports.NoteRecord)}
}

func (i *recordingIndex) Upsert(rec ports.NoteRecord) error {
	i.records[rec.Path] = rec
	return nil
}

func (i *recordingIndex) Delete(path string) error {
	delete(i.records, path)
	return nil
}

func (i *recordingIndex) List(kind domain.NoteKind) ([]ports.NoteRecord, error) {
	var out []ports.NoteRecord
	for _, rec := range i.records {
		if kind == domain.KindUnknown || rec.Kind == kind {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Path < out[b].Path })
	return out, nil
}

func (i *recordingIndex) Paths() (map[string]struct{}, error) {
	out := make(map[string]struct{}, len(i.records))
	for p := range i.records {
		out[p] = struct{}{}
	}
	return out, nil
}

func (i *recordingIndex) Close() error { return nil }
