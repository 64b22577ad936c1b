package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/storage"
)

// triggerRecorder captures persist-hook invocations for assertions.
type triggerRecorder struct {
	mu       sync.Mutex
	triggers []string
}

func (r *triggerRecorder) hook(trigger string, _ error) {
	r.mu.Lock()
	r.triggers = append(r.triggers, trigger)
	r.mu.Unlock()
}

func (r *triggerRecorder) count(trigger string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.triggers {
		if t == trigger {
			n++
		}
	}
	return n
}

func newTestStore() (*DocumentStore, *storage.MemoryBackend) {
	backend := storage.NewMemoryBackend()
	return New(backend), backend
}

func readBackendDoc(t *testing.T, backend *storage.MemoryBackend) model.Document {
	t.Helper()
	data, err := backend.Read(context.Background())
	if err != nil {
		t.Fatalf("backend read: %v", err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("backend holds invalid JSON: %v", err)
	}
	return doc
}

func TestLoad_NoRecordInitializesDefaults(t *testing.T) {
	s, backend := newTestStore()
	s.Load(context.Background())

	doc := s.Document()
	if len(doc.Videos) != 3 {
		t.Errorf("videos = %d, want 3 defaults", len(doc.Videos))
	}
	if !doc.Settings.AutoSave {
		t.Error("default autoSave should be enabled")
	}

	// Defaults must have been persisted immediately
	persisted := readBackendDoc(t, backend)
	if persisted.Version != SchemaVersion {
		t.Errorf("persisted version = %q, want %q", persisted.Version, SchemaVersion)
	}
}

func TestLoad_MergesPartialRecordOverDefaults(t *testing.T) {
	s, backend := newTestStore()
	partial := []byte(`{"videos":[],"settings":{"autoSave":false,"syncInterval":5000}}`)
	if err := backend.Write(context.Background(), partial); err != nil {
		t.Fatal(err)
	}

	s.Load(context.Background())
	doc := s.Document()

	// Present keys replace, absent keys keep defaults
	if len(doc.Videos) != 0 {
		t.Errorf("videos = %d, want 0 (explicit empty array)", len(doc.Videos))
	}
	if len(doc.Reviews) != 3 {
		t.Errorf("reviews = %d, want 3 defaults (key absent)", len(doc.Reviews))
	}
	if doc.Settings.AutoSave {
		t.Error("autoSave should be false from the record")
	}
	if doc.Settings.SyncInterval != 5000 {
		t.Errorf("syncInterval = %d, want 5000", doc.Settings.SyncInterval)
	}
	if doc.Settings.Theme != "default" {
		t.Errorf("theme = %q, want default carried over", doc.Settings.Theme)
	}
}

func TestLoad_CorruptRecordReinitializes(t *testing.T) {
	s, backend := newTestStore()
	if err := backend.Write(context.Background(), []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	s.Load(context.Background())

	if len(s.Document().Videos) != 3 {
		t.Error("corrupt record should fall back to defaults")
	}
	// The corrupt blob must have been replaced by a valid one
	readBackendDoc(t, backend)
}

func TestLoad_ReadFailureOperatesInMemory(t *testing.T) {
	backend := &failingBackend{}
	s := New(backend)
	s.Load(context.Background())

	if len(s.Document().Videos) != 3 {
		t.Error("read failure should leave the default document live")
	}
}

// failingBackend errors on every operation.
type failingBackend struct{}

func (f *failingBackend) Read(context.Context) ([]byte, error) { return nil, errFail }
func (f *failingBackend) Write(context.Context, []byte) error  { return errFail }
func (f *failingBackend) Ping(context.Context) error           { return errFail }
func (f *failingBackend) Close() error                         { return nil }
func (f *failingBackend) Name() string                         { return "failing" }

var errFail = errors.New("backend unavailable")

func TestSave_MergesPatchAndStampsLastSaved(t *testing.T) {
	s, _ := newTestStore()
	s.Load(context.Background())

	videos := []model.Video{{ID: "x", Title: "Only one"}}
	doc := s.Save(context.Background(), model.DocumentPatch{Videos: &videos})

	if len(doc.Videos) != 1 || doc.Videos[0].ID != "x" {
		t.Errorf("videos not replaced: %+v", doc.Videos)
	}
	if len(doc.Reviews) != 3 {
		t.Error("reviews should be untouched by a videos-only patch")
	}
	if doc.LastSaved == "" {
		t.Error("lastSaved should be stamped")
	}
}

func TestSave_WriteFailureKeepsStateLive(t *testing.T) {
	s := New(&failingBackend{})
	rec := &triggerRecorder{}
	s.PersistHook = rec.hook

	videos := []model.Video{{ID: "x"}}
	doc := s.Save(context.Background(), model.DocumentPatch{Videos: &videos})

	if len(doc.Videos) != 1 {
		t.Error("in-memory state should advance despite write failure")
	}
	if rec.count(TriggerManual) != 1 {
		t.Error("persist hook should still fire on failure")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	src, _ := newTestStore()
	src.Load(context.Background())
	videos := []model.Video{{ID: "v9", Title: "Round trip", Views: 42}}
	src.Save(context.Background(), model.DocumentPatch{Videos: &videos})

	snapshot, err := src.ExportSnapshot()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst, _ := newTestStore()
	dst.Load(context.Background())
	if err := dst.ImportSnapshot(context.Background(), snapshot); err != nil {
		t.Fatalf("import: %v", err)
	}

	doc := dst.Document()
	if len(doc.Videos) != 1 || doc.Videos[0].ID != "v9" {
		t.Errorf("imported videos = %+v, want the exported catalog", doc.Videos)
	}
}

func TestImport_RejectsMissingCollections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"missing recycleBin", `{"videos":[],"analytics":{}}`},
		{"missing analytics", `{"videos":[],"recycleBin":[]}`},
		{"not json", `nonsense`},
		{"array root", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore()
			s.Load(context.Background())
			before := s.Document()

			if err := s.ImportSnapshot(context.Background(), []byte(tt.data)); err == nil {
				t.Fatal("expected import to fail")
			}

			after := s.Document()
			if len(after.Videos) != len(before.Videos) || after.LastSaved != before.LastSaved {
				t.Error("failed import must leave the document untouched")
			}
		})
	}
}

func TestImport_MergesOverDefaults(t *testing.T) {
	s, _ := newTestStore()
	s.Load(context.Background())

	// Minimal valid snapshot: required collections only
	snapshot := []byte(`{"videos":[],"recycleBin":[],"analytics":{"totalViews":7}}`)
	if err := s.ImportSnapshot(context.Background(), snapshot); err != nil {
		t.Fatalf("import: %v", err)
	}

	doc := s.Document()
	if doc.Analytics.TotalViews != 7 {
		t.Errorf("totalViews = %d, want 7", doc.Analytics.TotalViews)
	}
	if doc.Settings.DisplayName != "Linolvt" {
		t.Error("absent settings should come from defaults")
	}
}

func TestToggleAutoSave_PersistsBothDirections(t *testing.T) {
	s, backend := newTestStore()
	s.Load(context.Background())
	rec := &triggerRecorder{}
	s.PersistHook = rec.hook

	if enabled := s.ToggleAutoSave(context.Background()); enabled {
		t.Error("first toggle should disable autosave")
	}
	if readBackendDoc(t, backend).Settings.AutoSave {
		t.Error("disabled flag must be persisted")
	}

	if enabled := s.ToggleAutoSave(context.Background()); !enabled {
		t.Error("second toggle should re-enable autosave")
	}
	if !readBackendDoc(t, backend).Settings.AutoSave {
		t.Error("enabled flag must be persisted")
	}

	if got := rec.count(TriggerToggle); got != 2 {
		t.Errorf("toggle persists = %d, want 2", got)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	s, _ := newTestStore()
	s.Load(context.Background())
	videos := []model.Video{}
	s.Save(context.Background(), model.DocumentPatch{Videos: &videos})

	doc := s.Reset(context.Background())
	if len(doc.Videos) != 3 {
		t.Errorf("videos after reset = %d, want 3 defaults", len(doc.Videos))
	}
}

func TestSubscribe_NotifiedAfterSave(t *testing.T) {
	s, _ := newTestStore()
	s.Load(context.Background())

	var got []model.Document
	s.Subscribe(func(doc model.Document) {
		got = append(got, doc)
	})

	videos := []model.Video{{ID: "n1"}}
	s.Save(context.Background(), model.DocumentPatch{Videos: &videos})

	if len(got) != 1 {
		t.Fatalf("notifications = %d, want 1", len(got))
	}
	if len(got[0].Videos) != 1 || got[0].Videos[0].ID != "n1" {
		t.Error("subscriber should receive the post-save document")
	}
}

func TestSyncInterval_FloorsNonPositive(t *testing.T) {
	s, _ := newTestStore()
	s.Load(context.Background())

	settings := s.Document().Settings
	settings.SyncInterval = 0
	s.Save(context.Background(), model.DocumentPatch{Settings: &settings})

	if got := s.SyncInterval(); got.Seconds() != 30 {
		t.Errorf("syncInterval fallback = %s, want 30s", got)
	}
}

func TestDocument_ReturnsIndependentCopy(t *testing.T) {
	s, _ := newTestStore()
	s.Load(context.Background())

	doc := s.Document()
	doc.Videos[0].Title = "mutated"

	if s.Document().Videos[0].Title == "mutated" {
		t.Error("caller mutation must not leak into the store")
	}
}
