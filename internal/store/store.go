package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/storage"
)

// Save triggers, reported to the persist hook and metrics.
const (
	TriggerManual   = "manual"
	TriggerDebounce = "debounce"
	TriggerInterval = "interval"
	TriggerImport   = "import"
	TriggerToggle   = "toggle"
	TriggerReset    = "reset"
	TriggerInit     = "init"
)

// Required top-level collections an imported snapshot must carry.
var requiredCollections = []string{"videos", "recycleBin", "analytics"}

// Subscriber is notified with a copy of the Document after every
// successful save, so every open surface re-renders from the new state.
type Subscriber func(model.Document)

// DocumentStore owns the canonical Document and its persistence. All
// mutations funnel through save; no other component writes Document
// fields directly. Storage failures are logged and degrade to in-memory
// operation, they are never surfaced to callers.
type DocumentStore struct {
	mu      sync.RWMutex
	backend storage.Backend
	doc     model.Document

	subMu sync.RWMutex
	subs  []Subscriber

	// PersistHook, when set, observes every persist attempt. Used by the
	// server wiring to count saves and save errors.
	PersistHook func(trigger string, err error)
}

func New(backend storage.Backend) *DocumentStore {
	return &DocumentStore{
		backend: backend,
		doc:     DefaultDocument(),
	}
}

// Load reads the persisted Document. An absent or malformed record falls
// back to the default Document, which is persisted immediately. Load
// never fails: worst case the store starts from defaults in memory.
func (s *DocumentStore) Load(ctx context.Context) {
	data, err := s.backend.Read(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Println("store: no saved record, initializing defaults")
		s.persistCurrent(ctx, TriggerInit)
		return
	case err != nil:
		log.Printf("store: read failed, using defaults in memory: %v", err)
		return
	}

	// Merge over defaults so a partial or older record still yields a
	// complete, well-typed Document.
	merged := DefaultDocument()
	if err := json.Unmarshal(data, &merged); err != nil {
		log.Printf("store: corrupted record, reinitializing defaults: %v", err)
		s.persistCurrent(ctx, TriggerInit)
		return
	}

	s.mu.Lock()
	s.doc = merged
	s.mu.Unlock()
	log.Println("store: document loaded")
}

// Document returns a deep copy of the current Document.
func (s *DocumentStore) Document() model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Save merges a partial Document into the current one (top-level shallow
// merge, arrays are whole replacements), stamps lastSaved, persists and
// notifies subscribers. This is the only sanctioned write path.
func (s *DocumentStore) Save(ctx context.Context, patch model.DocumentPatch) model.Document {
	return s.saveWith(ctx, TriggerManual, patch)
}

func (s *DocumentStore) saveWith(ctx context.Context, trigger string, patch model.DocumentPatch) model.Document {
	s.mu.Lock()
	if patch.Videos != nil {
		s.doc.Videos = append([]model.Video(nil), (*patch.Videos)...)
	}
	if patch.RecycleBin != nil {
		s.doc.RecycleBin = append([]model.RecycleItem(nil), (*patch.RecycleBin)...)
	}
	if patch.Reviews != nil {
		s.doc.Reviews = append([]model.Review(nil), (*patch.Reviews)...)
	}
	if patch.Analytics != nil {
		s.doc.Analytics = *patch.Analytics
	}
	if patch.Settings != nil {
		s.doc.Settings = *patch.Settings
	}
	s.doc.LastSaved = time.Now().UTC().Format(time.RFC3339)
	s.persistLocked(ctx, trigger)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// PersistNow writes the current Document as-is (refreshing lastSaved).
// Persisting unchanged data is harmless; the interval autosave relies on
// that.
func (s *DocumentStore) PersistNow(ctx context.Context, trigger string) model.Document {
	return s.saveWith(ctx, trigger, model.DocumentPatch{})
}

// ExportSnapshot returns the full Document pretty-printed, suitable for
// download.
func (s *DocumentStore) ExportSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.doc, "", "  ")
}

// ImportSnapshot parses and validates an exported snapshot. The result
// must contain the required collections; on success it is merged over the
// default Document and persisted. On any failure the current state is
// left untouched.
func (s *DocumentStore) ImportSnapshot(ctx context.Context, data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}
	for _, key := range requiredCollections {
		if _, ok := probe[key]; !ok {
			return fmt.Errorf("snapshot missing required collection %q", key)
		}
	}

	merged := DefaultDocument()
	if err := json.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	s.mu.Lock()
	s.doc = merged
	s.doc.LastSaved = time.Now().UTC().Format(time.RFC3339)
	s.persistLocked(ctx, TriggerImport)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// ToggleAutoSave flips the autosave flag and persists it immediately
// regardless of the new value.
func (s *DocumentStore) ToggleAutoSave(ctx context.Context) bool {
	s.mu.Lock()
	s.doc.Settings.AutoSave = !s.doc.Settings.AutoSave
	enabled := s.doc.Settings.AutoSave
	s.doc.LastSaved = time.Now().UTC().Format(time.RFC3339)
	s.persistLocked(ctx, TriggerToggle)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
	return enabled
}

// Reset restores the default Document and persists it.
func (s *DocumentStore) Reset(ctx context.Context) model.Document {
	s.mu.Lock()
	s.doc = DefaultDocument()
	s.persistLocked(ctx, TriggerReset)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot
}

// Subscribe registers a callback invoked after every successful save.
func (s *DocumentStore) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

// AutoSaveEnabled reports the current autosave flag.
func (s *DocumentStore) AutoSaveEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Settings.AutoSave
}

// SyncInterval returns the configured autosave period.
func (s *DocumentStore) SyncInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.Settings.SyncInterval <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.doc.Settings.SyncInterval) * time.Millisecond
}

// persistLocked serializes and writes the Document. Callers hold s.mu.
// Write failures are logged only: the in-memory state stays live and the
// next save retries.
func (s *DocumentStore) persistLocked(ctx context.Context, trigger string) {
	data, err := json.Marshal(s.doc)
	if err == nil {
		err = s.backend.Write(ctx, data)
	}
	if err != nil {
		log.Printf("store: persist failed (%s), operating in memory: %v", trigger, err)
	}
	if s.PersistHook != nil {
		s.PersistHook(trigger, err)
	}
}

func (s *DocumentStore) persistCurrent(ctx context.Context, trigger string) {
	s.mu.Lock()
	s.persistLocked(ctx, trigger)
	s.mu.Unlock()
}

func (s *DocumentStore) notify(doc model.Document) {
	s.subMu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(doc)
	}
}
