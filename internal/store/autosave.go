package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
)

// DefaultDebounce is the quiet period after the last edit before a
// coalesced save fires.
const DefaultDebounce = 2 * time.Second

// AutosaveWorker drives the two autosave paths: a periodic interval save
// (period from settings.syncInterval, active while settings.autoSave is
// on) and a debounced save that coalesces rapid consecutive edits into
// one write. Both funnel through the store's save, so there is no second
// write format to keep in sync.
type AutosaveWorker struct {
	store    *DocumentStore
	debounce time.Duration

	// minInterval floors the ticker period so a bad setting cannot spin
	// the persist loop.
	minInterval time.Duration

	mu      sync.Mutex
	pending *model.DocumentPatch
	timer   *time.Timer
}

func NewAutosaveWorker(store *DocumentStore, debounce time.Duration) *AutosaveWorker {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &AutosaveWorker{
		store:       store,
		debounce:    debounce,
		minInterval: time.Second,
	}
}

// Start runs the interval loop until the context is cancelled, then
// flushes any pending debounced patch one last time.
func (w *AutosaveWorker) Start(ctx context.Context) {
	interval := w.intervalFor(w.store.SyncInterval())
	log.Printf("autosave: starting (interval=%s debounce=%s)", interval, w.debounce)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if w.store.AutoSaveEnabled() {
				w.store.PersistNow(ctx, TriggerInterval)
			}
			if next := w.intervalFor(w.store.SyncInterval()); next != interval {
				interval = next
				ticker.Reset(interval)
				log.Printf("autosave: interval changed to %s", interval)
			}
		case <-ctx.Done():
			w.flushPending(context.Background())
			log.Println("autosave: stopping (context cancelled)")
			return
		}
	}
}

// MarkDirty merges a patch into the pending set and (re)arms the
// debounce timer. A later edit to the same slice replaces the pending
// value, so a burst of edits produces exactly one write.
func (w *AutosaveWorker) MarkDirty(patch model.DocumentPatch) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		w.pending = &model.DocumentPatch{}
	}
	mergePatch(w.pending, patch)

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, func() {
			w.flushPending(context.Background())
		})
	} else {
		w.timer.Reset(w.debounce)
	}
}

// SaveNow cancels the pending debounce and writes immediately. With
// nothing pending it still persists the current Document, matching the
// manual "save now" control.
func (w *AutosaveWorker) SaveNow(ctx context.Context) model.Document {
	w.mu.Lock()
	patch := w.takePendingLocked()
	w.mu.Unlock()

	if patch != nil {
		return w.store.saveWith(ctx, TriggerManual, *patch)
	}
	return w.store.PersistNow(ctx, TriggerManual)
}

func (w *AutosaveWorker) flushPending(ctx context.Context) {
	w.mu.Lock()
	patch := w.takePendingLocked()
	w.mu.Unlock()

	if patch != nil {
		w.store.saveWith(ctx, TriggerDebounce, *patch)
	}
}

// takePendingLocked detaches the pending patch and disarms the timer.
// Callers hold w.mu.
func (w *AutosaveWorker) takePendingLocked() *model.DocumentPatch {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	patch := w.pending
	w.pending = nil
	return patch
}

func (w *AutosaveWorker) intervalFor(d time.Duration) time.Duration {
	if d < w.minInterval {
		return w.minInterval
	}
	return d
}

func mergePatch(dst *model.DocumentPatch, src model.DocumentPatch) {
	if src.Videos != nil {
		dst.Videos = src.Videos
	}
	if src.RecycleBin != nil {
		dst.RecycleBin = src.RecycleBin
	}
	if src.Reviews != nil {
		dst.Reviews = src.Reviews
	}
	if src.Analytics != nil {
		dst.Analytics = src.Analytics
	}
	if src.Settings != nil {
		dst.Settings = src.Settings
	}
}
