package service

import (
	"context"
	"errors"
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/pkg/ident"
)

var ErrRecycleItemNotFound = errors.New("recycle item not found")

// deletedAtFormat is the display timestamp stamped on new items.
const deletedAtFormat = "02/01/2006 15:04:05"

// RecycleService is a thin wrapper over the Document's recycleBin slice.
// Every mutation persists through the store, so all open recycle-bin
// windows see it immediately.
type RecycleService struct {
	store *store.DocumentStore
}

func NewRecycleService(st *store.DocumentStore) *RecycleService {
	return &RecycleService{store: st}
}

// Items returns the bin, most-recently-deleted first.
func (s *RecycleService) Items() []model.RecycleItem {
	return s.store.Document().RecycleBin
}

// AddItem generates an id and deletion timestamp and prepends the item.
func (s *RecycleService) AddItem(ctx context.Context, req model.RecycleItemRequest) model.RecycleItem {
	item := model.RecycleItem{
		ID:           ident.NewID(),
		Name:         req.Name,
		Type:         req.Type,
		Size:         req.Size,
		DateDeleted:  time.Now().Format(deletedAtFormat),
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		VideoURL:     req.VideoURL,
		OriginalPath: req.OriginalPath,
		Thumbnail:    req.Thumbnail,
	}

	doc := s.store.Document()
	bin := append([]model.RecycleItem{item}, doc.RecycleBin...)
	s.store.Save(ctx, model.DocumentPatch{RecycleBin: &bin})
	return item
}

// RemoveItem deletes the item permanently.
func (s *RecycleService) RemoveItem(ctx context.Context, id string) error {
	doc := s.store.Document()
	bin := make([]model.RecycleItem, 0, len(doc.RecycleBin))
	found := false
	for _, item := range doc.RecycleBin {
		if item.ID == id {
			found = true
			continue
		}
		bin = append(bin, item)
	}
	if !found {
		return ErrRecycleItemNotFound
	}
	s.store.Save(ctx, model.DocumentPatch{RecycleBin: &bin})
	return nil
}

// ClearAll empties the bin. Clearing an empty bin is a no-op, not an
// error.
func (s *RecycleService) ClearAll(ctx context.Context) {
	bin := []model.RecycleItem{}
	s.store.Save(ctx, model.DocumentPatch{RecycleBin: &bin})
}

// RestoreItem removes the item from the bin. Nothing is re-created
// elsewhere: there is no source of truth for an item's original
// location beyond its display path.
func (s *RecycleService) RestoreItem(ctx context.Context, id string) error {
	return s.RemoveItem(ctx, id)
}
