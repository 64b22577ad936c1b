package service

import (
	"context"
	"testing"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
)

func TestRecycleAdd_PrependsNewest(t *testing.T) {
	st := newTestStore(t)
	svc := NewRecycleService(st)

	first := svc.AddItem(context.Background(), model.RecycleItemRequest{Name: "old.txt", Type: model.RecycleText})
	second := svc.AddItem(context.Background(), model.RecycleItemRequest{Name: "new.txt", Type: model.RecycleText})

	if first.ID == "" || second.ID == "" {
		t.Error("added items should get ids")
	}
	if first.DateDeleted == "" {
		t.Error("added items should be stamped with a deletion time")
	}

	items := svc.Items()
	if len(items) != 6 {
		t.Fatalf("items = %d, want 6 (4 defaults + 2)", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("bin must list most-recently-deleted first")
	}
}

func TestRecycleRemove(t *testing.T) {
	st := newTestStore(t)
	svc := NewRecycleService(st)

	if err := svc.RemoveItem(context.Background(), "1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(svc.Items()); got != 3 {
		t.Errorf("items = %d, want 3", got)
	}
	if err := svc.RemoveItem(context.Background(), "1"); err != ErrRecycleItemNotFound {
		t.Errorf("second remove = %v, want ErrRecycleItemNotFound", err)
	}
}

func TestRecycleRestore_RemovesFromBin(t *testing.T) {
	st := newTestStore(t)
	svc := NewRecycleService(st)

	if err := svc.RestoreItem(context.Background(), "2"); err != nil {
		t.Fatalf("restore: %v", err)
	}
	for _, item := range svc.Items() {
		if item.ID == "2" {
			t.Error("restored item must leave the bin")
		}
	}
	if err := svc.RestoreItem(context.Background(), "2"); err != ErrRecycleItemNotFound {
		t.Errorf("re-restore = %v, want ErrRecycleItemNotFound", err)
	}
}

func TestRecycleClear_Idempotent(t *testing.T) {
	st := newTestStore(t)
	svc := NewRecycleService(st)

	svc.ClearAll(context.Background())
	if got := len(svc.Items()); got != 0 {
		t.Fatalf("items after clear = %d, want 0", got)
	}

	// Clearing an empty bin is a no-op, not an error
	svc.ClearAll(context.Background())
	if got := len(svc.Items()); got != 0 {
		t.Errorf("items after second clear = %d, want 0", got)
	}
}
