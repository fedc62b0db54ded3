package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopping-busket/shoppinglist/internal/events"
	"github.com/shopping-busket/shoppinglist/internal/models"
	"github.com/shopping-busket/shoppinglist/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "shoppinglist-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func itemIDs(items []models.ItemRecord) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func sameIDs(got []models.ItemRecord, want ...string) bool {
	ids := itemIDs(got)
	if len(ids) != len(want) {
		return false
	}
	for i := range ids {
		if ids[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateList generates IDs", func(t *testing.T) {
		list := &models.ShoppingListRecord{
			Name:        "Groceries",
			Description: "weekly",
			Owner:       "alice",
		}

		if err := store.CreateList(ctx, list); err != nil {
			t.Fatalf("CreateList failed: %v", err)
		}

		if list.ID == 0 {
			t.Error("Expected numeric ID to be assigned")
		}
		if list.ListID == "" {
			t.Error("Expected list ID to be generated")
		}
		if list.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetList retrieves items in order", func(t *testing.T) {
		original := &models.ShoppingListRecord{
			ListID: "list-order",
			Name:   "Party",
			Owner:  "bob",
			Entries: []models.ItemRecord{
				{ID: "c", Name: "Chips"},
				{ID: "a", Name: "Avocado"},
				{ID: "b", Name: "Beer"},
			},
			CheckedEntries: []models.ItemRecord{
				{ID: "z", Name: "Zucchini"},
				{ID: "y", Name: "Yogurt"},
			},
		}
		if err := store.CreateList(ctx, original); err != nil {
			t.Fatalf("CreateList failed: %v", err)
		}

		got, err := store.GetList(ctx, "list-order")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}

		if got.ID != original.ID {
			t.Errorf("ID mismatch: got %d, want %d", got.ID, original.ID)
		}
		if got.Name != "Party" || got.Owner != "bob" {
			t.Errorf("header mismatch: got %+v", got)
		}
		if !sameIDs(got.Entries, "c", "a", "b") {
			t.Errorf("entries = %v, want [c a b]", itemIDs(got.Entries))
		}
		if !sameIDs(got.CheckedEntries, "z", "y") {
			t.Errorf("checkedEntries = %v, want [z y]", itemIDs(got.CheckedEntries))
		}
		if got.Entries[1].Name != "Avocado" {
			t.Errorf("name = %q, want Avocado", got.Entries[1].Name)
		}
	})

	t.Run("CreateList rejects duplicate list ID", func(t *testing.T) {
		err := store.CreateList(ctx, &models.ShoppingListRecord{ListID: "list-order", Name: "dup"})
		if !errors.Is(err, storage.ErrAlreadyExists) {
			t.Errorf("Expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("GetList returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetList(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateList replaces items and appends events", func(t *testing.T) {
		list := &models.ShoppingListRecord{
			ListID:  "list-update",
			Name:    "Before",
			Entries: []models.ItemRecord{{ID: "a", Name: "Apples"}, {ID: "b", Name: "Bread"}},
		}
		if err := store.CreateList(ctx, list); err != nil {
			t.Fatalf("CreateList failed: %v", err)
		}

		list.Name = "After"
		list.Entries = []models.ItemRecord{{ID: "b", Name: "Bread"}}
		list.CheckedEntries = []models.ItemRecord{{ID: "a", Name: "Apples"}}
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		evt := events.New(events.MarkEntryDone, "a", "Apples", at)

		if err := store.UpdateList(ctx, list, evt); err != nil {
			t.Fatalf("UpdateList failed: %v", err)
		}

		got, err := store.GetList(ctx, "list-update")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		if got.Name != "After" {
			t.Errorf("name = %q, want After", got.Name)
		}
		if !sameIDs(got.Entries, "b") || !sameIDs(got.CheckedEntries, "a") {
			t.Errorf("entries = %v, checked = %v", itemIDs(got.Entries), itemIDs(got.CheckedEntries))
		}

		evts, err := store.ListEvents(ctx, "list-update")
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(evts) != 1 {
			t.Fatalf("expected 1 event, got %d", len(evts))
		}
		if evts[0].Event != events.MarkEntryDone || evts[0].EntryID != "a" || evts[0].State.Name != "Apples" {
			t.Errorf("unexpected event: %+v", evts[0])
		}
		if evts[0].ISODate != "2024-01-02T03:04:05.000Z" {
			t.Errorf("ISODate = %q", evts[0].ISODate)
		}
	})

	t.Run("UpdateList keeps move state", func(t *testing.T) {
		list, err := store.GetList(ctx, "list-update")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		move := events.NewMove("b", "Bread", "", "", 0, 0, time.Now())
		if err := store.UpdateList(ctx, list, move); err != nil {
			t.Fatalf("UpdateList failed: %v", err)
		}

		evts, err := store.ListEvents(ctx, "list-update")
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		last := evts[len(evts)-1]
		if last.State.OldIndex == nil || last.State.NewIndex == nil {
			t.Errorf("expected move indices to survive storage, got %+v", last.State)
		}
	})

	t.Run("UpdateList rolls back on invalid event", func(t *testing.T) {
		list, err := store.GetList(ctx, "list-update")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		list.Name = "Should not persist"

		bad := events.LogEvent{Event: "BOGUS", EntryID: "a", ISODate: events.FormatTime(time.Now())}
		if err := store.UpdateList(ctx, list, bad); err == nil {
			t.Fatal("Expected error for invalid event")
		}

		got, err := store.GetList(ctx, "list-update")
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		if got.Name != "After" {
			t.Errorf("name = %q, want After", got.Name)
		}
	})

	t.Run("UpdateList returns ErrNotFound", func(t *testing.T) {
		err := store.UpdateList(ctx, &models.ShoppingListRecord{ListID: "nonexistent-id"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListListsByOwner", func(t *testing.T) {
		for _, name := range []string{"First", "Second"} {
			if err := store.CreateList(ctx, &models.ShoppingListRecord{Name: name, Owner: "carol"}); err != nil {
				t.Fatalf("CreateList failed: %v", err)
			}
		}

		lists, err := store.ListListsByOwner(ctx, "carol")
		if err != nil {
			t.Fatalf("ListListsByOwner failed: %v", err)
		}
		if len(lists) != 2 {
			t.Fatalf("expected 2 lists, got %d", len(lists))
		}
		if lists[0].Name != "First" || lists[1].Name != "Second" {
			t.Errorf("unexpected order: %s, %s", lists[0].Name, lists[1].Name)
		}
		if lists[0].Entries == nil || lists[0].CheckedEntries == nil {
			t.Error("expected empty, non-nil item slices")
		}
	})

	t.Run("DeleteList removes list and events", func(t *testing.T) {
		if err := store.DeleteList(ctx, "list-update"); err != nil {
			t.Fatalf("DeleteList failed: %v", err)
		}
		if _, err := store.GetList(ctx, "list-update"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		evts, err := store.ListEvents(ctx, "list-update")
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(evts) != 0 {
			t.Errorf("expected no events after delete, got %d", len(evts))
		}
		if err := store.DeleteList(ctx, "list-update"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestRecordAggregateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := models.New("list-rt", "Groceries", "weekly", "dave",
		[]models.ItemRecord{{ID: "a", Name: "Apples"}}, nil)
	if _, err := list.CreateItem("Milk"); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if err := list.CheckItem("a", true); err != nil {
		t.Fatalf("CheckItem failed: %v", err)
	}

	rec := list.ToRecord(0)
	if err := store.CreateList(ctx, &rec); err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	stored, err := store.GetList(ctx, "list-rt")
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	back := models.FromRecord(*stored)

	if back.Name != "Groceries" || back.Description != "weekly" || back.Owner != "dave" {
		t.Errorf("header mismatch: %+v", back)
	}
	if len(back.Entries) != 1 || back.Entries[0].Name != "Milk" {
		t.Errorf("entries = %+v", back.Entries)
	}
	if len(back.CheckedEntries) != 1 || back.CheckedEntries[0].ID != "a" {
		t.Errorf("checkedEntries = %+v", back.CheckedEntries)
	}
}

func TestNewCreatesParentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "nested", "data", "lists.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("expected parent directory to exist: %v", err)
	}
}
