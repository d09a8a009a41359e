package coach

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"academy/internal/adapters/storage"
	domain "academy/internal/domain/coach"
)

func newTestStore(t *testing.T) *CollectionStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	return NewCollectionStore(storage.NewCollections(db))
}

// TestRoundTrip verifies save, lookup, and the not-found sentinel.
func TestRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := domain.Coach{ID: "k1", Name: "Marta Voss", Specialization: "Fencing", Experience: 8}
	if err := store.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.GetByID(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != c {
		t.Errorf("expected %+v, got %+v", c, got)
	}

	_, err = store.GetByID(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestDelete verifies removal leaves the other records in order.
func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, c := range []domain.Coach{
		{ID: "k1", Name: "Marta", Specialization: "Fencing"},
		{ID: "k2", Name: "Igor", Specialization: "Tennis"},
		{ID: "k3", Name: "Dana", Specialization: "Swimming"},
	} {
		if err := store.Save(ctx, c); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	if err := store.Delete(ctx, "k2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	coaches, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(coaches) != 2 {
		t.Fatalf("expected 2 coaches, got %d", len(coaches))
	}
	if coaches[0].ID != "k1" || coaches[1].ID != "k3" {
		t.Errorf("expected k1,k3 in order, got %v", coaches)
	}
}
