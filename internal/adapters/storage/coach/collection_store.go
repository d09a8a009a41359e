package coach

import (
	"context"

	"academy/internal/adapters/storage"
	domain "academy/internal/domain/coach"
)

// CollectionStore implements Store over the coaches collection.
type CollectionStore struct {
	collections *storage.Collections
}

// NewCollectionStore creates a coach store.
func NewCollectionStore(collections *storage.Collections) *CollectionStore {
	return &CollectionStore{collections: collections}
}

// List returns the full collection in insertion order.
func (s *CollectionStore) List(ctx context.Context) ([]domain.Coach, error) {
	var coaches []domain.Coach
	if err := s.collections.Load(ctx, storage.KeyCoaches, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

// GetByID retrieves a Coach by its ID.
// POST: Returns the first match or ErrNotFound
func (s *CollectionStore) GetByID(ctx context.Context, id string) (domain.Coach, error) {
	coaches, err := s.List(ctx)
	if err != nil {
		return domain.Coach{}, err
	}
	for _, c := range coaches {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Coach{}, domain.ErrNotFound
}

// Save upserts a Coach: an existing record with the same ID is replaced at
// its current position, otherwise the record is appended.
func (s *CollectionStore) Save(ctx context.Context, value domain.Coach) error {
	coaches, err := s.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, c := range coaches {
		if c.ID == value.ID {
			coaches[i] = value
			replaced = true
			break
		}
	}
	if !replaced {
		coaches = append(coaches, value)
	}
	return s.collections.Save(ctx, storage.KeyCoaches, coaches)
}

// Delete removes a Coach by ID. A missing ID is a no-op, not an error.
func (s *CollectionStore) Delete(ctx context.Context, id string) error {
	coaches, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := coaches[:0]
	for _, c := range coaches {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.collections.Save(ctx, storage.KeyCoaches, kept)
}
