package class

import (
	"context"

	"academy/internal/adapters/storage"
	domain "academy/internal/domain/class"
)

// CollectionStore implements Store over the classes collection.
type CollectionStore struct {
	collections *storage.Collections
}

// NewCollectionStore creates a class store.
func NewCollectionStore(collections *storage.Collections) *CollectionStore {
	return &CollectionStore{collections: collections}
}

// List returns the full collection in insertion order.
func (s *CollectionStore) List(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	if err := s.collections.Load(ctx, storage.KeyClasses, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// GetByID retrieves a Class by its ID.
// POST: Returns the first match or ErrNotFound
func (s *CollectionStore) GetByID(ctx context.Context, id string) (domain.Class, error) {
	classes, err := s.List(ctx)
	if err != nil {
		return domain.Class{}, err
	}
	for _, c := range classes {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Class{}, domain.ErrNotFound
}

// Save upserts a Class: an existing record with the same ID is replaced at
// its current position, otherwise the record is appended.
func (s *CollectionStore) Save(ctx context.Context, value domain.Class) error {
	classes, err := s.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, c := range classes {
		if c.ID == value.ID {
			classes[i] = value
			replaced = true
			break
		}
	}
	if !replaced {
		classes = append(classes, value)
	}
	return s.collections.Save(ctx, storage.KeyClasses, classes)
}

// Delete removes a Class by ID. A missing ID is a no-op, not an error.
func (s *CollectionStore) Delete(ctx context.Context, id string) error {
	classes, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := classes[:0]
	for _, c := range classes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.collections.Save(ctx, storage.KeyClasses, kept)
}

// ReplaceAll overwrites the whole collection with values.
// PRE: values holds every class that should remain, in order
// POST: subsequent Lists return exactly values
func (s *CollectionStore) ReplaceAll(ctx context.Context, values []domain.Class) error {
	return s.collections.Save(ctx, storage.KeyClasses, values)
}
