package student

import (
	"context"

	"academy/internal/adapters/storage"
	domain "academy/internal/domain/student"
)

// CollectionStore implements Store over the students collection.
type CollectionStore struct {
	collections *storage.Collections
}

// NewCollectionStore creates a student store.
func NewCollectionStore(collections *storage.Collections) *CollectionStore {
	return &CollectionStore{collections: collections}
}

// List returns the full collection in insertion order.
func (s *CollectionStore) List(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	if err := s.collections.Load(ctx, storage.KeyStudents, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetByID retrieves a Student by its ID.
// POST: Returns the first match or ErrNotFound
func (s *CollectionStore) GetByID(ctx context.Context, id string) (domain.Student, error) {
	students, err := s.List(ctx)
	if err != nil {
		return domain.Student{}, err
	}
	for _, st := range students {
		if st.ID == id {
			return st, nil
		}
	}
	return domain.Student{}, domain.ErrNotFound
}

// Save upserts a Student: an existing record with the same ID is replaced
// at its current position, otherwise the record is appended.
// PRE: value.ID is non-empty
// POST: collection persisted with value present exactly once
func (s *CollectionStore) Save(ctx context.Context, value domain.Student) error {
	students, err := s.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, st := range students {
		if st.ID == value.ID {
			students[i] = value
			replaced = true
			break
		}
	}
	if !replaced {
		students = append(students, value)
	}
	return s.collections.Save(ctx, storage.KeyStudents, students)
}

// Delete removes a Student by ID. A missing ID is a no-op, not an error.
func (s *CollectionStore) Delete(ctx context.Context, id string) error {
	students, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := students[:0]
	for _, st := range students {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	return s.collections.Save(ctx, storage.KeyStudents, kept)
}
