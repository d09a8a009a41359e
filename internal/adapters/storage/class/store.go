package class

import (
	"context"

	domain "academy/internal/domain/class"
)

// Store persists Class state.
// ReplaceAll exists for the student-delete cascade, which rewrites every
// class roster as part of one logical deletion.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Class, error)
	Save(ctx context.Context, value domain.Class) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Class, error)
	ReplaceAll(ctx context.Context, values []domain.Class) error
}
