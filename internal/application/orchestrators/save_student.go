package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"academy/internal/domain/student"
)

// StudentStore defines the store interface needed by student orchestrators.
type StudentStore interface {
	GetByID(ctx context.Context, id string) (student.Student, error)
	Save(ctx context.Context, s student.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]student.Student, error)
}

// SaveStudentInput carries staged form values for the save orchestrator.
// An empty ID means the save creates a new record. Age arrives already
// coerced; malformed input coerces to zero and is persisted as-is.
type SaveStudentInput struct {
	ID             string
	Name           string
	Age            int
	Sport          string
	Email          string
	Phone          string
	EnrollmentDate string
}

// SaveStudentDeps holds dependencies for SaveStudent.
type SaveStudentDeps struct {
	StudentStore StudentStore
	GenerateID   func() string
}

// ExecuteSaveStudent creates or updates a student record.
// The record is replaced wholesale on edit, not merged. Editing an ID that
// no longer exists is a silent no-op (stale edit target, not a user error).
// PRE: input fields are already type-coerced
// POST: record persisted with a fresh ID when none was staged
func ExecuteSaveStudent(ctx context.Context, input SaveStudentInput, deps SaveStudentDeps) (student.Student, error) {
	s := student.Student{
		ID:             input.ID,
		Name:           strings.TrimSpace(input.Name),
		Age:            input.Age,
		Sport:          input.Sport,
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		EnrollmentDate: input.EnrollmentDate,
	}

	if s.ID == "" {
		s.ID = deps.GenerateID()
	} else {
		if _, err := deps.StudentStore.GetByID(ctx, s.ID); err != nil {
			if errors.Is(err, student.ErrNotFound) {
				slog.Warn("student_event", "event", "stale_edit_target", "student_id", s.ID)
				return student.Student{}, nil
			}
			return student.Student{}, err
		}
	}

	if err := deps.StudentStore.Save(ctx, s); err != nil {
		return student.Student{}, err
	}

	slog.Info("student_event", "event", "student_saved", "student_id", s.ID, "sport", s.Sport)
	return s, nil
}
