package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academy/internal/domain/class"
	"academy/internal/domain/student"
)

// ClassStore defines the store interface needed by orchestrators that touch
// the class collection.
type ClassStore interface {
	GetByID(ctx context.Context, id string) (class.Class, error)
	Save(ctx context.Context, c class.Class) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]class.Class, error)
	ReplaceAll(ctx context.Context, values []class.Class) error
}

// DeleteStudentInput carries input for the delete orchestrator.
type DeleteStudentInput struct {
	StudentID string
}

// DeleteStudentDeps holds dependencies for DeleteStudent.
type DeleteStudentDeps struct {
	StudentStore StudentStore
	ClassStore   ClassStore
}

// ExecuteDeleteStudent removes a student and cascades the removal through
// every class roster as one logical operation. A missing student is a
// silent no-op. Students are not protected by a guard: removing a person
// from a roster is the unambiguous consequence of their departure.
// PRE: StudentID is non-empty
// POST: student absent from the student collection and from every class's
// enrolled set; all other class fields unchanged
func ExecuteDeleteStudent(ctx context.Context, input DeleteStudentInput, deps DeleteStudentDeps) error {
	if _, err := deps.StudentStore.GetByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			slog.Warn("student_event", "event", "delete_target_missing", "student_id", input.StudentID)
			return nil
		}
		return err
	}

	if err := deps.StudentStore.Delete(ctx, input.StudentID); err != nil {
		return err
	}

	// Cascade: drop the ID from every roster, not just the first match.
	classes, err := deps.ClassStore.List(ctx)
	if err != nil {
		return err
	}
	unenrolled := 0
	for i := range classes {
		if classes[i].HasStudent(input.StudentID) {
			classes[i].Unenroll(input.StudentID)
			unenrolled++
		}
	}
	if err := deps.ClassStore.ReplaceAll(ctx, classes); err != nil {
		return err
	}

	slog.Info("student_event", "event", "student_deleted", "student_id", input.StudentID, "unenrolled_classes", unenrolled)
	return nil
}
