package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academy/internal/domain/class"
	"academy/internal/domain/student"
)

// EnrollStudentInput carries input for the enrollment orchestrators.
type EnrollStudentInput struct {
	ClassID   string
	StudentID string
}

// EnrollStudentDeps holds dependencies for EnrollStudent and
// UnenrollStudent.
type EnrollStudentDeps struct {
	ClassStore   ClassStore
	StudentStore StudentStore
}

// ExecuteEnrollStudent adds a student to a class roster. Capacity is
// enforced here and only here; the class save path stores capacity as
// advisory. Enrollment is an explicit action, so a missing class or
// student is reported rather than swallowed.
// PRE: ClassID and StudentID are non-empty
// POST: student appended to the roster, enrollment order preserved
func ExecuteEnrollStudent(ctx context.Context, input EnrollStudentInput, deps EnrollStudentDeps) (class.Class, error) {
	if input.ClassID == "" {
		return class.Class{}, errors.New("class ID is required")
	}
	if input.StudentID == "" {
		return class.Class{}, errors.New("student ID is required")
	}

	if _, err := deps.StudentStore.GetByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return class.Class{}, student.ErrNotFound
		}
		return class.Class{}, err
	}

	c, err := deps.ClassStore.GetByID(ctx, input.ClassID)
	if err != nil {
		return class.Class{}, err
	}

	if err := c.Enroll(input.StudentID); err != nil {
		return class.Class{}, err
	}
	if err := deps.ClassStore.Save(ctx, c); err != nil {
		return class.Class{}, err
	}

	slog.Info("class_event", "event", "student_enrolled", "class_id", c.ID, "student_id", input.StudentID, "enrolled", c.EnrolledCount(), "capacity", c.Capacity)
	return c, nil
}

// ExecuteUnenrollStudent removes a student from a class roster. A missing
// class or an ID not on the roster is a silent no-op.
func ExecuteUnenrollStudent(ctx context.Context, input EnrollStudentInput, deps EnrollStudentDeps) error {
	c, err := deps.ClassStore.GetByID(ctx, input.ClassID)
	if err != nil {
		if errors.Is(err, class.ErrNotFound) {
			return nil
		}
		return err
	}

	if !c.HasStudent(input.StudentID) {
		return nil
	}
	c.Unenroll(input.StudentID)
	if err := deps.ClassStore.Save(ctx, c); err != nil {
		return err
	}

	slog.Info("class_event", "event", "student_unenrolled", "class_id", c.ID, "student_id", input.StudentID)
	return nil
}
