package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"academy/internal/domain/class"
)

// SaveClassInput carries staged form values for the save orchestrator.
// An empty ID means the save creates a new record. The enrolled set is
// never part of the form: it is preserved from the existing record on edit
// and starts empty on create.
type SaveClassInput struct {
	ID       string
	Name     string
	Sport    string
	CoachID  string
	Schedule string
	Capacity int
}

// SaveClassDeps holds dependencies for SaveClass.
type SaveClassDeps struct {
	ClassStore ClassStore
	GenerateID func() string
}

// ExecuteSaveClass creates or updates a class record. Capacity is stored
// as given; it is enforced only at enrollment time. Editing an ID that no
// longer exists is a silent no-op.
// PRE: input fields are already type-coerced
// POST: record persisted; enrolled set carried over unchanged on edit
func ExecuteSaveClass(ctx context.Context, input SaveClassInput, deps SaveClassDeps) (class.Class, error) {
	c := class.Class{
		ID:               input.ID,
		Name:             strings.TrimSpace(input.Name),
		Sport:            input.Sport,
		CoachID:          input.CoachID,
		Schedule:         strings.TrimSpace(input.Schedule),
		Capacity:         input.Capacity,
		EnrolledStudents: []string{},
	}

	if c.ID == "" {
		c.ID = deps.GenerateID()
	} else {
		existing, err := deps.ClassStore.GetByID(ctx, c.ID)
		if err != nil {
			if errors.Is(err, class.ErrNotFound) {
				slog.Warn("class_event", "event", "stale_edit_target", "class_id", c.ID)
				return class.Class{}, nil
			}
			return class.Class{}, err
		}
		c.EnrolledStudents = existing.EnrolledStudents
	}

	if err := deps.ClassStore.Save(ctx, c); err != nil {
		return class.Class{}, err
	}

	slog.Info("class_event", "event", "class_saved", "class_id", c.ID, "sport", c.Sport, "coach_id", c.CoachID)
	return c, nil
}
