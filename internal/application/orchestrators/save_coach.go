package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"academy/internal/domain/coach"
)

// CoachStore defines the store interface needed by coach orchestrators.
type CoachStore interface {
	GetByID(ctx context.Context, id string) (coach.Coach, error)
	Save(ctx context.Context, c coach.Coach) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]coach.Coach, error)
}

// SaveCoachInput carries staged form values for the save orchestrator.
// An empty ID means the save creates a new record.
type SaveCoachInput struct {
	ID             string
	Name           string
	Specialization string
	Experience     int
	Email          string
	Phone          string
}

// SaveCoachDeps holds dependencies for SaveCoach.
type SaveCoachDeps struct {
	CoachStore CoachStore
	GenerateID func() string
}

// ExecuteSaveCoach creates or updates a coach record. Editing an ID that no
// longer exists is a silent no-op.
// PRE: input fields are already type-coerced
// POST: record persisted with a fresh ID when none was staged
func ExecuteSaveCoach(ctx context.Context, input SaveCoachInput, deps SaveCoachDeps) (coach.Coach, error) {
	c := coach.Coach{
		ID:             input.ID,
		Name:           strings.TrimSpace(input.Name),
		Specialization: input.Specialization,
		Experience:     input.Experience,
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
	}

	if c.ID == "" {
		c.ID = deps.GenerateID()
	} else {
		if _, err := deps.CoachStore.GetByID(ctx, c.ID); err != nil {
			if errors.Is(err, coach.ErrNotFound) {
				slog.Warn("coach_event", "event", "stale_edit_target", "coach_id", c.ID)
				return coach.Coach{}, nil
			}
			return coach.Coach{}, err
		}
	}

	if err := deps.CoachStore.Save(ctx, c); err != nil {
		return coach.Coach{}, err
	}

	slog.Info("coach_event", "event", "coach_saved", "coach_id", c.ID, "specialization", c.Specialization)
	return c, nil
}
