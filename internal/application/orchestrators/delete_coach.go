package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academy/internal/domain/coach"
)

// DeleteCoachInput carries input for the delete orchestrator.
type DeleteCoachInput struct {
	CoachID string
}

// DeleteCoachDeps holds dependencies for DeleteCoach.
type DeleteCoachDeps struct {
	CoachStore CoachStore
	ClassStore ClassStore
}

// ExecuteDeleteCoach removes a coach after checking the delete guard:
// a coach still referenced by any class cannot be deleted. Unassigning is
// a user-meaningful decision that must not happen silently, so the guard
// refuses outright instead of nulling references. A missing coach is a
// silent no-op.
// PRE: CoachID is non-empty
// POST: on success the coach is removed and no class referenced it; on
// refusal (*coach.AssignedError) no state is mutated and the error carries
// the exact count of blocking classes
func ExecuteDeleteCoach(ctx context.Context, input DeleteCoachInput, deps DeleteCoachDeps) error {
	c, err := deps.CoachStore.GetByID(ctx, input.CoachID)
	if err != nil {
		if errors.Is(err, coach.ErrNotFound) {
			slog.Warn("coach_event", "event", "delete_target_missing", "coach_id", input.CoachID)
			return nil
		}
		return err
	}

	classes, err := deps.ClassStore.List(ctx)
	if err != nil {
		return err
	}
	assigned := 0
	for _, cls := range classes {
		if cls.CoachID == input.CoachID {
			assigned++
		}
	}
	if assigned > 0 {
		slog.Info("coach_event", "event", "delete_refused", "coach_id", input.CoachID, "assigned_classes", assigned)
		return &coach.AssignedError{CoachName: c.Name, Classes: assigned}
	}

	if err := deps.CoachStore.Delete(ctx, input.CoachID); err != nil {
		return err
	}

	slog.Info("coach_event", "event", "coach_deleted", "coach_id", input.CoachID)
	return nil
}
