package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academy/internal/domain/class"
)

// DeleteClassInput carries input for the delete orchestrator.
type DeleteClassInput struct {
	ClassID string
}

// DeleteClassDeps holds dependencies for DeleteClass.
type DeleteClassDeps struct {
	ClassStore ClassStore
}

// ExecuteDeleteClass removes a class. No cascade is needed: classes own
// their roster and nothing references a class by ID. A missing class is a
// silent no-op.
func ExecuteDeleteClass(ctx context.Context, input DeleteClassInput, deps DeleteClassDeps) error {
	if _, err := deps.ClassStore.GetByID(ctx, input.ClassID); err != nil {
		if errors.Is(err, class.ErrNotFound) {
			slog.Warn("class_event", "event", "delete_target_missing", "class_id", input.ClassID)
			return nil
		}
		return err
	}

	if err := deps.ClassStore.Delete(ctx, input.ClassID); err != nil {
		return err
	}

	slog.Info("class_event", "event", "class_deleted", "class_id", input.ClassID)
	return nil
}
