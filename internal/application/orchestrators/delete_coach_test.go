package orchestrators

import (
	"context"
	"errors"
	"testing"

	"academy/internal/domain/class"
	"academy/internal/domain/coach"
)

// TestExecuteDeleteCoach_GuardRefuses tests that deleting a referenced
// coach is refused with the exact blocking count and no mutation.
func TestExecuteDeleteCoach_GuardRefuses(t *testing.T) {
	coachStore := &mockCoachStore{coaches: []coach.Coach{
		{ID: "ana", Name: "Ana", Specialization: "Fencing", Experience: 5},
	}}
	classStore := &mockClassStore{classes: []class.Class{
		{ID: "c1", Name: "Intro Fencing", Sport: "Fencing", CoachID: "ana", Capacity: 10},
		{ID: "c2", Name: "Advanced Fencing", Sport: "Fencing", CoachID: "ana", Capacity: 6},
		{ID: "c3", Name: "Table Tennis", Sport: "Table Tennis", CoachID: "other", Capacity: 8},
	}}

	err := ExecuteDeleteCoach(context.Background(), DeleteCoachInput{CoachID: "ana"}, DeleteCoachDeps{
		CoachStore: coachStore,
		ClassStore: classStore,
	})

	var assigned *coach.AssignedError
	if !errors.As(err, &assigned) {
		t.Fatalf("expected AssignedError, got %v", err)
	}
	if assigned.Classes != 2 {
		t.Errorf("expected 2 blocking classes, got %d", assigned.Classes)
	}
	if assigned.CoachName != "Ana" {
		t.Errorf("expected coach name in error, got %q", assigned.CoachName)
	}

	// Hard precondition failure: nothing mutated.
	if len(coachStore.coaches) != 1 {
		t.Error("expected coach collection unchanged")
	}
	if len(classStore.classes) != 3 {
		t.Error("expected class collection unchanged")
	}
}

// TestExecuteDeleteCoach_SucceedsAfterClassesResolved deletes the blocking
// class first, then the coach.
func TestExecuteDeleteCoach_SucceedsAfterClassesResolved(t *testing.T) {
	ctx := context.Background()
	coachStore := &mockCoachStore{coaches: []coach.Coach{
		{ID: "ana", Name: "Ana", Specialization: "Fencing", Experience: 5},
	}}
	classStore := &mockClassStore{classes: []class.Class{
		{ID: "c1", Name: "Intro Fencing", Sport: "Fencing", CoachID: "ana", Capacity: 10},
	}}
	deps := DeleteCoachDeps{CoachStore: coachStore, ClassStore: classStore}

	err := ExecuteDeleteCoach(ctx, DeleteCoachInput{CoachID: "ana"}, deps)
	var assigned *coach.AssignedError
	if !errors.As(err, &assigned) || assigned.Classes != 1 {
		t.Fatalf("expected refusal with count 1, got %v", err)
	}

	if err := ExecuteDeleteClass(ctx, DeleteClassInput{ClassID: "c1"}, DeleteClassDeps{ClassStore: classStore}); err != nil {
		t.Fatalf("delete class: %v", err)
	}
	if err := ExecuteDeleteCoach(ctx, DeleteCoachInput{CoachID: "ana"}, deps); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if len(coachStore.coaches) != 0 {
		t.Error("expected coach collection to no longer contain Ana")
	}
}

// TestExecuteDeleteCoach_UnassignedCoach tests deleting a coach no class
// references.
func TestExecuteDeleteCoach_UnassignedCoach(t *testing.T) {
	coachStore := &mockCoachStore{coaches: []coach.Coach{{ID: "pat", Name: "Pat"}}}
	classStore := &mockClassStore{}

	err := ExecuteDeleteCoach(context.Background(), DeleteCoachInput{CoachID: "pat"}, DeleteCoachDeps{
		CoachStore: coachStore,
		ClassStore: classStore,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coachStore.coaches) != 0 {
		t.Error("expected coach removed")
	}
}

// TestExecuteDeleteCoach_MissingIsNoOp tests the silent no-op on a stale
// delete target.
func TestExecuteDeleteCoach_MissingIsNoOp(t *testing.T) {
	coachStore := &mockCoachStore{}
	classStore := &mockClassStore{}

	err := ExecuteDeleteCoach(context.Background(), DeleteCoachInput{CoachID: "gone"}, DeleteCoachDeps{
		CoachStore: coachStore,
		ClassStore: classStore,
	})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}
