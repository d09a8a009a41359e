package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"academy/internal/application/confirm"
	"academy/internal/application/events"
	"academy/internal/application/listutil"
	"academy/internal/application/orchestrators"
	"academy/internal/domain/coach"
)

// CoachController coordinates the coach view. Saving or deleting a coach
// publishes a coaches-changed event so the class view can refresh its
// coach-name join while visible.
type CoachController struct {
	coaches orchestrators.CoachStore
	classes orchestrators.ClassStore
	view    CoachView
	form    CoachForm
	gate    *confirm.Gate
	bus     *events.Bus
	genID   func() string

	mu        sync.Mutex
	editingID string
	query     listutil.FilterParams
}

// CoachControllerDeps holds construction dependencies.
type CoachControllerDeps struct {
	CoachStore orchestrators.CoachStore
	ClassStore orchestrators.ClassStore
	View       CoachView
	Form       CoachForm
	Gate       *confirm.Gate
	Bus        *events.Bus
	GenerateID func() string
}

// NewCoachController wires a controller.
func NewCoachController(deps CoachControllerDeps) *CoachController {
	return &CoachController{
		coaches: deps.CoachStore,
		classes: deps.ClassStore,
		view:    deps.View,
		form:    deps.Form,
		gate:    deps.Gate,
		bus:     deps.Bus,
		genID:   deps.GenerateID,
	}
}

// SetQuery replaces the search/filter predicates and re-renders.
func (c *CoachController) SetQuery(ctx context.Context, p listutil.FilterParams) error {
	c.mu.Lock()
	c.query = p
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh recomputes the visible subset from the live collection.
func (c *CoachController) Refresh(ctx context.Context) error {
	records, err := c.coaches.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	p := c.query
	c.mu.Unlock()
	c.view.RenderCoaches(listutil.VisibleCoaches(records, p))
	return nil
}

// OpenForCreate clears the edit target.
func (c *CoachController) OpenForCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = ""
}

// OpenForEdit surfaces the record for editing; missing IDs are silent.
func (c *CoachController) OpenForEdit(ctx context.Context, id string) error {
	co, err := c.coaches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coach.ErrNotFound) {
			slog.Warn("coach_event", "event", "edit_target_missing", "coach_id", id)
			return nil
		}
		return err
	}
	c.form.Populate(co)
	c.mu.Lock()
	c.editingID = id
	c.mu.Unlock()
	return nil
}

// Save persists the staged values, clears the edit target, re-renders, and
// notifies subscribers of the coach collection change.
func (c *CoachController) Save(ctx context.Context) error {
	input := c.form.Values()
	c.mu.Lock()
	input.ID = c.editingID
	c.editingID = ""
	c.mu.Unlock()

	_, err := orchestrators.ExecuteSaveCoach(ctx, input, orchestrators.SaveCoachDeps{
		CoachStore: c.coaches,
		GenerateID: c.genID,
	})
	if err != nil {
		return err
	}
	c.bus.Publish(events.TopicCoachesChanged)
	return c.Refresh(ctx)
}

// RequestDelete runs the referential guard up front: a coach assigned to
// any class is refused before the confirmation gate is even engaged, so
// the user resolves the classes first. An unreferenced coach's deletion is
// staged behind the gate. A missing ID is a silent no-op.
func (c *CoachController) RequestDelete(ctx context.Context, id string) error {
	co, err := c.coaches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coach.ErrNotFound) {
			return nil
		}
		return err
	}

	classes, err := c.classes.List(ctx)
	if err != nil {
		return err
	}
	assigned := 0
	for _, cls := range classes {
		if cls.CoachID == id {
			assigned++
		}
	}
	if assigned > 0 {
		return &coach.AssignedError{CoachName: co.Name, Classes: assigned}
	}

	msg := fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", co.Name)
	c.gate.Request(msg, func(ctx context.Context) error {
		err := orchestrators.ExecuteDeleteCoach(ctx, orchestrators.DeleteCoachInput{CoachID: id}, orchestrators.DeleteCoachDeps{
			CoachStore: c.coaches,
			ClassStore: c.classes,
		})
		if err != nil {
			return err
		}
		c.bus.Publish(events.TopicCoachesChanged)
		return c.Refresh(ctx)
	})
	return nil
}
