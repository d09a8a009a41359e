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
	"academy/internal/domain/class"
)

// ClassController coordinates the class view. It subscribes to coach and
// class collection changes and refreshes only while the class section is
// visible: the coach-name join shown there must never go stale on screen,
// but hidden sections are not recomputed.
type ClassController struct {
	classes  orchestrators.ClassStore
	coaches  orchestrators.CoachStore
	students orchestrators.StudentStore
	view     ClassView
	form     ClassForm
	gate     *confirm.Gate
	bus      *events.Bus
	sections *Sections
	genID    func() string

	mu        sync.Mutex
	editingID string
	query     listutil.FilterParams
}

// ClassControllerDeps holds construction dependencies.
type ClassControllerDeps struct {
	ClassStore   orchestrators.ClassStore
	CoachStore   orchestrators.CoachStore
	StudentStore orchestrators.StudentStore
	View         ClassView
	Form         ClassForm
	Gate         *confirm.Gate
	Bus          *events.Bus
	Sections     *Sections
	GenerateID   func() string
}

// NewClassController wires a controller and registers the cross-entity
// refresh subscriptions.
func NewClassController(deps ClassControllerDeps) *ClassController {
	c := &ClassController{
		classes:  deps.ClassStore,
		coaches:  deps.CoachStore,
		students: deps.StudentStore,
		view:     deps.View,
		form:     deps.Form,
		gate:     deps.Gate,
		bus:      deps.Bus,
		sections: deps.Sections,
		genID:    deps.GenerateID,
	}
	refreshIfVisible := func() {
		if !c.sections.IsVisible(SectionClasses) {
			return
		}
		if err := c.Refresh(context.Background()); err != nil {
			slog.Error("class_event", "event", "refresh_failed", "error", err.Error())
		}
	}
	c.bus.Subscribe(events.TopicCoachesChanged, refreshIfVisible)
	c.bus.Subscribe(events.TopicClassesChanged, refreshIfVisible)
	return c
}

// SetQuery replaces the search/filter predicates and re-renders.
func (c *ClassController) SetQuery(ctx context.Context, p listutil.FilterParams) error {
	c.mu.Lock()
	c.query = p
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh recomputes the visible subset and hands it to the view together
// with the live coach collection for the name join.
func (c *ClassController) Refresh(ctx context.Context) error {
	records, err := c.classes.List(ctx)
	if err != nil {
		return err
	}
	coaches, err := c.coaches.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	p := c.query
	c.mu.Unlock()
	c.view.RenderClasses(listutil.VisibleClasses(records, p), coaches)
	return nil
}

// OpenForCreate clears the edit target and repopulates the coach selector
// from the live coach collection.
func (c *ClassController) OpenForCreate(ctx context.Context) error {
	c.mu.Lock()
	c.editingID = ""
	c.mu.Unlock()
	return c.populateCoachOptions(ctx)
}

// OpenForEdit surfaces the record for editing. The coach selector is
// repopulated every open: the set of valid coach references may have
// changed since the modal last closed. Missing IDs are silent.
func (c *ClassController) OpenForEdit(ctx context.Context, id string) error {
	cls, err := c.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, class.ErrNotFound) {
			slog.Warn("class_event", "event", "edit_target_missing", "class_id", id)
			return nil
		}
		return err
	}
	if err := c.populateCoachOptions(ctx); err != nil {
		return err
	}
	c.form.Populate(cls)
	c.mu.Lock()
	c.editingID = id
	c.mu.Unlock()
	return nil
}

func (c *ClassController) populateCoachOptions(ctx context.Context) error {
	coaches, err := c.coaches.List(ctx)
	if err != nil {
		return err
	}
	c.form.PopulateCoachOptions(coaches)
	return nil
}

// Save persists the staged values. The enrolled set is never part of the
// form; the save orchestrator carries it over from the stored record.
func (c *ClassController) Save(ctx context.Context) error {
	input := c.form.Values()
	c.mu.Lock()
	input.ID = c.editingID
	c.editingID = ""
	c.mu.Unlock()

	_, err := orchestrators.ExecuteSaveClass(ctx, input, orchestrators.SaveClassDeps{
		ClassStore: c.classes,
		GenerateID: c.genID,
	})
	if err != nil {
		return err
	}
	c.bus.Publish(events.TopicClassesChanged)
	return c.Refresh(ctx)
}

// RequestDelete stages the deletion behind the confirmation gate. A
// missing ID is a silent no-op.
func (c *ClassController) RequestDelete(ctx context.Context, id string) error {
	cls, err := c.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, class.ErrNotFound) {
			return nil
		}
		return err
	}

	msg := fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", cls.Name)
	c.gate.Request(msg, func(ctx context.Context) error {
		err := orchestrators.ExecuteDeleteClass(ctx, orchestrators.DeleteClassInput{ClassID: id}, orchestrators.DeleteClassDeps{
			ClassStore: c.classes,
		})
		if err != nil {
			return err
		}
		c.bus.Publish(events.TopicClassesChanged)
		return c.Refresh(ctx)
	})
	return nil
}

// Enroll adds a student to a class roster, enforcing capacity, and
// re-renders the class view.
func (c *ClassController) Enroll(ctx context.Context, classID, studentID string) error {
	_, err := orchestrators.ExecuteEnrollStudent(ctx, orchestrators.EnrollStudentInput{
		ClassID:   classID,
		StudentID: studentID,
	}, orchestrators.EnrollStudentDeps{
		ClassStore:   c.classes,
		StudentStore: c.students,
	})
	if err != nil {
		return err
	}
	c.bus.Publish(events.TopicClassesChanged)
	return c.Refresh(ctx)
}

// Unenroll removes a student from a class roster and re-renders.
func (c *ClassController) Unenroll(ctx context.Context, classID, studentID string) error {
	err := orchestrators.ExecuteUnenrollStudent(ctx, orchestrators.EnrollStudentInput{
		ClassID:   classID,
		StudentID: studentID,
	}, orchestrators.EnrollStudentDeps{
		ClassStore:   c.classes,
		StudentStore: c.students,
	})
	if err != nil {
		return err
	}
	c.bus.Publish(events.TopicClassesChanged)
	return c.Refresh(ctx)
}
