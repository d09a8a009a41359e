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
	"academy/internal/domain/student"
)

// StudentController coordinates form-state capture, repository writes,
// cascade invocation, and re-render triggering for the student view. It
// owns exactly one piece of transient state: the ID of the record being
// edited (empty means the next save creates a new record) plus the current
// filter query.
type StudentController struct {
	students orchestrators.StudentStore
	classes  orchestrators.ClassStore
	view     StudentView
	form     StudentForm
	gate     *confirm.Gate
	bus      *events.Bus
	genID    func() string

	mu        sync.Mutex
	editingID string
	query     listutil.FilterParams
}

// StudentControllerDeps holds construction dependencies.
type StudentControllerDeps struct {
	StudentStore orchestrators.StudentStore
	ClassStore   orchestrators.ClassStore
	View         StudentView
	Form         StudentForm
	Gate         *confirm.Gate
	Bus          *events.Bus
	GenerateID   func() string
}

// NewStudentController wires a controller and subscribes it to its own
// collection topic so cascades initiated elsewhere re-render this view.
func NewStudentController(deps StudentControllerDeps) *StudentController {
	c := &StudentController{
		students: deps.StudentStore,
		classes:  deps.ClassStore,
		view:     deps.View,
		form:     deps.Form,
		gate:     deps.Gate,
		bus:      deps.Bus,
		genID:    deps.GenerateID,
	}
	return c
}

// SetQuery replaces the search/filter predicates and recomputes the
// visible set. Invoked on every keystroke; the recompute is a linear scan
// over the live collection.
func (c *StudentController) SetQuery(ctx context.Context, p listutil.FilterParams) error {
	c.mu.Lock()
	c.query = p
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh recomputes the visible subset from the live collection and hands
// it to the view. No derived state is cached across mutations.
func (c *StudentController) Refresh(ctx context.Context) error {
	records, err := c.students.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	p := c.query
	c.mu.Unlock()
	c.view.RenderStudents(listutil.VisibleStudents(records, p))
	return nil
}

// OpenForCreate clears the edit target; the next save appends a new record.
func (c *StudentController) OpenForCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = ""
}

// OpenForEdit looks up the record, surfaces its fields through the form
// port, and records the edit target. A missing ID indicates a stale UI
// reference and is a silent no-op.
func (c *StudentController) OpenForEdit(ctx context.Context, id string) error {
	s, err := c.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			slog.Warn("student_event", "event", "edit_target_missing", "student_id", id)
			return nil
		}
		return err
	}
	c.form.Populate(s)
	c.mu.Lock()
	c.editingID = id
	c.mu.Unlock()
	return nil
}

// Save reads the staged form values, stamps the edit target, persists, and
// re-renders. The edit target is cleared whether or not the save applied.
func (c *StudentController) Save(ctx context.Context) error {
	input := c.form.Values()
	c.mu.Lock()
	input.ID = c.editingID
	c.editingID = ""
	c.mu.Unlock()

	_, err := orchestrators.ExecuteSaveStudent(ctx, input, orchestrators.SaveStudentDeps{
		StudentStore: c.students,
		GenerateID:   c.genID,
	})
	if err != nil {
		return err
	}
	c.bus.Publish(events.TopicStudentsChanged)
	return c.Refresh(ctx)
}

// RequestDelete stages the deletion behind the confirmation gate. Deleting
// a student cascades through every class roster, so confirmation also
// notifies the class view. A missing ID is a silent no-op.
func (c *StudentController) RequestDelete(ctx context.Context, id string) error {
	s, err := c.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return nil
		}
		return err
	}

	msg := fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", s.Name)
	c.gate.Request(msg, func(ctx context.Context) error {
		err := orchestrators.ExecuteDeleteStudent(ctx, orchestrators.DeleteStudentInput{StudentID: id}, orchestrators.DeleteStudentDeps{
			StudentStore: c.students,
			ClassStore:   c.classes,
		})
		if err != nil {
			return err
		}
		c.bus.Publish(events.TopicStudentsChanged)
		c.bus.Publish(events.TopicClassesChanged)
		return c.Refresh(ctx)
	})
	return nil
}
