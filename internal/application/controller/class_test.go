package controller

import (
	"context"
	"errors"
	"testing"

	"academy/internal/application/confirm"
	"academy/internal/application/events"
	"academy/internal/application/orchestrators"
	"academy/internal/domain/class"
	"academy/internal/domain/coach"
	"academy/internal/domain/sport"
	"academy/internal/domain/student"
)

type classFixture struct {
	ctrl     *ClassController
	classes  *mockClassStore
	coaches  *mockCoachStore
	students *mockStudentStore
	view     *fakeClassView
	form     *fakeClassForm
	gate     *confirm.Gate
	bus      *events.Bus
	sections *Sections
}

func newClassFixture() *classFixture {
	f := &classFixture{
		classes: &mockClassStore{classes: []class.Class{
			{ID: "c1", Name: "Intro Fencing", Sport: sport.Fencing, CoachID: "ana", Capacity: 2, EnrolledStudents: []string{}},
		}},
		coaches: &mockCoachStore{coaches: []coach.Coach{
			{ID: "ana", Name: "Ana", Specialization: sport.Fencing},
		}},
		students: &mockStudentStore{students: []student.Student{
			{ID: "s1", Name: "Bo"},
		}},
		view:     &fakeClassView{},
		form:     &fakeClassForm{},
		gate:     confirm.NewGate(),
		bus:      events.NewBus(),
		sections: NewSections(),
	}
	f.ctrl = NewClassController(ClassControllerDeps{
		ClassStore:   f.classes,
		CoachStore:   f.coaches,
		StudentStore: f.students,
		View:         f.view,
		Form:         f.form,
		Gate:         f.gate,
		Bus:          f.bus,
		Sections:     f.sections,
		GenerateID:   fixedID,
	})
	return f
}

// TestClassController_CoachOptionsRepopulatedEachOpen tests that the coach
// selector reflects the live coach collection on every modal open.
func TestClassController_CoachOptionsRepopulatedEachOpen(t *testing.T) {
	f := newClassFixture()
	ctx := context.Background()

	if err := f.ctrl.OpenForCreate(ctx); err != nil {
		t.Fatalf("open for create: %v", err)
	}
	if len(f.form.coachOptions) != 1 || len(f.form.coachOptions[0]) != 1 {
		t.Fatalf("expected one coach option, got %v", f.form.coachOptions)
	}

	// A coach added between opens must appear in the next option set.
	f.coaches.coaches = append(f.coaches.coaches, coach.Coach{ID: "pat", Name: "Pat", Specialization: sport.Swimming})
	if err := f.ctrl.OpenForEdit(ctx, "c1"); err != nil {
		t.Fatalf("open for edit: %v", err)
	}
	latest := f.form.coachOptions[len(f.form.coachOptions)-1]
	if len(latest) != 2 {
		t.Errorf("expected live options with 2 coaches, got %v", latest)
	}
	if len(f.form.populated) != 1 || f.form.populated[0].ID != "c1" {
		t.Errorf("expected form populated with c1, got %v", f.form.populated)
	}
}

// TestClassController_CoachesChangedRefreshesOnlyWhenVisible tests the
// cross-entity refresh rule.
func TestClassController_CoachesChangedRefreshesOnlyWhenVisible(t *testing.T) {
	f := newClassFixture()

	// Hidden section: the event must not trigger a render.
	f.sections.SetCurrent(SectionCoaches)
	f.bus.Publish(events.TopicCoachesChanged)
	if len(f.view.rendered) != 0 {
		t.Fatalf("expected no render while hidden, got %d", len(f.view.rendered))
	}

	// Visible section: the event refreshes the coach-name join.
	f.sections.SetCurrent(SectionClasses)
	f.bus.Publish(events.TopicCoachesChanged)
	if len(f.view.rendered) != 1 {
		t.Fatalf("expected one render while visible, got %d", len(f.view.rendered))
	}
	r := f.view.rendered[0]
	if len(r.visible) != 1 || len(r.coaches) != 1 || r.coaches[0].Name != "Ana" {
		t.Errorf("expected live join data, got %+v", r)
	}
}

// TestClassController_SavePreservesRoster tests that the enrolled set
// survives an edit initiated through the controller.
func TestClassController_SavePreservesRoster(t *testing.T) {
	f := newClassFixture()
	ctx := context.Background()
	f.classes.classes[0].EnrolledStudents = []string{"s1"}

	if err := f.ctrl.OpenForEdit(ctx, "c1"); err != nil {
		t.Fatalf("open for edit: %v", err)
	}
	f.form.staged = orchestrators.SaveClassInput{Name: "Intro Fencing II", Sport: sport.Fencing, CoachID: "ana", Capacity: 3}
	if err := f.ctrl.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := f.classes.classes[0]
	if got.Name != "Intro Fencing II" || got.Capacity != 3 {
		t.Errorf("expected updated fields, got %+v", got)
	}
	if !got.HasStudent("s1") {
		t.Errorf("expected roster preserved, got %v", got.EnrolledStudents)
	}
}

// TestClassController_Enroll tests enrollment with capacity enforcement.
func TestClassController_Enroll(t *testing.T) {
	f := newClassFixture()
	ctx := context.Background()

	if err := f.ctrl.Enroll(ctx, "c1", "s1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if !f.classes.classes[0].HasStudent("s1") {
		t.Error("expected s1 enrolled")
	}

	f.students.students = append(f.students.students,
		student.Student{ID: "s2", Name: "Cy"}, student.Student{ID: "s3", Name: "Di"})
	if err := f.ctrl.Enroll(ctx, "c1", "s2"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := f.ctrl.Enroll(ctx, "c1", "s3"); !errors.Is(err, class.ErrFull) {
		t.Fatalf("expected ErrFull at capacity, got %v", err)
	}

	if err := f.ctrl.Unenroll(ctx, "c1", "s1"); err != nil {
		t.Fatalf("unenroll: %v", err)
	}
	if f.classes.classes[0].HasStudent("s1") {
		t.Error("expected s1 removed")
	}
}

// TestClassController_DeleteThroughGate tests staged class deletion.
func TestClassController_DeleteThroughGate(t *testing.T) {
	f := newClassFixture()
	ctx := context.Background()

	if err := f.ctrl.RequestDelete(ctx, "c1"); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if len(f.classes.classes) != 1 {
		t.Fatal("expected no mutation before confirmation")
	}
	if err := f.gate.Confirm(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(f.classes.classes) != 0 {
		t.Errorf("expected class deleted, got %v", f.classes.classes)
	}
}
