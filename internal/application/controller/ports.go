package controller

import (
	"academy/internal/application/orchestrators"
	"academy/internal/domain/class"
	"academy/internal/domain/coach"
	"academy/internal/domain/student"
)

// Ports to the external rendering and form collaborators. The core hands a
// filtered, ordered sequence to the view and treats the form as one opaque
// record-shaped value; how records are drawn or fields are wired up is not
// its concern.

// StudentView renders the visible subset of the student collection.
type StudentView interface {
	RenderStudents(visible []student.Student)
}

// CoachView renders the visible subset of the coach collection.
type CoachView interface {
	RenderCoaches(visible []coach.Coach)
}

// ClassView renders the visible subset of the class collection. The live
// coach collection rides along so the view can resolve coach names at
// render time; the CoachID reference is never denormalized into the class
// record.
type ClassView interface {
	RenderClasses(visible []class.Class, coaches []coach.Coach)
}

// StudentForm captures and populates staged student field values.
type StudentForm interface {
	Values() orchestrators.SaveStudentInput
	Populate(s student.Student)
}

// CoachForm captures and populates staged coach field values.
type CoachForm interface {
	Values() orchestrators.SaveCoachInput
	Populate(c coach.Coach)
}

// ClassForm captures and populates staged class field values. The coach
// selector is repopulated from the live coach collection every time the
// modal opens, never cached.
type ClassForm interface {
	Values() orchestrators.SaveClassInput
	Populate(c class.Class)
	PopulateCoachOptions(coaches []coach.Coach)
}
