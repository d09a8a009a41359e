package web

import (
	"slices"
	"sync"

	"academy/internal/application/orchestrators"
	"academy/internal/domain/class"
	"academy/internal/domain/coach"
	"academy/internal/domain/student"
)

// The form adapters implement the form ports over staged request values.
// A save handler stages the decoded payload, then the controller reads it
// back through Values. Populate records what an open-for-edit surfaced so
// the handler can include it in the response.

type studentForm struct {
	mu     sync.Mutex
	staged orchestrators.SaveStudentInput
	loaded bool
}

// Stage replaces the staged values and clears the populated marker.
func (f *studentForm) Stage(input orchestrators.SaveStudentInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = input
	f.loaded = false
}

// Values returns the staged values.
func (f *studentForm) Values() orchestrators.SaveStudentInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged
}

// Populate stages the stored record's fields for editing.
func (f *studentForm) Populate(s student.Student) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = orchestrators.SaveStudentInput{
		ID:             s.ID,
		Name:           s.Name,
		Age:            s.Age,
		Sport:          s.Sport,
		Email:          s.Email,
		Phone:          s.Phone,
		EnrollmentDate: s.EnrollmentDate,
	}
	f.loaded = true
}

// Loaded reports whether the last open-for-edit found its record.
func (f *studentForm) Loaded() (orchestrators.SaveStudentInput, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged, f.loaded
}

type coachForm struct {
	mu     sync.Mutex
	staged orchestrators.SaveCoachInput
	loaded bool
}

// Stage replaces the staged values and clears the populated marker.
func (f *coachForm) Stage(input orchestrators.SaveCoachInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = input
	f.loaded = false
}

// Values returns the staged values.
func (f *coachForm) Values() orchestrators.SaveCoachInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged
}

// Populate stages the stored record's fields for editing.
func (f *coachForm) Populate(c coach.Coach) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = orchestrators.SaveCoachInput{
		ID:             c.ID,
		Name:           c.Name,
		Specialization: c.Specialization,
		Experience:     c.Experience,
		Email:          c.Email,
		Phone:          c.Phone,
	}
	f.loaded = true
}

// Loaded reports whether the last open-for-edit found its record.
func (f *coachForm) Loaded() (orchestrators.SaveCoachInput, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged, f.loaded
}

// coachOption is one entry in the class form's coach selector.
type coachOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type classForm struct {
	mu      sync.Mutex
	staged  orchestrators.SaveClassInput
	loaded  bool
	options []coachOption
}

// Stage replaces the staged values and clears the populated marker.
func (f *classForm) Stage(input orchestrators.SaveClassInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = input
	f.loaded = false
}

// Values returns the staged values.
func (f *classForm) Values() orchestrators.SaveClassInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged
}

// Populate stages the stored record's fields for editing. The enrolled set
// never passes through the form.
func (f *classForm) Populate(c class.Class) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = orchestrators.SaveClassInput{
		ID:       c.ID,
		Name:     c.Name,
		Sport:    c.Sport,
		CoachID:  c.CoachID,
		Schedule: c.Schedule,
		Capacity: c.Capacity,
	}
	f.loaded = true
}

// PopulateCoachOptions replaces the coach selector entries from the live
// coach collection.
func (f *classForm) PopulateCoachOptions(coaches []coach.Coach) {
	options := make([]coachOption, 0, len(coaches))
	for _, c := range coaches {
		options = append(options, coachOption{ID: c.ID, Name: c.Name})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.options = options
}

// Loaded reports whether the last open-for-edit found its record.
func (f *classForm) Loaded() (orchestrators.SaveClassInput, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged, f.loaded
}

// CoachOptions returns the current coach selector entries.
func (f *classForm) CoachOptions() []coachOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.options == nil {
		return []coachOption{}
	}
	return slices.Clone(f.options)
}
