package web

import (
	"slices"
	"sync"

	"academy/internal/domain/class"
	"academy/internal/domain/coach"
	"academy/internal/domain/student"
)

// The screen adapters receive each render from the controllers and hold the
// latest visible set so handlers can serve it back as JSON. They are the
// HTTP-side implementation of the view ports.

type studentScreen struct {
	mu      sync.Mutex
	visible []student.Student
}

// RenderStudents stores the latest visible set.
func (v *studentScreen) RenderStudents(visible []student.Student) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = slices.Clone(visible)
}

// Snapshot returns a copy of the latest rendered set.
func (v *studentScreen) Snapshot() []student.Student {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.visible == nil {
		return []student.Student{}
	}
	return slices.Clone(v.visible)
}

type coachScreen struct {
	mu      sync.Mutex
	visible []coach.Coach
}

// RenderCoaches stores the latest visible set.
func (v *coachScreen) RenderCoaches(visible []coach.Coach) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = slices.Clone(visible)
}

// Snapshot returns a copy of the latest rendered set.
func (v *coachScreen) Snapshot() []coach.Coach {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.visible == nil {
		return []coach.Coach{}
	}
	return slices.Clone(v.visible)
}

// classRow is a class record joined with its coach's display name at render
// time. The CoachID reference is never denormalized into the stored record.
type classRow struct {
	class.Class
	CoachName     string `json:"coachName"`
	EnrolledCount int    `json:"enrolledCount"`
}

type classScreen struct {
	mu   sync.Mutex
	rows []classRow
}

// RenderClasses joins each visible class with the live coach collection and
// stores the result. A dangling or empty CoachID shows as "Unassigned".
func (v *classScreen) RenderClasses(visible []class.Class, coaches []coach.Coach) {
	names := make(map[string]string, len(coaches))
	for _, c := range coaches {
		names[c.ID] = c.Name
	}

	rows := make([]classRow, 0, len(visible))
	for _, cls := range visible {
		name, ok := names[cls.CoachID]
		if cls.IsUnassigned() || !ok {
			name = "Unassigned"
		}
		rows = append(rows, classRow{
			Class:         cls,
			CoachName:     name,
			EnrolledCount: cls.EnrolledCount(),
		})
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = rows
}

// Snapshot returns a copy of the latest rendered rows.
func (v *classScreen) Snapshot() []classRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rows == nil {
		return []classRow{}
	}
	return slices.Clone(v.rows)
}
