package controller

import "sync"

// Section identifies one navigable view of the admin UI.
type Section string

// Known sections.
const (
	SectionAcademy  Section = "academy"
	SectionStudents Section = "students"
	SectionCoaches  Section = "coaches"
	SectionClasses  Section = "classes"
)

// Sections tracks which section is currently visible. The cross-entity
// refresh rule consults it so hidden views are not recomputed.
type Sections struct {
	mu      sync.Mutex
	current Section
}

// NewSections starts on the academy section, matching first load.
func NewSections() *Sections {
	return &Sections{current: SectionAcademy}
}

// SetCurrent records that a section became visible.
func (s *Sections) SetCurrent(section Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = section
}

// Current returns the visible section.
func (s *Sections) Current() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsVisible reports whether section is the visible one.
func (s *Sections) IsVisible(section Section) bool {
	return s.Current() == section
}
