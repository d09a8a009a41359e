package orchestrators

import (
	"context"

	"academy/internal/domain/class"
	"academy/internal/domain/coach"
	"academy/internal/domain/student"
)

// Slice-backed mocks preserve insertion order, matching the collection
// store's upsert semantics.

type mockStudentStore struct {
	students []student.Student
}

func (m *mockStudentStore) GetByID(_ context.Context, id string) (student.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (m *mockStudentStore) Save(_ context.Context, s student.Student) error {
	for i := range m.students {
		if m.students[i].ID == s.ID {
			m.students[i] = s
			return nil
		}
	}
	m.students = append(m.students, s)
	return nil
}

func (m *mockStudentStore) Delete(_ context.Context, id string) error {
	kept := m.students[:0]
	for _, s := range m.students {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	m.students = kept
	return nil
}

func (m *mockStudentStore) List(_ context.Context) ([]student.Student, error) {
	return m.students, nil
}

type mockCoachStore struct {
	coaches []coach.Coach
}

func (m *mockCoachStore) GetByID(_ context.Context, id string) (coach.Coach, error) {
	for _, c := range m.coaches {
		if c.ID == id {
			return c, nil
		}
	}
	return coach.Coach{}, coach.ErrNotFound
}

func (m *mockCoachStore) Save(_ context.Context, c coach.Coach) error {
	for i := range m.coaches {
		if m.coaches[i].ID == c.ID {
			m.coaches[i] = c
			return nil
		}
	}
	m.coaches = append(m.coaches, c)
	return nil
}

func (m *mockCoachStore) Delete(_ context.Context, id string) error {
	kept := m.coaches[:0]
	for _, c := range m.coaches {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.coaches = kept
	return nil
}

func (m *mockCoachStore) List(_ context.Context) ([]coach.Coach, error) {
	return m.coaches, nil
}

type mockClassStore struct {
	classes []class.Class
}

func (m *mockClassStore) GetByID(_ context.Context, id string) (class.Class, error) {
	for _, c := range m.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return class.Class{}, class.ErrNotFound
}

func (m *mockClassStore) Save(_ context.Context, c class.Class) error {
	for i := range m.classes {
		if m.classes[i].ID == c.ID {
			m.classes[i] = c
			return nil
		}
	}
	m.classes = append(m.classes, c)
	return nil
}

func (m *mockClassStore) Delete(_ context.Context, id string) error {
	kept := m.classes[:0]
	for _, c := range m.classes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.classes = kept
	return nil
}

func (m *mockClassStore) List(_ context.Context) ([]class.Class, error) {
	return m.classes, nil
}

func (m *mockClassStore) ReplaceAll(_ context.Context, values []class.Class) error {
	m.classes = values
	return nil
}

func fixedID() string { return "test-id-001" }
