package class_test

import (
	"testing"

	"academy/internal/domain/class"
)

// TestEnroll verifies enrollment order, duplicate rejection, and the
// capacity limit.
func TestEnroll(t *testing.T) {
	c := class.Class{ID: "c1", Name: "Intro Fencing", Capacity: 2}

	if err := c.Enroll("s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Enroll("s2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.EnrolledCount(); got != 2 {
		t.Errorf("expected 2 enrolled, got %d", got)
	}
	if c.EnrolledStudents[0] != "s1" || c.EnrolledStudents[1] != "s2" {
		t.Errorf("enrollment order not preserved: %v", c.EnrolledStudents)
	}

	if err := c.Enroll("s1"); err != class.ErrAlreadyEnrolled {
		t.Errorf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if err := c.Enroll("s3"); err != class.ErrFull {
		t.Errorf("expected ErrFull, got %v", err)
	}
}

// TestUnenroll verifies removal and that a missing ID is a no-op.
func TestUnenroll(t *testing.T) {
	c := class.Class{ID: "c1", Capacity: 5, EnrolledStudents: []string{"s1", "s2", "s3"}}

	c.Unenroll("s2")
	if c.HasStudent("s2") {
		t.Error("expected s2 removed")
	}
	if c.EnrolledStudents[0] != "s1" || c.EnrolledStudents[1] != "s3" {
		t.Errorf("order not preserved after unenroll: %v", c.EnrolledStudents)
	}

	c.Unenroll("missing")
	if got := c.EnrolledCount(); got != 2 {
		t.Errorf("unenroll of missing ID should be a no-op, got %d enrolled", got)
	}
}

// TestHasCapacity verifies the advisory capacity check.
func TestHasCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		enrolled []string
		want     bool
	}{
		{"empty class", 10, nil, true},
		{"one seat left", 2, []string{"s1"}, true},
		{"full", 1, []string{"s1"}, false},
		{"zero capacity", 0, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := class.Class{Capacity: tt.capacity, EnrolledStudents: tt.enrolled}
			if got := c.HasCapacity(); got != tt.want {
				t.Errorf("HasCapacity() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIsUnassigned verifies the weak coach reference check.
func TestIsUnassigned(t *testing.T) {
	c := class.Class{}
	if !c.IsUnassigned() {
		t.Error("expected unassigned with empty CoachID")
	}
	c.CoachID = "coach-1"
	if c.IsUnassigned() {
		t.Error("expected assigned with non-empty CoachID")
	}
}
