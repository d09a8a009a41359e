package class

import "errors"

// Domain errors.
var (
	ErrNotFound        = errors.New("class not found")
	ErrFull            = errors.New("class is at capacity")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this class")
)

// Class holds state for one scheduled class.
// CoachID is a weak reference to a Coach; empty means unassigned.
// EnrolledStudents holds student IDs in enrollment order.
type Class struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Sport            string   `json:"sport"`
	CoachID          string   `json:"coachId"`
	Schedule         string   `json:"schedule"`
	Capacity         int      `json:"capacity"`
	EnrolledStudents []string `json:"enrolledStudents"`
}

// IsUnassigned reports whether the class has no coach.
func (c *Class) IsUnassigned() bool {
	return c.CoachID == ""
}

// EnrolledCount returns the number of enrolled students.
func (c *Class) EnrolledCount() int {
	return len(c.EnrolledStudents)
}

// HasStudent reports whether the given student ID is enrolled.
// PRE: studentID is non-empty
// POST: Returns true if studentID is present in EnrolledStudents
func (c *Class) HasStudent(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}

// HasCapacity reports whether at least one more student can enroll.
// Capacity is advisory on the save path; it is enforced only at
// enrollment time.
func (c *Class) HasCapacity() bool {
	return len(c.EnrolledStudents) < c.Capacity
}

// Enroll appends a student ID to the roster.
// PRE: studentID refers to an existing student (checked by the caller)
// POST: studentID appended, enrollment order preserved
func (c *Class) Enroll(studentID string) error {
	if c.HasStudent(studentID) {
		return ErrAlreadyEnrolled
	}
	if !c.HasCapacity() {
		return ErrFull
	}
	c.EnrolledStudents = append(c.EnrolledStudents, studentID)
	return nil
}

// Unenroll removes a student ID from the roster.
// POST: studentID absent from EnrolledStudents; no-op if it was absent
func (c *Class) Unenroll(studentID string) {
	kept := c.EnrolledStudents[:0]
	for _, id := range c.EnrolledStudents {
		if id != studentID {
			kept = append(kept, id)
		}
	}
	c.EnrolledStudents = kept
}
