package student

import "errors"

// ErrNotFound is returned by stores when no student matches the given ID.
var ErrNotFound = errors.New("student not found")

// Student holds state for one enrolled person.
// EnrollmentDate is an ISO date string; empty means the date was never
// recorded and displays as "N/A".
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Sport          string `json:"sport"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EnrollmentDate string `json:"enrollmentDate"`
}

// EnrollmentDisplay returns the enrollment date for display.
// POST: Returns "N/A" when no date was recorded
func (s *Student) EnrollmentDisplay() string {
	if s.EnrollmentDate == "" {
		return "N/A"
	}
	return s.EnrollmentDate
}
