package coach

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when no coach matches the given ID.
var ErrNotFound = errors.New("coach not found")

// Coach holds state for one member of the coaching staff.
type Coach struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// AssignedError reports a refused deletion: the coach is still referenced
// by one or more classes and nothing was mutated.
type AssignedError struct {
	CoachName string
	Classes   int
}

// Error implements the error interface.
func (e *AssignedError) Error() string {
	return fmt.Sprintf("cannot delete %s: coach is assigned to %d class(es); reassign or delete those classes first", e.CoachName, e.Classes)
}
