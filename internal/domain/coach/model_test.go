package coach

import (
	"errors"
	"strings"
	"testing"
)

func TestAssignedError_Message(t *testing.T) {
	err := &AssignedError{CoachName: "Marta Voss", Classes: 2}

	msg := err.Error()
	if !strings.Contains(msg, "Marta Voss") {
		t.Errorf("message %q missing coach name", msg)
	}
	if !strings.Contains(msg, "2 class(es)") {
		t.Errorf("message %q missing blocking count", msg)
	}
}

func TestAssignedError_MatchesWithAs(t *testing.T) {
	var err error = &AssignedError{CoachName: "Marta", Classes: 1}

	var assigned *AssignedError
	if !errors.As(err, &assigned) {
		t.Fatal("errors.As failed to match")
	}
	if assigned.Classes != 1 {
		t.Errorf("Classes = %d, want 1", assigned.Classes)
	}
}
