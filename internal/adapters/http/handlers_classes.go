package web

import (
	"errors"
	"net/http"

	"academy/internal/adapters/metrics"
	"academy/internal/application/listutil"
	"academy/internal/application/orchestrators"
	"academy/internal/domain/class"
	"academy/internal/domain/sport"
	"academy/internal/domain/student"
)

// handleClasses handles GET/POST/DELETE for /api/classes
func handleClasses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		if err := classCtl.SetQuery(ctx, listutil.ParseFilterParams(r.URL.Query())); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, classesScreen.Snapshot())

	case "POST":
		var input struct {
			Name     string `json:"name"`
			Sport    string `json:"sport"`
			CoachID  string `json:"coachId"`
			Schedule string `json:"schedule"`
			Capacity string `json:"capacity"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if !sport.IsSupported(input.Sport) {
			http.Error(w, "unknown sport", http.StatusBadRequest)
			return
		}

		classFormState.Stage(orchestrators.SaveClassInput{
			Name:     input.Name,
			Sport:    input.Sport,
			CoachID:  input.CoachID,
			Schedule: input.Schedule,
			Capacity: coerceInt(input.Capacity),
		})
		if err := classCtl.Save(ctx); err != nil {
			internalError(w, err)
			return
		}
		metrics.Mutations.WithLabelValues("classes", "save").Inc()
		writeJSON(w, http.StatusOK, classesScreen.Snapshot())

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := classCtl.RequestDelete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		msg, pending := gate.Pending()
		if pending {
			setPendingDelete("classes")
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"pending": pending,
			"message": msg,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleClassOpen handles POST for /api/classes/open. The response carries
// the coach selector options, repopulated from the live collection on
// every open.
func handleClassOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		if err := classCtl.OpenForCreate(ctx); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"coachOptions": classFormState.CoachOptions(),
		})
		return
	}

	classFormState.Stage(orchestrators.SaveClassInput{})
	if err := classCtl.OpenForEdit(ctx, id); err != nil {
		internalError(w, err)
		return
	}
	values, ok := classFormState.Loaded()
	if !ok {
		http.Error(w, "class not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":           values.ID,
		"name":         values.Name,
		"sport":        values.Sport,
		"coachId":      values.CoachID,
		"schedule":     values.Schedule,
		"capacity":     values.Capacity,
		"coachOptions": classFormState.CoachOptions(),
	})
}

// rosterRequest is the payload for enroll and unenroll.
type rosterRequest struct {
	ClassID   string `json:"classId"`
	StudentID string `json:"studentId"`
}

// handleEnroll handles POST for /api/classes/enroll
func handleEnroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input rosterRequest
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.ClassID == "" || input.StudentID == "" {
		http.Error(w, "classId and studentId are required", http.StatusBadRequest)
		return
	}

	err := classCtl.Enroll(r.Context(), input.ClassID, input.StudentID)
	switch {
	case errors.Is(err, class.ErrNotFound):
		http.Error(w, "class not found", http.StatusNotFound)
	case errors.Is(err, student.ErrNotFound):
		http.Error(w, "student not found", http.StatusNotFound)
	case errors.Is(err, class.ErrFull):
		http.Error(w, "class is at capacity", http.StatusConflict)
	case errors.Is(err, class.ErrAlreadyEnrolled):
		http.Error(w, "student is already enrolled", http.StatusConflict)
	case err != nil:
		internalError(w, err)
	default:
		metrics.Mutations.WithLabelValues("classes", "enroll").Inc()
		writeJSON(w, http.StatusOK, classesScreen.Snapshot())
	}
}

// handleUnenroll handles POST for /api/classes/unenroll
func handleUnenroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input rosterRequest
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.ClassID == "" || input.StudentID == "" {
		http.Error(w, "classId and studentId are required", http.StatusBadRequest)
		return
	}

	if err := classCtl.Unenroll(r.Context(), input.ClassID, input.StudentID); err != nil {
		internalError(w, err)
		return
	}
	metrics.Mutations.WithLabelValues("classes", "unenroll").Inc()
	writeJSON(w, http.StatusOK, classesScreen.Snapshot())
}
