package web

import (
	"net/http"

	"academy/internal/adapters/metrics"
	"academy/internal/application/listutil"
	"academy/internal/application/orchestrators"
	"academy/internal/domain/sport"
)

// handleStudents handles GET/POST/DELETE for /api/students
func handleStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		if err := studentCtl.SetQuery(ctx, listutil.ParseFilterParams(r.URL.Query())); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, studentsScreen.Snapshot())

	case "POST":
		var input struct {
			Name           string `json:"name"`
			Age            string `json:"age"`
			Sport          string `json:"sport"`
			Email          string `json:"email"`
			Phone          string `json:"phone"`
			EnrollmentDate string `json:"enrollmentDate"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if !sport.IsSupported(input.Sport) {
			http.Error(w, "unknown sport", http.StatusBadRequest)
			return
		}

		studentFormState.Stage(orchestrators.SaveStudentInput{
			Name:           input.Name,
			Age:            coerceInt(input.Age),
			Sport:          input.Sport,
			Email:          input.Email,
			Phone:          input.Phone,
			EnrollmentDate: input.EnrollmentDate,
		})
		if err := studentCtl.Save(ctx); err != nil {
			internalError(w, err)
			return
		}
		metrics.Mutations.WithLabelValues("students", "save").Inc()
		writeJSON(w, http.StatusOK, studentsScreen.Snapshot())

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := studentCtl.RequestDelete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		msg, pending := gate.Pending()
		if pending {
			setPendingDelete("students")
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"pending": pending,
			"message": msg,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleStudentOpen handles POST for /api/students/open. An empty id stages
// a create; a present id stages an edit of that record.
func handleStudentOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		studentCtl.OpenForCreate()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	studentFormState.Stage(orchestrators.SaveStudentInput{})
	if err := studentCtl.OpenForEdit(r.Context(), id); err != nil {
		internalError(w, err)
		return
	}
	values, ok := studentFormState.Loaded()
	if !ok {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":             values.ID,
		"name":           values.Name,
		"age":            values.Age,
		"sport":          values.Sport,
		"email":          values.Email,
		"phone":          values.Phone,
		"enrollmentDate": values.EnrollmentDate,
	})
}
