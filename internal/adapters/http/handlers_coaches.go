package web

import (
	"errors"
	"net/http"

	"academy/internal/adapters/metrics"
	"academy/internal/application/listutil"
	"academy/internal/application/orchestrators"
	"academy/internal/domain/coach"
	"academy/internal/domain/sport"
)

// handleCoaches handles GET/POST/DELETE for /api/coaches
func handleCoaches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		if err := coachCtl.SetQuery(ctx, listutil.ParseFilterParams(r.URL.Query())); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, coachesScreen.Snapshot())

	case "POST":
		var input struct {
			Name           string `json:"name"`
			Specialization string `json:"specialization"`
			Experience     string `json:"experience"`
			Email          string `json:"email"`
			Phone          string `json:"phone"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if !sport.IsSupported(input.Specialization) {
			http.Error(w, "unknown sport", http.StatusBadRequest)
			return
		}

		coachFormState.Stage(orchestrators.SaveCoachInput{
			Name:           input.Name,
			Specialization: input.Specialization,
			Experience:     coerceInt(input.Experience),
			Email:          input.Email,
			Phone:          input.Phone,
		})
		if err := coachCtl.Save(ctx); err != nil {
			internalError(w, err)
			return
		}
		metrics.Mutations.WithLabelValues("coaches", "save").Inc()
		writeJSON(w, http.StatusOK, coachesScreen.Snapshot())

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		err := coachCtl.RequestDelete(ctx, id)
		var assigned *coach.AssignedError
		if errors.As(err, &assigned) {
			metrics.IntegrityRefusals.Inc()
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":   assigned.Error(),
				"classes": assigned.Classes,
			})
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}
		msg, pending := gate.Pending()
		if pending {
			setPendingDelete("coaches")
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"pending": pending,
			"message": msg,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCoachOpen handles POST for /api/coaches/open.
func handleCoachOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		coachCtl.OpenForCreate()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	coachFormState.Stage(orchestrators.SaveCoachInput{})
	if err := coachCtl.OpenForEdit(r.Context(), id); err != nil {
		internalError(w, err)
		return
	}
	values, ok := coachFormState.Loaded()
	if !ok {
		http.Error(w, "coach not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":             values.ID,
		"name":           values.Name,
		"specialization": values.Specialization,
		"experience":     values.Experience,
		"email":          values.Email,
		"phone":          values.Phone,
	})
}
