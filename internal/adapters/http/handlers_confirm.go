package web

import (
	"net/http"

	"academy/internal/adapters/metrics"
	"academy/internal/application/controller"
)

// handleConfirm handles GET/POST for /api/confirm. GET reports the staged
// confirmation, POST executes it. Confirming with nothing staged is a
// no-op; staging a new request before confirming replaces the old one.
func handleConfirm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		msg, pending := gate.Pending()
		writeJSON(w, http.StatusOK, map[string]any{
			"pending": pending,
			"message": msg,
		})

	case "POST":
		_, pending := gate.Pending()
		if err := gate.Confirm(r.Context()); err != nil {
			takePendingDelete()
			internalError(w, err)
			return
		}
		if pending {
			if collection := takePendingDelete(); collection != "" {
				metrics.Mutations.WithLabelValues(collection, "delete").Inc()
			}
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCancel handles POST for /api/cancel. The staged action is dropped
// without running; cancelling with nothing staged is a no-op.
func handleCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	gate.Cancel()
	takePendingDelete()
	w.WriteHeader(http.StatusNoContent)
}

// handleSections handles GET/POST for /api/sections. Switching to a section
// re-renders it from the live collections.
func handleSections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		writeJSON(w, http.StatusOK, map[string]any{
			"current": sections.Current(),
		})

	case "POST":
		var input struct {
			Section string `json:"section"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		section := controller.Section(input.Section)
		switch section {
		case controller.SectionAcademy, controller.SectionStudents, controller.SectionCoaches, controller.SectionClasses:
		default:
			http.Error(w, "unknown section", http.StatusBadRequest)
			return
		}

		sections.SetCurrent(section)

		var err error
		switch section {
		case controller.SectionStudents:
			err = studentCtl.Refresh(r.Context())
		case controller.SectionCoaches:
			err = coachCtl.Refresh(r.Context())
		case controller.SectionClasses:
			err = classCtl.Refresh(r.Context())
		}
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"current": section,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
