package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// studentExportHeader is the column order of the export sheet.
var studentExportHeader = []string{"ID", "Name", "Age", "Sport", "Email", "Phone", "Enrollment Date"}

// handleStudentsExport handles GET for /api/export/students.xlsx. The
// whole student collection is written, ignoring any active filter.
func handleStudentsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	students, err := stores.StudentStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Students"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		internalError(w, err)
		return
	}

	for col, title := range studentExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			internalError(w, err)
			return
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			internalError(w, err)
			return
		}
	}

	for row, s := range students {
		values := []any{s.ID, s.Name, s.Age, s.Sport, s.Email, s.Phone, s.EnrollmentDisplay()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				internalError(w, err)
				return
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				internalError(w, err)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "students.xlsx"))
	if _, err := f.WriteTo(w); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("export_write_failed", "error", err.Error())
	}
}
