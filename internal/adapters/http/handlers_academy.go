package web

import (
	"bytes"
	"net/http"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// academyMarkdown is the static content of the academy landing section.
const academyMarkdown = `# Elite Sports Academy

Welcome to the Elite Sports Academy management system.

## Our Programs

- **Fencing**: foil, epee and sabre groups from beginner to competition level
- **Table Tennis**: technique and match-play sessions for all ages
- **Swimming**: stroke development and squad training
- **Basketball**: skills clinics and team practice
- **Tennis**: individual and group coaching on all surfaces

## About

The academy offers professional coaching across five sports. Use the
students, coaches and classes sections to manage enrollment, staff and the
weekly schedule.
`

// handleAcademyPage handles GET for /academy. The markdown source is
// rendered on every request; there is no cache to invalidate.
func handleAcademyPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(academyMarkdown), &buf); err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
