package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"academy/internal/adapters/http/middleware"
	"academy/internal/adapters/metrics"
	classStore "academy/internal/adapters/storage/class"
	coachStore "academy/internal/adapters/storage/coach"
	studentStore "academy/internal/adapters/storage/student"
	"academy/internal/application/confirm"
	"academy/internal/application/controller"
	"academy/internal/application/events"
)

// Stores holds all storage dependencies.
type Stores struct {
	StudentStore studentStore.Store
	CoachStore   coachStore.Store
	ClassStore   classStore.Store
}

// loadCSRFKey reads the CSRF secret from ACADEMY_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("ACADEMY_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("ACADEMY_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("ACADEMY_ENV") == "production" {
		log.Fatal("ACADEMY_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set ACADEMY_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Shared coordination state (set by NewMux)
var (
	gate     *confirm.Gate
	bus      *events.Bus
	sections *controller.Sections
)

// Controllers (set by NewMux)
var (
	studentCtl *controller.StudentController
	coachCtl   *controller.CoachController
	classCtl   *controller.ClassController
)

// Screen and form adapters (set by NewMux)
var (
	studentsScreen *studentScreen
	coachesScreen  *coachScreen
	classesScreen  *classScreen

	studentFormState *studentForm
	coachFormState   *coachForm
	classFormState   *classForm
)

// pendingDelete remembers which collection the staged deletion belongs to
// so the confirm handler can attribute the mutation.
var pendingDelete struct {
	mu         sync.Mutex
	collection string
}

func setPendingDelete(collection string) {
	pendingDelete.mu.Lock()
	defer pendingDelete.mu.Unlock()
	pendingDelete.collection = collection
}

func takePendingDelete() string {
	pendingDelete.mu.Lock()
	defer pendingDelete.mu.Unlock()
	c := pendingDelete.collection
	pendingDelete.collection = ""
	return c
}

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s

	gate = &confirm.Gate{}
	bus = events.NewBus()
	sections = controller.NewSections()

	studentsScreen = &studentScreen{}
	coachesScreen = &coachScreen{}
	classesScreen = &classScreen{}
	studentFormState = &studentForm{}
	coachFormState = &coachForm{}
	classFormState = &classForm{}

	studentCtl = controller.NewStudentController(controller.StudentControllerDeps{
		StudentStore: s.StudentStore,
		ClassStore:   s.ClassStore,
		View:         studentsScreen,
		Form:         studentFormState,
		Gate:         gate,
		Bus:          bus,
		GenerateID:   generateID,
	})
	coachCtl = controller.NewCoachController(controller.CoachControllerDeps{
		CoachStore: s.CoachStore,
		ClassStore: s.ClassStore,
		View:       coachesScreen,
		Form:       coachFormState,
		Gate:       gate,
		Bus:        bus,
		GenerateID: generateID,
	})
	classCtl = controller.NewClassController(controller.ClassControllerDeps{
		ClassStore:   s.ClassStore,
		CoachStore:   s.CoachStore,
		StudentStore: s.StudentStore,
		View:         classesScreen,
		Form:         classFormState,
		Gate:         gate,
		Bus:          bus,
		Sections:     sections,
		GenerateID:   generateID,
	})

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/students", handleStudents)
	mux.HandleFunc("/api/students/open", handleStudentOpen)
	mux.HandleFunc("/api/coaches", handleCoaches)
	mux.HandleFunc("/api/coaches/open", handleCoachOpen)
	mux.HandleFunc("/api/classes", handleClasses)
	mux.HandleFunc("/api/classes/open", handleClassOpen)
	mux.HandleFunc("/api/classes/enroll", handleEnroll)
	mux.HandleFunc("/api/classes/unenroll", handleUnenroll)
	mux.HandleFunc("/api/confirm", handleConfirm)
	mux.HandleFunc("/api/cancel", handleCancel)
	mux.HandleFunc("/api/sections", handleSections)
	mux.HandleFunc("/api/export/students.xlsx", handleStudentsExport)
	mux.HandleFunc("/academy", handleAcademyPage)
	mux.Handle("/metrics", metrics.Handler())
}
