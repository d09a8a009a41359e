package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	web "academy/internal/adapters/http"
	"academy/internal/adapters/storage"
	classStore "academy/internal/adapters/storage/class"
	coachStore "academy/internal/adapters/storage/coach"
	studentStore "academy/internal/adapters/storage/student"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; missing file is fine
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("ACADEMY_DB_PATH", "academy.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Create the collection table and seed the empty collections
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Query instrumentation: wrap DB with timing
	timedDB := storage.NewTimedDB(db)
	collections := storage.NewCollections(timedDB)

	stores := &web.Stores{
		StudentStore: studentStore.NewCollectionStore(collections),
		CoachStore:   coachStore.NewCollectionStore(collections),
		ClassStore:   classStore.NewCollectionStore(collections),
	}

	// Create HTTP handler with middleware
	mux := web.NewMux(envOrDefault("ACADEMY_STATIC_DIR", "static"), stores)

	// Start server
	addr := envOrDefault("ACADEMY_ADDR", ":8080")
	log.Printf("Academy %s starting on %s (env=%s)", version, addr, envOrDefault("ACADEMY_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
