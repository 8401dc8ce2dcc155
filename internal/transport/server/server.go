package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/MargotLh/market-research-assistant/internal/application"
	"github.com/MargotLh/market-research-assistant/internal/transport/middleware"
)

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, func(), error) {
	// Create application (handles all DI and business logic)
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	router := NewRouter(app)

	// Return handler and cleanup function
	cleanup := func() {
		app.Close()
	}

	return router, cleanup, nil
}

// NewRouter builds the route table for an already constructed application.
func NewRouter(app *application.Application) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Research form
	r.Handle("/", app.IndexHandler).Methods("GET")

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.CORS)
	api.Use(middleware.Logging)

	api.Handle("/research", app.ResearchHandler).Methods("POST")
	api.Handle("/health", app.HealthHandler).Methods("GET")

	// Cache operations; clearing is admin-only when a token is configured
	authMiddleware := middleware.Auth(app.Config.AdminAuthToken)
	api.Handle("/cache/stats", app.CacheStatsHandler).Methods("GET")
	api.Handle("/cache/clear", authMiddleware(app.CacheClearHandler)).Methods("DELETE")

	return r
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
