package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/imposter/internal/api/handler"
	"github.com/mcoot/imposter/internal/api/middleware"
	"github.com/mcoot/imposter/internal/api/response"
	"github.com/mcoot/imposter/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Table  *table.Table
	// MaxBodyBytes caps request bodies; zero uses middleware.DefaultMaxBodyBytes
	MaxBodyBytes int64
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.Table)
	categoryHandler := handler.NewCategoryHandler(cfg.Table)
	preferencesHandler := handler.NewPreferencesHandler(cfg.Table)

	maxBody := cfg.MaxBodyBytes
	if maxBody == 0 {
		maxBody = middleware.DefaultMaxBodyBytes
	}

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.MaxBody(maxBody))
	api.Use(middleware.NoStore)

	// Session routes
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/session", sessionHandler.Reset).Methods(http.MethodDelete)
	api.HandleFunc("/session/reveal", sessionHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/session/advance", sessionHandler.Advance).Methods(http.MethodPost)

	// Static data and remembered setup
	api.HandleFunc("/categories", categoryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/preferences", preferencesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/preferences", preferencesHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
