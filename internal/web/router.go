package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/imposter/internal/services/table"
	"github.com/mcoot/imposter/internal/web/handler"
	"github.com/mcoot/imposter/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger *slog.Logger
	Table  *table.Table
	// BaseURL is encoded in the join QR code; empty uses the request host
	BaseURL string
	// DisableQR hides the QR code from the setup page and drops its route
	DisableQR bool
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Flash())

	homeHandler := handler.NewHomeHandler(cfg.Table, cfg.Logger, !cfg.DisableQR)
	roundHandler := handler.NewRoundHandler(cfg.Table, cfg.Logger)

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/start", roundHandler.Start).Methods(http.MethodPost)
	r.HandleFunc("/reveal", roundHandler.Reveal).Methods(http.MethodPost)
	r.HandleFunc("/advance", roundHandler.Advance).Methods(http.MethodPost)
	r.HandleFunc("/reset", roundHandler.Reset).Methods(http.MethodPost)

	if !cfg.DisableQR {
		qrHandler := handler.NewQRHandler(cfg.BaseURL, cfg.Logger)
		r.HandleFunc("/qr", qrHandler.QR).Methods(http.MethodGet)
	}

	return r
}
