package handler

import (
	"net/http"

	"github.com/mcoot/imposter/internal/api/response"
	"github.com/mcoot/imposter/internal/services/table"
)

// PreferencesHandler exposes the remembered setup
type PreferencesHandler struct {
	table *table.Table
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(table *table.Table) *PreferencesHandler {
	return &PreferencesHandler{table: table}
}

// Get handles GET /api/v1/preferences
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.table.Preferences(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PreferencesFromModel(prefs))
}

// Delete handles DELETE /api/v1/preferences
func (h *PreferencesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.table.ForgetPreferences(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
