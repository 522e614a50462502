package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mcoot/imposter/internal/api/request"
	"github.com/mcoot/imposter/internal/api/response"
	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/configurator"
	"github.com/mcoot/imposter/internal/services/table"
)

// SessionHandler handles the device's round
type SessionHandler struct {
	table *table.Table
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(table *table.Table) *SessionHandler {
	return &SessionHandler{table: table}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SessionFromModel(h.table.Snapshot()))
}

// Start handles POST /api/v1/session
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, decodeError(err))
		return
	}

	players, err := configurator.ParseCount(string(req.PlayerCount), configurator.FieldPlayerCount)
	if err != nil {
		WriteError(w, err)
		return
	}
	imposters, err := configurator.ParseCount(string(req.ImposterCount), configurator.FieldImposterCount)
	if err != nil {
		WriteError(w, err)
		return
	}

	if players > configurator.MaxPlayers {
		WriteError(w, NewInvalidRequestError(fmt.Sprintf("player_count must be at most %d", configurator.MaxPlayers)))
		return
	}

	snap, err := h.table.Start(r.Context(), model.SessionConfig{
		PlayerCount:   players,
		ImposterCount: imposters,
		Source: model.SecretSource{
			CustomWord: req.CustomWord,
			Category:   model.CategoryID(req.Category),
		},
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(snap))
}

// Reveal handles POST /api/v1/session/reveal
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRoundRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.table.Reveal(req.RoundID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(snap))
}

// Advance handles POST /api/v1/session/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRoundRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.table.Advance(req.RoundID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(snap))
}

// Reset handles DELETE /api/v1/session
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SessionFromModel(h.table.Reset()))
}
