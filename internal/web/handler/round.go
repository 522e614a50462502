package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/configurator"
	"github.com/mcoot/imposter/internal/services/table"
	"github.com/mcoot/imposter/internal/web/middleware"
)

// Form field names
const (
	fieldPlayerCount   = configurator.FieldPlayerCount
	fieldImposterCount = configurator.FieldImposterCount
	fieldCategory      = "category"
	fieldCustomWord    = "custom_word"
	fieldRoundID       = "round_id"
)

// RoundHandler handles the form posts that drive a round. Every action
// redirects back to the home page.
type RoundHandler struct {
	table  *table.Table
	logger *slog.Logger
}

// NewRoundHandler creates a new RoundHandler
func NewRoundHandler(table *table.Table, logger *slog.Logger) *RoundHandler {
	return &RoundHandler{table: table, logger: logger}
}

// Start deals a new round from the setup form
func (h *RoundHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	cfg, err := parseSetup(r)
	if err == nil {
		_, err = h.table.Start(r.Context(), cfg)
	}
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, h.describe(err))
		http.Redirect(w, r, "/?"+retryQuery(r, err).Encode(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reveal shows the current player's card
func (h *RoundHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	if _, err := h.table.Reveal(r.PostFormValue(fieldRoundID)); err != nil {
		middleware.SetFlash(w, middleware.FlashError, h.describe(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Advance hides the card and sends the device on to the next player
func (h *RoundHandler) Advance(w http.ResponseWriter, r *http.Request) {
	snap, err := h.table.Advance(r.PostFormValue(fieldRoundID))
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, h.describe(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if snap.Phase == model.PhasePlaying {
		http.Redirect(w, r, "/?"+HandoffParam+"=1", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset abandons the round and returns to setup
func (h *RoundHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.table.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseSetup(r *http.Request) (model.SessionConfig, error) {
	players, err := configurator.ParseCount(r.PostFormValue(fieldPlayerCount), fieldPlayerCount)
	if err != nil {
		return model.SessionConfig{}, err
	}
	if players > configurator.MaxPlayers {
		return model.SessionConfig{}, errTooManyPlayers
	}
	imposters, err := configurator.ParseCount(r.PostFormValue(fieldImposterCount), fieldImposterCount)
	if err != nil {
		return model.SessionConfig{}, err
	}

	return model.SessionConfig{
		PlayerCount:   players,
		ImposterCount: imposters,
		Source: model.SecretSource{
			CustomWord: r.PostFormValue(fieldCustomWord),
			Category:   model.CategoryID(r.PostFormValue(fieldCategory)),
		},
	}, nil
}

// retryQuery sends the submitted counts back to the form, with a rejected
// count replaced by its suggested value. The custom word is not echoed.
func retryQuery(r *http.Request, err error) url.Values {
	q := url.Values{}
	for _, field := range []string{fieldPlayerCount, fieldImposterCount, fieldCategory} {
		if v := strings.TrimSpace(r.PostFormValue(field)); v != "" {
			q.Set(field, v)
		}
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		q.Set(verr.Field, strconv.Itoa(verr.Suggested))
	}
	if errors.Is(err, errTooManyPlayers) {
		q.Set(fieldPlayerCount, strconv.Itoa(configurator.MaxPlayers))
	}
	return q
}
