package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/table"
	"github.com/mcoot/imposter/internal/web/middleware"
	"github.com/mcoot/imposter/internal/web/templates/layout"
	"github.com/mcoot/imposter/internal/web/templates/pages"
)

// HandoffParam marks the page shown right after a card was hidden
const HandoffParam = "handoff"

// HomeHandler renders the single page the round is played on
type HomeHandler struct {
	table  *table.Table
	logger *slog.Logger
	showQR bool
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(table *table.Table, logger *slog.Logger, showQR bool) *HomeHandler {
	return &HomeHandler{table: table, logger: logger, showQR: showQR}
}

// Home renders whatever the current phase of the round calls for
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	snap := h.table.Snapshot()
	page := layout.PageData{Flash: middleware.GetFlash(r.Context())}

	var component templ.Component
	switch snap.Phase {
	case model.PhasePlaying:
		data := pages.PlayData{PageData: page, Session: snap}
		switch {
		case snap.Revealed:
			data.Title = "Your card"
			component = pages.Card(data)
		case r.URL.Query().Has(HandoffParam) && snap.PlayerNumber > 1:
			data.Title = "Pass the device"
			component = pages.Handoff(data)
		default:
			data.Title = "Player " + strconv.Itoa(snap.PlayerNumber)
			component = pages.Prompt(data)
		}
	case model.PhaseFinished:
		page.Title = "Discuss"
		component = pages.Finished(pages.PlayData{PageData: page, Session: snap})
	default:
		page.Title = "New round"
		component = pages.Setup(h.setupData(r, page))
	}

	render(w, r, component)
}

// setupData pre-fills the form from the remembered setup, overridden by any
// values a rejected submission sent back
func (h *HomeHandler) setupData(r *http.Request, page layout.PageData) pages.SetupData {
	prefs, err := h.table.Preferences(r.Context())
	if err != nil {
		h.logger.Warn("could not load preferences", slog.String("error", err.Error()))
		prefs = model.DefaultPreferences()
	}

	data := pages.SetupData{
		PageData:      page,
		PlayerCount:   prefs.PlayerCount,
		ImposterCount: prefs.ImposterCount,
		Category:      string(prefs.Category),
		ShowQR:        h.showQR,
	}

	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get(fieldPlayerCount)); err == nil {
		data.PlayerCount = n
	}
	if n, err := strconv.Atoi(q.Get(fieldImposterCount)); err == nil {
		data.ImposterCount = n
	}
	if c := q.Get(fieldCategory); c != "" {
		data.Category = c
	}

	categories, err := h.table.Categories()
	if err != nil {
		h.logger.Warn("could not list categories", slog.String("error", err.Error()))
	}
	for _, c := range categories {
		data.Categories = append(data.Categories, pages.CategoryOption{
			ID:        string(c.ID),
			Label:     c.Label,
			WordCount: c.WordCount,
		})
	}
	return data
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
