package response

import (
	"time"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/wordbank"
)

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// Session represents the current round in API responses. Role and value are
// only present while the current card is revealed.
type Session struct {
	RoundID       string     `json:"round_id,omitempty"`
	Phase         string     `json:"phase"`
	PlayerNumber  int        `json:"player_number,omitempty"`
	PlayerCount   int        `json:"player_count,omitempty"`
	ImposterCount int        `json:"imposter_count,omitempty"`
	Revealed      bool       `json:"revealed"`
	Role          string     `json:"role,omitempty"`
	Value         string     `json:"value,omitempty"`
	Remaining     int        `json:"remaining"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
}

// SessionFromModel converts a model.Snapshot to a response Session
func SessionFromModel(s model.Snapshot) Session {
	resp := Session{
		RoundID:       s.RoundID,
		Phase:         string(s.Phase),
		PlayerNumber:  s.PlayerNumber,
		PlayerCount:   s.PlayerCount,
		ImposterCount: s.ImposterCount,
		Revealed:      s.Revealed,
		Role:          string(s.Role),
		Value:         s.Value,
		Remaining:     s.Remaining,
	}
	if !s.StartedAt.IsZero() {
		startedAt := s.StartedAt
		resp.StartedAt = &startedAt
	}
	return resp
}

// Category represents a selectable category
type Category struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	WordCount int    `json:"word_count"`
}

// CategoriesResponse is the response for listing categories
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// CategoriesFromInfo converts word bank category info
func CategoriesFromInfo(infos []wordbank.CategoryInfo) CategoriesResponse {
	resp := CategoriesResponse{Categories: make([]Category, len(infos))}
	for i, info := range infos {
		resp.Categories[i] = Category{
			ID:        string(info.ID),
			Label:     info.Label,
			WordCount: info.WordCount,
		}
	}
	return resp
}

// Preferences represents the remembered setup
type Preferences struct {
	PlayerCount   int    `json:"player_count"`
	ImposterCount int    `json:"imposter_count"`
	Category      string `json:"category"`
}

// PreferencesFromModel converts model.Preferences
func PreferencesFromModel(p model.Preferences) Preferences {
	return Preferences{
		PlayerCount:   p.PlayerCount,
		ImposterCount: p.ImposterCount,
		Category:      string(p.Category),
	}
}
