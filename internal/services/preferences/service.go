// Package preferences remembers the last round setup used on this device so
// the setup screen can be pre-filled.
package preferences

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/imposter/internal/dependencies/clock"
	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/storage"
)

// Service reads and writes the remembered setup
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new preferences Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Get returns the remembered setup, or the defaults if nothing is stored
func (s *Service) Get(ctx context.Context) (model.Preferences, error) {
	prefs, err := s.storage.GetPreferences(ctx)
	if errors.Is(err, model.ErrPreferencesNotFound) {
		return model.DefaultPreferences(), nil
	}
	if err != nil {
		return model.Preferences{}, err
	}
	return *prefs, nil
}

// Remember stores the setup of a round that was started. Custom words are
// never remembered.
func (s *Service) Remember(ctx context.Context, cfg model.SessionConfig) error {
	category := cfg.Source.Category
	if category == "" {
		category = model.CategoryAll
	}

	prefs := &model.Preferences{
		PlayerCount:   cfg.PlayerCount,
		ImposterCount: cfg.ImposterCount,
		Category:      category,
		UpdatedAt:     s.clock.Now(),
	}
	if err := s.storage.SavePreferences(ctx, prefs); err != nil {
		s.logger.Error("failed to save preferences", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Forget drops the remembered setup
func (s *Service) Forget(ctx context.Context) error {
	return s.storage.DeletePreferences(ctx)
}
