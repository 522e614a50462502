// Package table owns the one round a device can be playing and serializes
// the requests of the presentation layers that drive it.
package table

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/preferences"
	"github.com/mcoot/imposter/internal/services/round"
	"github.com/mcoot/imposter/internal/services/wordbank"
)

// Table wraps the device's round engine
type Table struct {
	engine      *round.Engine
	wordBank    *wordbank.Service
	preferences *preferences.Service
	logger      *slog.Logger

	mu sync.Mutex
}

// New creates a new Table
func New(engine *round.Engine, wordBank *wordbank.Service, preferences *preferences.Service, logger *slog.Logger) *Table {
	return &Table{
		engine:      engine,
		wordBank:    wordBank,
		preferences: preferences,
		logger:      logger,
	}
}

// Start begins a round and remembers its setup for next time. An empty
// category selects every category.
func (t *Table) Start(ctx context.Context, cfg model.SessionConfig) (model.Snapshot, error) {
	if cfg.Source.Category == "" {
		cfg.Source.Category = model.CategoryAll
	}

	// A custom word needs no bank, so a missing one is only fatal later
	bank, err := t.wordBank.Bank()
	if err != nil {
		bank = nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.engine.Start(cfg, bank); err != nil {
		return model.Snapshot{}, err
	}

	if err := t.preferences.Remember(ctx, cfg); err != nil {
		t.logger.Warn("could not remember setup", slog.String("error", err.Error()))
	}

	return t.engine.Snapshot(), nil
}

// Reveal shows the current card. A non-empty roundID must match the round
// in play.
func (t *Table) Reveal(roundID string) (model.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRound(roundID); err != nil {
		return model.Snapshot{}, err
	}
	if err := t.engine.Reveal(); err != nil {
		return model.Snapshot{}, err
	}
	return t.engine.Snapshot(), nil
}

// Advance hides the current card and moves to the next player. A non-empty
// roundID must match the round in play.
func (t *Table) Advance(roundID string) (model.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRound(roundID); err != nil {
		return model.Snapshot{}, err
	}
	if err := t.engine.Advance(); err != nil {
		return model.Snapshot{}, err
	}
	return t.engine.Snapshot(), nil
}

// Reset abandons whatever round is in play
func (t *Table) Reset() model.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.engine.Reset()
	return t.engine.Snapshot()
}

// Snapshot returns the current view of the round
func (t *Table) Snapshot() model.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.Snapshot()
}

// Preferences returns the setup to pre-fill
func (t *Table) Preferences(ctx context.Context) (model.Preferences, error) {
	return t.preferences.Get(ctx)
}

// ForgetPreferences drops the remembered setup
func (t *Table) ForgetPreferences(ctx context.Context) error {
	return t.preferences.Forget(ctx)
}

// Categories lists the selectable categories
func (t *Table) Categories() ([]wordbank.CategoryInfo, error) {
	return t.wordBank.Categories()
}

// checkRound rejects requests aimed at a round that has since been reset or
// replaced, e.g. a double-submitted form
func (t *Table) checkRound(roundID string) error {
	if roundID != "" && roundID != t.engine.RoundID() {
		return model.ErrStaleRound
	}
	return nil
}
