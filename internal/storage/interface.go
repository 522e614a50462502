package storage

import (
	"context"

	"github.com/mcoot/imposter/internal/model"
)

// Storage defines the interface for data persistence.
// Sessions themselves are never stored; only the static word bank and the
// device's remembered setup are.
type Storage interface {
	// Word bank operations
	GetWordBank(ctx context.Context) (*model.WordBank, error)
	SaveWordBank(ctx context.Context, bank *model.WordBank) error

	// Preferences operations
	GetPreferences(ctx context.Context) (*model.Preferences, error)
	SavePreferences(ctx context.Context, prefs *model.Preferences) error
	DeletePreferences(ctx context.Context) error
}
