package memory

import (
	"context"
	"sync"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	wordBank    *model.WordBank
	preferences *model.Preferences
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word bank operations

func (s *Storage) GetWordBank(ctx context.Context) (*model.WordBank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordBank == nil {
		return nil, model.ErrWordBankNotLoaded
	}
	return cloneWordBank(s.wordBank), nil
}

func (s *Storage) SaveWordBank(ctx context.Context, bank *model.WordBank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordBank = cloneWordBank(bank)
	return nil
}

// Preferences operations

func (s *Storage) GetPreferences(ctx context.Context) (*model.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.preferences == nil {
		return nil, model.ErrPreferencesNotFound
	}
	prefs := *s.preferences
	return &prefs, nil
}

func (s *Storage) SavePreferences(ctx context.Context, prefs *model.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *prefs
	s.preferences = &stored
	return nil
}

func (s *Storage) DeletePreferences(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences = nil
	return nil
}

// cloneWordBank copies the bank so callers can never mutate stored words
func cloneWordBank(bank *model.WordBank) *model.WordBank {
	out := &model.WordBank{Categories: make([]model.Category, len(bank.Categories))}
	for i, c := range bank.Categories {
		words := make([]string, len(c.Words))
		copy(words, c.Words)
		out.Categories[i] = model.Category{ID: c.ID, Label: c.Label, Words: words}
	}
	return out
}
