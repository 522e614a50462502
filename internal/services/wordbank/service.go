// Package wordbank loads and serves the categories secret words are drawn
// from.
package wordbank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/viper"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/storage"
)

// CategoryInfo describes a selectable category without its words
type CategoryInfo struct {
	ID        model.CategoryID
	Label     string
	WordCount int
}

// Service holds the active word bank
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu   sync.RWMutex
	bank *model.WordBank
}

// New creates a new word bank Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Init loads the bank from path when one is given, otherwise from storage,
// falling back to the built-in bank when storage has none
func (s *Service) Init(ctx context.Context, path string) error {
	if path != "" {
		return s.LoadFromFile(ctx, path)
	}

	err := s.LoadFromStorage(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrWordBankNotLoaded) {
		return err
	}

	bank := DefaultBank()
	if err := s.storage.SaveWordBank(ctx, bank); err != nil {
		return err
	}
	s.logger.Info("loaded built-in word bank", slog.Int("categories", len(bank.Categories)))
	return s.LoadBank(bank)
}

// LoadFromStorage loads the word bank previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	bank, err := s.storage.GetWordBank(ctx)
	if err != nil {
		return err
	}
	return s.LoadBank(bank)
}

// LoadFromFile loads a word bank from a YAML, JSON or TOML file (picked by
// extension) and saves it to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read word bank %s: %w", path, err)
	}

	var bank model.WordBank
	if err := v.Unmarshal(&bank); err != nil {
		return fmt.Errorf("decode word bank %s: %w", path, err)
	}
	if err := bank.Validate(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveWordBank(ctx, &bank); err != nil {
		return err
	}

	s.logger.Info("loaded word bank from file",
		slog.String("path", path),
		slog.Int("categories", len(bank.Categories)),
	)
	return s.LoadBank(&bank)
}

// LoadBank directly loads a word bank (useful for testing)
func (s *Service) LoadBank(bank *model.WordBank) error {
	if err := bank.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bank = bank
	return nil
}

// IsLoaded returns whether a word bank has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bank != nil
}

// Bank returns the active word bank. Callers must treat it as read-only.
func (s *Service) Bank() (*model.WordBank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bank == nil {
		return nil, model.ErrWordBankNotLoaded
	}
	return s.bank, nil
}

// Categories lists every category in bank order followed by the "all"
// selector
func (s *Service) Categories() ([]CategoryInfo, error) {
	bank, err := s.Bank()
	if err != nil {
		return nil, err
	}

	infos := make([]CategoryInfo, 0, len(bank.Categories)+1)
	for _, c := range bank.Categories {
		infos = append(infos, CategoryInfo{ID: c.ID, Label: c.Label, WordCount: len(c.Words)})
	}
	infos = append(infos, allInfo(bank))
	return infos, nil
}

// CategoryInfo describes a single selector, including "all"
func (s *Service) CategoryInfo(selector model.CategoryID) (CategoryInfo, error) {
	bank, err := s.Bank()
	if err != nil {
		return CategoryInfo{}, err
	}

	if selector == model.CategoryAll {
		return allInfo(bank), nil
	}
	c := bank.Category(selector)
	if c == nil {
		return CategoryInfo{}, fmt.Errorf("%w: %q", model.ErrUnknownCategory, selector)
	}
	return CategoryInfo{ID: c.ID, Label: c.Label, WordCount: len(c.Words)}, nil
}

func allInfo(bank *model.WordBank) CategoryInfo {
	return CategoryInfo{
		ID:        model.CategoryAll,
		Label:     model.AllCategoriesLabel,
		WordCount: len(bank.AllWords()),
	}
}
