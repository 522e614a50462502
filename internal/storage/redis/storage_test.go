package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/imposter/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.PreferencesTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func testBank() *model.WordBank {
	return &model.WordBank{Categories: []model.Category{
		{ID: "food", Label: "Food", Words: []string{"Pizza", "Sushi"}},
		{ID: "clothes", Label: "Clothes", Words: []string{"Hat"}},
	}}
}

// Word bank tests

func (s *StorageSuite) TestSaveAndGetWordBank() {
	bank := testBank()

	err := s.storage.SaveWordBank(s.ctx, bank)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(bank, retrieved) // Category order is preserved
}

func (s *StorageSuite) TestGetWordBankNotLoaded() {
	_, err := s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}

func (s *StorageSuite) TestSaveWordBankReplacesExisting() {
	_ = s.storage.SaveWordBank(s.ctx, testBank())

	replacement := &model.WordBank{Categories: []model.Category{
		{ID: "animals", Label: "Animals", Words: []string{"Otter"}},
	}}
	err := s.storage.SaveWordBank(s.ctx, replacement)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(replacement, retrieved)
	s.False(s.mini.Exists(categoryKey("food")), "Stale category should be removed")
}

func (s *StorageSuite) TestGetWordBankMissingCategory() {
	_ = s.storage.SaveWordBank(s.ctx, testBank())
	s.mini.Del(categoryKey("clothes"))

	_, err := s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrInvalidWordBank)
}

func (s *StorageSuite) TestWordBankNoTTL() {
	_ = s.storage.SaveWordBank(s.ctx, testBank())

	s.Equal(time.Duration(0), s.mini.TTL(categoryIndexKey()), "Word bank should not have TTL")
	s.Equal(time.Duration(0), s.mini.TTL(categoryKey("food")), "Word bank should not have TTL")
}

// Preferences tests

func (s *StorageSuite) TestSaveAndGetPreferences() {
	prefs := &model.Preferences{
		PlayerCount:   6,
		ImposterCount: 2,
		Category:      "food",
		UpdatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SavePreferences(s.ctx, prefs)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPreferences(s.ctx)
	s.Require().NoError(err)
	s.Equal(prefs.PlayerCount, retrieved.PlayerCount)
	s.Equal(prefs.ImposterCount, retrieved.ImposterCount)
	s.Equal(prefs.Category, retrieved.Category)
	s.True(prefs.UpdatedAt.Equal(retrieved.UpdatedAt))
}

func (s *StorageSuite) TestGetPreferencesNotFound() {
	_, err := s.storage.GetPreferences(s.ctx)
	s.ErrorIs(err, model.ErrPreferencesNotFound)
}

func (s *StorageSuite) TestDeletePreferences() {
	_ = s.storage.SavePreferences(s.ctx, &model.Preferences{PlayerCount: 4, ImposterCount: 1})

	err := s.storage.DeletePreferences(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.GetPreferences(s.ctx)
	s.ErrorIs(err, model.ErrPreferencesNotFound)
}

func (s *StorageSuite) TestPreferencesTTL() {
	_ = s.storage.SavePreferences(s.ctx, &model.Preferences{PlayerCount: 4, ImposterCount: 1})

	ttl := s.mini.TTL(preferencesKey())
	s.True(ttl > 0, "Preferences should have TTL")
}

func (s *StorageSuite) TestPreferencesExpire() {
	_ = s.storage.SavePreferences(s.ctx, &model.Preferences{PlayerCount: 4, ImposterCount: 1})

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetPreferences(s.ctx)
	s.ErrorIs(err, model.ErrPreferencesNotFound)
}
