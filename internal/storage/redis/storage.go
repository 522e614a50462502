package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word bank operations

func (s *Storage) GetWordBank(ctx context.Context) (*model.WordBank, error) {
	ids, err := s.client.LRange(ctx, categoryIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, model.ErrWordBankNotLoaded
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = categoryKey(model.CategoryID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	bank := &model.WordBank{Categories: make([]model.Category, 0, len(values))}
	for i, val := range values {
		data, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: category %q missing from redis", model.ErrInvalidWordBank, ids[i])
		}
		var c model.Category
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("decode category %q: %w", ids[i], err)
		}
		bank.Categories = append(bank.Categories, c)
	}

	return bank, nil
}

func (s *Storage) SaveWordBank(ctx context.Context, bank *model.WordBank) error {
	oldIDs, err := s.client.LRange(ctx, categoryIndexKey(), 0, -1).Result()
	if err != nil {
		return err
	}

	encoded := make([][]byte, len(bank.Categories))
	for i, c := range bank.Categories {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		encoded[i] = data
	}

	// Replace the whole bank in one transaction so readers never see a mix
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range oldIDs {
			pipe.Del(ctx, categoryKey(model.CategoryID(id)))
		}
		pipe.Del(ctx, categoryIndexKey())

		if len(bank.Categories) == 0 {
			return nil
		}

		ids := make([]interface{}, len(bank.Categories))
		for i, c := range bank.Categories {
			ids[i] = string(c.ID)
			pipe.Set(ctx, categoryKey(c.ID), encoded[i], 0)
		}
		pipe.RPush(ctx, categoryIndexKey(), ids...)
		return nil
	})
	return err
}

// Preferences operations

func (s *Storage) GetPreferences(ctx context.Context) (*model.Preferences, error) {
	data, err := s.client.Get(ctx, preferencesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPreferencesNotFound
		}
		return nil, err
	}

	var prefs model.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (s *Storage) SavePreferences(ctx context.Context, prefs *model.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, preferencesKey(), data, s.cfg.PreferencesTTL).Err()
}

func (s *Storage) DeletePreferences(ctx context.Context) error {
	return s.client.Del(ctx, preferencesKey()).Err()
}
