package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/imposter/internal/dependencies/clock"
	"github.com/mcoot/imposter/internal/dependencies/random"
	"github.com/mcoot/imposter/internal/services/preferences"
	"github.com/mcoot/imposter/internal/services/round"
	"github.com/mcoot/imposter/internal/services/table"
	"github.com/mcoot/imposter/internal/services/wordbank"
	"github.com/mcoot/imposter/internal/storage"
	"github.com/mcoot/imposter/internal/storage/memory"
	redisstorage "github.com/mcoot/imposter/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordBankService    *wordbank.Service
	PreferencesService *preferences.Service
	Engine             *round.Engine
	Table              *table.Table

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// WordBankPath is the path to a word bank file (optional)
	// If empty, the bank saved in storage or the built-in bank is used
	WordBankPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes rounds reproducible when non-zero
	Seed uint64
	// StrictReveal refuses to advance past a card nobody has looked at
	StrictReveal bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
		logger.Info("using seeded random source", slog.Uint64("seed", cfg.Seed))
	}

	var opts []round.Option
	if cfg.StrictReveal {
		opts = append(opts, round.WithStrictReveal())
	}

	app := newWithDependencies(store, clk, rnd, logger, opts...)
	app.closers = closers

	if err := app.WordBankService.Init(context.Background(), cfg.WordBankPath); err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger, opts ...round.Option) *App {
	// Create services
	wordBankService := wordbank.New(store, logger)
	preferencesService := preferences.New(store, clk, logger)
	engine := round.New(rnd, clk, logger, opts...)
	tbl := table.New(engine, wordBankService, preferencesService, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		WordBankService:    wordBankService,
		PreferencesService: preferencesService,
		Engine:             engine,
		Table:              tbl,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
