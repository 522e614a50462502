// Package config resolves command-line flags against IMPOSTER_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every flag name to form its environment variable
const EnvPrefix = "IMPOSTER"

// DefaultEnvFile is loaded when no env file is given, if it exists
const DefaultEnvFile = ".env"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Server holds the settings of the game server
type Server struct {
	Bind         string
	Port         int
	Storage      string
	RedisURL     string
	WordBankFile string
	PublicURL    string
	Seed         uint64
	StrictReveal bool
	Verbose      bool
	LogFormat    string
	EnvFile      string
}

// RegisterFlags defines the server flags on fs
func (c *Server) RegisterFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(normalize)

	fs.StringVarP(&c.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: IMPOSTER_BIND)")
	fs.IntVarP(&c.Port, "port", "p", 8080, "port to listen on (env: IMPOSTER_PORT)")
	fs.StringVar(&c.Storage, "storage", StorageMemory, "storage backend: memory, redis (env: IMPOSTER_STORAGE)")
	fs.StringVar(&c.RedisURL, "redis-url", "redis://localhost:6379", "redis connection URL (env: IMPOSTER_REDIS_URL)")
	fs.StringVar(&c.WordBankFile, "wordbank-file", "", "YAML, JSON or TOML word bank to load (env: IMPOSTER_WORDBANK_FILE)")
	fs.StringVar(&c.PublicURL, "public-url", "", "URL encoded in the join QR code, defaults to the request host (env: IMPOSTER_PUBLIC_URL)")
	fs.Uint64Var(&c.Seed, "seed", 0, "seed for reproducible rounds, 0 for a random seed (env: IMPOSTER_SEED)")
	fs.BoolVar(&c.StrictReveal, "strict-reveal", true, "refuse to pass the device on before the card was revealed (env: IMPOSTER_STRICT_REVEAL)")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "log debug output (env: IMPOSTER_VERBOSE)")
	fs.StringVar(&c.LogFormat, "log-format", LogFormatJSON, "log format: json, text (env: IMPOSTER_LOG_FORMAT)")
	fs.StringVar(&c.EnvFile, "env-file", "", "file of KEY=value pairs to load into the environment")
}

// Validate checks the resolved settings
func (c *Server) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("--redis-url is required with --storage=redis")
		}
	default:
		return fmt.Errorf("invalid storage %q: must be %q or %q", c.Storage, StorageMemory, StorageRedis)
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, LogFormatJSON, LogFormatText)
	}
	return nil
}

// Addr returns the host:port to listen on
func (c *Server) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

// NewLogger builds the process logger
func (c *Server) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if c.Verbose {
		opts.Level = slog.LevelDebug
	}
	if c.LogFormat == LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Resolve loads envFile (or DefaultEnvFile if present) and fills every flag
// that was not given on the command line from its IMPOSTER_* variable
func Resolve(fs *pflag.FlagSet, envFile string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, envName(f.Name), err))
			}
		}
	})
	return errors.Join(errs...)
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}

	err := godotenv.Load(DefaultEnvFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func envName(flag string) string {
	return strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
