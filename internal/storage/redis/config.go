package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// PreferencesTTL expires the remembered setup after a period of disuse.
	// Zero keeps it forever.
	PreferencesTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       4,
		MinIdleConns:   1,
		PreferencesTTL: 30 * 24 * time.Hour,
	}
}
