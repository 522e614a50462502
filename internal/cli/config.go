package cli

import (
	"fmt"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns a Config with default values. Flags left unset are
// filled from IMPOSTER_* environment variables when the command runs.
func DefaultConfig() *Config {
	return &Config{
		ServerURL: "http://localhost:8080",
		Output:    OutputText,
	}
}

// Validate checks the resolved settings
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be %q or %q", c.Output, OutputText, OutputJSON)
	}
	return nil
}
