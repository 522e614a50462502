// Package clock abstracts wall-clock time so round timing can be faked in
// tests.
package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using the system clock
type RealClock struct{}

var _ Clock = RealClock{}

// New creates a new RealClock
func New() RealClock {
	return RealClock{}
}

// Now returns the current time in UTC so stored timestamps compare equal
// regardless of the host's zone
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
