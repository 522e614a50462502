package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Setup errors
	ErrInvalidPlayerCount     = errors.New("invalid player count")
	ErrInvalidImposterCount   = errors.New("invalid imposter count")
	ErrImposterExceedsPlayers = errors.New("imposter count exceeds player count")

	// Word bank errors
	ErrEmptyWordPool     = errors.New("word pool is empty")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrWordBankNotLoaded = errors.New("word bank not loaded")
	ErrInvalidWordBank   = errors.New("invalid word bank")

	// Session errors
	ErrNoActiveSession   = errors.New("no active session")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrStaleRound        = errors.New("round is no longer active")

	// Storage errors
	ErrPreferencesNotFound = errors.New("preferences not found")
)

// ValidationError reports a rejected count along with the nearest valid value
// the caller should clamp the input to.
type ValidationError struct {
	Field     string
	Value     int
	Suggested int
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%d (try %d)", e.Err, e.Field, e.Value, e.Suggested)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// TransitionError is returned when an operation is attempted in a phase that
// does not permit it
type TransitionError struct {
	Op    string
	Phase Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s while %s", ErrInvalidTransition, e.Op, e.Phase)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
