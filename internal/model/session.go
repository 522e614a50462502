package model

import "time"

// Phase is the lifecycle phase of a session
type Phase string

const (
	PhaseSetup    Phase = "setup"    // No players dealt yet
	PhasePlaying  Phase = "playing"  // Players viewing their cards in order
	PhaseFinished Phase = "finished" // Everyone has seen their card
)

// MinPlayers is the smallest table the game can be played with
const MinPlayers = 3

// MinImposters is the smallest number of imposters in a round
const MinImposters = 1

// SecretSource says where the secret word comes from. A non-blank CustomWord
// always wins over Category.
type SecretSource struct {
	CustomWord string
	Category   CategoryID
}

// SessionConfig holds the inputs for a single round
type SessionConfig struct {
	PlayerCount   int
	ImposterCount int
	Source        SecretSource
}

// Snapshot is the read-only view of a session handed to presentation layers.
// Role and Value are only populated while the current card is revealed.
type Snapshot struct {
	RoundID       string
	Phase         Phase
	PlayerNumber  int // 1-based, 0 outside PhasePlaying
	PlayerCount   int
	ImposterCount int
	Revealed      bool
	Role          Role
	Value         string
	Remaining     int
	StartedAt     time.Time
}

// Preferences remembers the last setup used on this device
type Preferences struct {
	PlayerCount   int        `json:"player_count"`
	ImposterCount int        `json:"imposter_count"`
	Category      CategoryID `json:"category"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DefaultPreferences returns the setup shown on first launch
func DefaultPreferences() Preferences {
	return Preferences{
		PlayerCount:   5,
		ImposterCount: 1,
		Category:      CategoryAll,
	}
}
