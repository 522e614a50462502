package model

// ImposterMarker is shown to imposters in place of the secret word
const ImposterMarker = "IMPOSTER"

// Role is the secret role dealt to a player
type Role string

const (
	RoleImposter Role = "imposter"
	RoleCivilian Role = "civilian"
)

// IsImposter returns true if this role is the imposter
func (r Role) IsImposter() bool {
	return r == RoleImposter
}

// Player is one seat at the table. Players have no identity beyond their
// index and never change once dealt.
type Player struct {
	Index         int
	Role          Role
	RevealedValue string
}

// DisplayIndex returns the 1-based position shown to humans
func (p Player) DisplayIndex() int {
	return p.Index + 1
}
