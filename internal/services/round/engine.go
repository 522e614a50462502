// Package round implements the pass-and-play reveal state machine.
//
// An Engine deals roles for one round at a time and walks a cursor over the
// players in index order. Every player's card must be hidden again (Advance)
// before the next player's card can be shown. The engine is synchronous and
// holds no locks; callers sharing one across goroutines must serialize access.
package round

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/imposter/internal/dependencies/clock"
	"github.com/mcoot/imposter/internal/dependencies/random"
	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/configurator"
)

// Listener receives every successful transition
type Listener func(model.Transition)

// Option configures an Engine
type Option func(*Engine)

// WithStrictReveal rejects Advance while the current card is still face down
func WithStrictReveal() Option {
	return func(e *Engine) {
		e.strictReveal = true
	}
}

// WithIDGenerator overrides how round IDs are generated
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// Engine owns the single session of a device
type Engine struct {
	random random.Random
	clock  clock.Clock
	logger *slog.Logger

	strictReveal bool
	newID        func() string

	phase     model.Phase
	config    model.SessionConfig
	players   []model.Player
	cursor    int
	revealed  bool
	roundID   string
	startedAt time.Time

	listeners []subscription
	nextSubID int
}

type subscription struct {
	id int
	fn Listener
}

// New creates an Engine in the setup phase
func New(random random.Random, clock clock.Clock, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		random: random,
		clock:  clock,
		logger: logger,
		newID:  uuid.NewString,
		phase:  model.PhaseSetup,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start validates the config, resolves the secret word and deals roles.
// Nothing changes unless every step succeeds.
func (e *Engine) Start(cfg model.SessionConfig, bank *model.WordBank) error {
	if e.phase != model.PhaseSetup {
		return &model.TransitionError{Op: "start", Phase: e.phase}
	}

	if err := configurator.Validate(cfg.PlayerCount, cfg.ImposterCount); err != nil {
		return err
	}

	secret, err := configurator.ResolveSecret(cfg.Source.CustomWord, cfg.Source.Category, bank, e.random)
	if err != nil {
		return err
	}

	roles := e.dealRoles(cfg.PlayerCount, cfg.ImposterCount)

	players := make([]model.Player, len(roles))
	for i, role := range roles {
		value := secret
		if role.IsImposter() {
			value = model.ImposterMarker
		}
		players[i] = model.Player{Index: i, Role: role, RevealedValue: value}
	}

	e.config = cfg
	e.players = players
	e.cursor = 0
	e.revealed = false
	e.phase = model.PhasePlaying
	e.roundID = e.newID()
	e.startedAt = e.clock.Now()

	e.logger.Info("round started",
		slog.String("round_id", e.roundID),
		slog.Int("player_count", cfg.PlayerCount),
		slog.Int("imposter_count", cfg.ImposterCount),
		slog.String("source", sourceName(cfg.Source)),
	)

	e.emit(model.TransitionStarted)
	return nil
}

// dealRoles lays out imposters first and then shuffles with Fisher-Yates
func (e *Engine) dealRoles(playerCount, imposterCount int) []model.Role {
	roles := make([]model.Role, playerCount)
	for i := range roles {
		if i < imposterCount {
			roles[i] = model.RoleImposter
		} else {
			roles[i] = model.RoleCivilian
		}
	}

	for i := len(roles) - 1; i > 0; i-- {
		j := e.random.Intn(i + 1)
		roles[i], roles[j] = roles[j], roles[i]
	}
	return roles
}

// Reveal turns the current player's card face up. Revealing an already
// visible card is a no-op.
func (e *Engine) Reveal() error {
	if e.phase != model.PhasePlaying {
		return &model.TransitionError{Op: "reveal", Phase: e.phase}
	}
	if e.revealed {
		return nil
	}

	e.revealed = true
	e.emit(model.TransitionRevealed)
	return nil
}

// Advance hides the current card and passes the device to the next player,
// finishing the round after the last one
func (e *Engine) Advance() error {
	if e.phase != model.PhasePlaying {
		return &model.TransitionError{Op: "advance", Phase: e.phase}
	}
	if e.strictReveal && !e.revealed {
		return &model.TransitionError{Op: "advance past an unrevealed card", Phase: e.phase}
	}

	e.revealed = false

	if e.cursor+1 < len(e.players) {
		e.cursor++
		e.emit(model.TransitionAdvanced)
		return nil
	}

	e.phase = model.PhaseFinished
	e.logger.Info("round finished",
		slog.String("round_id", e.roundID),
		slog.Int("player_count", len(e.players)),
		slog.Duration("duration", e.clock.Since(e.startedAt)),
	)
	e.emit(model.TransitionFinished)
	return nil
}

// Reset discards the round and its config from any phase
func (e *Engine) Reset() {
	previous := e.phase
	roundID := e.roundID

	e.config = model.SessionConfig{}
	e.players = nil
	e.cursor = 0
	e.revealed = false
	e.roundID = ""
	e.startedAt = time.Time{}
	e.phase = model.PhaseSetup

	e.logger.Info("round reset",
		slog.String("round_id", roundID),
		slog.String("from_phase", string(previous)),
	)
	e.emit(model.TransitionReset)
}

// CurrentPlayer returns the player holding the device
func (e *Engine) CurrentPlayer() (model.Player, error) {
	if e.phase != model.PhasePlaying {
		return model.Player{}, model.ErrNoActiveSession
	}
	return e.players[e.cursor], nil
}

// Phase returns the lifecycle phase
func (e *Engine) Phase() model.Phase {
	return e.phase
}

// RoundID returns the current round's ID, empty in setup
func (e *Engine) RoundID() string {
	return e.roundID
}

// Players returns a copy of the dealt players
func (e *Engine) Players() []model.Player {
	if e.players == nil {
		return nil
	}
	out := make([]model.Player, len(e.players))
	copy(out, e.players)
	return out
}

// Snapshot returns the view a presentation layer may show right now. The
// role and value are only included while the current card is face up.
func (e *Engine) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		RoundID:       e.roundID,
		Phase:         e.phase,
		PlayerCount:   e.config.PlayerCount,
		ImposterCount: e.config.ImposterCount,
		StartedAt:     e.startedAt,
	}

	if e.phase != model.PhasePlaying {
		return snap
	}

	current := e.players[e.cursor]
	snap.PlayerNumber = current.DisplayIndex()
	snap.Revealed = e.revealed
	snap.Remaining = len(e.players) - e.cursor
	if e.revealed {
		snap.Role = current.Role
		snap.Value = current.RevealedValue
		snap.Remaining--
	}
	return snap
}

// Subscribe registers a listener called synchronously after each successful
// transition. The returned func removes it.
func (e *Engine) Subscribe(fn Listener) func() {
	e.nextSubID++
	id := e.nextSubID
	e.listeners = append(e.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range e.listeners {
			if sub.id == id {
				e.listeners = slices.Delete(slices.Clone(e.listeners), i, i+1)
				return
			}
		}
	}
}

func (e *Engine) emit(t model.TransitionType) {
	if len(e.listeners) == 0 {
		return
	}
	transition := model.Transition{Type: t, Snapshot: e.Snapshot()}
	// Listeners may unsubscribe while being called
	for _, sub := range slices.Clone(e.listeners) {
		sub.fn(transition)
	}
}

// sourceName describes where the secret came from without leaking it
func sourceName(src model.SecretSource) string {
	if configurator.IsCustom(src) {
		return "custom"
	}
	return "category:" + string(src.Category)
}
