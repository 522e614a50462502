// Package configurator validates round setup input and resolves the secret
// word a round is played with.
package configurator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/imposter/internal/dependencies/random"
	"github.com/mcoot/imposter/internal/model"
)

// Field names reported in validation errors
const (
	FieldPlayerCount   = "player_count"
	FieldImposterCount = "imposter_count"
)

// MaxPlayers is the largest table the HTTP front ends will deal for.
// Validate does not enforce it.
const MaxPlayers = 64

// Validate checks a player/imposter count pair. Count errors are returned as
// *model.ValidationError carrying the value the caller should clamp to.
func Validate(playerCount, imposterCount int) error {
	if playerCount < model.MinPlayers {
		return &model.ValidationError{
			Field:     FieldPlayerCount,
			Value:     playerCount,
			Suggested: model.MinPlayers,
			Err:       model.ErrInvalidPlayerCount,
		}
	}
	if imposterCount < model.MinImposters {
		return &model.ValidationError{
			Field:     FieldImposterCount,
			Value:     imposterCount,
			Suggested: model.MinImposters,
			Err:       model.ErrInvalidImposterCount,
		}
	}
	if imposterCount > playerCount {
		return fmt.Errorf("%w: %d imposters for %d players",
			model.ErrImposterExceedsPlayers, imposterCount, playerCount)
	}
	return nil
}

// ParseCount converts raw user input for one of the count fields. Input that
// is not an integer fails with that field's count error.
func ParseCount(raw string, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err == nil {
		return n, nil
	}

	switch field {
	case FieldPlayerCount:
		return 0, &model.ValidationError{
			Field:     field,
			Suggested: model.MinPlayers,
			Err:       model.ErrInvalidPlayerCount,
		}
	case FieldImposterCount:
		return 0, &model.ValidationError{
			Field:     field,
			Suggested: model.MinImposters,
			Err:       model.ErrInvalidImposterCount,
		}
	default:
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
}

// ResolveSecret picks the word civilians will see. A custom word that is
// non-blank after trimming always wins; otherwise one word is drawn uniformly
// from the selected category's pool.
func ResolveSecret(customWord string, selector model.CategoryID, bank *model.WordBank, rnd random.Random) (string, error) {
	if word := strings.TrimSpace(customWord); word != "" {
		return word, nil
	}

	if bank == nil {
		return "", model.ErrWordBankNotLoaded
	}

	pool, err := bank.Pool(selector)
	if err != nil {
		return "", err
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %q", model.ErrEmptyWordPool, selector)
	}

	return pool[rnd.Intn(len(pool))], nil
}

// IsCustom reports whether the source's custom word takes precedence
func IsCustom(src model.SecretSource) bool {
	return strings.TrimSpace(src.CustomWord) != ""
}
