package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/configurator"
)

var errTooManyPlayers = fmt.Errorf("at most %d players can play on one device", configurator.MaxPlayers)

// describe turns an error into the message flashed to the table
func (h *RoundHandler) describe(err error) string {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		switch {
		case errors.Is(err, model.ErrInvalidPlayerCount):
			return fmt.Sprintf("At least %d players are needed. Try %d.", model.MinPlayers, verr.Suggested)
		case errors.Is(err, model.ErrInvalidImposterCount):
			return fmt.Sprintf("There must be at least one imposter. Try %d.", verr.Suggested)
		}
	}

	switch {
	case errors.Is(err, errTooManyPlayers):
		return fmt.Sprintf("At most %d players can play on one device.", configurator.MaxPlayers)
	case errors.Is(err, model.ErrImposterExceedsPlayers):
		return "There cannot be more imposters than players."
	case errors.Is(err, model.ErrEmptyWordPool):
		return "That category has no words. Pick another or enter a custom word."
	case errors.Is(err, model.ErrUnknownCategory):
		return "Unknown category."
	case errors.Is(err, model.ErrWordBankNotLoaded):
		return "No word bank is loaded. Enter a custom word."
	case errors.Is(err, model.ErrStaleRound):
		return "That round is no longer being played."
	case errors.Is(err, model.ErrNoActiveSession), errors.Is(err, model.ErrInvalidTransition):
		return "That is not possible right now."
	}

	h.logger.Error("unexpected round error", slog.String("error", err.Error()))
	return "Something went wrong."
}
