// Package pages renders the web pages for each phase of a round.
package pages

import (
	"strconv"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/web/templates/layout"
)

// CategoryOption is one entry in the category picker
type CategoryOption struct {
	ID        string
	Label     string
	WordCount int
}

// SetupData holds data for the setup page
type SetupData struct {
	layout.PageData
	PlayerCount   int
	ImposterCount int
	Category      string
	Categories    []CategoryOption
	ShowQR        bool
}

// PlayData holds data for the pages shown while cards are being viewed
type PlayData struct {
	layout.PageData
	Session model.Snapshot
}

func cardHint(role model.Role) string {
	if role.IsImposter() {
		return "Blend in. Work out the word from what the others say."
	}
	return "Remember the word, then hide it before passing the device on."
}

func advanceLabel(s model.Snapshot) string {
	if s.PlayerNumber == s.PlayerCount {
		return "Hide and finish"
	}
	return "Hide and pass on"
}

func imposterSummary(n int) string {
	if n == 1 {
		return "1 imposter is"
	}
	return strconv.Itoa(n) + " imposters are"
}
