package web_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/round"
)

func TestSetupPageShowsDefaults(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.home()

	assertContainsElement(t, doc, "form#setup[action='/start']")
	assertAttr(t, doc, "input#player_count", "value", "5")
	assertAttr(t, doc, "input#imposter_count", "value", "1")
	assertAttr(t, doc, "select#category option[selected]", "value", "all")
	assert.Equal(t, 3, doc.Find("select#category option").Length())
	assertContainsText(t, doc, "select#category", "Cocktail (5)")
	assertContainsElement(t, doc, "img[src='/qr']")
	assertNotContainsElement(t, doc, ".flash")
}

func TestFullRoundThroughPages(t *testing.T) {
	ts := newWebTestServer(t)
	roundID := ts.startRound("3", "1", "food")

	doc := ts.home()
	assertContainsText(t, doc, "#prompt", "Player 1 of 3")
	assertAttr(t, doc, "form[action='/reveal'] input[name='round_id']", "value", roundID)
	assertNotContainsElement(t, doc, "#card")

	// Players 1 and 2 hold the word
	for player := 1; player <= 2; player++ {
		doc = ts.page(ts.roundAction("/reveal", roundID))
		assertContainsText(t, doc, "#card .value", "Pizza")
		assertAttr(t, doc, "#card", "data-role", "civilian")
		assertContainsText(t, doc, "form[action='/advance'] button", "Hide and pass on")

		rr := ts.roundAction("/advance", roundID)
		assert.Equal(t, "/?handoff=1", rr.Header().Get("Location"))
		doc = ts.page(rr)
		assertContainsText(t, doc, "#handoff", "Hand it to player")
		assertNotContainsElement(t, doc, "#card")
		assertNotContainsElement(t, doc, ".value")
	}

	doc = ts.home()
	assertContainsText(t, doc, "#prompt", "Player 3 of 3")

	doc = ts.page(ts.roundAction("/reveal", roundID))
	assertContainsText(t, doc, "#card .value", model.ImposterMarker)
	assertContainsElement(t, doc, "#card.card-imposter")
	assert.NotContains(t, doc.Text(), "Pizza")
	assertContainsText(t, doc, "form[action='/advance'] button", "Hide and finish")

	rr := ts.roundAction("/advance", roundID)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	doc = ts.page(rr)
	assertContainsText(t, doc, "#finished", "1 imposter is hiding among 3 players")

	doc = ts.page(ts.post("/reset", nil))
	assertContainsElement(t, doc, "form#setup")
	assertAttr(t, doc, "input#player_count", "value", "3")
	assertAttr(t, doc, "select#category option[selected]", "value", "food")
}

func TestHandoffOnlyBetweenPlayers(t *testing.T) {
	ts := newWebTestServer(t)
	roundID := ts.startRound("3", "1", "food")

	// First player gets the prompt directly
	rr := ts.get("/?handoff=1")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "#prompt")
	assertNotContainsElement(t, doc, "#handoff")

	// A revealed card is never hidden behind the interstitial
	ts.roundAction("/reveal", roundID)
	rr = ts.get("/?handoff=1")
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, "#card")
}

func TestCustomWordIsDealt(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.post("/start", map[string][]string{
		"player_count":   {"3"},
		"imposter_count": {"1"},
		"category":       {"food"},
		"custom_word":    {"  Lighthouse "},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := ts.page(ts.roundAction("/reveal", ts.app.Engine.RoundID()))
	assertContainsText(t, doc, "#card .value", "Lighthouse")
}

func TestInvalidPlayerCountSuggestsMinimum(t *testing.T) {
	ts := newWebTestServer(t)

	for _, raw := range []string{"2", "abc", ""} {
		rr := ts.post("/start", map[string][]string{
			"player_count":   {raw},
			"imposter_count": {"1"},
			"category":       {"food"},
		})
		assert.Contains(t, rr.Header().Get("Location"), "player_count=3", "input %q", raw)

		doc := ts.page(rr)
		assertContainsText(t, doc, ".flash-error", "At least 3 players are needed. Try 3.")
		assertAttr(t, doc, "input#player_count", "value", "3")
		assertAttr(t, doc, "select#category option[selected]", "value", "food")
	}

	assert.Equal(t, model.PhaseSetup, ts.app.Engine.Phase())
}

func TestInvalidImposterCountSuggestsMinimum(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.post("/start", map[string][]string{
		"player_count":   {"6"},
		"imposter_count": {"0"},
	})

	doc := ts.page(rr)
	assertContainsText(t, doc, ".flash-error", "There must be at least one imposter. Try 1.")
	assertAttr(t, doc, "input#player_count", "value", "6")
	assertAttr(t, doc, "input#imposter_count", "value", "1")
}

func TestTooManyImposters(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.post("/start", map[string][]string{
		"player_count":   {"3"},
		"imposter_count": {"4"},
	})

	doc := ts.page(rr)
	assertContainsText(t, doc, ".flash-error", "more imposters than players")
	assertAttr(t, doc, "input#imposter_count", "value", "4")
	assert.Equal(t, model.PhaseSetup, ts.app.Engine.Phase())
}

func TestTooManyPlayers(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.post("/start", map[string][]string{
		"player_count":   {"65"},
		"imposter_count": {"1"},
	})

	doc := ts.page(rr)
	assertContainsText(t, doc, ".flash-error", "At most 64 players")
	assertAttr(t, doc, "input#player_count", "value", "64")
}

func TestUnknownCategory(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.post("/start", map[string][]string{
		"player_count":   {"3"},
		"imposter_count": {"1"},
		"category":       {"planets"},
	})

	doc := ts.page(rr)
	assertContainsText(t, doc, ".flash-error", "Unknown category")
}

func TestFlashShownOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page(ts.post("/start", map[string][]string{"player_count": {"1"}, "imposter_count": {"1"}}))

	doc := ts.home()
	assertNotContainsElement(t, doc, ".flash")
}

func TestStaleRoundIsRejected(t *testing.T) {
	ts := newWebTestServer(t)
	first := ts.startRound("3", "1", "food")
	ts.post("/reset", nil)
	second := ts.startRound("4", "1", "food")
	assert.NotEqual(t, first, second)

	doc := ts.page(ts.roundAction("/reveal", first))
	assertContainsText(t, doc, ".flash-error", "no longer being played")
	assertContainsText(t, doc, "#prompt", "Player 1 of 4")
	assert.False(t, ts.app.Engine.Snapshot().Revealed)
}

func TestStrictRevealBlocksBlindAdvance(t *testing.T) {
	ts := newWebTestServer(t, round.WithStrictReveal())
	roundID := ts.startRound("3", "1", "food")

	doc := ts.page(ts.roundAction("/advance", roundID))
	assertContainsText(t, doc, ".flash-error", "not possible right now")
	assertContainsText(t, doc, "#prompt", "Player 1 of 3")
}

func TestRevealWithoutRound(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.roundAction("/reveal", ""))
	assertContainsText(t, doc, ".flash-error", "not possible right now")
	assertContainsElement(t, doc, "form#setup")
}

func TestAbandonRound(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startRound("3", "1", "food")

	doc := ts.home()
	assertContainsElement(t, doc, "form[action='/reset']")

	doc = ts.page(ts.post("/reset", nil))
	assertContainsElement(t, doc, "form#setup")
	assert.Equal(t, model.PhaseSetup, ts.app.Engine.Phase())
}

func TestQRCode(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.get("/qr")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestPagesAreNotCached(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.get("/")
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
}
