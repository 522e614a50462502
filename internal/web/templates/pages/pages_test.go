package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/web/templates/layout"
)

func render(t *testing.T, c templ.Component) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc, html
}

func TestCardEscapesCustomWord(t *testing.T) {
	doc, html := render(t, Card(PlayData{Session: model.Snapshot{
		RoundID:      "round-1",
		Phase:        model.PhasePlaying,
		PlayerNumber: 1,
		PlayerCount:  3,
		Revealed:     true,
		Role:         model.RoleCivilian,
		Value:        `<script>alert("x")</script>`,
	}}))

	assert.NotContains(t, html, "<script>")
	assert.Equal(t, `<script>alert("x")</script>`, doc.Find("#card .value").Text())
	assert.Equal(t, "card", doc.Find("#card").AttrOr("class", ""))
	assert.Equal(t, "round-1", doc.Find("form[action='/advance'] input[name='round_id']").AttrOr("value", ""))
	assert.Equal(t, "Hide and pass on", doc.Find("form[action='/advance'] button").Text())
}

func TestImposterCard(t *testing.T) {
	doc, _ := render(t, Card(PlayData{Session: model.Snapshot{
		PlayerNumber: 3,
		PlayerCount:  3,
		Revealed:     true,
		Role:         model.RoleImposter,
		Value:        model.ImposterMarker,
	}}))

	assert.Equal(t, 1, doc.Find("#card.card.card-imposter").Length())
	assert.Equal(t, "imposter", doc.Find("#card").AttrOr("data-role", ""))
	assert.Equal(t, "Hide and finish", doc.Find("form[action='/advance'] button").Text())
}

func TestBaseShowsFlashAndTitle(t *testing.T) {
	doc, _ := render(t, Prompt(PlayData{
		PageData: layout.PageData{
			Title: "Round",
			Flash: &layout.FlashMessage{Type: "error", Message: "Nope & nope"},
		},
		Session: model.Snapshot{PlayerNumber: 2, PlayerCount: 5},
	}))

	assert.Equal(t, "Round | Imposter", doc.Find("title").Text())
	assert.Equal(t, "Nope & nope", doc.Find(".flash.flash-error[role='alert']").Text())
	assert.Equal(t, "Player 2 of 5", doc.Find("#prompt h1").Text())
}

func TestSetupMarksSelectedCategory(t *testing.T) {
	doc, _ := render(t, Setup(SetupData{
		PlayerCount:   6,
		ImposterCount: 2,
		Category:      "food",
		Categories: []CategoryOption{
			{ID: "clothes", Label: "Clothes", WordCount: 14},
			{ID: "food", Label: "Food", WordCount: 14},
		},
	}))

	assert.Equal(t, "6", doc.Find("#player_count").AttrOr("value", ""))
	assert.Equal(t, "2", doc.Find("#imposter_count").AttrOr("value", ""))
	assert.Equal(t, "food", doc.Find("option[selected]").AttrOr("value", ""))
	assert.Equal(t, "Clothes (14)", doc.Find("option").First().Text())
	assert.Equal(t, 0, doc.Find("img[src='/qr']").Length())
	assert.Equal(t, 0, doc.Find(".flash").Length())
	assert.Equal(t, "Imposter", doc.Find("title").Text())
}

func TestFinishedSummary(t *testing.T) {
	doc, _ := render(t, Finished(PlayData{Session: model.Snapshot{
		Phase:         model.PhaseFinished,
		PlayerCount:   7,
		ImposterCount: 2,
	}}))

	assert.Contains(t, doc.Find("#finished p").Text(), "2 imposters are hiding among 7 players.")
}
