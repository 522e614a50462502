package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/imposter/internal/api/response"
	"github.com/mcoot/imposter/internal/factory"
	"github.com/mcoot/imposter/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestWordBank())
	s.server = httptest.NewServer(NewHandler(s.app.App, "", testutil.NopLogger()))
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

// run executes the root command against the test server
func (s *CLISuite) run(args ...string) (string, error) {
	return s.runWithInput("", args...)
}

func (s *CLISuite) runWithInput(input string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLISuite) runJSON(result any, args ...string) {
	out, err := s.run(append([]string{"-o", "json"}, args...)...)
	s.Require().NoError(err, out)
	s.Require().NoError(json.Unmarshal([]byte(out), result), out)
}

func (s *CLISuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)
	s.Contains(out, "Status: ok")

	var health response.HealthResponse
	s.runJSON(&health, "health")
	s.Equal("ok", health.Status)
}

func (s *CLISuite) TestCategories() {
	out, err := s.run("categories")
	s.Require().NoError(err)
	s.Contains(out, "LABEL")
	s.Contains(out, "food")
	s.Contains(out, "places")
	s.Contains(out, "Cocktail")

	var cats response.CategoriesResponse
	s.runJSON(&cats, "categories")
	s.Require().Len(cats.Categories, 3)
	s.Equal("all", cats.Categories[2].ID)
	s.Equal(5, cats.Categories[2].WordCount)
}

func (s *CLISuite) TestSessionRound() {
	var snap response.Session
	s.runJSON(&snap, "session", "start", "-p", "3", "-i", "1", "--category", "food")
	s.Equal("round-1", snap.RoundID)
	s.Equal("playing", snap.Phase)
	s.Equal(1, snap.PlayerNumber)
	s.False(snap.Revealed)
	s.Empty(snap.Value)

	s.runJSON(&snap, "session", "reveal", "--round", "round-1")
	s.True(snap.Revealed)
	s.Equal("Pizza", snap.Value)
	s.Equal("civilian", snap.Role)

	s.runJSON(&snap, "session", "advance")
	s.Equal(2, snap.PlayerNumber)
	s.False(snap.Revealed)

	out, err := s.run("session", "state")
	s.Require().NoError(err)
	s.Contains(out, "round-1")
	s.Contains(out, "2 of 3")
	s.Contains(out, "hidden")
	s.NotContains(out, "Pizza")

	out, err = s.run("session", "reset")
	s.Require().NoError(err)
	s.Contains(out, "No round in progress")
}

func (s *CLISuite) TestSessionStartCustomWord() {
	var snap response.Session
	s.runJSON(&snap, "session", "start", "-p", "4", "-i", "2", "--word", "Lighthouse")
	s.runJSON(&snap, "session", "reveal")
	s.Equal("Lighthouse", snap.Value)
}

func (s *CLISuite) TestSessionStartReportsSuggestion() {
	_, err := s.run("session", "start", "-p", "2")
	s.Require().Error(err)
	s.Contains(err.Error(), "INVALID_PLAYER_COUNT")
	s.Contains(err.Error(), "try 3")

	_, err = s.run("session", "start", "-p", "4", "-i", "0")
	s.Require().Error(err)
	s.Contains(err.Error(), "INVALID_IMPOSTER_COUNT")
	s.Contains(err.Error(), "try 1")
}

func (s *CLISuite) TestStaleRound() {
	_, err := s.run("session", "start", "-p", "3")
	s.Require().NoError(err)

	_, err = s.run("session", "reveal", "--round", "round-0")
	s.Require().Error(err)
	s.Contains(err.Error(), "STALE_ROUND")
}

func (s *CLISuite) TestPreferences() {
	_, err := s.run("session", "start", "-p", "7", "-i", "2", "--category", "places")
	s.Require().NoError(err)

	out, err := s.run("preferences")
	s.Require().NoError(err)
	s.Contains(out, "7")
	s.Contains(out, "places")

	out, err = s.run("preferences", "forget")
	s.Require().NoError(err)
	s.Contains(out, "Preferences forgotten")

	var prefs response.Preferences
	s.runJSON(&prefs, "preferences")
	s.Equal(response.Preferences{PlayerCount: 5, ImposterCount: 1, Category: "all"}, prefs)
}

func (s *CLISuite) TestQR() {
	out, err := s.run("qr")
	s.Require().NoError(err)
	s.Contains(out, s.server.URL+"/")
	s.Greater(strings.Count(out, "\n"), 10)

	var result map[string]string
	s.runJSON(&result, "qr", "--url", "http://10.0.0.2:8080/")
	s.Equal("http://10.0.0.2:8080/", result["url"])
}

func (s *CLISuite) TestInvalidOutputFormat() {
	_, err := s.run("-o", "yaml", "health")
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid output format")
}

func (s *CLISuite) TestServerEnvironmentVariable() {
	s.T().Setenv(EnvServer, s.server.URL)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"health"})
	s.Require().NoError(cmd.Execute())
	s.Contains(out.String(), "Status: ok")
}

func (s *CLISuite) TestPlayFullRound() {
	out, err := s.runWithInput(strings.Repeat("\n", 6), "play", "-p", "3", "-i", "1", "--seed", "42", "--no-clear")
	s.Require().NoError(err, out)

	s.Contains(out, "Dealt 3 cards with 1 imposter.")
	s.Contains(out, "Player 1 of 3, press Enter to reveal.")
	s.Contains(out, "Pass the device to player 2.")
	s.Contains(out, "Pass the device to player 3.")
	s.Equal(2, strings.Count(out, "The secret word is: "))
	s.Equal(1, strings.Count(out, "You are the IMPOSTER."))
	s.Contains(out, "Everyone has seen their card. There is 1 imposter among 3 players.")
	s.Contains(out, "Start the discussion!")
	s.NotContains(out, clearScreen)
}

func (s *CLISuite) TestPlayCustomWord() {
	out, err := s.runWithInput(strings.Repeat("\n", 8), "play", "-p", "4", "-i", "2", "--word", "Lighthouse")
	s.Require().NoError(err, out)

	s.Equal(2, strings.Count(out, "The secret word is: Lighthouse"))
	s.Equal(2, strings.Count(out, "You are the IMPOSTER."))
	s.Contains(out, "There are 2 imposters among 4 players.")
	s.Contains(out, clearScreen)
}

func (s *CLISuite) TestPlaySameSeedSameRound() {
	args := []string{"play", "-p", "5", "-i", "2", "--seed", "7", "--no-clear"}
	first, err := s.runWithInput(strings.Repeat("\n", 10), args...)
	s.Require().NoError(err)
	second, err := s.runWithInput(strings.Repeat("\n", 10), args...)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *CLISuite) TestPlayStopsWhenInputCloses() {
	out, err := s.runWithInput("\n\n", "play", "-p", "3", "--no-clear")
	s.Require().ErrorIs(err, errInputClosed)
	s.Contains(out, "Pass the device to player 2.")
	s.NotContains(out, "Everyone has seen their card")
}

func (s *CLISuite) TestPlayRejectsCountsWithHint() {
	_, err := s.runWithInput("", "play", "-p", "2")
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid player count")
	s.Contains(err.Error(), "hint: use --players 3")

	_, err = s.runWithInput("", "play", "-p", "4", "-i", "0")
	s.Require().Error(err)
	s.Contains(err.Error(), "hint: use --imposters 1")

	_, err = s.runWithInput("", "play", "-p", "3", "-i", "4")
	s.Require().Error(err)
	s.Contains(err.Error(), "imposter count exceeds player count")
}

func (s *CLISuite) TestPlayUnknownCategory() {
	_, err := s.runWithInput("", "play", "-p", "3", "--category", "planets")
	s.Require().Error(err)
	s.Contains(err.Error(), "unknown category")
}
