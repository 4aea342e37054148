package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ledren/scoutbook/internal/api"
	"github.com/ledren/scoutbook/internal/model"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/openings"
	"github.com/ledren/scoutbook/internal/profile"
	"github.com/ledren/scoutbook/internal/services"
	"github.com/ledren/scoutbook/internal/testutil/mocks"
	"github.com/ledren/scoutbook/internal/worker"
)

type stubSource struct {
	games []models.NormalizedGame
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(context.Context, models.GameQuery) ([]models.NormalizedGame, error) {
	return s.games, nil
}

func newTestServer(t *testing.T, src *stubSource, gameRepo *mocks.MockGameRepository) *httptest.Server {
	t.Helper()
	profiles := profile.NewBuilder(openings.DefaultBook(), profile.Options{})
	cache := model.NewCache(model.NewBuilder(gameRepo, 500, 0), time.Minute)
	scout := services.NewScoutService(src, profiles, cache, 10)

	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	srv := &api.Server{Scout: scout, RebuildPool: pool}
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, &stubSource{}, new(mocks.MockGameRepository))

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestProfileEndpoint(t *testing.T) {
	src := &stubSource{games: []models.NormalizedGame{
		{ID: "g1", PlayedAs: models.ColorWhite, Result: models.ResultWin, MovesSAN: []string{"e4", "e5"}},
	}}
	ts := newTestServer(t, src, new(mocks.MockGameRepository))

	resp, err := http.Get(ts.URL + "/api/players/lichess/magnus/profile")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc models.ProfileDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "magnus", doc.Username)
	assert.Equal(t, "lichess", doc.Platform)
	assert.Equal(t, 1, doc.GameCount)
	assert.Contains(t, doc.Segments, "all")
}

func TestProfileEndpointRejectsBadDate(t *testing.T) {
	ts := newTestServer(t, &stubSource{}, new(mocks.MockGameRepository))

	resp, err := http.Get(ts.URL + "/api/players/lichess/magnus/profile?since=yesterday")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestModelQueryEndpoint(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	gameRepo.On("ListGames", mock.Anything, mock.Anything).Return([]models.GameRow{
		{ID: 1, PGN: "[White \"magnus\"]\n[Black \"rival\"]\n[Result \"1-0\"]\n\n1. e4 e5 1-0"},
	}, nil).Once()
	ts := newTestServer(t, &stubSource{}, gameRepo)

	body := `{"fen": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"}`
	resp, err := http.Post(ts.URL+"/api/players/lichess/magnus/model", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Result models.ModelQueryResult `json:"result"`
		Cache  models.CacheInfo        `json:"cache"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Result.OpponentMoves, 1)
	assert.Equal(t, "e2e4", out.Result.OpponentMoves[0].UCI)
	assert.Equal(t, 1, out.Result.OpponentTotal)
	assert.False(t, out.Cache.Hit)
}

func TestModelQueryEndpointRejectsBadInput(t *testing.T) {
	ts := newTestServer(t, &stubSource{}, new(mocks.MockGameRepository))

	resp, err := http.Post(ts.URL+"/api/players/lichess/magnus/model", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/players/lichess/magnus/model", "application/json", strings.NewReader(`{"fen": ""}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRebuildEndpointQueuesJob(t *testing.T) {
	ts := newTestServer(t, &stubSource{}, new(mocks.MockGameRepository))

	resp, err := http.Post(ts.URL+"/api/players/lichess/magnus/profile/rebuild", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}
