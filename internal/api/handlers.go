package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ledren/scoutbook/internal/errors"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/services"
	"github.com/ledren/scoutbook/internal/worker"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	req, err := profileRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	doc, err := s.Scout.GenerateProfile(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleRebuildProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req, err := profileRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.RebuildPool.Submit(&worker.RebuildProfileJob{Scout: s.Scout, Request: req})
	log.Info("profile rebuild queued: username=%s", req.Identity.Username)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

type modelQueryBody struct {
	FEN            string   `json:"fen"`
	Speeds         []string `json:"speeds,omitempty"`
	Rated          string   `json:"rated,omitempty"`
	Since          string   `json:"since,omitempty"`
	Until          string   `json:"until,omitempty"`
	MaxGames       int      `json:"max_games,omitempty"`
	LookaheadMoves int      `json:"lookahead_moves,omitempty"`
}

type modelQueryResponse struct {
	Result *models.ModelQueryResult `json:"result"`
	Cache  *models.CacheInfo        `json:"cache"`
}

func (s *Server) handleModelQuery(w http.ResponseWriter, r *http.Request) {
	var body modelQueryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	since, err := parseTimeParam("since", body.Since)
	if err != nil {
		handleError(w, r, err)
		return
	}
	until, err := parseTimeParam("until", body.Until)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, cache, err := s.Scout.QueryModel(r.Context(), services.ModelQueryRequest{
		Identity:       identityFromRequest(r),
		FEN:            body.FEN,
		Speeds:         body.Speeds,
		Rated:          body.Rated,
		Since:          since,
		Until:          until,
		MaxGames:       body.MaxGames,
		LookaheadMoves: body.LookaheadMoves,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modelQueryResponse{Result: result, Cache: cache})
}

func profileRequest(r *http.Request) (services.ProfileRequest, error) {
	since, err := parseTimeParam("since", r.URL.Query().Get("since"))
	if err != nil {
		return services.ProfileRequest{}, err
	}
	until, err := parseTimeParam("until", r.URL.Query().Get("until"))
	if err != nil {
		return services.ProfileRequest{}, err
	}
	return services.ProfileRequest{
		Identity: identityFromRequest(r),
		Since:    since,
		Until:    until,
	}, nil
}

func identityFromRequest(r *http.Request) models.Identity {
	userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	return models.Identity{
		UserID:   userID,
		Platform: chi.URLParam(r, "platform"),
		Username: chi.URLParam(r, "username"),
	}
}

func parseTimeParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, errors.NewValidationError(name, "must be RFC 3339")
	}
	return &t, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
