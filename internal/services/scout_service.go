package services

import (
	"context"
	"strings"
	"time"

	"github.com/ledren/scoutbook/internal/errors"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/model"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/profile"
	"github.com/ledren/scoutbook/internal/source"
)

// ProfileRequest selects the games feeding a profile build.
type ProfileRequest struct {
	Identity models.Identity
	Since    *time.Time
	Until    *time.Time
}

// ModelQueryRequest asks the move model about one position.
type ModelQueryRequest struct {
	Identity models.Identity
	FEN      string
	Speeds   []string
	Rated    string
	Since    *time.Time
	Until    *time.Time
	MaxGames int
	// LookaheadMoves bounds the simulated continuation; 0 means the
	// service default.
	LookaheadMoves int
}

// ScoutService handles scouting business logic: profile generation and move
// model queries.
type ScoutService interface {
	GenerateProfile(ctx context.Context, req ProfileRequest) (*models.ProfileDocument, error)
	QueryModel(ctx context.Context, req ModelQueryRequest) (*models.ModelQueryResult, *models.CacheInfo, error)
}

type scoutService struct {
	games          source.GameSource
	profiles       *profile.Builder
	cache          *model.Cache
	lookaheadMoves int
}

// NewScoutService creates a new ScoutService
func NewScoutService(games source.GameSource, profiles *profile.Builder, cache *model.Cache, lookaheadMoves int) ScoutService {
	if lookaheadMoves <= 0 {
		lookaheadMoves = 10
	}
	return &scoutService{
		games:          games,
		profiles:       profiles,
		cache:          cache,
		lookaheadMoves: lookaheadMoves,
	}
}

func (s *scoutService) GenerateProfile(ctx context.Context, req ProfileRequest) (*models.ProfileDocument, error) {
	log := logger.FromContext(ctx)
	log.Debug("generating profile: platform=%s, username=%s", req.Identity.Platform, req.Identity.Username)

	if req.Identity.Username == "" {
		return nil, errors.NewValidationError("username", "must not be empty")
	}

	games, err := s.games.Load(ctx, models.GameQuery{
		Identity: req.Identity,
		Since:    req.Since,
		Until:    req.Until,
	})
	if err != nil {
		log.Error("failed to load games from %s: %v", s.games.Name(), err)
		return nil, errors.NewInternalError(err)
	}

	doc := s.profiles.Build(ctx, req.Identity.Platform, req.Identity.Username, games)
	log.Info("profile generated: username=%s, games=%d, hash=%s", req.Identity.Username, doc.GameCount, doc.ContentHash[:12])
	return doc, nil
}

func (s *scoutService) QueryModel(ctx context.Context, req ModelQueryRequest) (*models.ModelQueryResult, *models.CacheInfo, error) {
	log := logger.FromContext(ctx)
	log.Debug("querying model: username=%s, fen=%s", req.Identity.Username, req.FEN)

	if req.Identity.Username == "" {
		return nil, nil, errors.NewValidationError("username", "must not be empty")
	}
	if strings.TrimSpace(req.FEN) == "" {
		return nil, nil, errors.NewValidationError("fen", "must not be empty")
	}
	rated, err := parseRated(req.Rated)
	if err != nil {
		return nil, nil, err
	}

	m, info, err := s.cache.Get(ctx, model.BuildParams{
		Identity: req.Identity,
		Speeds:   req.Speeds,
		Rated:    rated,
		Since:    req.Since,
		Until:    req.Until,
		MaxGames: req.MaxGames,
	})
	if err != nil {
		log.Error("failed to build model: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}

	lookahead := req.LookaheadMoves
	if lookahead <= 0 {
		lookahead = s.lookaheadMoves
	}

	key := model.PositionKey(req.FEN)
	result := &models.ModelQueryResult{
		PositionKey:   key,
		OpponentMoves: model.MovesAt(m.Opponent, key),
		OpponentTotal: m.Opponent.Total(key),
		CounterMoves:  model.MovesAt(m.Counter, key),
		CounterTotal:  m.Counter.Total(key),
		Lookahead:     model.LookaheadDepth(m, req.FEN, lookahead),
	}
	return result, &info, nil
}

func parseRated(s string) (string, error) {
	switch s {
	case "", "all":
		return model.RatedAll, nil
	case "rated":
		return model.RatedOnly, nil
	case "casual":
		return model.CasualOnly, nil
	default:
		return "", errors.NewValidationError("rated", "must be one of all, rated, casual")
	}
}
