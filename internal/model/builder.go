// Package model builds and queries the position-indexed opponent model: two
// frequency maps keyed by canonical position, one for the scouted player's
// own moves and one for the moves played against them.
package model

import (
	"context"
	"sort"
	"time"

	"github.com/ledren/scoutbook/internal/extract"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/repository"
)

// Rated filter modes for a model build.
const (
	RatedAll   = "all"
	RatedOnly  = "rated"
	CasualOnly = "casual"
)

// BuildParams selects and bounds the games folded into a model.
type BuildParams struct {
	Identity models.Identity
	Speeds   []string // empty means every speed
	Rated    string   // RatedAll, RatedOnly, CasualOnly
	Since    *time.Time
	Until    *time.Time
	MaxGames int // hard cap on games folded in
}

// Builder folds paginated game-store reads into OpponentModel values.
type Builder struct {
	games       repository.GameRepository
	pageSize    int
	positionCap int
}

// NewBuilder creates a Builder. pageSize bounds each store read;
// positionCap bounds the number of distinct positions tracked across both
// maps, guarding against pathological datasets.
func NewBuilder(games repository.GameRepository, pageSize, positionCap int) *Builder {
	if pageSize <= 0 {
		pageSize = 500
	}
	return &Builder{games: games, pageSize: pageSize, positionCap: positionCap}
}

// Build fetches games page by page until the cap is reached or a short page
// signals the end of data, and folds each one into the model. Store errors
// abort the whole build; unparseable games are skipped.
func (b *Builder) Build(ctx context.Context, params BuildParams) (*models.OpponentModel, error) {
	log := logger.FromContext(ctx).WithPrefix("model-builder").WithFields(map[string]any{
		"platform": params.Identity.Platform,
		"username": params.Identity.Username,
	})

	maxGames := params.MaxGames
	if maxGames <= 0 {
		maxGames = 2000
	}

	start := time.Now()
	m := &models.OpponentModel{
		BuiltAt:     start,
		MaxGames:    maxGames,
		PositionCap: b.positionCap,
		Opponent:    models.PositionStats{},
		Counter:     models.PositionStats{},
	}

	offset := 0
	for m.GamesUsed < maxGames {
		rows, err := b.games.ListGames(ctx, models.GameQuery{
			Identity: params.Identity,
			Since:    params.Since,
			Until:    params.Until,
			Limit:    b.pageSize,
			Offset:   offset,
		})
		if err != nil {
			return nil, err
		}
		offset += len(rows)

		for _, row := range rows {
			if m.GamesUsed >= maxGames {
				break
			}
			// A replay failure discards the whole game here: folding half
			// a game would skew per-position tallies.
			g := extract.FromPGN(row.PGN, params.Identity.Username, extract.Options{KeepPartial: false})
			if g == nil || !matchesFilters(g, params) {
				continue
			}
			b.fold(m, g)
			m.GamesUsed++
		}

		// A short page means the store ran out of rows.
		if len(rows) < b.pageSize {
			break
		}
	}

	m.BuildDuration = time.Since(start)
	log.Info("model built: games=%d, positions=%d/%d, took=%s",
		m.GamesUsed, len(m.Opponent), len(m.Counter), m.BuildDuration)
	return m, nil
}

func matchesFilters(g *models.NormalizedGame, params BuildParams) bool {
	if len(params.Speeds) > 0 {
		found := false
		for _, s := range params.Speeds {
			if g.Speed == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	switch params.Rated {
	case RatedOnly:
		return g.Rated != nil && *g.Rated
	case CasualOnly:
		return g.Rated != nil && !*g.Rated
	}
	return true
}

func (b *Builder) fold(m *models.OpponentModel, g *models.NormalizedGame) {
	for _, rec := range g.Records {
		stats := m.Counter
		if rec.ByPlayer {
			stats = m.Opponent
		}

		key := PositionKey(rec.FEN)
		byMove, ok := stats[key]
		if !ok {
			if b.positionCap > 0 && len(m.Opponent)+len(m.Counter) >= b.positionCap {
				// At the ceiling: existing positions keep counting, new
				// ones are dropped.
				continue
			}
			byMove = map[string]*models.MoveStats{}
			stats[key] = byMove
		}

		ms, ok := byMove[rec.UCI]
		if !ok {
			ms = &models.MoveStats{UCI: rec.UCI, SAN: rec.SAN}
			byMove[rec.UCI] = ms
		}
		ms.Count++
		switch g.Result {
		case models.ResultWin:
			ms.Win++
		case models.ResultLoss:
			ms.Loss++
		case models.ResultDraw:
			ms.Draw++
		}
	}
}

// MovesAt returns the tallies recorded under a position key, most frequent
// first, ties broken by UCI for a stable order.
func MovesAt(stats models.PositionStats, key string) []*models.MoveStats {
	byMove := stats[key]
	if len(byMove) == 0 {
		return nil
	}
	out := make([]*models.MoveStats, 0, len(byMove))
	for _, ms := range byMove {
		out = append(out, ms)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].UCI < out[j].UCI
	})
	return out
}
