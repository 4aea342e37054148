// Package source loads a player's game history as NormalizedGame values,
// either by parsing stored PGN or by reconstructing games from per-ply move
// events. The profile builder does not care which path produced its input.
package source

import (
	"context"
	"strconv"

	"github.com/ledren/scoutbook/internal/extract"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/repository"
	"github.com/ledren/scoutbook/internal/style"
)

// GameSource loads normalized games for one identity.
type GameSource interface {
	Load(ctx context.Context, q models.GameQuery) ([]models.NormalizedGame, error)
	Name() string
}

// PGNSource reconstructs games by parsing stored PGN, fetched in bounded
// pages. Games that fail to parse or that never mention the player are
// skipped; partially replayable games keep their good prefix.
type PGNSource struct {
	games    repository.GameRepository
	pageSize int
}

// NewPGNSource creates a PGNSource reading pageSize rows per store query.
func NewPGNSource(games repository.GameRepository, pageSize int) *PGNSource {
	if pageSize <= 0 {
		pageSize = 500
	}
	return &PGNSource{games: games, pageSize: pageSize}
}

func (s *PGNSource) Name() string { return "pgn" }

func (s *PGNSource) Load(ctx context.Context, q models.GameQuery) ([]models.NormalizedGame, error) {
	log := logger.FromContext(ctx).WithPrefix("source-pgn")

	var out []models.NormalizedGame
	offset := q.Offset
	skipped := 0
	for {
		limit := s.pageSize
		if q.Limit > 0 && q.Limit-len(out) < limit {
			limit = q.Limit - len(out)
		}
		if limit <= 0 {
			break
		}

		rows, err := s.games.ListGames(ctx, models.GameQuery{
			Identity: q.Identity,
			Since:    q.Since,
			Until:    q.Until,
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			g := extract.FromPGN(row.PGN, q.Identity.Username, extract.Options{KeepPartial: true})
			if g == nil {
				skipped++
				continue
			}
			g.ID = strconv.FormatInt(row.ID, 10)
			if g.PlayedAt == nil && !row.PlayedAt.IsZero() {
				t := row.PlayedAt
				g.PlayedAt = &t
			}
			g.Style = style.Compute(g.MovesSAN, g.PlayedAs)
			out = append(out, *g)
		}

		if len(rows) < limit {
			break
		}
		offset += len(rows)
	}

	log.Debug("loaded %d games (skipped %d) for %s", len(out), skipped, q.Identity.Username)
	return out, nil
}
