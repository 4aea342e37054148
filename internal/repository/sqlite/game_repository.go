package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a read-only GameRepository over the game store
func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) ListGames(ctx context.Context, q models.GameQuery) ([]models.GameRow, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("listing games: user_id=%d, platform=%s, username=%s, limit=%d, offset=%d",
		q.Identity.UserID, q.Identity.Platform, q.Identity.Username, q.Limit, q.Offset)

	query := sqlBuilder.Select(
		"id", "platform_game_id", "pgn", "played_at", "engine_stats",
	).From("games")
	query = applyGameFilters(query, q)
	query = query.OrderBy("played_at DESC")

	limit := q.Limit
	if limit <= 0 {
		limit = 500
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.GameRow
	for rows.Next() {
		var g models.GameRow
		var stats sql.NullString
		if err := rows.Scan(&g.ID, &g.PlatformGameID, &g.PGN, &g.PlayedAt, &stats); err != nil {
			log.Error("failed to scan game row: %v", err)
			return nil, err
		}
		if stats.Valid {
			g.EngineStats = &stats.String
		}
		out = append(out, g)
	}
	log.Debug("found %d games", len(out))
	return out, rows.Err()
}

func (r *gameRepository) CountGames(ctx context.Context, q models.GameQuery) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("counting games: user_id=%d, platform=%s, username=%s",
		q.Identity.UserID, q.Identity.Platform, q.Identity.Username)

	query := applyGameFilters(sqlBuilder.Select("COUNT(*)").From("games"), q)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count games: %v", err)
		return 0, err
	}
	return count, nil
}

// applyGameFilters adds the identity and date-range WHERE clauses shared by
// ListGames and CountGames.
func applyGameFilters(query squirrel.SelectBuilder, q models.GameQuery) squirrel.SelectBuilder {
	if q.Identity.UserID != 0 {
		query = query.Where(squirrel.Eq{"user_id": q.Identity.UserID})
	}
	if q.Identity.Platform != "" {
		query = query.Where(squirrel.Eq{"platform": q.Identity.Platform})
	}
	if q.Identity.Username != "" {
		query = query.Where(squirrel.Expr("LOWER(username) = LOWER(?)", q.Identity.Username))
	}
	if q.Since != nil {
		query = query.Where(squirrel.GtOrEq{"played_at": *q.Since})
	}
	if q.Until != nil {
		query = query.Where(squirrel.LtOrEq{"played_at": *q.Until})
	}
	return query
}
