package sqlite

import (
	"context"
	"database/sql"

	"github.com/ledren/scoutbook/internal/errors"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/repository"
)

type moveEventRepository struct {
	db *sql.DB
}

// NewMoveEventRepository creates a read-only MoveEventRepository over the
// move event store. A deployment without the move_events table is valid;
// queries against it surface as SOURCE_UNAVAILABLE so callers fall back to
// PGN parsing.
func NewMoveEventRepository(db *sql.DB) repository.MoveEventRepository {
	return &moveEventRepository{db: db}
}

func (r *moveEventRepository) ListEvents(ctx context.Context, q models.GameQuery) ([]models.MoveEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("event_repo")
	log.Debug("listing move events: user_id=%d, platform=%s, username=%s",
		q.Identity.UserID, q.Identity.Platform, q.Identity.Username)

	query := sqlBuilder.Select(
		"game_id", "played_at", "speed", "rated", "ply",
		"is_opponent_move", "san", "uci", "win", "loss", "draw",
	).From("move_events")
	query = applyGameFilters(query, q)
	// game_id breaks ties between games played at the same timestamp.
	query = query.OrderBy("played_at", "game_id", "ply")

	if q.Limit > 0 {
		query = query.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		query = query.Offset(uint64(q.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		if schemaMissing(err) {
			log.Info("move event store schema missing: %v", err)
			return nil, errors.NewUnavailableError("move event store", err)
		}
		log.Error("failed to list move events: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.MoveEvent
	for rows.Next() {
		var ev models.MoveEvent
		var speed sql.NullString
		var rated sql.NullBool
		if err := rows.Scan(&ev.GameID, &ev.PlayedAt, &speed, &rated, &ev.Ply,
			&ev.IsOpponentMove, &ev.SAN, &ev.UCI, &ev.Win, &ev.Loss, &ev.Draw); err != nil {
			log.Error("failed to scan move event row: %v", err)
			return nil, err
		}
		if speed.Valid {
			ev.Speed = speed.String
		}
		if rated.Valid {
			b := rated.Bool
			ev.Rated = &b
		}
		out = append(out, ev)
	}
	log.Debug("found %d move events", len(out))
	return out, rows.Err()
}
