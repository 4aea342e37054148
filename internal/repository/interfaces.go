// Package repository defines the read-only interfaces over the external
// game and move-event stores. The engine never writes to either.
package repository

import (
	"context"

	"github.com/ledren/scoutbook/internal/models"
)

// GameRepository queries raw game records, newest first.
type GameRepository interface {
	ListGames(ctx context.Context, q models.GameQuery) ([]models.GameRow, error)
	CountGames(ctx context.Context, q models.GameQuery) (int, error)
}

// MoveEventRepository queries per-ply move events ordered by played_at then
// ply. Implementations report a missing table or column as a
// SOURCE_UNAVAILABLE error so callers can fall back to PGN parsing.
type MoveEventRepository interface {
	ListEvents(ctx context.Context, q models.GameQuery) ([]models.MoveEvent, error)
}
