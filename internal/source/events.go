package source

import (
	"context"
	"sort"

	"github.com/ledren/scoutbook/internal/extract"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/repository"
	"github.com/ledren/scoutbook/internal/style"
)

// EventSource reconstructs games from per-ply move event rows, avoiding PGN
// parsing for large histories. Stores disagree on whether plies start at 0
// or 1, so the convention is inferred per game: a first ply of 0 shifts the
// whole game up by one.
type EventSource struct {
	events repository.MoveEventRepository
}

// NewEventSource creates an EventSource over the given store.
func NewEventSource(events repository.MoveEventRepository) *EventSource {
	return &EventSource{events: events}
}

func (s *EventSource) Name() string { return "events" }

func (s *EventSource) Load(ctx context.Context, q models.GameQuery) ([]models.NormalizedGame, error) {
	log := logger.FromContext(ctx).WithPrefix("source-events")

	rows, err := s.events.ListEvents(ctx, q)
	if err != nil {
		return nil, err
	}

	// Group strictly by game id: games sharing a played_at timestamp can
	// interleave in store order, so contiguity cannot be assumed.
	// reconstruct re-sorts each game's rows by ply; emitting games in
	// first-seen row order keeps the newest-first ordering of the store.
	byGame := make(map[string][]models.MoveEvent)
	var gameOrder []string
	for _, ev := range rows {
		if _, seen := byGame[ev.GameID]; !seen {
			gameOrder = append(gameOrder, ev.GameID)
		}
		byGame[ev.GameID] = append(byGame[ev.GameID], ev)
	}

	var out []models.NormalizedGame
	skipped := 0
	for _, id := range gameOrder {
		if g := reconstruct(byGame[id]); g != nil {
			out = append(out, *g)
		} else {
			skipped++
		}
	}

	log.Debug("reconstructed %d games (skipped %d) from %d events", len(out), skipped, len(rows))
	return out, nil
}

// reconstruct rebuilds one game from its event rows. Nil when the rows are
// unusable: no move made by the player, or nothing replayable.
func reconstruct(events []models.MoveEvent) *models.NormalizedGame {
	sorted := append([]models.MoveEvent(nil), events...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Ply < sorted[j].Ply })

	// Normalize to 1-based plies.
	shift := 0
	if sorted[0].Ply == 0 {
		shift = 1
	}

	playedAs := ""
	moves := make([]string, 0, len(sorted))
	for _, ev := range sorted {
		moves = append(moves, ev.SAN)
		if ev.IsOpponentMove && playedAs == "" {
			// White moves on odd plies.
			if (ev.Ply+shift)%2 == 1 {
				playedAs = models.ColorWhite
			} else {
				playedAs = models.ColorBlack
			}
		}
	}
	if playedAs == "" {
		return nil
	}

	g := extract.FromMoves(moves, playedAs, extract.Options{KeepPartial: true})
	if g == nil || len(g.MovesSAN) == 0 {
		return nil
	}

	first := sorted[0]
	g.ID = first.GameID
	g.Speed = first.Speed
	g.Rated = first.Rated
	g.Result = eventResult(first)
	if !first.PlayedAt.IsZero() {
		t := first.PlayedAt
		g.PlayedAt = &t
	}
	g.Style = style.Compute(g.MovesSAN, g.PlayedAs)
	return g
}

// eventResult reads the pre-aggregated outcome flags, repeated on every row
// of a game.
func eventResult(ev models.MoveEvent) string {
	switch {
	case ev.Win > 0:
		return models.ResultWin
	case ev.Loss > 0:
		return models.ResultLoss
	case ev.Draw > 0:
		return models.ResultDraw
	default:
		return models.ResultUnknown
	}
}
