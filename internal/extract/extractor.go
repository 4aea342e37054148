// Package extract turns raw PGN game records into NormalizedGame values:
// metadata inferred from the tag pairs, moves replayed on an internal board.
package extract

import (
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/pgn"
)

// Options controls how replay failures are handled.
type Options struct {
	// KeepPartial keeps the successfully replayed move prefix when a later
	// move fails to apply (corrupt PGN). When false the whole game is
	// discarded instead, which is what the model builder wants: a
	// half-folded game would skew per-position tallies.
	KeepPartial bool
}

// FromPGN extracts a NormalizedGame for the given player from raw PGN text.
// Returns nil when the player matches neither the White nor the Black tag,
// or when the moves cannot be replayed and Options.KeepPartial is unset.
// Pure and deterministic: the same input always yields the same output.
func FromPGN(raw, username string, opts Options) *models.NormalizedGame {
	tags := pgn.ParseTags(raw)

	playedAs := matchColor(tags, username)
	if playedAs == "" {
		return nil
	}

	g := FromMoves(pgn.Movetext(raw), playedAs, opts)
	if g == nil {
		return nil
	}
	g.Result = orientResult(tags["Result"], playedAs)
	g.Speed = inferSpeed(tags)
	g.Rated = inferRated(tags)
	g.PlayedAt = inferDate(tags)
	return g
}

// FromMoves replays a SAN move sequence for a player of the given color.
// Shared by the PGN path and the event-sourced reconstructor.
func FromMoves(moves []string, playedAs string, opts Options) *models.NormalizedGame {
	records, complete := Replay(moves, playedAs)
	if !complete && !opts.KeepPartial {
		return nil
	}

	g := &models.NormalizedGame{
		PlayedAs: playedAs,
		Result:   models.ResultUnknown,
		Records:  records,
	}
	g.MovesSAN = make([]string, len(records))
	for i, rec := range records {
		g.MovesSAN[i] = rec.SAN
	}
	return g
}

// Replay applies SAN tokens one at a time on a fresh board, recording the
// pre-move position for each ply. Stops at the first move that fails to
// apply and reports whether the whole sequence replayed.
func Replay(moves []string, playedAs string) ([]models.MoveRecord, bool) {
	game := chess.NewGame()
	records := make([]models.MoveRecord, 0, len(moves))

	for _, tok := range moves {
		san := strings.TrimRight(tok, "!?")
		if san == "" {
			continue
		}

		fen := game.Position().String()
		if err := game.PushMove(san, nil); err != nil {
			return records, false
		}

		applied := game.Moves()
		// The mover comes off the board, not the token position: a stray
		// annotation token must not shift attribution for the rest of the
		// game.
		whiteToMove := activeColor(fen) == models.ColorWhite
		records = append(records, models.MoveRecord{
			Ply: len(records) + 1,
			SAN: san,
			// Move.String() is the coordinate encoding, e.g. "g1f3".
			UCI:      applied[len(applied)-1].String(),
			FEN:      fen,
			ByPlayer: whiteToMove == (playedAs == models.ColorWhite),
		})
	}
	return records, true
}

// activeColor reads the side-to-move field of a FEN string.
func activeColor(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 1 && fields[1] == "b" {
		return models.ColorBlack
	}
	return models.ColorWhite
}

func matchColor(tags map[string]string, username string) string {
	switch {
	case strings.EqualFold(tags["White"], username):
		return models.ColorWhite
	case strings.EqualFold(tags["Black"], username):
		return models.ColorBlack
	default:
		return ""
	}
}
