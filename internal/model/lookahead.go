package model

import (
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/ledren/scoutbook/internal/models"
)

// LookaheadDepth estimates how deep the model can simulate the scouted
// player from a position: it alternately applies the player's single most
// frequent historical move and the most frequent reply, stopping when
// either side runs out of data, when maxMoves of the player's own moves
// have been applied, or at a hard ply ceiling. Returns the number of the
// player's own moves that were extendable.
//
// fen must describe a position with the scouted player to move. Invalid
// positions or empty history return 0.
func LookaheadDepth(m *models.OpponentModel, fen string, maxMoves int) int {
	if m == nil || maxMoves <= 0 {
		return 0
	}

	fenOpt, err := chess.FEN(restoreCounters(fen))
	if err != nil {
		return 0
	}
	game := chess.NewGame(fenOpt)

	// Safety bound: twice the requested own-move count in plies.
	ceiling := 2 * maxMoves
	ownMoves := 0
	playerTurn := true

	for ply := 0; ply < ceiling && ownMoves < maxMoves; ply++ {
		stats := m.Counter
		if playerTurn {
			stats = m.Opponent
		}

		moves := MovesAt(stats, PositionKey(game.Position().String()))
		if len(moves) == 0 {
			break
		}

		// SAN stays valid here: a shared key means an identical board, so
		// the recorded notation replays cleanly even across games.
		if err := game.PushMove(moves[0].SAN, nil); err != nil {
			break
		}
		if playerTurn {
			ownMoves++
		}
		playerTurn = !playerTurn
	}
	return ownMoves
}

// restoreCounters pads a 4-field position key back into a parseable 6-field
// FEN. Full FENs pass through untouched.
func restoreCounters(fen string) string {
	switch len(strings.Fields(fen)) {
	case 4:
		return strings.TrimSpace(fen) + " 0 1"
	case 5:
		return strings.TrimSpace(fen) + " 1"
	default:
		return fen
	}
}
