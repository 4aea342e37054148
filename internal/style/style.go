// Package style derives per-game behavioral features from a move sequence:
// castling habits, queen-trade timing, pawn storms, and early aggression.
// All outputs are per-game scalars; aggregation across games happens in the
// profile builder.
package style

import (
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/ledren/scoutbook/internal/models"
)

const (
	queenTradePlyLimit = 40 // move 20
	pawnStormWindow    = 20 // plies after castling
	pawnCountPlyLimit  = 10
	aggressionPlyLimit = 15
)

// Compute replays the move sequence and returns the style features for the
// player of the given color. Replay stops quietly at the first unplayable
// move; features reflect the replayed prefix.
func Compute(moves []string, playedAs string) *models.StyleFeatures {
	f := &models.StyleFeatures{}
	game := chess.NewGame()
	castledAtPly := 0

	ply := 0
	for _, tok := range moves {
		san := strings.TrimRight(tok, "!?")
		if san == "" {
			continue
		}
		mover := activeColor(game.Position().String())
		if err := game.PushMove(san, nil); err != nil {
			break
		}

		ply++
		byPlayer := mover == playedAs

		applied := game.Moves()
		uci := applied[len(applied)-1].String()

		if byPlayer {
			if f.CastleSide == "" && castledAtPly == 0 {
				switch {
				case strings.HasPrefix(san, "O-O-O"):
					f.CastleSide = "Q"
					f.CastleMove = (ply + 1) / 2
					castledAtPly = ply
				case strings.HasPrefix(san, "O-O"):
					f.CastleSide = "K"
					f.CastleMove = (ply + 1) / 2
					castledAtPly = ply
				}
			}

			if ply <= pawnCountPlyLimit && isPawnMove(san) {
				f.PawnMovesFirst10++
			}
			if ply <= aggressionPlyLimit {
				if strings.Contains(san, "x") {
					f.CapturesFirst15++
				}
				if strings.HasSuffix(san, "+") || strings.HasSuffix(san, "#") {
					f.ChecksFirst15++
				}
			}

			// A pawn thrown two ranks forward on the castled wing shortly
			// after castling reads as a storm.
			if castledAtPly > 0 && ply > castledAtPly && ply <= castledAtPly+pawnStormWindow {
				if isPawnMove(san) && rankDelta(uci) == 2 {
					switch {
					case f.CastleSide == "K" && uci[0] >= 'f':
						f.KingsidePawnStorm = true
					case f.CastleSide == "Q" && uci[0] <= 'c':
						f.QueensidePawnStorm = true
					}
				}
			}
		}

		if ply <= queenTradePlyLimit && !f.QueenTradeByMove20 {
			placement := strings.SplitN(game.Position().String(), " ", 2)[0]
			if !strings.ContainsAny(placement, "Qq") {
				f.QueenTradeByMove20 = true
			}
		}
	}

	return f
}

// activeColor reads the side-to-move field of a FEN string.
func activeColor(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 1 && fields[1] == "b" {
		return models.ColorBlack
	}
	return models.ColorWhite
}

// isPawnMove reports whether a SAN token is a pawn move (no piece letter:
// "e4", "exd5", "e8=Q+").
func isPawnMove(san string) bool {
	return len(san) > 0 && san[0] >= 'a' && san[0] <= 'h'
}

// rankDelta reads the rank distance out of a coordinate move like "g2g4".
func rankDelta(uci string) int {
	if len(uci) < 4 {
		return 0
	}
	d := int(uci[3]) - int(uci[1])
	if d < 0 {
		d = -d
	}
	return d
}
