package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/style"
)

func TestCompute_CastlingKingside(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "O-O", "Nf6"}

	f := style.Compute(moves, models.ColorWhite)
	assert.Equal(t, "K", f.CastleSide)
	assert.Equal(t, 4, f.CastleMove)

	// Black never castles in this sequence.
	f = style.Compute(moves, models.ColorBlack)
	assert.Equal(t, "", f.CastleSide)
	assert.Equal(t, 0, f.CastleMove)
}

func TestCompute_CastlingQueenside(t *testing.T) {
	moves := []string{"d4", "d5", "Nc3", "Nc6", "Bf4", "Bf5", "Qd2", "Qd7", "O-O-O", "O-O-O"}

	f := style.Compute(moves, models.ColorWhite)
	assert.Equal(t, "Q", f.CastleSide)
	assert.Equal(t, 5, f.CastleMove)

	f = style.Compute(moves, models.ColorBlack)
	assert.Equal(t, "Q", f.CastleSide)
	assert.Equal(t, 5, f.CastleMove)
}

func TestCompute_QueenTrade(t *testing.T) {
	// Both queens leave the board by move 5.
	moves := []string{"d4", "d5", "Qd3", "Qd6", "Qa6", "Nxa6", "Nf3", "Qxh2", "Rxh2"}

	f := style.Compute(moves, models.ColorWhite)
	assert.True(t, f.QueenTradeByMove20)

	// Queens stay on.
	f = style.Compute([]string{"e4", "e5", "Nf3", "Nc6"}, models.ColorWhite)
	assert.False(t, f.QueenTradeByMove20)
}

func TestCompute_KingsidePawnStorm(t *testing.T) {
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "O-O", "Nf6", "g4", "d6"}

	f := style.Compute(moves, models.ColorWhite)
	assert.True(t, f.KingsidePawnStorm, "g2-g4 after O-O is a kingside storm")
	assert.False(t, f.QueensidePawnStorm)

	// The same double push before castling is not a storm.
	f = style.Compute([]string{"g4", "e5", "Nf3", "Nc6"}, models.ColorWhite)
	assert.False(t, f.KingsidePawnStorm)
}

func TestCompute_EarlyAggression(t *testing.T) {
	moves := []string{"e4", "d5", "exd5", "Qxd5", "Nc3", "Qd8", "Bc4", "e6", "Qh5", "g6", "Qe5", "Nf6"}

	f := style.Compute(moves, models.ColorWhite)
	assert.Equal(t, 1, f.CapturesFirst15, "exd5 is White's only capture")
	assert.Equal(t, 2, f.PawnMovesFirst10, "e4 and exd5")

	f = style.Compute(moves, models.ColorBlack)
	assert.Equal(t, 1, f.CapturesFirst15, "Qxd5")
}

func TestCompute_Checks(t *testing.T) {
	moves := []string{"e4", "e5", "Qh5", "Nc6", "Qxf7+"}

	f := style.Compute(moves, models.ColorWhite)
	assert.Equal(t, 1, f.ChecksFirst15)
	assert.Equal(t, 1, f.CapturesFirst15, "Qxf7 is the only capture")
}

func TestCompute_StrayAnnotationToken(t *testing.T) {
	// A bare "!?" trims to nothing; features must still credit each move to
	// the side that played it on the board.
	moves := []string{"e4", "d5", "!?", "exd5", "Qxd5"}

	f := style.Compute(moves, models.ColorBlack)
	assert.Equal(t, 1, f.PawnMovesFirst10, "d5 is Black's only pawn move")
	assert.Equal(t, 1, f.CapturesFirst15, "Qxd5")

	f = style.Compute(moves, models.ColorWhite)
	assert.Equal(t, 2, f.PawnMovesFirst10, "e4 and exd5")
	assert.Equal(t, 1, f.CapturesFirst15, "exd5")
}

func TestCompute_StopsOnBrokenMove(t *testing.T) {
	f := style.Compute([]string{"e4", "e5", "Qxe5", "Nc6"}, models.ColorWhite)
	assert.Equal(t, 1, f.PawnMovesFirst10, "features reflect the replayed prefix")
}
