package profile_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/openings"
	"github.com/ledren/scoutbook/internal/profile"
)

func testBook(t *testing.T) *openings.Book {
	t.Helper()
	return openings.NewBook([]openings.Entry{
		{ECO: "B00", Name: "King's Pawn Game", Moves: openings.ParseMoves("e4")},
		{ECO: "A40", Name: "Queen's Pawn Game", Moves: openings.ParseMoves("d4")},
		{ECO: "C50", Name: "Italian Game", Moves: openings.ParseMoves("e4 e5 Nf3 Nc6 Bc4")},
	})
}

func game(id int, color, result, speed string, moves ...string) models.NormalizedGame {
	playedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour)
	return models.NormalizedGame{
		ID:       fmt.Sprintf("g%d", id),
		PlayedAt: &playedAt,
		Speed:    speed,
		PlayedAs: color,
		Result:   result,
		MovesSAN: moves,
	}
}

func TestBuild_WhiteOpeningTableSplit(t *testing.T) {
	games := []models.NormalizedGame{
		game(1, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4", "e5"),
		game(2, models.ColorWhite, models.ResultLoss, models.SpeedBlitz, "e4", "c5"),
		game(3, models.ColorWhite, models.ResultDraw, models.SpeedBlitz, "d4", "d5"),
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	doc := b.Build(context.Background(), "lichess", "magnus", games)

	require.Contains(t, doc.Segments, "all")
	seg := doc.Segments["all"]
	require.Len(t, seg.OpeningTables, 1, "only White games, so only the White table")

	table := seg.OpeningTables[0]
	assert.Equal(t, models.ColorWhite, table.Color)
	assert.Equal(t, 3, table.Total)
	require.Len(t, table.Lines, 2)

	assert.Equal(t, "King's Pawn Game", table.Lines[0].Name)
	assert.Equal(t, 2, table.Lines[0].Count)
	assert.InDelta(t, 66.7, table.Lines[0].Percent, 0.01)

	assert.Equal(t, "Queen's Pawn Game", table.Lines[1].Name)
	assert.Equal(t, 1, table.Lines[1].Count)
	assert.InDelta(t, 33.3, table.Lines[1].Percent, 0.01)

	for _, line := range table.Lines {
		assert.GreaterOrEqual(t, line.Percent, 1.0, "nothing under the display floor survives as a named line")
	}
}

func TestBuild_BlackTablesSplitByWhiteFirstMove(t *testing.T) {
	games := []models.NormalizedGame{
		game(1, models.ColorBlack, models.ResultWin, models.SpeedBlitz, "e4", "c5"),
		game(2, models.ColorBlack, models.ResultLoss, models.SpeedBlitz, "e4", "e5"),
		game(3, models.ColorBlack, models.ResultWin, models.SpeedBlitz, "d4", "Nf6"),
		game(4, models.ColorBlack, models.ResultWin, models.SpeedBlitz, "b3", "e5"),
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	seg := b.Build(context.Background(), "lichess", "magnus", games).Segments["all"]

	byBucket := map[string]models.OpeningTable{}
	for _, table := range seg.OpeningTables {
		require.Equal(t, models.ColorBlack, table.Color)
		byBucket[table.VsFirstMove] = table
	}

	assert.Equal(t, 4, byBucket[""].Total, "the aggregate Black table covers every Black game")
	assert.Equal(t, 2, byBucket["e4"].Total)
	assert.Equal(t, 1, byBucket["d4"].Total)
	assert.Equal(t, 1, byBucket["other"].Total)
	assert.NotContains(t, byBucket, "c4", "empty buckets are omitted")
}

func TestBuild_LongestOpeningPrefixWinsInTables(t *testing.T) {
	games := []models.NormalizedGame{
		game(1, models.ColorWhite, models.ResultWin, models.SpeedBlitz,
			"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"),
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	seg := b.Build(context.Background(), "lichess", "magnus", games).Segments["all"]

	require.Len(t, seg.OpeningTables, 1)
	assert.Equal(t, "Italian Game", seg.OpeningTables[0].Lines[0].Name)
}

func TestBuild_SegmentThreshold(t *testing.T) {
	var games []models.NormalizedGame
	for i := 0; i < 99; i++ {
		games = append(games, game(i, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"))
	}
	for i := 100; i < 200; i++ {
		games = append(games, game(i, models.ColorWhite, models.ResultWin, models.SpeedRapid, "d4"))
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	doc := b.Build(context.Background(), "lichess", "magnus", games)

	assert.Contains(t, doc.Segments, "all")
	assert.Contains(t, doc.Segments, models.SpeedRapid, "exactly at the threshold the segment appears")
	assert.NotContains(t, doc.Segments, models.SpeedBlitz, "one game short stays out")
	assert.Equal(t, 100, doc.Segments[models.SpeedRapid].GameCount)
}

func TestBuild_OnlyStandardSpeedsSegment(t *testing.T) {
	var games []models.NormalizedGame
	for i := 0; i < 120; i++ {
		games = append(games, game(i, models.ColorWhite, models.ResultWin, models.SpeedCorrespondence, "e4"))
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	doc := b.Build(context.Background(), "lichess", "magnus", games)

	assert.NotContains(t, doc.Segments, models.SpeedCorrespondence,
		"correspondence games count toward \"all\" but never segment on their own")
	require.Contains(t, doc.Segments, "all")
	assert.Equal(t, 120, doc.Segments["all"].GameCount)
}

func TestBuild_SmallSampleFlag(t *testing.T) {
	var games []models.NormalizedGame
	for i := 0; i < 49; i++ {
		games = append(games, game(i, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"))
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	doc := b.Build(context.Background(), "lichess", "magnus", games)
	assert.True(t, doc.Segments["all"].SmallSample)

	games = append(games, game(99, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"))
	doc = b.Build(context.Background(), "lichess", "magnus", games)
	assert.False(t, doc.Segments["all"].SmallSample)
}

func TestBuild_Summary(t *testing.T) {
	games := []models.NormalizedGame{
		game(1, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
		game(2, models.ColorBlack, models.ResultLoss, models.SpeedBlitz, "e4", "c5"),
		game(3, models.ColorWhite, models.ResultDraw, models.SpeedRapid, "d4"),
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	sum := b.Build(context.Background(), "lichess", "magnus", games).Segments["all"].Summary

	assert.Equal(t, 2, sum.WhiteGames)
	assert.Equal(t, 1, sum.BlackGames)
	assert.Equal(t, models.SpeedBlitz, sum.DominantSpeed)
	assert.Equal(t, map[string]int{models.SpeedBlitz: 2, models.SpeedRapid: 1}, sum.SpeedCounts)
	require.NotNil(t, sum.From)
	require.NotNil(t, sum.To)
	assert.True(t, sum.From.Before(*sum.To))
}

func TestBuild_ResultsByColor(t *testing.T) {
	games := []models.NormalizedGame{
		game(1, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
		game(2, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
		game(3, models.ColorWhite, models.ResultLoss, models.SpeedBlitz, "e4"),
		game(4, models.ColorWhite, models.ResultDraw, models.SpeedBlitz, "e4"),
		game(5, models.ColorBlack, models.ResultUnknown, models.SpeedBlitz, "e4", "c5"),
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	results := b.Build(context.Background(), "lichess", "magnus", games).Segments["all"].Results

	white := results[models.ColorWhite]
	assert.Equal(t, 4, white.Games)
	assert.Equal(t, 2, white.Wins)
	assert.Equal(t, 1, white.Losses)
	assert.Equal(t, 1, white.Draws)
	assert.InDelta(t, 50.0, white.WinRate, 0.01)

	black := results[models.ColorBlack]
	assert.Equal(t, 1, black.Games)
	assert.Equal(t, 1, black.Unknown)
	assert.Zero(t, black.WinRate, "unknown results stay out of the win rate")
}

func TestBuild_StyleAggregation(t *testing.T) {
	withStyle := func(g models.NormalizedGame, f models.StyleFeatures) models.NormalizedGame {
		g.Style = &f
		return g
	}
	games := []models.NormalizedGame{
		withStyle(game(1, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
			models.StyleFeatures{CastleSide: "K", CastleMove: 5, PawnMovesFirst10: 4, CapturesFirst15: 2}),
		withStyle(game(2, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
			models.StyleFeatures{CastleSide: "Q", CastleMove: 9, QueenTradeByMove20: true, PawnMovesFirst10: 6}),
		// never castled, no style extremes
		withStyle(game(3, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
			models.StyleFeatures{PawnMovesFirst10: 5, ChecksFirst15: 3}),
		// no style features at all: excluded from the aggregate
		game(4, models.ColorWhite, models.ResultWin, models.SpeedBlitz, "e4"),
	}

	b := profile.NewBuilder(testBook(t), profile.Options{})
	style := b.Build(context.Background(), "lichess", "magnus", games).Segments["all"].Style

	assert.Equal(t, 3, style.Games)
	assert.InDelta(t, 33.3, style.CastleKingsidePct, 0.01)
	assert.InDelta(t, 33.3, style.CastleQueensidePct, 0.01)
	assert.InDelta(t, 33.3, style.NoCastlePct, 0.01)
	assert.InDelta(t, 7.0, style.AvgCastleMove, 0.01, "averaged over castled games only")
	assert.InDelta(t, 33.3, style.QueenTradeByMove20Pct, 0.01)
	assert.InDelta(t, 5.0, style.AvgPawnMovesFirst10, 0.01)
	assert.InDelta(t, 0.7, style.AvgCapturesFirst15, 0.01)
	assert.InDelta(t, 1.0, style.AvgChecksFirst15, 0.01)
}

func TestBuild_EmptyInput(t *testing.T) {
	b := profile.NewBuilder(testBook(t), profile.Options{})
	doc := b.Build(context.Background(), "lichess", "magnus", nil)

	assert.Equal(t, models.ProfileVersion, doc.Version)
	assert.Zero(t, doc.GameCount)
	require.Contains(t, doc.Segments, "all")
	assert.Len(t, doc.Segments, 1)
	assert.Empty(t, doc.Segments["all"].OpeningTables)
	assert.Empty(t, doc.Segments["all"].Repertoire)
}
