package pgn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledren/scoutbook/internal/pgn"
)

const samplePGN = `[Event "Rated blitz game"]
[Site "https://lichess.org/abcd1234"]
[White "alice"]
[Black "bob"]
[Result "1-0"]
[UTCDate "2024.03.15"]
[UTCTime "18:22:01"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0`

func TestParseTags(t *testing.T) {
	tags := pgn.ParseTags(samplePGN)

	assert.Equal(t, "alice", tags["White"])
	assert.Equal(t, "bob", tags["Black"])
	assert.Equal(t, "1-0", tags["Result"])
	assert.Equal(t, "2024.03.15", tags["UTCDate"])
	assert.Equal(t, "Rated blitz game", tags["Event"])
}

func TestParseTags_EmptyValue(t *testing.T) {
	tags := pgn.ParseTags(`[Opening ""]`)
	_, ok := tags["Opening"]
	assert.True(t, ok)
	assert.Equal(t, "", tags["Opening"])
}

func TestMovetext_Basic(t *testing.T) {
	moves := pgn.Movetext(samplePGN)
	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"}, moves)
}

func TestMovetext_CompactNumbers(t *testing.T) {
	moves := pgn.Movetext("1.e4 e5 2.Nf3 Nc6 1/2-1/2")
	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6"}, moves)
}

func TestMovetext_BlackContinuation(t *testing.T) {
	moves := pgn.Movetext("1. e4 e5 2. Nf3 2... Nc6 *")
	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6"}, moves)
}

func TestMovetext_StripsCommentsAndNAGs(t *testing.T) {
	body := `1. e4 {best by test} e5 $1 2. Nf3 (2. f4 {the King's Gambit} exf4) Nc6 1-0`
	moves := pgn.Movetext(body)
	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6"}, moves)
}

func TestMovetext_ClockAnnotations(t *testing.T) {
	body := `1. d4 { [%clk 0:03:00] } d5 { [%clk 0:02:58] } 2. c4 { [%clk 0:02:59] } 0-1`
	moves := pgn.Movetext(body)
	assert.Equal(t, []string{"d4", "d5", "c4"}, moves)
}

func TestMovetext_Empty(t *testing.T) {
	assert.Empty(t, pgn.Movetext(`[Event "?"]`))
	assert.Empty(t, pgn.Movetext(""))
}
