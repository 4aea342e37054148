package model

import "strings"

// PositionKey canonicalizes a FEN into the model's position key: board
// placement, side to move, castling rights, and en-passant target. The
// halfmove and fullmove counters are dropped so transpositions reached at
// different game depths collapse into one bucket. Idempotent: feeding a key
// back in returns it unchanged.
func PositionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
